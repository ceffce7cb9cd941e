package api

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWorkout_Validate(t *testing.T) {
	valid := NewWorkout{ExerciseName: "Squat", MuscleGroup: "Legs", Sets: 5, Reps: 5, Weight: 100}
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		modify func(w *NewWorkout)
		field  string
	}{
		{"empty name", func(w *NewWorkout) { w.ExerciseName = "" }, "exercise_name"},
		{"long name", func(w *NewWorkout) { w.ExerciseName = strings.Repeat("a", 101) }, "exercise_name"},
		{"empty muscle group", func(w *NewWorkout) { w.MuscleGroup = "" }, "muscle_group"},
		{"long muscle group", func(w *NewWorkout) { w.MuscleGroup = strings.Repeat("b", 51) }, "muscle_group"},
		{"zero sets", func(w *NewWorkout) { w.Sets = 0 }, "sets"},
		{"too many sets", func(w *NewWorkout) { w.Sets = 51 }, "sets"},
		{"zero reps", func(w *NewWorkout) { w.Reps = 0 }, "reps"},
		{"too many reps", func(w *NewWorkout) { w.Reps = 201 }, "reps"},
		{"negative weight", func(w *NewWorkout) { w.Weight = -0.5 }, "weight"},
		{"NaN weight", func(w *NewWorkout) { w.Weight = math.NaN() }, "weight"},
		{"infinite weight", func(w *NewWorkout) { w.Weight = math.Inf(1) }, "weight"},
		{"negative infinite weight", func(w *NewWorkout) { w.Weight = math.Inf(-1) }, "weight"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := valid
			tc.modify(&w)
			err := w.Validate()
			var validationErr *ValidationError
			if assert.ErrorAs(t, err, &validationErr) {
				assert.Equal(t, tc.field, validationErr.Field)
			}
		})
	}

	bodyweight := valid
	bodyweight.Weight = 0
	assert.NoError(t, bodyweight.Validate())
	assert.EqualError(t, NewWorkout{}.Validate(), "exercise_name must be between 1 and 100 characters")
}

func TestNewWorkout_Normalize(t *testing.T) {
	w := NewWorkout{ExerciseName: "  Deadlift ", MuscleGroup: "  "}
	w.Normalize()
	assert.Equal(t, "Deadlift", w.ExerciseName)
	assert.Equal(t, DefaultMuscleGroup, w.MuscleGroup)

	w = NewWorkout{Sets: 3, Reps: 10, Weight: 50.5}
	assert.Equal(t, 1515.0, w.Volume())
}
