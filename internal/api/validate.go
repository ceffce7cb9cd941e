package api

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// workout bounds accepted by the backend
const (
	MaxExerciseNameLen = 100
	MaxMuscleGroupLen  = 50
	MaxSets            = 50
	MaxReps            = 200

	DefaultMuscleGroup = "general"
)

// ValidationError names the offending field of a payload rejected before sending.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// Normalize trims names and applies the default muscle group.
func (w *NewWorkout) Normalize() {
	w.ExerciseName = strings.TrimSpace(w.ExerciseName)
	w.MuscleGroup = strings.TrimSpace(w.MuscleGroup)
	if w.MuscleGroup == "" {
		w.MuscleGroup = DefaultMuscleGroup
	}
}

func (w NewWorkout) Validate() error {
	if n := utf8.RuneCountInString(w.ExerciseName); n < 1 || n > MaxExerciseNameLen {
		return &ValidationError{
			Field:  "exercise_name",
			Reason: fmt.Sprintf("must be between 1 and %d characters", MaxExerciseNameLen),
		}
	}
	if n := utf8.RuneCountInString(w.MuscleGroup); n < 1 || n > MaxMuscleGroupLen {
		return &ValidationError{
			Field:  "muscle_group",
			Reason: fmt.Sprintf("must be between 1 and %d characters", MaxMuscleGroupLen),
		}
	}
	if w.Sets < 1 || w.Sets > MaxSets {
		return &ValidationError{Field: "sets", Reason: fmt.Sprintf("must be between 1 and %d", MaxSets)}
	}
	if w.Reps < 1 || w.Reps > MaxReps {
		return &ValidationError{Field: "reps", Reason: fmt.Sprintf("must be between 1 and %d", MaxReps)}
	}
	if math.IsNaN(w.Weight) || math.IsInf(w.Weight, 0) {
		return &ValidationError{Field: "weight", Reason: "must be a finite number"}
	}
	if w.Weight < 0 {
		return &ValidationError{Field: "weight", Reason: "must not be negative"}
	}
	return nil
}

// Volume is the backend's total_volume for a single workout entry.
func (w NewWorkout) Volume() float64 {
	return float64(w.Sets*w.Reps) * w.Weight
}
