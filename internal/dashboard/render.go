package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/2beens/gymdash/internal/api"
)

const EmptyWorkoutsText = "No workouts yet. Add the first one!"

const performedAtLayout = "02.01.2006 15:04"

func (c *Controller) renderSummary(summary *api.Summary) {
	c.view.SetText(TotalVolumeID, formatKilos(summary.TotalVolume))
	c.view.SetText(WorkoutsCountID, strconv.Itoa(summary.WorkoutsCount))
	c.view.SetText(AvgVolumeID, formatKilos(summary.AvgVolume))
}

func (c *Controller) renderWorkouts(workouts []api.Workout) {
	if len(workouts) == 0 {
		c.view.SetText(WorkoutsListID, EmptyWorkoutsText)
		return
	}

	lines := make([]string, 0, len(workouts))
	for _, w := range workouts {
		lines = append(lines, FormatWorkout(w))
	}
	c.view.SetText(WorkoutsListID, strings.Join(lines, "\n"))
}

func formatKilos(v float64) string {
	return fmt.Sprintf("%d kg", int64(math.Round(v)))
}

// FormatWorkout renders one list entry, e.g.
// "[C] Bench Press  3 x 10  50.5 kg  Chest  1515 kg  07.03.2024 18:30".
func FormatWorkout(w api.Workout) string {
	performedAt := ""
	if !w.PerformedAt.IsZero() {
		performedAt = w.PerformedAt.Format(performedAtLayout)
	}
	line := fmt.Sprintf("[%s] %s  %d x %d  %s kg  %s  %s  %s",
		initial(w.Exercise.MuscleGroup),
		w.Exercise.Name,
		w.Sets, w.Reps,
		strconv.FormatFloat(w.Weight, 'f', -1, 64),
		w.Exercise.MuscleGroup,
		formatKilos(w.TotalVolume),
		performedAt,
	)
	return strings.TrimRight(line, " ")
}

func initial(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}
