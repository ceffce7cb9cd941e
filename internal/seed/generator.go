// Package seed generates plausible fake workouts, either to post through the
// API or to pre-populate the development backend.
package seed

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/2beens/gymdash/internal/api"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
)

type Exercise struct {
	Name        string
	MuscleGroup string
	MinWeight   float64
	MaxWeight   float64
}

var Catalogue = []Exercise{
	{Name: "Bench Press", MuscleGroup: "Chest", MinWeight: 70, MaxWeight: 100},
	{Name: "Squat", MuscleGroup: "Legs", MinWeight: 100, MaxWeight: 140},
	{Name: "Deadlift", MuscleGroup: "Back", MinWeight: 120, MaxWeight: 160},
	{Name: "Overhead Press", MuscleGroup: "Shoulders", MinWeight: 40, MaxWeight: 60},
	{Name: "Barbell Row", MuscleGroup: "Back", MinWeight: 50, MaxWeight: 80},
}

// HistoryEntry is a workout with the time it was performed.
type HistoryEntry struct {
	Workout     api.NewWorkout
	PerformedAt time.Time
}

type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator is deterministic for a given seed; seed 0 picks a random one.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
	}
}

func (g *Generator) exercise() Exercise {
	return Catalogue[g.faker.IntRange(0, len(Catalogue)-1)]
}

func (g *Generator) weight(ex Exercise) float64 {
	return math.Round(g.faker.Float64Range(ex.MinWeight, ex.MaxWeight)*10) / 10
}

// Workout returns one valid workout of a random catalogue exercise.
func (g *Generator) Workout() api.NewWorkout {
	ex := g.exercise()
	return api.NewWorkout{
		ExerciseName: ex.Name,
		MuscleGroup:  ex.MuscleGroup,
		Sets:         g.faker.IntRange(3, 5),
		Reps:         g.faker.IntRange(6, 12),
		Weight:       g.weight(ex),
	}
}

// History spreads single-set entries over the trailing days before now. About
// every other day is a training day with two or three exercises of three to
// five sets each, performed between 9:00 and 20:00.
func (g *Generator) History(now time.Time, days int) []HistoryEntry {
	var entries []HistoryEntry
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for d := days - 1; d >= 0; d-- {
		if !g.faker.Bool() {
			continue
		}
		day := today.AddDate(0, 0, -d)

		picked := map[int]bool{}
		exercisesCount := g.faker.IntRange(2, 3)
		for len(picked) < exercisesCount {
			picked[g.faker.IntRange(0, len(Catalogue)-1)] = true
		}

		for i := range Catalogue {
			if !picked[i] {
				continue
			}
			ex := Catalogue[i]
			performedAt := day.Add(time.Duration(g.faker.IntRange(9, 20)) * time.Hour)
			if performedAt.After(now) {
				performedAt = now
			}
			sets := g.faker.IntRange(3, 5)
			for s := 0; s < sets; s++ {
				entries = append(entries, HistoryEntry{
					Workout: api.NewWorkout{
						ExerciseName: ex.Name,
						MuscleGroup:  ex.MuscleGroup,
						Sets:         1,
						Reps:         g.faker.IntRange(6, 12),
						Weight:       g.weight(ex),
					},
					PerformedAt: performedAt,
				})
			}
		}
	}

	return entries
}

type workoutCreator interface {
	CreateWorkout(ctx context.Context, newWorkout api.NewWorkout) (*api.Workout, error)
}

// Post creates count generated workouts through the API and stops at the first failure.
func Post(ctx context.Context, client workoutCreator, g *Generator, count int) (int, error) {
	for i := 0; i < count; i++ {
		w := g.Workout()
		if _, err := client.CreateWorkout(ctx, w); err != nil {
			return i, fmt.Errorf("create workout %d/%d: %w", i+1, count, err)
		}
		log.Debugf("seeded workout %d/%d: %s %dx%d %.1f kg", i+1, count, w.ExerciseName, w.Sets, w.Reps, w.Weight)
	}
	return count, nil
}
