// Package testapi is an in-memory implementation of the fitness REST API, used
// by integration tests and by the fakeapi development server.
package testapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/2beens/gymdash/internal/api"
	"github.com/2beens/gymdash/internal/seed"
	"github.com/2beens/gymdash/pkg"

	"github.com/brianvoe/gofakeit/v6"
)

const (
	tokenLength = 32
	// bcrypt.MinCost; demo credentials only
	passwordHashCost = 4
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

type user struct {
	api.User
	passwordHash string
}

// Backend holds users, issued tokens and workouts. Safe for concurrent use.
type Backend struct {
	mu        sync.RWMutex
	users     map[string]*user // by email
	tokens    map[string]string
	workouts  map[string][]api.Workout // by user id
	exercises map[string]api.Exercise  // by name + muscle group
	now       func() time.Time
}

func NewBackend() *Backend {
	return &Backend{
		users:     make(map[string]*user),
		tokens:    make(map[string]string),
		workouts:  make(map[string][]api.Workout),
		exercises: make(map[string]api.Exercise),
		now:       time.Now,
	}
}

func (b *Backend) Register(email, username, password string) (*api.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := b.users[key]; ok {
		return nil, ErrEmailTaken
	}

	passwordHash, err := pkg.HashPassword(password, passwordHashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user{
		User: api.User{
			ID:       gofakeit.UUID(),
			Email:    email,
			Username: username,
			IsActive: true,
		},
		passwordHash: passwordHash,
	}
	b.users[key] = u

	userCopy := u.User
	return &userCopy, nil
}

// Login issues a new token for valid credentials.
func (b *Backend) Login(email, password string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	u, ok := b.users[strings.ToLower(email)]
	if !ok || !pkg.CheckPasswordHash(password, u.passwordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := pkg.GenerateRandomString(tokenLength)
	if err != nil {
		return "", err
	}
	b.tokens[token] = u.ID

	return token, nil
}

// Revoke invalidates a token, as if it had expired.
func (b *Backend) Revoke(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.tokens, token)
}

func (b *Backend) UserForToken(_ context.Context, token string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	userID, ok := b.tokens[token]
	return userID, ok, nil
}

func (b *Backend) User(userID string) (*api.User, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, u := range b.users {
		if u.ID == userID {
			userCopy := u.User
			return &userCopy, true
		}
	}
	return nil, false
}

func (b *Backend) exercise(name, muscleGroup string) api.Exercise {
	key := strings.ToLower(name) + "||" + strings.ToLower(muscleGroup)
	ex, ok := b.exercises[key]
	if !ok {
		ex = api.Exercise{ID: gofakeit.UUID(), Name: name, MuscleGroup: muscleGroup}
		b.exercises[key] = ex
	}
	return ex
}

// AddWorkout stores a validated workout performed at performedAt.
func (b *Backend) AddWorkout(userID string, newWorkout api.NewWorkout, performedAt time.Time) api.Workout {
	b.mu.Lock()
	defer b.mu.Unlock()

	w := api.Workout{
		ID:          gofakeit.UUID(),
		UserID:      userID,
		Exercise:    b.exercise(newWorkout.ExerciseName, newWorkout.MuscleGroup),
		Sets:        newWorkout.Sets,
		Reps:        newWorkout.Reps,
		Weight:      newWorkout.Weight,
		TotalVolume: newWorkout.Volume(),
		PerformedAt: api.Timestamp{Time: performedAt},
	}
	b.workouts[userID] = append(b.workouts[userID], w)

	return w
}

// Workouts lists the most recent first.
func (b *Backend) Workouts(userID string, limit, offset int) []api.Workout {
	b.mu.RLock()
	all := append([]api.Workout(nil), b.workouts[userID]...)
	b.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PerformedAt.After(all[j].PerformedAt.Time)
	})

	if offset >= len(all) {
		return []api.Workout{}
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all
}

func (b *Backend) since(userID string, days int) []api.Workout {
	from := b.now().AddDate(0, 0, -days)

	b.mu.RLock()
	defer b.mu.RUnlock()

	var recent []api.Workout
	for _, w := range b.workouts[userID] {
		if !w.PerformedAt.Before(from) {
			recent = append(recent, w)
		}
	}
	return recent
}

func (b *Backend) Summary(userID string, days int) api.Summary {
	recent := b.since(userID, days)

	summary := api.Summary{WorkoutsCount: len(recent)}
	for _, w := range recent {
		summary.TotalVolume += w.TotalVolume
	}
	if len(recent) > 0 {
		summary.AvgVolume = summary.TotalVolume / float64(len(recent))
	}
	return summary
}

// Timeline has one point per calendar day with at least one workout, oldest first.
func (b *Backend) Timeline(userID string, days int) []api.TimelinePoint {
	type dayAgg struct {
		point       api.TimelinePoint
		weightSum   float64
		weightCount int
	}

	byDay := map[string]*dayAgg{}
	for _, w := range b.since(userID, days) {
		day := w.PerformedAt.Format("2006-01-02")
		agg, ok := byDay[day]
		if !ok {
			t := w.PerformedAt.Time
			agg = &dayAgg{point: api.TimelinePoint{Date: api.NewDate(t.Year(), t.Month(), t.Day())}}
			byDay[day] = agg
		}
		agg.point.TotalVolume += w.TotalVolume
		agg.point.WorkoutsCount++
		agg.point.TotalSets += w.Sets
		if w.Weight > 0 {
			agg.weightSum += w.Weight
			agg.weightCount++
		}
	}

	points := make([]api.TimelinePoint, 0, len(byDay))
	for _, agg := range byDay {
		if agg.weightCount > 0 {
			avg := agg.weightSum / float64(agg.weightCount)
			agg.point.AvgWeight = &avg
		}
		points = append(points, agg.point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date.Time)
	})

	return points
}

// AddDemoUser registers a user with generated workout history over the trailing days.
func (b *Backend) AddDemoUser(email, password string, days int, gen *seed.Generator) (*api.User, error) {
	u, err := b.Register(email, "demo", password)
	if err != nil {
		return nil, err
	}
	for _, entry := range gen.History(b.now(), days) {
		b.AddWorkout(u.ID, entry.Workout, entry.PerformedAt)
	}
	return u, nil
}
