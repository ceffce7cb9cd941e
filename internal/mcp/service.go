package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/gymdash/internal/api"
)

const (
	DefaultDays  = 7
	MaxDays      = 365
	DefaultLimit = 10
	MaxLimit     = 100
)

// fitnessClient is the part of the API client the tools need.
type fitnessClient interface {
	MetricsSummary(ctx context.Context, days int) (*api.Summary, error)
	Timeline(ctx context.Context, days int) ([]api.TimelinePoint, error)
	ListWorkouts(ctx context.Context, limit, offset int) ([]api.Workout, error)
	CreateWorkout(ctx context.Context, newWorkout api.NewWorkout) (*api.Workout, error)
}

// statsService is what Handler calls, kept behind an interface for tests.
type statsService interface {
	Summary(ctx context.Context, days int) (*PeriodSummary, error)
	TimelineTable(ctx context.Context, days int) (string, error)
	Workouts(ctx context.Context, limit, offset int) ([]api.Workout, error)
	AddWorkout(ctx context.Context, newWorkout api.NewWorkout) (*api.Workout, error)
}

// PeriodSummary is the summary tagged with the period it covers.
type PeriodSummary struct {
	Days int `json:"days"`
	api.Summary
}

type StatsService struct {
	client fitnessClient
}

func NewStatsService(client fitnessClient) *StatsService {
	return &StatsService{client: client}
}

func (s *StatsService) Summary(ctx context.Context, days int) (*PeriodSummary, error) {
	summary, err := s.client.MetricsSummary(ctx, days)
	if err != nil {
		return nil, err
	}
	return &PeriodSummary{Days: days, Summary: *summary}, nil
}

// TimelineTable renders the per-day timeline as a markdown table.
func (s *StatsService) TimelineTable(ctx context.Context, days int) (string, error) {
	points, err := s.client.Timeline(ctx, days)
	if err != nil {
		return "", err
	}
	return formatTimeline(days, points), nil
}

func formatTimeline(days int, points []api.TimelinePoint) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# Training timeline, last %d days\n\n", days))
	if len(points) == 0 {
		b.WriteString("No workouts in this period.\n")
		return b.String()
	}

	b.WriteString("| Date | Volume (kg) | Workouts | Avg weight (kg) | Sets |\n")
	b.WriteString("|------|-------------|----------|-----------------|------|\n")
	for _, p := range points {
		avg := "-"
		if p.AvgWeight != nil {
			avg = fmt.Sprintf("%.1f", *p.AvgWeight)
		}
		b.WriteString(fmt.Sprintf("| %s | %.0f | %d | %s | %d |\n",
			p.Date.Format("2006-01-02"), p.TotalVolume, p.WorkoutsCount, avg, p.TotalSets))
	}
	return b.String()
}

func (s *StatsService) Workouts(ctx context.Context, limit, offset int) ([]api.Workout, error) {
	return s.client.ListWorkouts(ctx, limit, offset)
}

// AddWorkout normalizes and validates before anything is sent.
func (s *StatsService) AddWorkout(ctx context.Context, newWorkout api.NewWorkout) (*api.Workout, error) {
	newWorkout.Normalize()
	if err := newWorkout.Validate(); err != nil {
		return nil, err
	}
	return s.client.CreateWorkout(ctx, newWorkout)
}
