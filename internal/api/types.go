package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	IsActive bool   `json:"is_active"`
}

// Summary aggregates the trailing period requested with ?days=N.
type Summary struct {
	TotalVolume   float64 `json:"total_volume"`
	WorkoutsCount int     `json:"workouts_count"`
	AvgVolume     float64 `json:"avg_volume"`
}

// TimelinePoint is one day of the timeline. AvgWeight is null on days without weighted sets.
type TimelinePoint struct {
	Date          Date     `json:"date"`
	TotalVolume   float64  `json:"total_volume"`
	WorkoutsCount int      `json:"workouts_count"`
	AvgWeight     *float64 `json:"avg_weight"`
	TotalSets     int      `json:"total_sets"`
}

type Exercise struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
}

type Workout struct {
	ID          string    `json:"id,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	Exercise    Exercise  `json:"exercise"`
	Sets        int       `json:"sets"`
	Reps        int       `json:"reps"`
	Weight      float64   `json:"weight"`
	TotalVolume float64   `json:"total_volume"`
	PerformedAt Timestamp `json:"performed_at"`
}

// NewWorkout is the create payload; sets and reps are integers, weight a float.
type NewWorkout struct {
	ExerciseName string  `json:"exercise_name"`
	MuscleGroup  string  `json:"muscle_group"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
}

type Health struct {
	Status string          `json:"status"`
	Checks map[string]bool `json:"checks,omitempty"`
}

const dateLayout = "2006-01-02"

// Date is a calendar day, sent by the backend as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("date: unsupported format %q", s)
	}
	d.Time = t
	return nil
}

// the backend emits zone-less ISO timestamps for naive datetimes
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

type Timestamp struct {
	time.Time
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Format(time.RFC3339Nano))
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		ts.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t
			return nil
		}
	}
	return fmt.Errorf("timestamp: unsupported format %q", s)
}
