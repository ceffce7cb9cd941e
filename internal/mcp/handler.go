package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/gymdash/internal/api"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	res := textResult(text)
	res.IsError = true
	return res
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}

// resolveDays maps 0 to the default period.
func resolveDays(days int) (int, bool) {
	if days == 0 {
		return DefaultDays, true
	}
	return days, days > 0 && days <= MaxDays
}

// PeriodInput is the input for get_summary and get_timeline.
type PeriodInput struct {
	Days int `json:"days,omitempty" jsonschema:"Trailing period in days, 1-365 (default 7)"`
}

func (h *Handler) GetSummaryTool() func(context.Context, *mcp.CallToolRequest, PeriodInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PeriodInput) (*mcp.CallToolResult, any, error) {
		days, ok := resolveDays(in.Days)
		if !ok {
			return errorResult(fmt.Sprintf("Invalid days: use 1-%d", MaxDays)), nil, nil
		}
		summary, err := h.service.Summary(ctx, days)
		if err != nil {
			return errorResult("Error fetching summary: " + err.Error()), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}

func (h *Handler) GetTimelineTool() func(context.Context, *mcp.CallToolRequest, PeriodInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PeriodInput) (*mcp.CallToolResult, any, error) {
		days, ok := resolveDays(in.Days)
		if !ok {
			return errorResult(fmt.Sprintf("Invalid days: use 1-%d", MaxDays)), nil, nil
		}
		table, err := h.service.TimelineTable(ctx, days)
		if err != nil {
			return errorResult("Error fetching timeline: " + err.Error()), nil, nil
		}
		return textResult(table), nil, nil
	}
}

// ListWorkoutsInput is the input for list_workouts.
type ListWorkoutsInput struct {
	Limit  int `json:"limit,omitempty" jsonschema:"Max workouts to return, 1-100 (default 10)"`
	Offset int `json:"offset,omitempty" jsonschema:"Workouts to skip, most recent first"`
}

func (h *Handler) ListWorkoutsTool() func(context.Context, *mcp.CallToolRequest, ListWorkoutsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListWorkoutsInput) (*mcp.CallToolResult, any, error) {
		limit := in.Limit
		if limit == 0 {
			limit = DefaultLimit
		}
		if limit < 0 || limit > MaxLimit {
			return errorResult(fmt.Sprintf("Invalid limit: use 1-%d", MaxLimit)), nil, nil
		}
		if in.Offset < 0 {
			return errorResult("Invalid offset: must not be negative"), nil, nil
		}
		workouts, err := h.service.Workouts(ctx, limit, in.Offset)
		if err != nil {
			return errorResult("Error listing workouts: " + err.Error()), nil, nil
		}
		return jsonResult(workouts), nil, nil
	}
}

// AddWorkoutInput is the input for add_workout.
type AddWorkoutInput struct {
	ExerciseName string  `json:"exercise_name" jsonschema:"Exercise name (e.g. Bench Press)"`
	MuscleGroup  string  `json:"muscle_group,omitempty" jsonschema:"Muscle group (e.g. chest, legs), default general"`
	Sets         int     `json:"sets" jsonschema:"Number of sets, 1-50"`
	Reps         int     `json:"reps" jsonschema:"Reps per set, 1-200"`
	Weight       float64 `json:"weight,omitempty" jsonschema:"Weight in kg, 0 for bodyweight"`
}

func (h *Handler) AddWorkoutTool() func(context.Context, *mcp.CallToolRequest, AddWorkoutInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AddWorkoutInput) (*mcp.CallToolResult, any, error) {
		workout, err := h.service.AddWorkout(ctx, api.NewWorkout{
			ExerciseName: in.ExerciseName,
			MuscleGroup:  in.MuscleGroup,
			Sets:         in.Sets,
			Reps:         in.Reps,
			Weight:       in.Weight,
		})
		if err != nil {
			return errorResult("Error adding workout: " + err.Error()), nil, nil
		}
		return jsonResult(workout), nil, nil
	}
}
