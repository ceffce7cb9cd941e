// Package mcp exposes the fitness API to MCP clients: period summary,
// timeline, recent workouts and logging a workout.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server whose tools act as the logged in user of client.
func NewServer(client fitnessClient, version string) *mcp.Server {
	h := NewHandler(NewStatsService(client))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymdash",
		Version: version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_summary",
		Description: "Returns total volume (kg), workouts count and average volume per workout for the trailing period. Arg: days (default 7). Use for a quick overview of recent training load.",
	}, h.GetSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_timeline",
		Description: "Returns a per-day table (volume, workouts, avg weight, sets) for the trailing period, oldest first. Only days with workouts appear. Arg: days (default 7). Use when looking at progression over time.",
	}, h.GetTimelineTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workouts",
		Description: "Returns logged workouts, most recent first. Optional: limit (default 10, max 100), offset.",
	}, h.ListWorkoutsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "add_workout",
		Description: "Logs a workout for the current user. Args: exercise_name, sets, reps; optional: muscle_group (default general), weight in kg (0 for bodyweight).",
	}, h.AddWorkoutTool())

	return s
}
