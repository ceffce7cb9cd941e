// Package charts builds the dashboard chart configurations from the metrics
// timeline and keeps at most one live rendered instance per canvas.
package charts

import (
	"fmt"
	"strconv"

	"github.com/2beens/gymdash/internal/api"
)

// canvas identifiers, in render order
const (
	CanvasVolume    = "volumeChart"
	CanvasWorkouts  = "workoutsChart"
	CanvasAvgWeight = "avgWeightChart"
	CanvasSets      = "setsChart"
)

var Canvases = []string{CanvasVolume, CanvasWorkouts, CanvasAvgWeight, CanvasSets}

// labels show day and short month, e.g. "7 Mar"
const labelLayout = "2 Jan"

type Kind string

const (
	KindBar  Kind = "bar"
	KindLine Kind = "line"
)

type Color struct {
	R, G, B uint8
	A       float64
}

func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

type Dataset struct {
	Label           string
	Data            []float64
	BackgroundColor Color
	BorderColor     Color
	BorderWidth     float64
	Fill            bool
	Tension         float64
}

type Options struct {
	BeginAtZero bool
	ShowLegend  bool
	GridX       bool
	GridY       bool
	GridColor   Color
}

type Config struct {
	Kind     Kind
	Unit     string
	Labels   []string
	Datasets []Dataset
	Options  Options
}

var (
	volumeColor    = RGBA(102, 126, 234, 1)
	workoutsColor  = RGBA(247, 147, 251, 1)
	avgWeightColor = RGBA(79, 172, 254, 1)
	setsColor      = RGBA(118, 75, 162, 1)
)

func defaultOptions() Options {
	return Options{
		BeginAtZero: true,
		GridY:       true,
		GridColor:   RGBA(0, 0, 0, 0.05),
	}
}

func barDataset(label string, data []float64, c Color) Dataset {
	return Dataset{
		Label:           label,
		Data:            data,
		BackgroundColor: c.WithAlpha(0.8),
		BorderColor:     c,
		BorderWidth:     2,
	}
}

func lineDataset(label string, data []float64, c Color) Dataset {
	return Dataset{
		Label:           label,
		Data:            data,
		BackgroundColor: c.WithAlpha(0.2),
		BorderColor:     c,
		BorderWidth:     3,
		Fill:            true,
		Tension:         0.4,
	}
}

// FromTimeline builds one config per canvas. The result is empty for an empty timeline.
func FromTimeline(points []api.TimelinePoint) map[string]Config {
	if len(points) == 0 {
		return map[string]Config{}
	}

	labels := make([]string, len(points))
	volume := make([]float64, len(points))
	workouts := make([]float64, len(points))
	avgWeight := make([]float64, len(points))
	sets := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Date.Format(labelLayout)
		volume[i] = p.TotalVolume
		workouts[i] = float64(p.WorkoutsCount)
		if p.AvgWeight != nil {
			avgWeight[i] = *p.AvgWeight
		}
		sets[i] = float64(p.TotalSets)
	}

	return map[string]Config{
		CanvasVolume: {
			Kind:     KindBar,
			Unit:     "kg",
			Labels:   labels,
			Datasets: []Dataset{barDataset("Volume (kg)", volume, volumeColor)},
			Options:  defaultOptions(),
		},
		CanvasWorkouts: {
			Kind:     KindLine,
			Labels:   labels,
			Datasets: []Dataset{lineDataset("Workouts", workouts, workoutsColor)},
			Options:  defaultOptions(),
		},
		CanvasAvgWeight: {
			Kind:     KindLine,
			Unit:     "kg",
			Labels:   labels,
			Datasets: []Dataset{lineDataset("Average weight (kg)", avgWeight, avgWeightColor)},
			Options:  defaultOptions(),
		},
		CanvasSets: {
			Kind:     KindBar,
			Labels:   labels,
			Datasets: []Dataset{barDataset("Sets", sets, setsColor)},
			Options:  defaultOptions(),
		},
	}
}
