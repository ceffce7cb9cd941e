package charts

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/2beens/gymdash/pkg"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	FormatPNG = "png"
	FormatSVG = "svg"

	defaultWidth  = 800
	defaultHeight = 320
	barWidth      = 24
	barSpacing    = 12
)

var ErrNoData = errors.New("chart has no data")

// ImageRenderer draws each canvas into its own image file inside dir.
type ImageRenderer struct {
	dir    string
	format string
	width  int
	height int
}

func NewImageRenderer(dir, format string) (*ImageRenderer, error) {
	switch format {
	case FormatPNG, FormatSVG:
	default:
		return nil, fmt.Errorf("unsupported chart format: %s", format)
	}
	if err := pkg.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("charts dir %s: %w", dir, err)
	}
	return &ImageRenderer{
		dir:    dir,
		format: format,
		width:  defaultWidth,
		height: defaultHeight,
	}, nil
}

func (r *ImageRenderer) Path(canvas string) string {
	return filepath.Join(r.dir, canvas+"."+r.format)
}

func (r *ImageRenderer) Render(canvas string, cfg Config) (Instance, error) {
	if len(cfg.Datasets) == 0 || len(cfg.Labels) == 0 {
		return nil, ErrNoData
	}

	provider := chart.PNG
	if r.format == FormatSVG {
		provider = chart.SVG
	}

	var buf bytes.Buffer
	var err error
	switch cfg.Kind {
	case KindBar:
		err = r.barChart(cfg).Render(provider, &buf)
	case KindLine:
		err = r.lineChart(cfg).Render(provider, &buf)
	default:
		return nil, fmt.Errorf("unsupported chart kind: %s", cfg.Kind)
	}
	if err != nil {
		return nil, err
	}

	path := r.Path(canvas)
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return nil, fmt.Errorf("write chart file: %w", err)
	}

	return &FileInstance{canvas: canvas, path: path}, nil
}

func (r *ImageRenderer) barChart(cfg Config) chart.BarChart {
	ds := cfg.Datasets[0]
	bars := make([]chart.Value, len(cfg.Labels))
	for i, label := range cfg.Labels {
		bars[i] = chart.Value{
			Label: label,
			Value: valueAt(ds.Data, i),
			Style: chart.Style{
				FillColor:   toDrawingColor(ds.BackgroundColor),
				StrokeColor: toDrawingColor(ds.BorderColor),
				StrokeWidth: ds.BorderWidth,
			},
		}
	}

	width := r.width
	if needed := len(bars)*(barWidth+barSpacing) + 120; needed > width {
		width = needed
	}

	return chart.BarChart{
		Title:      ds.Label,
		Width:      width,
		Height:     r.height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis:      yAxis(cfg),
		Bars:       bars,
	}
}

func (r *ImageRenderer) lineChart(cfg Config) chart.Chart {
	n := len(cfg.Labels)
	xs := make([]float64, n)
	ticks := make([]chart.Tick, 0, n+1)
	for i, label := range cfg.Labels {
		xs[i] = float64(i + 1)
		ticks = append(ticks, chart.Tick{Value: xs[i], Label: label})
	}
	// a single point still needs a non-zero x range
	minX, maxX := 0.5, float64(n)+0.5
	if n == 1 {
		maxX = 2
		ticks = append(ticks, chart.Tick{Value: 2, Label: ""})
	}

	series := make([]chart.Series, 0, len(cfg.Datasets))
	for _, ds := range cfg.Datasets {
		ys := make([]float64, n)
		for i := range ys {
			ys[i] = valueAt(ds.Data, i)
		}
		style := chart.Style{
			StrokeColor: toDrawingColor(ds.BorderColor),
			StrokeWidth: ds.BorderWidth,
			DotColor:    toDrawingColor(ds.BorderColor),
			DotWidth:    3,
		}
		if ds.Fill {
			style.FillColor = toDrawingColor(ds.BackgroundColor)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ys,
			Style:   style,
		})
	}

	xAxis := chart.XAxis{
		Ticks: ticks,
		Range: &chart.ContinuousRange{Min: minX, Max: maxX},
	}
	if !cfg.Options.GridX {
		xAxis.GridMajorStyle = chart.Style{Hidden: true}
	}

	ch := chart.Chart{
		Title:      cfg.Datasets[0].Label,
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      xAxis,
		YAxis:      yAxis(cfg),
		Series:     series,
	}
	if cfg.Options.ShowLegend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	return ch
}

func yAxis(cfg Config) chart.YAxis {
	axis := chart.YAxis{Name: cfg.Unit}

	// an all-zero series would otherwise collapse the range
	maxY := 0.0
	minY := math.Inf(1)
	for _, ds := range cfg.Datasets {
		for _, v := range ds.Data {
			maxY = math.Max(maxY, v)
			minY = math.Min(minY, v)
		}
	}
	if maxY <= 0 {
		maxY = 1
	}
	if cfg.Options.BeginAtZero || math.IsInf(minY, 1) || minY >= maxY {
		minY = 0
	}
	axis.Range = &chart.ContinuousRange{Min: minY, Max: maxY * 1.1}

	if cfg.Options.GridY {
		axis.GridMajorStyle = chart.Style{
			StrokeColor: toDrawingColor(cfg.Options.GridColor),
			StrokeWidth: 1,
		}
	}

	return axis
}

func valueAt(data []float64, i int) float64 {
	if i < len(data) {
		return data[i]
	}
	return 0
}

func toDrawingColor(c Color) drawing.Color {
	return drawing.Color{
		R: c.R,
		G: c.G,
		B: c.B,
		A: uint8(math.Round(c.A * 255)),
	}
}

// FileInstance is a chart rendered to disk; destroying it removes the file.
type FileInstance struct {
	canvas string
	path   string
}

func (i *FileInstance) Canvas() string {
	return i.canvas
}

func (i *FileInstance) Path() string {
	return i.path
}

func (i *FileInstance) Destroy() error {
	if err := os.Remove(i.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
