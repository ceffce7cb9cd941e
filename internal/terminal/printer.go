// Package terminal prints the view surface and alerts to a terminal.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/2beens/gymdash/internal/dashboard"
	"github.com/2beens/gymdash/internal/view"

	"github.com/fatih/color"
)

const banner = `
   ____                ____            _
  / ___|_   _ _ __ ___ |  _ \  __ _ ___| |__
 | |  _| | | | '_ ' _ \| | | |/ _' / __| '_ \
 | |_| | |_| | | | | | | |_| | (_| \__ \ | | |
  \____|\__, |_| |_| |_|____/ \__,_|___/_| |_|
        |___/
`

// ChartFile points at a rendered chart image.
type ChartFile struct {
	Canvas string
	Path   string
}

type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Banner() {
	cyan := color.New(color.FgCyan)
	_, _ = cyan.Fprint(p.out, banner)
	_, _ = fmt.Fprintln(p.out)
}

// Dashboard prints the summary regions, the period controls, the chart files and the workouts list.
func (p *Printer) Dashboard(v view.Bindings, periods []int, chartFiles []ChartFile) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	gray := color.New(color.FgHiBlack)

	_, _ = cyan.Fprintln(p.out, "Summary")
	p.field(green, "Total volume", v.Text(dashboard.TotalVolumeID))
	p.field(green, "Workouts", v.Text(dashboard.WorkoutsCountID))
	p.field(green, "Avg volume", v.Text(dashboard.AvgVolumeID))
	_, _ = fmt.Fprintln(p.out)

	_, _ = cyan.Fprint(p.out, "Period  ")
	for _, days := range periods {
		label := fmt.Sprintf("%dd", days)
		if v.HasClass(dashboard.FilterControlID(days), view.ActiveClass) {
			_, _ = yellow.Fprintf(p.out, "[%s] ", label)
		} else {
			_, _ = gray.Fprintf(p.out, " %s  ", label)
		}
	}
	_, _ = fmt.Fprintln(p.out)
	_, _ = fmt.Fprintln(p.out)

	if len(chartFiles) > 0 {
		_, _ = cyan.Fprintln(p.out, "Charts")
		for _, cf := range chartFiles {
			p.field(green, cf.Canvas, cf.Path)
		}
		_, _ = fmt.Fprintln(p.out)
	}

	_, _ = cyan.Fprintln(p.out, "Recent workouts")
	list := v.Text(dashboard.WorkoutsListID)
	if list == "" || list == dashboard.EmptyWorkoutsText {
		_, _ = gray.Fprintf(p.out, "  %s\n", dashboard.EmptyWorkoutsText)
		return
	}
	for _, line := range strings.Split(list, "\n") {
		_, _ = fmt.Fprintf(p.out, "  %s\n", line)
	}
}

// InlineError prints the error region id when it is visible and not empty.
func (p *Printer) InlineError(v view.Bindings, id string) bool {
	msg := v.Text(id)
	if !v.Visible(id) || msg == "" {
		return false
	}
	red := color.New(color.FgRed)
	_, _ = red.Fprintf(p.out, "  %s\n", msg)
	return true
}

func (p *Printer) Success(format string, args ...any) {
	green := color.New(color.FgGreen)
	_, _ = green.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) field(c *color.Color, name, value string) {
	_, _ = c.Fprintf(p.out, "  %-16s", name+":")
	_, _ = fmt.Fprintln(p.out, value)
}

// Alerter prints blocking messages in bold red.
type Alerter struct {
	out io.Writer
}

func NewAlerter(out io.Writer) *Alerter {
	return &Alerter{out: out}
}

func (a *Alerter) Alert(msg string) {
	_, _ = color.New(color.FgRed, color.Bold).Fprintf(a.out, "! %s\n", msg)
}

var _ view.Alerter = (*Alerter)(nil)
