// Package dashboard drives the authenticated page: summary metrics, the four
// timeline charts, the recent workouts list and the add-workout form.
package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/2beens/gymdash/internal/api"
	"github.com/2beens/gymdash/internal/charts"
	"github.com/2beens/gymdash/internal/session"
	"github.com/2beens/gymdash/internal/telemetry/metrics"
	"github.com/2beens/gymdash/internal/telemetry/tracing"
	"github.com/2beens/gymdash/internal/view"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

// region identifiers
const (
	TotalVolumeID   = "total-volume"
	WorkoutsCountID = "workouts-count"
	AvgVolumeID     = "avg-volume"
	WorkoutsListID  = "workouts-list"
)

const (
	DefaultPeriod        = 7
	DefaultWorkoutsLimit = 10
)

// Periods offered by the filter controls, in days.
var Periods = []int{7, 14, 30, 90}

func FilterControlID(days int) string {
	return fmt.Sprintf("period-%d", days)
}

func DefaultFilterControls() []string {
	ids := make([]string, 0, len(Periods))
	for _, days := range Periods {
		ids = append(ids, FilterControlID(days))
	}
	return ids
}

//go:generate mockgen -source=$GOFILE -destination=mock_client_test.go -package=dashboard_test

type Client interface {
	MetricsSummary(ctx context.Context, days int) (*api.Summary, error)
	Timeline(ctx context.Context, days int) ([]api.TimelinePoint, error)
	ListWorkouts(ctx context.Context, limit, offset int) ([]api.Workout, error)
	CreateWorkout(ctx context.Context, newWorkout api.NewWorkout) (*api.Workout, error)
}

type Params struct {
	Client         Client
	Store          session.Store
	View           view.Bindings
	Nav            view.Navigator
	Alerter        view.Alerter
	Renderer       charts.Renderer
	Metrics        *metrics.Manager
	DefaultPeriod  int
	WorkoutsLimit  int
	FilterControls []string
}

// Controller owns the dashboard state. Fetches run in parallel goroutines,
// so the period is guarded and the view and chart registry are safe for concurrent use.
type Controller struct {
	client  Client
	store   session.Store
	view    view.Bindings
	nav     view.Navigator
	alerter view.Alerter
	charts  *charts.Registry
	metrics *metrics.Manager

	workoutsLimit  int
	filterControls []string

	mu            sync.RWMutex
	currentPeriod int
	activeControl string
}

func NewController(params Params) *Controller {
	period := params.DefaultPeriod
	if period <= 0 {
		period = DefaultPeriod
	}
	limit := params.WorkoutsLimit
	if limit <= 0 {
		limit = DefaultWorkoutsLimit
	}
	filterControls := params.FilterControls
	if len(filterControls) == 0 {
		filterControls = DefaultFilterControls()
	}

	return &Controller{
		client:         params.Client,
		store:          params.Store,
		view:           params.View,
		nav:            params.Nav,
		alerter:        params.Alerter,
		charts:         charts.NewRegistry(params.Renderer, params.Metrics),
		metrics:        params.Metrics,
		workoutsLimit:  limit,
		filterControls: filterControls,
		currentPeriod:  period,
	}
}

// Init reports whether the dashboard may proceed. Without a stored token the
// user is sent to the login page.
func (c *Controller) Init(ctx context.Context) bool {
	if !session.HasToken(ctx, c.store) {
		log.Debugln("no session token, redirecting to login")
		c.nav.Navigate(view.PageLogin)
		return false
	}
	c.markActive(FilterControlID(c.CurrentPeriod()))
	return true
}

func (c *Controller) CurrentPeriod() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentPeriod
}

// Charts exposes the registry holding the live chart instances.
func (c *Controller) Charts() *charts.Registry {
	return c.charts
}

type loader struct {
	widget string
	load   func(ctx context.Context) error
}

// Load fetches summary, timeline and workouts in parallel. Every widget renders
// as soon as its own data arrives; a failing widget is logged and left as is.
// The combined error only informs the caller.
func (c *Controller) Load(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return c.runLoaders(ctx,
		loader{widget: "summary", load: c.LoadSummary},
		loader{widget: "timeline", load: c.LoadTimeline},
		loader{widget: "workouts", load: c.LoadWorkouts},
	)
}

func (c *Controller) runLoaders(ctx context.Context, loaders ...loader) error {
	errs := make([]error, len(loaders))

	var wg sync.WaitGroup
	for i, l := range loaders {
		wg.Add(1)
		go func(i int, l loader) {
			defer wg.Done()
			if err := l.load(ctx); err != nil {
				log.Errorf("load dashboard %s: %s", l.widget, err)
				if c.metrics != nil {
					c.metrics.CounterLoadFailures.WithLabelValues(l.widget).Inc()
				}
				errs[i] = fmt.Errorf("load %s: %w", l.widget, err)
			}
		}(i, l)
	}
	wg.Wait()

	return multierr.Combine(errs...)
}

func (c *Controller) LoadSummary(ctx context.Context) error {
	summary, err := c.client.MetricsSummary(ctx, c.CurrentPeriod())
	if err != nil {
		return err
	}
	c.renderSummary(summary)
	return nil
}

// LoadTimeline re-renders all four charts. An empty timeline leaves the current charts untouched.
func (c *Controller) LoadTimeline(ctx context.Context) error {
	points, err := c.client.Timeline(ctx, c.CurrentPeriod())
	if err != nil {
		return err
	}
	if len(points) == 0 {
		log.Warnln("timeline is empty, no chart data")
		return nil
	}

	configs := charts.FromTimeline(points)
	var errs error
	for _, canvas := range charts.Canvases {
		if err := c.charts.Update(canvas, configs[canvas]); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func (c *Controller) LoadWorkouts(ctx context.Context) error {
	workouts, err := c.client.ListWorkouts(ctx, c.workoutsLimit, 0)
	if err != nil {
		return err
	}
	c.renderWorkouts(workouts)
	return nil
}

// SetTimePeriod switches the trailing period and refreshes the period-bound
// widgets. The workouts list does not depend on the period.
func (c *Controller) SetTimePeriod(ctx context.Context, days int, controlID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.setTimePeriod")
	span.SetAttributes(attribute.Int("days", days))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	c.SelectTimePeriod(days, controlID)

	return c.runLoaders(ctx,
		loader{widget: "summary", load: c.LoadSummary},
		loader{widget: "timeline", load: c.LoadTimeline},
	)
}

// SelectTimePeriod switches the period and the active control without fetching.
// The next Load uses the new period.
func (c *Controller) SelectTimePeriod(days int, controlID string) {
	c.mu.Lock()
	c.currentPeriod = days
	c.mu.Unlock()

	c.markActive(controlID)
}

// markActive leaves controlID as the only filter control carrying the active class.
// The previous control may lie outside filterControls for custom periods.
func (c *Controller) markActive(controlID string) {
	c.mu.Lock()
	previous := c.activeControl
	c.activeControl = controlID
	c.mu.Unlock()

	if previous != "" {
		c.view.RemoveClass(previous, view.ActiveClass)
	}
	for _, id := range c.filterControls {
		c.view.RemoveClass(id, view.ActiveClass)
	}
	if controlID != "" {
		c.view.AddClass(controlID, view.ActiveClass)
	}
}

// HandleClick closes the add-workout modal when the click lands on its backdrop.
func (c *Controller) HandleClick(targetID string) {
	if targetID == ModalID {
		c.CloseAddWorkoutModal()
	}
}

func (c *Controller) Logout(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		log.Errorf("logout, clear token: %s", err)
	}
	c.nav.Navigate(view.PageLogin)
}

// Close destroys every live chart instance.
func (c *Controller) Close() error {
	return c.charts.Close()
}
