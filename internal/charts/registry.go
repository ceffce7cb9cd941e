package charts

import (
	"fmt"
	"sort"
	"sync"

	"github.com/2beens/gymdash/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Instance is a live rendered chart bound to a canvas.
type Instance interface {
	Canvas() string
	Destroy() error
}

type Renderer interface {
	Render(canvas string, cfg Config) (Instance, error)
}

// Registry owns the live instances. Updating a canvas always destroys its
// previous instance before the new one is created.
type Registry struct {
	mu        sync.Mutex
	renderer  Renderer
	instances map[string]Instance
	metrics   *metrics.Manager
}

func NewRegistry(renderer Renderer, metricsManager *metrics.Manager) *Registry {
	return &Registry{
		renderer:  renderer,
		instances: make(map[string]Instance),
		metrics:   metricsManager,
	}
}

func (r *Registry) Update(canvas string, cfg Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.instances[canvas]; ok {
		delete(r.instances, canvas)
		r.setLiveGauge()
		if err := prev.Destroy(); err != nil {
			log.Errorf("destroy chart %s: %s", canvas, err)
		}
	}

	instance, err := r.renderer.Render(canvas, cfg)
	if err != nil {
		return fmt.Errorf("render chart %s: %w", canvas, err)
	}

	r.instances[canvas] = instance
	if r.metrics != nil {
		r.metrics.CounterChartRenders.WithLabelValues(canvas).Inc()
	}
	r.setLiveGauge()

	return nil
}

// Get returns the live instance for canvas, if any.
func (r *Registry) Get(canvas string) (Instance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	instance, ok := r.instances[canvas]
	return instance, ok
}

// Live lists canvases with a live instance, sorted.
func (r *Registry) Live() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	canvases := make([]string, 0, len(r.instances))
	for canvas := range r.instances {
		canvases = append(canvases, canvas)
	}
	sort.Strings(canvases)
	return canvases
}

// Close destroys every live instance.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs error
	for canvas, instance := range r.instances {
		if err := instance.Destroy(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("destroy chart %s: %w", canvas, err))
		}
		delete(r.instances, canvas)
	}
	r.setLiveGauge()

	return errs
}

// setLiveGauge must be called with the lock held
func (r *Registry) setLiveGauge() {
	if r.metrics != nil {
		r.metrics.GaugeLiveCharts.Set(float64(len(r.instances)))
	}
}
