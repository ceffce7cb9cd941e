package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests       *prometheus.CounterVec
	CounterSessionExpired prometheus.Counter
	CounterChartRenders   *prometheus.CounterVec
	CounterLoadFailures   *prometheus.CounterVec
	// fake backend only
	CounterHandleRequestPanic prometheus.Counter

	// gauges
	GaugeLiveCharts prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("gymdash", "test_client", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("gymdash", "test_client", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "api_request",
		Help:      "The total number of requests sent to the fitness API",
	}, []string{"endpoint", "status"})
	counterSessionExpired := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "session_expired",
		Help:      "The total number of 401 responses that ended the session",
	})
	counterChartRenders := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "chart_render",
		Help:      "The total number of chart renders per canvas",
	}, []string{"canvas"})
	counterLoadFailures := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "dashboard_load_failure",
		Help:      "The total number of failed dashboard widget loads",
	}, []string{"widget"})

	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of panics recovered while serving requests",
	})

	gaugeLiveCharts := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "live_charts",
		Help:      "Current number of live chart instances",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "api_request_duration_seconds",
		Help:      "Histogram of fitness API response time in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"endpoint", "method"})

	return &Manager{
		CounterRequests:           counterRequests,
		CounterSessionExpired:     counterSessionExpired,
		CounterChartRenders:       counterChartRenders,
		CounterLoadFailures:       counterLoadFailures,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		GaugeLiveCharts:           gaugeLiveCharts,
		HistogramRequestDuration:  histogramRequestDuration,
	}
}
