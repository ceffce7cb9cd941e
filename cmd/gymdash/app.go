package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/2beens/gymdash/internal/api"
	"github.com/2beens/gymdash/internal/auth"
	"github.com/2beens/gymdash/internal/charts"
	"github.com/2beens/gymdash/internal/config"
	"github.com/2beens/gymdash/internal/dashboard"
	"github.com/2beens/gymdash/internal/session"
	"github.com/2beens/gymdash/internal/telemetry/metrics"
	"github.com/2beens/gymdash/internal/telemetry/tracing"
	"github.com/2beens/gymdash/internal/terminal"
	"github.com/2beens/gymdash/internal/view"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

type app struct {
	cfg     *config.Config
	store   session.Store
	client  *api.Client
	view    *view.Memory
	nav     *view.RecordingNavigator
	printer *terminal.Printer
	alerter *terminal.Alerter
	metrics *metrics.Manager

	rdb          *redis.Client
	otelShutdown func()
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{
		cfg:     cfg,
		view:    view.NewMemory(),
		nav:     view.NewRecordingNavigator(),
		printer: terminal.NewPrinter(os.Stdout),
		alerter: terminal.NewAlerter(os.Stderr),
	}

	store, err := a.setupStore(ctx)
	if err != nil {
		return nil, err
	}
	a.store = store

	a.otelShutdown, err = tracing.HoneycombSetup(cfg.HoneycombEnabled, "gymdash-cli", a.rdb)
	if err != nil {
		return nil, fmt.Errorf("honeycomb setup: %w", err)
	}

	promRegistry := metrics.SetupPrometheus()
	a.metrics = metrics.NewManager("gymdash", "cli", promRegistry)
	if cfg.MetricsAddr != "" {
		metrics.Serve(ctx, cfg.MetricsAddr, promRegistry)
	}

	a.client = api.NewClient(cfg.ApiBaseURL, api.NewTracedHTTPClient(), a.store, a.metrics)
	a.client.OnSessionExpired(func() {
		a.nav.Navigate(view.PageLogin)
	})

	return a, nil
}

func (a *app) setupStore(ctx context.Context) (session.Store, error) {
	switch a.cfg.TokenStore {
	case config.TokenStoreRedis:
		redisPassword := os.Getenv("GYMDASH_REDIS_PASS")
		if redisPassword == "" {
			log.Warnln("redis password not set. use GYMDASH_REDIS_PASS")
		}
		a.rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(a.cfg.RedisHost, a.cfg.RedisPort),
			Password: redisPassword,
			DB:       0,
		})
		rdbStatus := a.rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		log.Debugf("redis ping: %s", rdbStatus.Val())
		return session.NewRedisStore(a.rdb, a.cfg.Environment), nil
	case config.TokenStoreMemory:
		log.Warnln("memory token store: the session ends with the process")
		return session.NewMemoryStore(), nil
	default:
		tokenPath := a.cfg.TokenPath
		if tokenPath == "" {
			defaultPath, err := session.DefaultTokenPath()
			if err != nil {
				return nil, err
			}
			tokenPath = defaultPath
		}
		log.Debugf("token file: %s", tokenPath)
		return session.NewFileStore(tokenPath), nil
	}
}

func (a *app) shutdown() {
	if a.otelShutdown != nil {
		a.otelShutdown()
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}
}

func (a *app) authFlow() *auth.Flow {
	return auth.NewFlow(a.client, a.store, a.view, a.nav)
}

func (a *app) chartsDir() (string, error) {
	if a.cfg.ChartsDir != "" {
		return a.cfg.ChartsDir, nil
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(cacheDir, "gymdash", "charts"), nil
}

// newDashboard builds a controller rendering chart images into the charts dir.
func (a *app) newDashboard() (*dashboard.Controller, *charts.ImageRenderer, error) {
	dir, err := a.chartsDir()
	if err != nil {
		return nil, nil, err
	}
	renderer, err := charts.NewImageRenderer(dir, a.cfg.ChartsFormat)
	if err != nil {
		return nil, nil, err
	}

	controller := dashboard.NewController(dashboard.Params{
		Client:        a.client,
		Store:         a.store,
		View:          a.view,
		Nav:           a.nav,
		Alerter:       a.alerter,
		Renderer:      renderer,
		Metrics:       a.metrics,
		DefaultPeriod: a.cfg.DefaultPeriod,
		WorkoutsLimit: a.cfg.WorkoutsLimit,
	})
	return controller, renderer, nil
}

// sessionExpired reports whether the last API call ended the session.
func (a *app) sessionExpired() bool {
	return a.nav.Last() == view.PageLogin
}
