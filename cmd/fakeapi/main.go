// Command fakeapi serves an in-memory fitness API for local development,
// with a demo user and generated workout history.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/2beens/gymdash/internal/logging"
	"github.com/2beens/gymdash/internal/seed"
	"github.com/2beens/gymdash/internal/telemetry/metrics"
	"github.com/2beens/gymdash/internal/telemetry/tracing"
	"github.com/2beens/gymdash/internal/testapi"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting fake fitness api ...")

	host := flag.String("host", "localhost", "listen host")
	port := flag.Int("port", 8000, "port number")
	metricsAddr := flag.String("metrics-addr", "", "prometheus metrics address, e.g. localhost:9100 (empty to disable)")
	logLevel := flag.String("log-level", "debug", "log level")
	logsPath := flag.String("logs-path", "", "server logs file path (empty for stderr)")
	demoEmail := flag.String("demo-email", "test@fitmetrics.com", "demo user email (empty to skip)")
	demoPassword := flag.String("demo-password", "password123", "demo user password")
	demoDays := flag.Int("demo-days", 30, "days of generated history for the demo user")
	seedVal := flag.Int64("seed", time.Now().UnixNano(), "history generator seed")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      *logsPath,
		LogToStdout:      true,
		LogLevel:         *logLevel,
		Environment:      "development",
		SentryEnabled:    os.Getenv("SENTRY_DSN") != "",
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "gymdash-fakeapi",
	})

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	otelShutdown, err := tracing.HoneycombSetup(honeycombEnabled, "gymdash-fakeapi", nil)
	if err != nil {
		log.Fatalf("honeycomb setup: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("gymdash", "fakeapi", promRegistry)
	if *metricsAddr != "" {
		metrics.Serve(ctx, *metricsAddr, promRegistry)
	}

	backend := testapi.NewBackend()
	if *demoEmail != "" {
		user, err := backend.AddDemoUser(*demoEmail, *demoPassword, *demoDays, seed.NewGenerator(*seedVal))
		if err != nil {
			log.Fatalf("add demo user: %s", err)
		}
		log.Infof("demo user [%s] id %s, %d days of history", user.Email, user.ID, *demoDays)
	}

	ipAndPort := net.JoinHostPort(*host, strconv.Itoa(*port))
	httpServer := &http.Server{
		Handler:      testapi.NewRouter(backend, metricsManager),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	go func() {
		log.Infof(" > fake api listening on: [%s], base path %s", ipAndPort, testapi.BasePath)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("fake api, listen and serve: %s", err)
		}
	}()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)
	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, shutting down ...", receivedSig)
	cancel()

	otelShutdown()
	sentry.Flush(2 * time.Second)

	shutdownCtx, timeoutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer timeoutCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to gracefully shutdown http server: %s", err)
	}
	log.Warnln("fake api shut down")
}
