package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/gymdash/internal/config"
	"github.com/2beens/gymdash/internal/logging"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
)

// errUsage is returned when a command gets bad arguments; usage is already printed.
var errUsage = errors.New("invalid usage")

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "gymdash-cli",
	})
	log.Debugf("running in [%s] environment, api: %s", cfg.Environment, cfg.ApiBaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		printUsage()
		return
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}

	switch cmd {
	case "login":
		err = a.cmdLogin(ctx, args)
	case "register":
		err = a.cmdRegister(ctx, args)
	case "logout":
		err = a.cmdLogout(ctx)
	case "me":
		err = a.cmdMe(ctx)
	case "health":
		err = a.cmdHealth(ctx)
	case "dashboard":
		err = a.cmdDashboard(ctx, args)
	case "add-workout":
		err = a.cmdAddWorkout(ctx, args)
	case "seed":
		err = a.cmdSeed(ctx, args)
	case "mcp":
		err = a.cmdMCP(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		err = errUsage
	}

	a.shutdown()

	if err != nil {
		if !errors.Is(err, errUsage) {
			color.Red("Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Println("gymdash - workout dashboard for the fitness API")
	fmt.Println()
	fmt.Println("Usage: gymdash [-env dev|prod] [-config path] <command> [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  login [-email e] [-password p]        Log in and store the session token")
	fmt.Println("  register [-username u] [-email e]     Create an account and log straight in")
	fmt.Println("  logout                                Forget the session token")
	fmt.Println("  me                                    Show the logged in user")
	fmt.Println("  health                                Show backend health")
	fmt.Println("  dashboard [-days N] [-watch D] [-i]   Show summary, charts and recent workouts")
	fmt.Println("  add-workout -exercise name ...        Log a workout")
	fmt.Println("  seed [-count N] [-seed S]             Post generated workouts")
	fmt.Println("  mcp                                   Serve MCP tools over stdio")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  GYMDASH_REDIS_PASS       Redis password, for the redis token store")
	fmt.Println("  SENTRY_DSN               Sentry DSN, when sentry is enabled")
	fmt.Println("  HONEYCOMB_API_KEY        Honeycomb key, when honeycomb tracing is enabled")
	fmt.Println()
}
