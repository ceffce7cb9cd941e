package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/2beens/gymdash/internal/auth"
	"github.com/2beens/gymdash/internal/charts"
	"github.com/2beens/gymdash/internal/dashboard"
	"github.com/2beens/gymdash/internal/seed"
	"github.com/2beens/gymdash/internal/session"
	"github.com/2beens/gymdash/internal/terminal"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
)

var errNotLoggedIn = errors.New("not logged in, run: gymdash login")

func parseFlags(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	return nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when empty)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	flow := a.authFlow()
	if flow.RedirectIfLoggedIn(ctx) {
		a.printer.Success("Already logged in.")
		return nil
	}

	if *email == "" {
		*email = prompt("Email: ")
	}
	if *password == "" {
		*password = promptPassword("Password: ")
	}

	if err := flow.Login(ctx, *email, *password); err != nil {
		a.printer.InlineError(a.view, auth.LoginErrorID)
		return errUsage
	}

	a.printer.Success("Logged in as %s.", *email)
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "display name")
	email := fs.String("email", "", "account email")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	flow := a.authFlow()
	if flow.RedirectIfLoggedIn(ctx) {
		a.printer.Success("Already logged in, run: gymdash logout")
		return nil
	}

	if *username == "" {
		*username = prompt("Username: ")
	}
	if *email == "" {
		*email = prompt("Email: ")
	}
	form := auth.RegisterForm{
		Username:        *username,
		Email:           *email,
		Password:        promptPassword("Password: "),
		ConfirmPassword: promptPassword("Confirm password: "),
	}

	if err := flow.Register(ctx, form); err != nil {
		a.printer.InlineError(a.view, auth.RegisterErrorID)
		return errUsage
	}

	a.printer.Success("Registered and logged in as %s.", form.Email)
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	controller, _, err := a.newDashboard()
	if err != nil {
		return err
	}
	defer a.closeCharts(controller)

	controller.Logout(ctx)
	if session.HasToken(ctx, a.store) {
		return errors.New("session token still present after logout")
	}
	a.printer.Success("Logged out.")
	return nil
}

func (a *app) cmdMe(ctx context.Context) error {
	user, err := a.client.Me(ctx)
	if err != nil {
		return a.apiError(err)
	}

	cyan := color.New(color.FgCyan)
	cyan.Println("Me")
	fmt.Printf("  %-16s%s\n", "ID:", user.ID)
	fmt.Printf("  %-16s%s\n", "Email:", user.Email)
	if user.Username != "" {
		fmt.Printf("  %-16s%s\n", "Username:", user.Username)
	}
	fmt.Printf("  %-16s%t\n", "Active:", user.IsActive)
	return nil
}

func (a *app) cmdHealth(ctx context.Context) error {
	health, err := a.client.Health(ctx)
	if health != nil {
		statusColor := color.New(color.FgGreen)
		if health.Status != "ok" && health.Status != "healthy" {
			statusColor = color.New(color.FgRed)
		}
		statusColor.Printf("Status: %s\n", health.Status)

		checks := make([]string, 0, len(health.Checks))
		for name := range health.Checks {
			checks = append(checks, name)
		}
		sort.Strings(checks)
		for _, name := range checks {
			fmt.Printf("  %-16s%t\n", name+":", health.Checks[name])
		}
	}
	return err
}

func (a *app) cmdDashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	days := fs.Int("days", a.cfg.DefaultPeriod, "trailing period in days")
	watch := fs.Duration("watch", 0, "reload the dashboard at this interval")
	interactive := fs.Bool("i", false, "interactive mode")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	controller, renderer, err := a.newDashboard()
	if err != nil {
		return err
	}
	if !controller.Init(ctx) {
		return errNotLoggedIn
	}

	if *days != controller.CurrentPeriod() {
		controller.SelectTimePeriod(*days, dashboard.FilterControlID(*days))
	}
	err = controller.Load(ctx)
	if a.sessionExpired() {
		return a.apiError(err)
	}

	switch {
	case *interactive:
		defer a.closeCharts(controller)
		return a.runInteractive(ctx, controller, renderer)
	case *watch > 0:
		defer a.closeCharts(controller)
		return a.runWatch(ctx, controller, renderer, *watch)
	default:
		a.printDashboard(controller, renderer)
		return nil
	}
}

func (a *app) runWatch(ctx context.Context, controller *dashboard.Controller, renderer *charts.ImageRenderer, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		a.printDashboard(controller, renderer)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := controller.Load(ctx); err != nil {
				log.Debugf("watch reload: %s", err)
			}
			if a.sessionExpired() {
				return errNotLoggedIn
			}
		}
	}
}

func (a *app) cmdAddWorkout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-workout", flag.ContinueOnError)
	exercise := fs.String("exercise", "", "exercise name")
	muscleGroup := fs.String("muscle-group", "", "muscle group (default general)")
	sets := fs.String("sets", "", "number of sets")
	reps := fs.String("reps", "", "reps per set")
	weight := fs.String("weight", "0", "weight in kg")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	controller, renderer, err := a.newDashboard()
	if err != nil {
		return err
	}
	if !controller.Init(ctx) {
		return errNotLoggedIn
	}

	controller.ShowAddWorkoutModal()
	a.fillWorkoutForm(*exercise, *muscleGroup, *sets, *reps, *weight)
	if err := controller.SubmitWorkout(ctx); err != nil {
		if a.sessionExpired() {
			return errNotLoggedIn
		}
		// the alerter already printed the reason
		return errUsage
	}

	a.printer.Success("Workout added.")
	a.printDashboard(controller, renderer)
	return nil
}

func (a *app) fillWorkoutForm(exercise, muscleGroup, sets, reps, weight string) {
	a.view.SetText(dashboard.ExerciseNameID, exercise)
	a.view.SetText(dashboard.MuscleGroupID, muscleGroup)
	a.view.SetText(dashboard.SetsID, sets)
	a.view.SetText(dashboard.RepsID, reps)
	a.view.SetText(dashboard.WeightID, weight)
}

func (a *app) cmdSeed(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	count := fs.Int("count", 10, "number of workouts to create")
	seedVal := fs.Int64("seed", time.Now().UnixNano(), "generator seed")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	created, err := seed.Post(ctx, a.client, seed.NewGenerator(*seedVal), *count)
	if err != nil {
		return a.apiError(fmt.Errorf("%d/%d created: %w", created, *count, err))
	}

	a.printer.Success("Created %d workouts (seed %d).", created, *seedVal)
	return nil
}

func (a *app) printDashboard(controller *dashboard.Controller, renderer *charts.ImageRenderer) {
	var chartFiles []terminal.ChartFile
	for _, canvas := range charts.Canvases {
		if _, ok := controller.Charts().Get(canvas); ok {
			chartFiles = append(chartFiles, terminal.ChartFile{Canvas: canvas, Path: renderer.Path(canvas)})
		}
	}
	a.printer.Dashboard(a.view, dashboard.Periods, chartFiles)
}

func (a *app) closeCharts(controller *dashboard.Controller) {
	if err := controller.Close(); err != nil {
		log.Errorf("close charts: %s", err)
	}
}

// apiError turns an expired session into a login hint.
func (a *app) apiError(err error) error {
	if err == nil {
		return nil
	}
	if a.sessionExpired() {
		return errNotLoggedIn
	}
	return err
}
