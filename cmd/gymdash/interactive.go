package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/gymdash/internal/charts"
	"github.com/2beens/gymdash/internal/dashboard"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
)

func printInteractiveHelp() {
	gray := color.New(color.FgHiBlack)
	gray.Println("  7 | 14 | 30 | 90   switch period")
	gray.Println("  a                  add workout")
	gray.Println("  r                  refresh")
	gray.Println("  l                  logout")
	gray.Println("  q                  quit")
}

// runInteractive reads one command per line until quit, logout, EOF or an expired session.
func (a *app) runInteractive(ctx context.Context, controller *dashboard.Controller, renderer *charts.ImageRenderer) error {
	a.printer.Banner()
	a.printDashboard(controller, renderer)
	printInteractiveHelp()

	for ctx.Err() == nil {
		line, ok := readLine("> ")
		if !ok {
			return nil
		}
		if line == "" {
			continue
		}

		switch cmd := strings.ToLower(line); cmd {
		case "q", "quit", "exit":
			return nil
		case "l", "logout":
			controller.Logout(ctx)
			a.printer.Success("Logged out.")
			return nil
		case "r", "refresh":
			if err := controller.Load(ctx); err != nil {
				log.Debugf("refresh: %s", err)
			}
		case "a", "add":
			a.interactiveAddWorkout(ctx, controller)
		case "h", "help", "?":
			printInteractiveHelp()
			continue
		default:
			days, err := strconv.Atoi(cmd)
			if err != nil || days <= 0 {
				fmt.Printf("unknown command: %s\n", line)
				printInteractiveHelp()
				continue
			}
			if err := controller.SetTimePeriod(ctx, days, dashboard.FilterControlID(days)); err != nil {
				log.Debugf("set period %d: %s", days, err)
			}
		}

		if a.sessionExpired() {
			return errNotLoggedIn
		}
		a.printDashboard(controller, renderer)
	}

	return nil
}

func (a *app) interactiveAddWorkout(ctx context.Context, controller *dashboard.Controller) {
	controller.ShowAddWorkoutModal()
	a.fillWorkoutForm(
		prompt("Exercise: "),
		prompt("Muscle group [general]: "),
		prompt("Sets: "),
		prompt("Reps: "),
		prompt("Weight (kg): "),
	)
	if err := controller.SubmitWorkout(ctx); err != nil {
		// the form stays filled in; closing the modal resets it
		controller.CloseAddWorkoutModal()
		return
	}
	a.printer.Success("Workout added.")
}
