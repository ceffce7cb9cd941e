package dashboard

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/2beens/gymdash/internal/api"
	"github.com/2beens/gymdash/internal/telemetry/tracing"
	"github.com/2beens/gymdash/internal/view"

	log "github.com/sirupsen/logrus"
)

// add-workout modal and its form fields
const (
	ModalID        = "add-workout-modal"
	ExerciseNameID = "exercise-name"
	MuscleGroupID  = "muscle-group"
	SetsID         = "sets"
	RepsID         = "reps"
	WeightID       = "weight"
)

var FormFieldIDs = []string{ExerciseNameID, MuscleGroupID, SetsID, RepsID, WeightID}

const alertPrefix = "Error: "

func (c *Controller) ShowAddWorkoutModal() {
	c.view.AddClass(ModalID, view.ActiveClass)
}

func (c *Controller) CloseAddWorkoutModal() {
	c.view.RemoveClass(ModalID, view.ActiveClass)
	for _, id := range FormFieldIDs {
		c.view.SetText(id, "")
	}
}

func (c *Controller) ModalOpen() bool {
	return c.view.HasClass(ModalID, view.ActiveClass)
}

// SubmitWorkout posts the form content. Failures raise an alert and keep the
// modal open; success closes it and reloads every widget.
func (c *Controller) SubmitWorkout(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.submitWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	newWorkout, err := ReadWorkoutForm(c.view)
	if err != nil {
		c.alert(err)
		return err
	}

	if _, err := c.client.CreateWorkout(ctx, newWorkout); err != nil {
		log.Errorf("create workout: %s", err)
		c.alert(err)
		return err
	}

	c.CloseAddWorkoutModal()

	if err := c.Load(ctx); err != nil {
		// widgets already logged their own failures
		log.Debugf("reload after create workout: %s", err)
	}

	return nil
}

func (c *Controller) alert(err error) {
	c.alerter.Alert(alertPrefix + alertMessage(err))
}

// alertMessage prefers the backend's message for failed requests.
func alertMessage(err error) string {
	if errors.Is(err, api.ErrRequestFailed) {
		if detail := api.Detail(err); detail != "" {
			return detail
		}
		return api.ErrRequestFailed.Error()
	}
	return err.Error()
}

// ReadWorkoutForm reads and validates the add-workout fields. Sets and reps
// must be integers, weight a number.
func ReadWorkoutForm(b view.Bindings) (api.NewWorkout, error) {
	sets, err := parseIntField(b, SetsID)
	if err != nil {
		return api.NewWorkout{}, err
	}
	reps, err := parseIntField(b, RepsID)
	if err != nil {
		return api.NewWorkout{}, err
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(b.Text(WeightID)), 64)
	if err != nil {
		return api.NewWorkout{}, &api.ValidationError{Field: "weight", Reason: "must be a number"}
	}

	newWorkout := api.NewWorkout{
		ExerciseName: b.Text(ExerciseNameID),
		MuscleGroup:  b.Text(MuscleGroupID),
		Sets:         sets,
		Reps:         reps,
		Weight:       weight,
	}
	newWorkout.Normalize()

	if err := newWorkout.Validate(); err != nil {
		return api.NewWorkout{}, err
	}

	return newWorkout, nil
}

func parseIntField(b view.Bindings, id string) (int, error) {
	val, err := strconv.Atoi(strings.TrimSpace(b.Text(id)))
	if err != nil {
		return 0, &api.ValidationError{Field: id, Reason: "must be an integer"}
	}
	return val, nil
}
