package testapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/gymdash/internal/api"
	"github.com/2beens/gymdash/internal/middleware"
	"github.com/2beens/gymdash/internal/telemetry/tracing"
	"github.com/2beens/gymdash/pkg"

	log "github.com/sirupsen/logrus"
)

const minPasswordLen = 8

// validationDetail mirrors the list form of the API's 422 error body.
type validationDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func writeValidationError(w http.ResponseWriter, location, field, msg string) {
	pkg.WriteDetail(w, []validationDetail{{
		Loc:  []string{location, field},
		Msg:  msg,
		Type: "value_error",
	}}, http.StatusUnprocessableEntity)
}

type Handler struct {
	backend *Backend
}

func NewHandler(backend *Backend) *Handler {
	return &Handler{backend: backend}
}

func (handler *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, api.Health{
		Status: "ok",
		Checks: map[string]bool{"database": true, "redis": true},
	}, http.StatusOK)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		writeValidationError(w, "body", "username", "Field required")
		return
	}
	email := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if email == "" || password == "" {
		writeValidationError(w, "body", "username", "Field required")
		return
	}

	token, err := handler.backend.Login(email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			pkg.WriteDetail(w, "Incorrect email or password", http.StatusUnauthorized)
			return
		}
		log.Errorf("login %s: %s", email, err)
		pkg.WriteDetail(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, api.Token{AccessToken: token, TokenType: "bearer"}, http.StatusOK)
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("register, unmarshal json params: %s", err)
		writeValidationError(w, "body", "email", "Input should be a valid JSON object")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeValidationError(w, "body", "email", "value is not a valid email address")
		return
	}
	if len(req.Password) < minPasswordLen {
		writeValidationError(w, "body", "password", "String should have at least 8 characters")
		return
	}

	user, err := handler.backend.Register(req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			pkg.WriteDetail(w, "Email already registered", http.StatusBadRequest)
			return
		}
		log.Errorf("register %s: %s", req.Email, err)
		pkg.WriteDetail(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, user, http.StatusCreated)
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	user, ok := handler.backend.User(userID)
	if !ok {
		pkg.WriteDetail(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}
	pkg.WriteJSON(w, user, http.StatusOK)
}

// queryInt reads an optional integer query param bounded by [min, max].
func queryInt(r *http.Request, name string, def, min, max int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < min || val > max {
		return 0, false
	}
	return val, true
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	days, ok := queryInt(r, "days", 7, 1, 365)
	if !ok {
		writeValidationError(w, "query", "days", "Input should be between 1 and 365")
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	pkg.WriteJSON(w, handler.backend.Summary(userID, days), http.StatusOK)
}

func (handler *Handler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	days, ok := queryInt(r, "days", 30, 1, 365)
	if !ok {
		writeValidationError(w, "query", "days", "Input should be between 1 and 365")
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	pkg.WriteJSON(w, handler.backend.Timeline(userID, days), http.StatusOK)
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit", 10, 1, 100)
	if !ok {
		writeValidationError(w, "query", "limit", "Input should be between 1 and 100")
		return
	}
	offset, ok := queryInt(r, "offset", 0, 0, 1<<31-1)
	if !ok {
		writeValidationError(w, "query", "offset", "Input should be greater than or equal to 0")
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	pkg.WriteJSON(w, handler.backend.Workouts(userID, limit, offset), http.StatusOK)
}

func (handler *Handler) HandleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	var newWorkout api.NewWorkout
	if err := json.NewDecoder(r.Body).Decode(&newWorkout); err != nil {
		log.Tracef("create workout, unmarshal json params: %s", err)
		writeValidationError(w, "body", "sets", "Input should be a valid integer")
		return
	}
	if strings.TrimSpace(newWorkout.MuscleGroup) == "" {
		newWorkout.MuscleGroup = api.DefaultMuscleGroup
	}
	if err := newWorkout.Validate(); err != nil {
		var validationErr *api.ValidationError
		if errors.As(err, &validationErr) {
			writeValidationError(w, "body", validationErr.Field, validationErr.Reason)
			return
		}
		writeValidationError(w, "body", "", err.Error())
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	workout := handler.backend.AddWorkout(userID, newWorkout, handler.backend.now())
	log.Debugf("workout added for %s: %s", userID, workout.Exercise.Name)

	pkg.WriteJSON(w, workout, http.StatusCreated)
}
