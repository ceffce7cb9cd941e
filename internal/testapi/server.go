package testapi

import (
	"net/http"

	"github.com/2beens/gymdash/internal/middleware"
	"github.com/2beens/gymdash/internal/telemetry/metrics"
	"github.com/2beens/gymdash/pkg"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const BasePath = "/api/v1"

// NewRouter serves the backend under BasePath. metricsManager may be nil.
func NewRouter(backend *Backend, metricsManager *metrics.Manager) *mux.Router {
	handler := NewHandler(backend)
	authMiddleware := middleware.NewAuthMiddlewareHandler(
		backend,
		BasePath+"/health",
		BasePath+"/auth/login",
		BasePath+"/auth/register",
	)

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fakeapi-router"))

	v1 := r.PathPrefix(BasePath).Subrouter()
	v1.HandleFunc("/health", handler.HandleHealth).Methods("GET")
	v1.HandleFunc("/health/", handler.HandleHealth).Methods("GET")
	v1.HandleFunc("/auth/login", handler.HandleLogin).Methods("POST")
	v1.HandleFunc("/auth/register", handler.HandleRegister).Methods("POST")
	v1.HandleFunc("/auth/me", handler.HandleMe).Methods("GET")
	v1.HandleFunc("/metrics/summary", handler.HandleSummary).Methods("GET")
	v1.HandleFunc("/metrics/timeline", handler.HandleTimeline).Methods("GET")
	v1.HandleFunc("/workouts", handler.HandleListWorkouts).Methods("GET")
	v1.HandleFunc("/workouts/", handler.HandleListWorkouts).Methods("GET")
	v1.HandleFunc("/workouts/", handler.HandleCreateWorkout).Methods("POST")
	v1.HandleFunc("/workouts", handler.HandleCreateWorkout).Methods("POST")

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteDetail(w, "Not Found", http.StatusNotFound)
	})

	r.Use(middleware.PanicRecovery(metricsManager))
	r.Use(middleware.LogRequest())
	if metricsManager != nil {
		r.Use(middleware.RequestMetrics(metricsManager))
	}
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}
