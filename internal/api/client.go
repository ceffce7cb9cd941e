package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/gymdash/internal/session"
	"github.com/2beens/gymdash/internal/telemetry/metrics"
	"github.com/2beens/gymdash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const (
	endpointLogin    = "/auth/login"
	endpointRegister = "/auth/register"
	endpointMe       = "/auth/me"
	endpointHealth   = "/health"
	endpointSummary  = "/metrics/summary"
	endpointTimeline = "/metrics/timeline"
	endpointWorkouts = "/workouts"
)

// Client talks to the fitness REST API (base path e.g. http://localhost:8000/api/v1).
// Authenticated calls read the bearer token from the session store on every request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
	metrics    *metrics.Manager

	onSessionExpired func()
}

func NewClient(
	baseURL string,
	httpClient *http.Client,
	store session.Store,
	metricsManager *metrics.Manager,
) *Client {
	return &Client{
		baseURL:          strings.TrimRight(baseURL, "/"),
		httpClient:       httpClient,
		store:            store,
		metrics:          metricsManager,
		onSessionExpired: func() {},
	}
}

// NewTracedHTTPClient has no timeout set: requests rely on the transport defaults.
func NewTracedHTTPClient() *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// OnSessionExpired registers fn to run after a 401 cleared the token,
// typically a navigation to the login page.
func (c *Client) OnSessionExpired(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	c.onSessionExpired = fn
}

func (c *Client) Login(ctx context.Context, email, password string) (_ *Token, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "apiClient.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpointLogin, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	statusCode, body, err := c.send(req, endpointLogin)
	if err != nil {
		return nil, err
	}
	if !isSuccess(statusCode) {
		return nil, &APIError{StatusCode: statusCode, Detail: parseDetail(body)}
	}

	token := &Token{}
	if err := json.Unmarshal(body, token); err != nil {
		return nil, fmt.Errorf("unmarshal login response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, ErrEmptyToken
	}

	return token, nil
}

func (c *Client) Register(ctx context.Context, registerReq RegisterRequest) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "apiClient.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	payload, err := json.Marshal(registerReq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpointRegister, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	statusCode, body, err := c.send(req, endpointRegister)
	if err != nil {
		return nil, err
	}
	if !isSuccess(statusCode) {
		return nil, &APIError{StatusCode: statusCode, Detail: parseDetail(body)}
	}

	// the response body is up to the backend; a user object when it sends one
	user := &User{Email: registerReq.Email, Username: registerReq.Username}
	if err := json.Unmarshal(body, user); err != nil {
		log.Debugf("register response is not a user object: %s", err)
	}

	return user, nil
}

// Health is unauthenticated. A 503 still carries the checks, so the body is returned with the error.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpointHealth, nil)
	if err != nil {
		return nil, err
	}

	statusCode, body, err := c.send(req, endpointHealth)
	if err != nil {
		return nil, err
	}

	health := &Health{}
	if err := json.Unmarshal(body, health); err != nil {
		health.Status = "unknown"
	}
	if !isSuccess(statusCode) {
		return health, &APIError{StatusCode: statusCode, Detail: parseDetail(body)}
	}

	return health, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	user := &User{}
	if err := c.doAuthorized(ctx, http.MethodGet, endpointMe, nil, nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) MetricsSummary(ctx context.Context, days int) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "apiClient.metricsSummary")
	span.SetAttributes(attribute.Int("days", days))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	summary := &Summary{}
	query := url.Values{"days": {strconv.Itoa(days)}}
	if err := c.doAuthorized(ctx, http.MethodGet, endpointSummary, query, nil, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func (c *Client) Timeline(ctx context.Context, days int) (_ []TimelinePoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "apiClient.timeline")
	span.SetAttributes(attribute.Int("days", days))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var points []TimelinePoint
	query := url.Values{"days": {strconv.Itoa(days)}}
	if err := c.doAuthorized(ctx, http.MethodGet, endpointTimeline, query, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (c *Client) ListWorkouts(ctx context.Context, limit, offset int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "apiClient.listWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var workouts []Workout
	query := url.Values{
		"limit":  {strconv.Itoa(limit)},
		"offset": {strconv.Itoa(offset)},
	}
	if err := c.doAuthorized(ctx, http.MethodGet, endpointWorkouts, query, nil, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (c *Client) CreateWorkout(ctx context.Context, newWorkout NewWorkout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "apiClient.createWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var raw json.RawMessage
	if err := c.doAuthorized(ctx, http.MethodPost, endpointWorkouts+"/", nil, newWorkout, &raw); err != nil {
		return nil, err
	}

	workout := &Workout{
		Exercise: Exercise{Name: newWorkout.ExerciseName, MuscleGroup: newWorkout.MuscleGroup},
		Sets:     newWorkout.Sets,
		Reps:     newWorkout.Reps,
		Weight:   newWorkout.Weight,
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, workout); err != nil {
			log.Debugf("create workout response is not a workout object: %s", err)
		}
	}

	return workout, nil
}

// doAuthorized is the one helper every authenticated call goes through.
// 401: the token is cleared, the session-expired handler runs and ErrSessionExpired is returned.
// Sibling in-flight calls are not affected.
func (c *Client) doAuthorized(
	ctx context.Context,
	method, endpoint string,
	query url.Values,
	payload, out any,
) error {
	token, err := c.store.Get(ctx)
	if err != nil && !errors.Is(err, session.ErrNoToken) {
		return fmt.Errorf("read session token: %w", err)
	}

	reqURL := c.baseURL + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	statusCode, respBody, err := c.send(req, endpoint)
	if err != nil {
		return err
	}

	if statusCode == http.StatusUnauthorized {
		c.expireSession(ctx)
		return ErrSessionExpired
	}

	if !isSuccess(statusCode) {
		return &RequestError{StatusCode: statusCode, Detail: parseDetail(respBody)}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal %s response: %w", endpoint, err)
	}

	return nil
}

func (c *Client) expireSession(ctx context.Context) {
	log.Warnln("session expired, clearing token")
	if c.metrics != nil {
		c.metrics.CounterSessionExpired.Inc()
	}
	if err := c.store.Clear(ctx); err != nil {
		log.Errorf("clear session token: %s", err)
	}
	c.onSessionExpired()
}

// send executes the request and reads the whole body.
func (c *Client) send(req *http.Request, endpoint string) (int, []byte, error) {
	start := time.Now()
	log.Tracef("api request [%s] %s", req.Method, req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(endpoint, req.Method, "error", start)
		return 0, nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	c.observe(endpoint, req.Method, strconv.Itoa(resp.StatusCode), start)

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read %s response bytes: %w", endpoint, err)
	}

	return resp.StatusCode, respBytes, nil
}

func (c *Client) observe(endpoint, method, status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.CounterRequests.WithLabelValues(endpoint, status).Inc()
	c.metrics.HistogramRequestDuration.WithLabelValues(endpoint, method).Observe(time.Since(start).Seconds())
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
