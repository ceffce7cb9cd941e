package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrSessionExpired = errors.New("session expired")
	ErrRequestFailed  = errors.New("request failed")
	ErrEmptyToken     = errors.New("login response carries no access token")
)

// APIError is a non-2xx answer of an unauthenticated endpoint (login, register).
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// RequestError is a non-2xx, non-401 answer of an authenticated endpoint.
type RequestError struct {
	StatusCode int
	Detail     string
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return ErrRequestFailed.Error() + ": " + e.Detail
	}
	return ErrRequestFailed.Error()
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// Detail returns the backend-reported message carried by err, if any.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Detail
	}
	return ""
}

// parseDetail reads {"detail": ...} where detail is a string or a list of
// validation errors ({"msg": ...}). Bodies that are not JSON yield "".
func parseDetail(body []byte) string {
	var eb struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return s
	}

	var list []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(eb.Detail, &list); err == nil && len(list) > 0 {
		return list[0].Msg
	}

	return ""
}
