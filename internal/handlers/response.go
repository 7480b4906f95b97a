package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-diet-planner/internal/jwt"
	"github.com/sbilibin2017/gw-diet-planner/internal/logger"
	"github.com/sbilibin2017/gw-diet-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-diet-planner/internal/services"
)

const (
	msgInvalidBody    = "invalid request body"
	msgUnknownAction  = "Unknown action"
	msgUnauthorized   = "Unauthorized"
	msgInternalError  = "Internal server error"
	msgNotFound       = "Not found"
	msgLimitExceeded  = "Daily token limit exceeded"
	msgUpstreamFailed = "AI service unavailable"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: invalid request body
	Error string `json:"error"`
}

// SuccessResponse acknowledges an operation without a payload
// swagger:model SuccessResponse
type SuccessResponse struct {
	// default: true
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps service sentinel errors onto HTTP statuses.
// Anything unrecognised is logged with the request id and reported as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrInvalidIdentity):
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, services.ErrDailyLimitExceeded):
		writeError(w, http.StatusTooManyRequests, msgLimitExceeded)
	case errors.Is(err, services.ErrUpstream), errors.Is(err, services.ErrInvalidPlan):
		logger.Log.Warnw("upstream failure", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
		writeError(w, http.StatusBadGateway, msgUpstreamFailed)
	default:
		logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}

// SessionCookie writes and clears the HTTP-only session cookie.
type SessionCookie struct {
	production bool
	maxAge     time.Duration
}

// NewSessionCookie returns a cookie writer. Production cookies are
// SameSite=Strict and Secure, otherwise SameSite=Lax.
func NewSessionCookie(production bool, maxAge time.Duration) *SessionCookie {
	if maxAge <= 0 {
		maxAge = jwt.DefaultExpiration
	}
	return &SessionCookie{production: production, maxAge: maxAge}
}

func (c *SessionCookie) cookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if c.production {
		sameSite = http.SameSiteStrictMode
	}
	return &http.Cookie{
		Name:     jwt.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.production,
		SameSite: sameSite,
	}
}

// Set attaches token as the session cookie.
func (c *SessionCookie) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, c.cookie(token, int(c.maxAge.Seconds())))
}

// Clear expires the session cookie immediately.
func (c *SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, c.cookie("", -1))
}
