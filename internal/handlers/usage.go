package handlers

//go:generate mockgen -source=usage.go -destination=usage_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-diet-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

// UsageReporter exposes the caller's token usage.
type UsageReporter interface {
	Summary(ctx context.Context, userID string) (*models.UsageSummary, error)
	CheckDailyLimit(ctx context.Context, userID string) models.LimitStatus
}

// NewUsageSummaryHandler returns an HTTP handler summarising today's usage.
// @Summary Today's token usage
// @Tags usage
// @Produce json
// @Success 200 {object} models.UsageSummary
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/usage [get]
// @Security BearerAuth
func NewUsageSummaryHandler(svc UsageReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		summary, err := svc.Summary(ctx, middlewares.UserIDFromContext(ctx))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if summary.ByType == nil {
			summary.ByType = []models.UsageByType{}
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

// NewUsageCheckHandler returns an HTTP handler reporting whether a new
// generation may start. It never fails: internal errors allow the action.
// @Summary Check the daily token limit
// @Tags usage
// @Produce json
// @Success 200 {object} models.LimitStatus
// @Failure 401 {object} handlers.ErrorResponse
// @Router /api/usage/check [post]
// @Security BearerAuth
func NewUsageCheckHandler(svc UsageReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		writeJSON(w, http.StatusOK, svc.CheckDailyLimit(ctx, middlewares.UserIDFromContext(ctx)))
	}
}

// RegisterUsageHandlers registers the usage routes
func RegisterUsageHandlers(r chi.Router, summary, check http.HandlerFunc) {
	r.Get("/api/usage", summary)
	r.Post("/api/usage/check", check)
}
