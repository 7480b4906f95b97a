package handlers

//go:generate mockgen -source=schedules.go -destination=schedules_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx/types"
	"github.com/sbilibin2017/gw-diet-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

// ScheduleManager defines the schedule operations used by the handlers.
type ScheduleManager interface {
	List(ctx context.Context, userID string) ([]models.WeeklySchedule, error)
	Get(ctx context.Context, userID, id string) (*models.WeeklySchedule, error)
	Create(ctx context.Context, userID, name string, data json.RawMessage, isActive bool) (*models.WeeklySchedule, error)
	Update(ctx context.Context, userID, id string, patch models.WeeklySchedulePatch) (*models.WeeklySchedule, error)
	Delete(ctx context.Context, userID, id string) error
}

// CreateScheduleRequest is the body of POST /api/schedules
// swagger:model CreateScheduleRequest
type CreateScheduleRequest struct {
	// required: true
	// default: Default week
	Name string `json:"name"`

	// Weekday to plan id mapping, e.g. {"monday": "<plan id>", "tuesday": null}
	ScheduleData json.RawMessage `json:"schedule_data,omitempty" swaggertype:"object"`

	// Activating a schedule deactivates all others
	IsActive bool `json:"is_active"`
}

// UpdateScheduleRequest is the body of PATCH /api/schedules/{id}
// swagger:model UpdateScheduleRequest
type UpdateScheduleRequest struct {
	Name *string `json:"name,omitempty"`

	ScheduleData json.RawMessage `json:"schedule_data,omitempty" swaggertype:"object"`

	IsActive *bool `json:"is_active,omitempty"`
}

// ScheduleResponse wraps a single schedule
// swagger:model ScheduleResponse
type ScheduleResponse struct {
	Schedule *models.WeeklySchedule `json:"schedule"`
}

// SchedulesResponse lists schedules, the active one first
// swagger:model SchedulesResponse
type SchedulesResponse struct {
	Schedules []models.WeeklySchedule `json:"schedules"`
}

// NewListSchedulesHandler returns an HTTP handler listing schedules of the caller.
// @Summary List schedules
// @Tags schedules
// @Produce json
// @Success 200 {object} handlers.SchedulesResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/schedules [get]
// @Security BearerAuth
func NewListSchedulesHandler(svc ScheduleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		schedules, err := svc.List(ctx, middlewares.UserIDFromContext(ctx))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if schedules == nil {
			schedules = []models.WeeklySchedule{}
		}
		writeJSON(w, http.StatusOK, SchedulesResponse{Schedules: schedules})
	}
}

// NewCreateScheduleHandler returns an HTTP handler creating a schedule.
// @Summary Create a schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body handlers.CreateScheduleRequest true "Schedule"
// @Success 201 {object} handlers.ScheduleResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /api/schedules [post]
// @Security BearerAuth
func NewCreateScheduleHandler(svc ScheduleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		ctx := r.Context()
		schedule, err := svc.Create(ctx, middlewares.UserIDFromContext(ctx), req.Name, req.ScheduleData, req.IsActive)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, ScheduleResponse{Schedule: schedule})
	}
}

// NewGetScheduleHandler returns an HTTP handler fetching one schedule.
// @Summary Get a schedule
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule id"
// @Success 200 {object} handlers.ScheduleResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/schedules/{id} [get]
// @Security BearerAuth
func NewGetScheduleHandler(svc ScheduleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		schedule, err := svc.Get(ctx, middlewares.UserIDFromContext(ctx), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ScheduleResponse{Schedule: schedule})
	}
}

// NewUpdateScheduleHandler returns an HTTP handler patching a schedule.
// @Summary Update a schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule id"
// @Param request body handlers.UpdateScheduleRequest true "Patch"
// @Success 200 {object} handlers.ScheduleResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/schedules/{id} [patch]
// @Security BearerAuth
func NewUpdateScheduleHandler(svc ScheduleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		patch := models.WeeklySchedulePatch{
			Name:     req.Name,
			IsActive: req.IsActive,
		}
		if len(req.ScheduleData) > 0 && string(req.ScheduleData) != "null" {
			patch.ScheduleData = types.JSONText(req.ScheduleData)
		}

		ctx := r.Context()
		schedule, err := svc.Update(ctx, middlewares.UserIDFromContext(ctx), chi.URLParam(r, "id"), patch)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ScheduleResponse{Schedule: schedule})
	}
}

// NewDeleteScheduleHandler returns an HTTP handler deleting a schedule.
// @Summary Delete a schedule
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule id"
// @Success 200 {object} handlers.SuccessResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/schedules/{id} [delete]
// @Security BearerAuth
func NewDeleteScheduleHandler(svc ScheduleManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := svc.Delete(ctx, middlewares.UserIDFromContext(ctx), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

// RegisterScheduleHandlers registers the schedule collection and item routes
func RegisterScheduleHandlers(r chi.Router, list, create, get, update, del http.HandlerFunc) {
	r.Route("/api/schedules", func(r chi.Router) {
		r.Get("/", list)
		r.Post("/", create)
		r.Get("/{id}", get)
		r.Patch("/{id}", update)
		r.Delete("/{id}", del)
	})
}
