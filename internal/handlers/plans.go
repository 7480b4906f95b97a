package handlers

//go:generate mockgen -source=plans.go -destination=plans_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-diet-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

// PlanLister reads saved plans of the caller.
type PlanLister interface {
	List(ctx context.Context, userID string) ([]models.SavedPlan, error)
	Get(ctx context.Context, userID, id string) (*models.SavedPlan, error)
}

// PlanCreator saves a new plan.
type PlanCreator interface {
	Create(ctx context.Context, userID, name string, data json.RawMessage, isFavorite bool) (*models.SavedPlan, error)
}

// PlanUpdater renames a plan or toggles its favorite flag.
type PlanUpdater interface {
	Update(ctx context.Context, userID, id string, patch models.SavedPlanPatch) (*models.SavedPlan, error)
}

// PlanDeleter removes a plan.
type PlanDeleter interface {
	Delete(ctx context.Context, userID, id string) error
}

// CreatePlanRequest is the body of POST /api/plans
// swagger:model CreatePlanRequest
type CreatePlanRequest struct {
	// required: true
	// default: Cutting week 1
	Name string `json:"name"`

	// Meal plan document, stored verbatim
	// required: true
	PlanData json.RawMessage `json:"plan_data" swaggertype:"object"`

	IsFavorite bool `json:"is_favorite"`
}

// UpdatePlanRequest is the body of PATCH /api/plans
// swagger:model UpdatePlanRequest
type UpdatePlanRequest struct {
	// Plan id, may also be given as ?id=
	ID string `json:"id,omitempty"`

	Name *string `json:"name,omitempty"`

	IsFavorite *bool `json:"is_favorite,omitempty"`
}

// PlanResponse wraps a single saved plan
// swagger:model PlanResponse
type PlanResponse struct {
	Plan *models.SavedPlan `json:"plan"`
}

// PlansResponse lists the saved plans of the caller
// swagger:model PlansResponse
type PlansResponse struct {
	Plans []models.SavedPlan `json:"plans"`
}

// NewGetPlansHandler returns an HTTP handler listing plans, or fetching one with ?id=.
// @Summary List or get saved plans
// @Tags plans
// @Produce json
// @Param id query string false "Plan id"
// @Success 200 {object} handlers.PlansResponse
// @Success 200 {object} handlers.PlanResponse "With ?id="
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/plans [get]
// @Security BearerAuth
func NewGetPlansHandler(svc PlanLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middlewares.UserIDFromContext(ctx)

		if id := r.URL.Query().Get("id"); id != "" {
			plan, err := svc.Get(ctx, userID, id)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, PlanResponse{Plan: plan})
			return
		}

		plans, err := svc.List(ctx, userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if plans == nil {
			plans = []models.SavedPlan{}
		}
		writeJSON(w, http.StatusOK, PlansResponse{Plans: plans})
	}
}

// RegisterGetPlansHandler registers the plan listing route
func RegisterGetPlansHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/plans", h)
}

// NewCreatePlanHandler returns an HTTP handler saving a plan.
// @Summary Save a plan
// @Tags plans
// @Accept json
// @Produce json
// @Param request body handlers.CreatePlanRequest true "Plan"
// @Success 201 {object} handlers.PlanResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /api/plans [post]
// @Security BearerAuth
func NewCreatePlanHandler(svc PlanCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		ctx := r.Context()
		plan, err := svc.Create(ctx, middlewares.UserIDFromContext(ctx), req.Name, req.PlanData, req.IsFavorite)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, PlanResponse{Plan: plan})
	}
}

// RegisterCreatePlanHandler registers the plan creation route
func RegisterCreatePlanHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/api/plans", h)
}

// NewUpdatePlanHandler returns an HTTP handler renaming or favoriting a plan.
// @Summary Update a plan
// @Tags plans
// @Accept json
// @Produce json
// @Param id query string false "Plan id"
// @Param request body handlers.UpdatePlanRequest true "Patch"
// @Success 200 {object} handlers.PlanResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/plans [patch]
// @Security BearerAuth
func NewUpdatePlanHandler(svc PlanUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdatePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
		id := r.URL.Query().Get("id")
		if id == "" {
			id = req.ID
		}
		if id == "" {
			writeError(w, http.StatusBadRequest, "Plan id is required")
			return
		}

		ctx := r.Context()
		plan, err := svc.Update(ctx, middlewares.UserIDFromContext(ctx), id, models.SavedPlanPatch{
			Name:       req.Name,
			IsFavorite: req.IsFavorite,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, PlanResponse{Plan: plan})
	}
}

// RegisterUpdatePlanHandler registers the plan update route
func RegisterUpdatePlanHandler(r chi.Router, h http.HandlerFunc) {
	r.Patch("/api/plans", h)
}

// NewDeletePlanHandler returns an HTTP handler deleting a plan.
// @Summary Delete a plan
// @Tags plans
// @Produce json
// @Param id query string true "Plan id"
// @Success 200 {object} handlers.SuccessResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/plans [delete]
// @Security BearerAuth
func NewDeletePlanHandler(svc PlanDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "Plan id is required")
			return
		}

		ctx := r.Context()
		if err := svc.Delete(ctx, middlewares.UserIDFromContext(ctx), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

// RegisterDeletePlanHandler registers the plan deletion route
func RegisterDeletePlanHandler(r chi.Router, h http.HandlerFunc) {
	r.Delete("/api/plans", h)
}
