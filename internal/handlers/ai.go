package handlers

//go:generate mockgen -source=ai.go -destination=ai_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-diet-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

// Planner defines the model-backed plan operations.
type Planner interface {
	Generate(ctx context.Context, userID string, answers models.Questionnaire) (*models.MealPlan, error)
	Update(ctx context.Context, userID string, plan models.MealPlan, instructions string) (*models.MealPlan, error)
	UpdateMeal(ctx context.Context, userID string, plan models.MealPlan, mealIndex int, instructions string) (*models.MealPlan, error)
	ShoppingList(ctx context.Context, userID string, plan models.MealPlan) (*models.ShoppingList, error)
}

// AIRequest is the body of POST /api/ai
// swagger:model AIRequest
type AIRequest struct {
	// generate, update, meal_update or shopping_list
	// required: true
	// default: generate
	Action string `json:"action"`

	// Questionnaire answers, generate only
	Answers *models.Questionnaire `json:"answers,omitempty"`

	// Current plan, every action but generate
	Plan *models.MealPlan `json:"plan,omitempty"`

	// Free-form edit request, update and meal_update
	Instructions string `json:"instructions,omitempty"`

	// Zero-based meal position, meal_update only
	MealIndex *int `json:"meal_index,omitempty"`
}

// AIPlanResponse wraps a generated or revised plan
// swagger:model AIPlanResponse
type AIPlanResponse struct {
	Plan *models.MealPlan `json:"plan"`
}

// ShoppingListResponse wraps a derived shopping list
// swagger:model ShoppingListResponse
type ShoppingListResponse struct {
	ShoppingList *models.ShoppingList `json:"shopping_list"`
}

type aiCommand interface {
	isAICommand()
}

type generateCommand struct {
	answers models.Questionnaire
}

type updatePlanCommand struct {
	plan         models.MealPlan
	instructions string
}

type updateMealCommand struct {
	plan         models.MealPlan
	mealIndex    int
	instructions string
}

type shoppingListCommand struct {
	plan models.MealPlan
}

func (generateCommand) isAICommand()     {}
func (updatePlanCommand) isAICommand()   {}
func (updateMealCommand) isAICommand()   {}
func (shoppingListCommand) isAICommand() {}

// command returns nil for an unknown action and ok=false when the action is
// known but its input is incomplete.
func (req AIRequest) command() (cmd aiCommand, ok bool) {
	switch req.Action {
	case models.RequestTypeGenerate:
		if req.Answers == nil {
			return generateCommand{}, false
		}
		return generateCommand{answers: *req.Answers}, true
	case models.RequestTypeUpdate:
		if req.Plan == nil {
			return updatePlanCommand{}, false
		}
		return updatePlanCommand{plan: *req.Plan, instructions: req.Instructions}, true
	case models.RequestTypeMealUpdate:
		if req.Plan == nil || req.MealIndex == nil {
			return updateMealCommand{}, false
		}
		return updateMealCommand{plan: *req.Plan, mealIndex: *req.MealIndex, instructions: req.Instructions}, true
	case models.RequestTypeShoppingList:
		if req.Plan == nil {
			return shoppingListCommand{}, false
		}
		return shoppingListCommand{plan: *req.Plan}, true
	}
	return nil, false
}

// NewAIHandler returns an HTTP handler for model-backed plan operations.
// @Summary Generate or revise a meal plan
// @Description generate is gated by the daily token limit
// @Tags ai
// @Accept json
// @Produce json
// @Param request body handlers.AIRequest true "AI Request"
// @Success 200 {object} handlers.AIPlanResponse
// @Success 200 {object} handlers.ShoppingListResponse "shopping_list"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 405 {object} handlers.ErrorResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Failure 502 {object} handlers.ErrorResponse
// @Router /api/ai [post]
// @Security BearerAuth
func NewAIHandler(svc Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		cmd, ok := req.command()
		if cmd == nil {
			writeError(w, http.StatusMethodNotAllowed, msgUnknownAction)
			return
		}
		if !ok {
			writeError(w, http.StatusBadRequest, "Missing input for "+req.Action)
			return
		}

		ctx := r.Context()
		userID := middlewares.UserIDFromContext(ctx)

		var (
			plan *models.MealPlan
			err  error
		)
		switch cmd := cmd.(type) {
		case generateCommand:
			plan, err = svc.Generate(ctx, userID, cmd.answers)
		case updatePlanCommand:
			plan, err = svc.Update(ctx, userID, cmd.plan, cmd.instructions)
		case updateMealCommand:
			plan, err = svc.UpdateMeal(ctx, userID, cmd.plan, cmd.mealIndex, cmd.instructions)
		case shoppingListCommand:
			list, err := svc.ShoppingList(ctx, userID, cmd.plan)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, ShoppingListResponse{ShoppingList: list})
			return
		}
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AIPlanResponse{Plan: plan})
	}
}

// RegisterAIHandler registers the AI route
func RegisterAIHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/api/ai", h)
}
