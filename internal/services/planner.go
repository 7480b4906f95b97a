package services

//go:generate mockgen -source=planner.go -destination=planner_mock.go -package=services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-diet-planner/internal/facades"
	"github.com/sbilibin2017/gw-diet-planner/internal/logger"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
	"github.com/sbilibin2017/gw-diet-planner/internal/validators"
	"golang.org/x/sync/singleflight"
)

// LLMClient produces a JSON completion for a system and user prompt.
type LLMClient interface {
	Complete(ctx context.Context, system, user string) (*facades.Completion, error)
}

// DocumentValidator checks model output before it is returned to a client.
type DocumentValidator interface {
	ValidateMealPlan(raw []byte) (*models.MealPlan, error)
	ValidateMeal(raw []byte) (*models.Meal, error)
	ValidateShoppingList(raw []byte) (*models.ShoppingList, error)
}

// UsageTracker is the part of UsageService the planner depends on.
type UsageTracker interface {
	RecordTokenUsage(ctx context.Context, usage models.TokenUsage)
	CheckDailyLimit(ctx context.Context, userID string) models.LimitStatus
}

// PlannerService turns questionnaire answers and edit instructions into meal
// plans through the model.
type PlannerService struct {
	llm       LLMClient
	validator DocumentValidator
	usage     UsageTracker
	inflight  singleflight.Group
}

func NewPlannerService(llm LLMClient, validator DocumentValidator, usage UsageTracker) *PlannerService {
	return &PlannerService{
		llm:       llm,
		validator: validator,
		usage:     usage,
	}
}

func requestKey(userID, requestType string, parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return userID + ":" + requestType + ":" + hex.EncodeToString(h.Sum(nil))
}

// complete calls the model once per distinct in-flight request of a user and
// records the tokens it consumed. The shared call outlives any single caller;
// a caller that goes away stops waiting for it.
func (s *PlannerService) complete(ctx context.Context, userID, requestType, system, user string) (string, error) {
	ch := s.inflight.DoChan(requestKey(userID, requestType, system, user), func() (any, error) {
		callCtx := context.WithoutCancel(ctx)
		completion, err := s.llm.Complete(callCtx, system, user)
		if err != nil {
			return nil, err
		}
		s.usage.RecordTokenUsage(callCtx, models.TokenUsage{
			UserID:       userID,
			InputTokens:  completion.InputTokens,
			OutputTokens: completion.OutputTokens,
			Model:        completion.Model,
			RequestType:  requestType,
		})
		return completion.Content, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		logger.Log.Infow("caller left before model answered", "user_id", userID, "request_type", requestType)
		return "", ctx.Err()
	}

	if res.Err != nil {
		logger.Log.Errorw("model call failed", "user_id", userID, "request_type", requestType, "error", res.Err)
		if errors.Is(res.Err, ErrUpstream) {
			return "", res.Err
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, res.Err)
	}
	if res.Shared {
		logger.Log.Infow("model call shared with in-flight request", "user_id", userID, "request_type", requestType)
	}
	return res.Val.(string), nil
}

func invalidDocument(userID, requestType string, err error) error {
	logger.Log.Errorw("model returned invalid document", "user_id", userID, "request_type", requestType, "error", err)
	if errors.Is(err, validators.ErrInvalidDocument) {
		return fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	return err
}

// Generate creates a new plan from questionnaire answers once the daily quota allows it.
func (s *PlannerService) Generate(ctx context.Context, userID string, answers models.Questionnaire) (*models.MealPlan, error) {
	if strings.TrimSpace(answers.Goal) == "" {
		return nil, ErrInvalidInput
	}

	if status := s.usage.CheckDailyLimit(ctx, userID); !status.Allowed {
		logger.Log.Infow("daily limit reached", "user_id", userID, "used", status.Used, "limit", status.Limit)
		return nil, ErrDailyLimitExceeded
	}

	content, err := s.complete(ctx, userID, models.RequestTypeGenerate, planSystemPrompt, generatePrompt(answers))
	if err != nil {
		return nil, err
	}

	plan, err := s.validator.ValidateMealPlan([]byte(content))
	if err != nil {
		return nil, invalidDocument(userID, models.RequestTypeGenerate, err)
	}
	plan.RecalculateTotals()
	return plan, nil
}

// Update revises a whole plan.
func (s *PlannerService) Update(ctx context.Context, userID string, plan models.MealPlan, instructions string) (*models.MealPlan, error) {
	instructions = strings.TrimSpace(instructions)
	if instructions == "" || len(plan.Meals) == 0 {
		return nil, ErrInvalidInput
	}

	content, err := s.complete(ctx, userID, models.RequestTypeUpdate, planSystemPrompt, updatePrompt(plan, instructions))
	if err != nil {
		return nil, err
	}

	updated, err := s.validator.ValidateMealPlan([]byte(content))
	if err != nil {
		return nil, invalidDocument(userID, models.RequestTypeUpdate, err)
	}
	updated.RecalculateTotals()
	return updated, nil
}

// UpdateMeal replaces the meal at mealIndex and returns the whole plan.
func (s *PlannerService) UpdateMeal(ctx context.Context, userID string, plan models.MealPlan, mealIndex int, instructions string) (*models.MealPlan, error) {
	instructions = strings.TrimSpace(instructions)
	if instructions == "" || mealIndex < 0 || mealIndex >= len(plan.Meals) {
		return nil, ErrInvalidInput
	}

	content, err := s.complete(ctx, userID, models.RequestTypeMealUpdate, mealSystemPrompt, mealUpdatePrompt(plan, mealIndex, instructions))
	if err != nil {
		return nil, err
	}

	meal, err := s.validator.ValidateMeal([]byte(content))
	if err != nil {
		return nil, invalidDocument(userID, models.RequestTypeMealUpdate, err)
	}

	meals := make([]models.Meal, len(plan.Meals))
	copy(meals, plan.Meals)
	meals[mealIndex] = *meal
	plan.Meals = meals
	plan.RecalculateTotals()
	return &plan, nil
}

// ShoppingList derives a grocery list from a plan.
func (s *PlannerService) ShoppingList(ctx context.Context, userID string, plan models.MealPlan) (*models.ShoppingList, error) {
	if len(plan.Meals) == 0 {
		return nil, ErrInvalidInput
	}

	content, err := s.complete(ctx, userID, models.RequestTypeShoppingList, shoppingSystemPrompt, shoppingListPrompt(plan))
	if err != nil {
		return nil, err
	}

	list, err := s.validator.ValidateShoppingList([]byte(content))
	if err != nil {
		return nil, invalidDocument(userID, models.RequestTypeShoppingList, err)
	}
	return list, nil
}
