package services

//go:generate mockgen -source=plans.go -destination=plans_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-diet-planner/internal/logger"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

type PlanReader interface {
	ListByUser(ctx context.Context, userID string) ([]models.SavedPlan, error)
	GetByID(ctx context.Context, userID, id string) (*models.SavedPlan, error)
}

type PlanWriter interface {
	Create(ctx context.Context, userID, name string, data []byte, isFavorite bool) (*models.SavedPlan, error)
	Update(ctx context.Context, userID, id string, patch models.SavedPlanPatch) (*models.SavedPlan, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

// PlanService manages saved plans. Every call is scoped to the owner.
type PlanService struct {
	reader PlanReader
	writer PlanWriter
}

func NewPlanService(reader PlanReader, writer PlanWriter) *PlanService {
	return &PlanService{reader: reader, writer: writer}
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// isJSONObject reports whether data holds a single JSON object.
func isJSONObject(data []byte) bool {
	var obj map[string]json.RawMessage
	return json.Unmarshal(data, &obj) == nil && obj != nil
}

func (s *PlanService) List(ctx context.Context, userID string) ([]models.SavedPlan, error) {
	plans, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list plans", "user_id", userID, "err", err)
		return nil, err
	}
	return plans, nil
}

func (s *PlanService) Get(ctx context.Context, userID, id string) (*models.SavedPlan, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	plan, err := s.reader.GetByID(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to get plan", "user_id", userID, "plan_id", id, "err", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrNotFound
	}
	return plan, nil
}

// Create stores the plan document exactly as given.
func (s *PlanService) Create(ctx context.Context, userID, name string, data json.RawMessage, isFavorite bool) (*models.SavedPlan, error) {
	name = strings.TrimSpace(name)
	if name == "" || !isJSONObject(data) {
		return nil, ErrInvalidInput
	}

	plan, err := s.writer.Create(ctx, userID, name, data, isFavorite)
	if err != nil {
		logger.Log.Errorw("failed to save plan", "user_id", userID, "err", err)
		return nil, err
	}
	return plan, nil
}

// Update renames or toggles the favorite flag of an owned plan.
func (s *PlanService) Update(ctx context.Context, userID, id string, patch models.SavedPlanPatch) (*models.SavedPlan, error) {
	if patch.Name == nil && patch.IsFavorite == nil {
		return nil, ErrInvalidInput
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		patch.Name = &name
	}
	if !validID(id) {
		return nil, ErrNotFound
	}

	plan, err := s.writer.Update(ctx, userID, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update plan", "user_id", userID, "plan_id", id, "err", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrNotFound
	}
	return plan, nil
}

func (s *PlanService) Delete(ctx context.Context, userID, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	deleted, err := s.writer.Delete(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to delete plan", "user_id", userID, "plan_id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
