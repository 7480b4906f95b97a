package services

//go:generate mockgen -source=schedules.go -destination=schedules_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sbilibin2017/gw-diet-planner/internal/logger"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

type ScheduleReader interface {
	ListByUser(ctx context.Context, userID string) ([]models.WeeklySchedule, error)
	GetByID(ctx context.Context, userID, id string) (*models.WeeklySchedule, error)
}

type ScheduleWriter interface {
	Create(ctx context.Context, userID, name string, data []byte, isActive bool) (*models.WeeklySchedule, error)
	Update(ctx context.Context, userID, id string, patch models.WeeklySchedulePatch) (*models.WeeklySchedule, error)
	DeactivateOthers(ctx context.Context, userID, keepID string) (int64, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

// SchedulePlanReader checks that plans referenced by a schedule belong to its owner.
type SchedulePlanReader interface {
	GetByID(ctx context.Context, userID, id string) (*models.SavedPlan, error)
}

// ScheduleService manages weekly schedules. At most one schedule per user is active.
type ScheduleService struct {
	reader ScheduleReader
	writer ScheduleWriter
	plans  SchedulePlanReader
}

func NewScheduleService(reader ScheduleReader, writer ScheduleWriter, plans SchedulePlanReader) *ScheduleService {
	return &ScheduleService{reader: reader, writer: writer, plans: plans}
}

// checkScheduleData accepts an object keyed by weekday whose values are
// null or ids of plans owned by userID.
func (s *ScheduleService) checkScheduleData(ctx context.Context, userID string, data json.RawMessage) error {
	var days map[string]*string
	if err := json.Unmarshal(data, &days); err != nil || days == nil {
		return ErrInvalidInput
	}

	for day, planID := range days {
		if !models.IsWeekday(day) {
			return ErrInvalidInput
		}
		if planID == nil {
			continue
		}
		if !validID(*planID) {
			return ErrInvalidInput
		}
		plan, err := s.plans.GetByID(ctx, userID, *planID)
		if err != nil {
			logger.Log.Errorw("failed to check scheduled plan", "user_id", userID, "plan_id", *planID, "err", err)
			return err
		}
		if plan == nil {
			return ErrInvalidInput
		}
	}
	return nil
}

func (s *ScheduleService) List(ctx context.Context, userID string) ([]models.WeeklySchedule, error) {
	schedules, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list schedules", "user_id", userID, "err", err)
		return nil, err
	}
	return schedules, nil
}

func (s *ScheduleService) Get(ctx context.Context, userID, id string) (*models.WeeklySchedule, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	schedule, err := s.reader.GetByID(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to get schedule", "user_id", userID, "schedule_id", id, "err", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrNotFound
	}
	return schedule, nil
}

// Create stores a schedule. An active schedule deactivates every other one of the owner.
func (s *ScheduleService) Create(ctx context.Context, userID, name string, data json.RawMessage, isActive bool) (*models.WeeklySchedule, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	if len(data) == 0 {
		data = json.RawMessage(`{}`)
	}
	if err := s.checkScheduleData(ctx, userID, data); err != nil {
		return nil, err
	}

	schedule, err := s.writer.Create(ctx, userID, name, data, isActive)
	if err != nil {
		logger.Log.Errorw("failed to save schedule", "user_id", userID, "err", err)
		return nil, err
	}

	if isActive {
		if err := s.deactivateOthers(ctx, userID, schedule.ID); err != nil {
			return nil, err
		}
	}
	return schedule, nil
}

// Update applies patch to an owned schedule. Activating it deactivates the others.
func (s *ScheduleService) Update(ctx context.Context, userID, id string, patch models.WeeklySchedulePatch) (*models.WeeklySchedule, error) {
	if patch.Name == nil && patch.ScheduleData == nil && patch.IsActive == nil {
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
	if patch.ScheduleData != nil {
		if err := s.checkScheduleData(ctx, userID, json.RawMessage(patch.ScheduleData)); err != nil {
			return nil, err
		}
	}

	schedule, err := s.writer.Update(ctx, userID, id, patch)
	if err != nil {
		logger.Log.Errorw("failed to update schedule", "user_id", userID, "schedule_id", id, "err", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrNotFound
	}

	if patch.IsActive != nil && *patch.IsActive {
		if err := s.deactivateOthers(ctx, userID, schedule.ID); err != nil {
			return nil, err
		}
	}
	return schedule, nil
}

func (s *ScheduleService) Delete(ctx context.Context, userID, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	deleted, err := s.writer.Delete(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to delete schedule", "user_id", userID, "schedule_id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *ScheduleService) deactivateOthers(ctx context.Context, userID, keepID string) error {
	n, err := s.writer.DeactivateOthers(ctx, userID, keepID)
	if err != nil {
		logger.Log.Errorw("failed to deactivate schedules", "user_id", userID, "keep_id", keepID, "err", err)
		return err
	}
	logger.Log.Infow("schedule activated", "user_id", userID, "schedule_id", keepID, "deactivated", n)
	return nil
}
