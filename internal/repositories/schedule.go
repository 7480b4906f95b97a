package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

const scheduleColumns = `id, user_id, name, schedule_data, is_active, created_at, updated_at`

type ScheduleReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewScheduleReadRepository(db *sqlx.DB, txGetter TxGetter) *ScheduleReadRepository {
	return &ScheduleReadRepository{db: db, txGetter: txGetter}
}

// ListByUser returns the user's schedules with the active one first.
func (r *ScheduleReadRepository) ListByUser(ctx context.Context, userID string) ([]models.WeeklySchedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM weekly_schedules
		WHERE user_id = $1
		ORDER BY is_active DESC, created_at DESC
	`
	schedules := []models.WeeklySchedule{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &schedules, query, userID)
	logQuery(query, []any{userID}, len(schedules), err)
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *ScheduleReadRepository) GetByID(ctx context.Context, userID, id string) (*models.WeeklySchedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM weekly_schedules WHERE id = $1 AND user_id = $2`

	var schedule models.WeeklySchedule
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &schedule, query, id, userID)
	logQuery(query, []any{id, userID}, schedule.ID, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

type ScheduleWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewScheduleWriteRepository(db *sqlx.DB, txGetter TxGetter) *ScheduleWriteRepository {
	return &ScheduleWriteRepository{db: db, txGetter: txGetter}
}

func (r *ScheduleWriteRepository) Create(ctx context.Context, userID, name string, data []byte, isActive bool) (*models.WeeklySchedule, error) {
	query := `
		INSERT INTO weekly_schedules (user_id, name, schedule_data, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + scheduleColumns

	var schedule models.WeeklySchedule
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &schedule, query, userID, name, string(data), isActive)
	logQuery(query, []any{userID, name, isActive}, schedule.ID, err)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Update applies the non-nil fields of patch to an owned schedule.
func (r *ScheduleWriteRepository) Update(ctx context.Context, userID, id string, patch models.WeeklySchedulePatch) (*models.WeeklySchedule, error) {
	query := `
		UPDATE weekly_schedules
		SET name = COALESCE($3, name),
		    schedule_data = COALESCE($4, schedule_data),
		    is_active = COALESCE($5, is_active),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + scheduleColumns

	var data *string
	if len(patch.ScheduleData) > 0 {
		s := string(patch.ScheduleData)
		data = &s
	}

	var schedule models.WeeklySchedule
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &schedule, query, id, userID, patch.Name, data, patch.IsActive)
	logQuery(query, []any{id, userID, patch.Name, patch.IsActive}, schedule.ID, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// DeactivateOthers clears the active flag on every schedule of the user
// except keepID. An empty keepID deactivates all of them.
func (r *ScheduleWriteRepository) DeactivateOthers(ctx context.Context, userID, keepID string) (int64, error) {
	const query = `
		UPDATE weekly_schedules
		SET is_active = FALSE, updated_at = NOW()
		WHERE user_id = $1 AND is_active = TRUE AND id::text <> $2
	`
	args := []any{userID, keepID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	return rowsAffected, err
}

func (r *ScheduleWriteRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	const query = `DELETE FROM weekly_schedules WHERE id = $1 AND user_id = $2`
	args := []any{id, userID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
