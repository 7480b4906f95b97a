package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

const planColumns = `id, user_id, name, plan_data, is_favorite, created_at, updated_at`

type PlanReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPlanReadRepository(db *sqlx.DB, txGetter TxGetter) *PlanReadRepository {
	return &PlanReadRepository{db: db, txGetter: txGetter}
}

// ListByUser returns the user's plans, newest first.
func (r *PlanReadRepository) ListByUser(ctx context.Context, userID string) ([]models.SavedPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM saved_plans
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	plans := []models.SavedPlan{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &plans, query, userID)
	logQuery(query, []any{userID}, len(plans), err)
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// GetByID returns the plan only when it belongs to userID.
func (r *PlanReadRepository) GetByID(ctx context.Context, userID, id string) (*models.SavedPlan, error) {
	query := `SELECT ` + planColumns + ` FROM saved_plans WHERE id = $1 AND user_id = $2`

	var plan models.SavedPlan
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &plan, query, id, userID)
	logQuery(query, []any{id, userID}, plan.ID, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

type PlanWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPlanWriteRepository(db *sqlx.DB, txGetter TxGetter) *PlanWriteRepository {
	return &PlanWriteRepository{db: db, txGetter: txGetter}
}

func (r *PlanWriteRepository) Create(ctx context.Context, userID, name string, data []byte, isFavorite bool) (*models.SavedPlan, error) {
	query := `
		INSERT INTO saved_plans (user_id, name, plan_data, is_favorite, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + planColumns
	args := []any{userID, name, string(data), isFavorite}

	var plan models.SavedPlan
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &plan, query, args...)
	logQuery(query, []any{userID, name, isFavorite}, plan.ID, err)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Update applies the non-nil fields of patch. It returns nil when the plan
// does not exist or belongs to someone else.
func (r *PlanWriteRepository) Update(ctx context.Context, userID, id string, patch models.SavedPlanPatch) (*models.SavedPlan, error) {
	query := `
		UPDATE saved_plans
		SET name = COALESCE($3, name),
		    is_favorite = COALESCE($4, is_favorite),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + planColumns
	args := []any{id, userID, patch.Name, patch.IsFavorite}

	var plan models.SavedPlan
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &plan, query, args...)
	logQuery(query, args, plan.ID, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Delete reports whether an owned plan was removed.
func (r *PlanWriteRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	const query = `DELETE FROM saved_plans WHERE id = $1 AND user_id = $2`
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
