package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

// TokenUsageRepository is the append-only ledger of model calls.
// It never joins the request transaction since records are written after the
// response has been produced.
type TokenUsageRepository struct {
	db *sqlx.DB
}

func NewTokenUsageRepository(db *sqlx.DB) *TokenUsageRepository {
	return &TokenUsageRepository{db: db}
}

func (r *TokenUsageRepository) Save(ctx context.Context, usage models.TokenUsage) error {
	const query = `
		INSERT INTO token_usage (user_id, input_tokens, output_tokens, model, request_type, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	args := []any{usage.UserID, usage.InputTokens, usage.OutputTokens, usage.Model, usage.RequestType}

	_, err := r.db.ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)
	return err
}

// SumSince returns input plus output tokens recorded for the user since the given instant.
func (r *TokenUsageRepository) SumSince(ctx context.Context, userID string, since time.Time) (int, error) {
	const query = `
		SELECT COALESCE(SUM(input_tokens + output_tokens), 0)
		FROM token_usage
		WHERE user_id = $1 AND created_at >= $2
	`
	var total int
	err := r.db.GetContext(ctx, &total, query, userID, since)
	logQuery(query, []any{userID, since}, total, err)
	return total, err
}

// SummarySince groups the user's usage by request type.
func (r *TokenUsageRepository) SummarySince(ctx context.Context, userID string, since time.Time) ([]models.UsageByType, error) {
	const query = `
		SELECT request_type,
		       COUNT(*) AS requests,
		       COALESCE(SUM(input_tokens), 0) AS input_tokens,
		       COALESCE(SUM(output_tokens), 0) AS output_tokens
		FROM token_usage
		WHERE user_id = $1 AND created_at >= $2
		GROUP BY request_type
		ORDER BY request_type
	`
	rows := []models.UsageByType{}
	err := r.db.SelectContext(ctx, &rows, query, userID, since)
	logQuery(query, []any{userID, since}, len(rows), err)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
