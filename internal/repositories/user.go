package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-diet-planner/internal/models"
)

const userColumns = `id, device_id, email, username, password_hash, is_anonymous,
	neon_user_id, migration_status, migrated_at, created_at, updated_at`

// UserReadRepository looks up rows of the identity store.
// Every lookup returns (nil, nil) when no row matches.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, args, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserReadRepository) GetByDeviceID(ctx context.Context, deviceID string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE device_id = $1`, deviceID)
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetAnonymousByDeviceID finds an anonymous row bound to the device.
func (r *UserReadRepository) GetAnonymousByDeviceID(ctx context.Context, deviceID string) (*models.User, error) {
	return r.getOne(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE device_id = $1 AND is_anonymous = TRUE
	`, deviceID)
}

// GetLegacyByEmail finds a password account that has not been bridged yet.
func (r *UserReadRepository) GetLegacyByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1 AND neon_user_id IS NULL AND password_hash IS NOT NULL
	`, email)
}

func (r *UserReadRepository) GetByNeonUserID(ctx context.Context, neonUserID string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE neon_user_id = $1`, neonUserID)
}

// UserWriteRepository mutates rows of the identity store.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) returning(ctx context.Context, query string, logArgs []any, args ...any) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, logArgs, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateAnonymous inserts an anonymous row for the device. It reports false
// when another row already owns the device id.
func (r *UserWriteRepository) CreateAnonymous(ctx context.Context, id, deviceID, username string) (bool, error) {
	const query = `
		INSERT INTO users (id, device_id, username, is_anonymous, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		ON CONFLICT (device_id) DO NOTHING
	`
	args := []any{id, deviceID, username}

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

// UpgradeDevice turns the anonymous row bound to the device into a registered
// password account. It returns nil when no anonymous row matches.
func (r *UserWriteRepository) UpgradeDevice(ctx context.Context, deviceID, email, username, passwordHash string) (*models.User, error) {
	query := `
		UPDATE users
		SET email = $2,
		    username = COALESCE($3, username),
		    password_hash = $4,
		    is_anonymous = FALSE,
		    updated_at = NOW()
		WHERE device_id = $1 AND is_anonymous = TRUE
		RETURNING ` + userColumns
	return r.returning(ctx, query,
		[]any{deviceID, email, username, "***"},
		deviceID, email, nullIfEmpty(username), passwordHash,
	)
}

// CreateRegistered inserts a registered password account.
func (r *UserWriteRepository) CreateRegistered(ctx context.Context, id string, deviceID *string, email, username, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (id, device_id, email, username, password_hash, is_anonymous, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW(), NOW())
		RETURNING ` + userColumns
	return r.returning(ctx, query,
		[]any{id, deviceID, email, username, "***"},
		id, deviceID, email, nullIfEmpty(username), passwordHash,
	)
}

// emailUnlessTaken renders an assignment that keeps the current email when
// the new one is empty or already belongs to another row.
func emailUnlessTaken(idParam, emailParam string) string {
	return `email = CASE
		    WHEN ` + emailParam + `::text IS NULL
		      OR EXISTS (SELECT 1 FROM users o WHERE o.email = ` + emailParam + ` AND o.id <> ` + idParam + `)
		    THEN users.email
		    ELSE ` + emailParam + `
		END`
}

// UpgradeAnonymousExternal converts an anonymous row into a bridged account in place.
func (r *UserWriteRepository) UpgradeAnonymousExternal(ctx context.Context, id string, ext models.ExternalIdentity) (*models.User, error) {
	query := `
		UPDATE users
		SET ` + emailUnlessTaken("$1", "$2") + `,
		    username = COALESCE($3, username),
		    is_anonymous = FALSE,
		    neon_user_id = $4,
		    migration_status = '` + models.MigrationStatusUpgraded + `',
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	args := []any{id, nullIfEmpty(ext.Email), nullIfEmpty(ext.Username), ext.UserID}
	return r.returning(ctx, query, args, args...)
}

// LinkLegacy attaches the external id to a pre-bridge password account.
func (r *UserWriteRepository) LinkLegacy(ctx context.Context, id, neonUserID string) (*models.User, error) {
	query := `
		UPDATE users
		SET neon_user_id = $2,
		    migration_status = '` + models.MigrationStatusMigrated + `',
		    migrated_at = NOW(),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	args := []any{id, neonUserID}
	return r.returning(ctx, query, args, args...)
}

// RefreshExternal links the row to the external id and refreshes its profile.
func (r *UserWriteRepository) RefreshExternal(ctx context.Context, id string, ext models.ExternalIdentity) (*models.User, error) {
	query := `
		UPDATE users
		SET neon_user_id = $2,
		    ` + emailUnlessTaken("$1", "$3") + `,
		    username = COALESCE($4, username),
		    is_anonymous = FALSE,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	args := []any{id, ext.UserID, nullIfEmpty(ext.Email), nullIfEmpty(ext.Username)}
	return r.returning(ctx, query, args, args...)
}

// UpsertExternal creates a row keyed by the external id. A repeated call for
// the same id refreshes the existing row instead of failing.
func (r *UserWriteRepository) UpsertExternal(ctx context.Context, ext models.ExternalIdentity) (*models.User, error) {
	query := `
		INSERT INTO users (id, device_id, email, username, is_anonymous, neon_user_id, migration_status, created_at, updated_at)
		VALUES ($1, $1, $2, $3, FALSE, $1, '` + models.MigrationStatusNew + `', NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET email = COALESCE(EXCLUDED.email, users.email),
		    username = COALESCE(EXCLUDED.username, users.username),
		    neon_user_id = EXCLUDED.neon_user_id,
		    is_anonymous = FALSE,
		    updated_at = NOW()
		RETURNING ` + userColumns
	args := []any{ext.UserID, nullIfEmpty(ext.Email), nullIfEmpty(ext.Username)}
	return r.returning(ctx, query, args, args...)
}

// TransferOwnedData reassigns the saved plans and schedules of one row to
// another. Moved schedules stay active only when the target has none active.
func (r *UserWriteRepository) TransferOwnedData(ctx context.Context, fromID, toID string) error {
	queries := []string{
		`
		UPDATE weekly_schedules
		SET user_id = $2,
		    is_active = is_active AND NOT EXISTS (
		        SELECT 1 FROM weekly_schedules o WHERE o.user_id = $2 AND o.is_active
		    ),
		    updated_at = NOW()
		WHERE user_id = $1
	`,
		`
		UPDATE saved_plans
		SET user_id = $2, updated_at = NOW()
		WHERE user_id = $1
	`,
	}
	args := []any{fromID, toID}

	exec := executor(ctx, r.db, r.txGetter)
	for _, query := range queries {
		res, err := exec.ExecContext(ctx, query, args...)
		var rowsAffected int64
		if res != nil {
			rowsAffected, _ = res.RowsAffected()
		}
		logQuery(query, args, rowsAffected, err)
		if err != nil {
			return err
		}
	}
	return nil
}

// LockIdentity serialises concurrent reconciliations of the same identity
// until the surrounding transaction ends. Without a transaction it is a no-op.
func (r *UserWriteRepository) LockIdentity(ctx context.Context, key string) error {
	if r.txGetter == nil {
		return nil
	}
	tx := r.txGetter(ctx)
	if tx == nil {
		return nil
	}

	const query = `SELECT pg_advisory_xact_lock(hashtext($1))`
	_, err := tx.ExecContext(ctx, query, key)
	logQuery(query, []any{key}, nil, err)
	return err
}
