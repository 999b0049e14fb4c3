package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/homestock/homestock/internal/logger"
	"github.com/homestock/homestock/internal/models"
)

// ErrDuplicate is returned when an insert hits a unique constraint.
var ErrDuplicate = errors.New("duplicate key value")

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns the first user matching either the username or
// the email. Nil arguments disable the corresponding match. Returns nil when
// no user matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, is_active, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Infow("user read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user row. A unique-constraint violation on username or
// email is reported as ErrDuplicate so concurrent registrations of the same
// name resolve to a conflict instead of a second row.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) error {
	const query = `
		INSERT INTO users (username, email, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
	`
	args := []any{username, email, passwordHash}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("user write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}

	return err
}
