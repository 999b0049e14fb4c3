package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var userColumns = []string{"id", "username", "email", "password_hash", "is_active", "created_at", "updated_at"}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("by username", func(t *testing.T) {
		username := "alice"
		mock.ExpectQuery("SELECT id, username, email, password_hash").
			WithArgs(&username, nil).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(1), "alice", "alice@example.com", "hash", true, now, now))

		user, err := repo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("by email", func(t *testing.T) {
		email := "bob@example.com"
		mock.ExpectQuery("SELECT id, username, email, password_hash").
			WithArgs(nil, &email).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(2), "bob", "bob@example.com", "hash", true, now, now))

		user, err := repo.GetByUsernameOrEmail(ctx, nil, &email)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "bob", user.Username)
	})

	t.Run("no match returns nil", func(t *testing.T) {
		username := "nobody"
		mock.ExpectQuery("SELECT id, username, email, password_hash").
			WithArgs(&username, nil).
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := repo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("query error", func(t *testing.T) {
		username := "alice"
		mock.ExpectQuery("SELECT id, username, email, password_hash").
			WithArgs(&username, nil).
			WillReturnError(errors.New("db error"))

		user, err := repo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	t.Run("inserts new user", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs("alice", "alice@example.com", "hash").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Save(ctx, "alice", "alice@example.com", "hash")
		assert.NoError(t, err)
	})

	t.Run("unique violation maps to ErrDuplicate", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs("alice", "other@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		err := repo.Save(ctx, "alice", "other@example.com", "hash")
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs("bob", "bob@example.com", "hash").
			WillReturnError(errors.New("connection reset"))

		err := repo.Save(ctx, "bob", "bob@example.com", "hash")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrDuplicate)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
