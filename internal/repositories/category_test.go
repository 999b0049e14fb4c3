package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var categoryColumns = []string{"id", "name", "area_id", "created_at", "updated_at"}

func TestCategoryReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryReadRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("SELECT id, name, area_id").
		WillReturnRows(sqlmock.NewRows(categoryColumns).
			AddRow(int64(1), "Fridge", int64(1), now, now).
			AddRow(int64(2), "Spices", int64(2), now, now))

	categories, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Fridge", categories[0].Name)
	assert.Equal(t, int64(2), categories[1].AreaID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryReadRepository_ListByArea(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryReadRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("returns categories of the area", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, area_id").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(categoryColumns).
				AddRow(int64(1), "Fridge", int64(1), now, now).
				AddRow(int64(3), "Freezer", int64(1), now, now))

		categories, err := repo.ListByArea(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, categories, 2)
		for _, c := range categories {
			assert.Equal(t, int64(1), c.AreaID)
		}
	})

	t.Run("unknown area yields empty list", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, area_id").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(categoryColumns))

		categories, err := repo.ListByArea(ctx, 99)
		assert.NoError(t, err)
		assert.Empty(t, categories)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryReadRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, area_id").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(categoryColumns).
				AddRow(int64(5), "Tools", int64(3), now, now))

		category, err := repo.GetByID(ctx, 5)
		assert.NoError(t, err)
		assert.NotNil(t, category)
		assert.Equal(t, "Tools", category.Name)
	})

	t.Run("absent returns nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, area_id").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(categoryColumns))

		category, err := repo.GetByID(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, category)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, area_id").
			WithArgs(int64(5)).
			WillReturnError(errors.New("db error"))

		category, err := repo.GetByID(ctx, 5)
		assert.Error(t, err)
		assert.Nil(t, category)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
