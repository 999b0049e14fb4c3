package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/homestock/homestock/internal/logger"
	"github.com/homestock/homestock/internal/models"
)

type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

// List returns all categories.
func (r *CategoryReadRepository) List(ctx context.Context) ([]models.CategoryDB, error) {
	const query = `
		SELECT id, name, area_id, created_at, updated_at
		FROM categories
		ORDER BY id
	`

	var categories []models.CategoryDB
	err := r.db.SelectContext(ctx, &categories, query)

	logger.Log.Infow("category read",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(categories),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return categories, nil
}

// ListByArea returns the categories belonging to the given area.
func (r *CategoryReadRepository) ListByArea(ctx context.Context, areaID int64) ([]models.CategoryDB, error) {
	const query = `
		SELECT id, name, area_id, created_at, updated_at
		FROM categories
		WHERE area_id = $1
		ORDER BY id
	`

	var categories []models.CategoryDB
	err := r.db.SelectContext(ctx, &categories, query, areaID)

	logger.Log.Infow("category read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{areaID},
		"count", len(categories),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return categories, nil
}

// GetByID returns the category with the given id, or nil when absent.
func (r *CategoryReadRepository) GetByID(ctx context.Context, id int64) (*models.CategoryDB, error) {
	const query = `
		SELECT id, name, area_id, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var category models.CategoryDB
	err := r.db.GetContext(ctx, &category, query, id)

	logger.Log.Infow("category read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}
