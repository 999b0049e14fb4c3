package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/homestock/homestock/internal/logger"
	"github.com/homestock/homestock/internal/models"
)

type AreaReadRepository struct {
	db *sqlx.DB
}

func NewAreaReadRepository(db *sqlx.DB) *AreaReadRepository {
	return &AreaReadRepository{db: db}
}

// List returns all areas.
func (r *AreaReadRepository) List(ctx context.Context) ([]models.AreaDB, error) {
	const query = `
		SELECT id, name, created_at, updated_at
		FROM areas
		ORDER BY id
	`

	var areas []models.AreaDB
	err := r.db.SelectContext(ctx, &areas, query)

	logger.Log.Infow("area read",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(areas),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return areas, nil
}
