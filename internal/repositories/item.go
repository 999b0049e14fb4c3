package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/homestock/homestock/internal/logger"
	"github.com/homestock/homestock/internal/models"
)

type ItemReadRepository struct {
	db *sqlx.DB
}

func NewItemReadRepository(db *sqlx.DB) *ItemReadRepository {
	return &ItemReadRepository{db: db}
}

// GetByID returns the item with the given id owned by userID, or nil when
// the item is absent or owned by someone else.
func (r *ItemReadRepository) GetByID(ctx context.Context, id, userID int64) (*models.ItemDB, error) {
	const query = `
		SELECT id, name, quantity, expire_date, category_id, user_id, created_at, updated_at
		FROM items
		WHERE id = $1 AND user_id = $2
	`

	var item models.ItemDB
	err := r.db.GetContext(ctx, &item, query, id, userID)

	logger.Log.Infow("item read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// ListWithCategory returns the caller's items joined with their categories as
// flat rows in item insertion order. A non-nil areaID restricts the result to
// categories of that area.
func (r *ItemReadRepository) ListWithCategory(ctx context.Context, userID int64, areaID *int64) ([]models.ItemCategoryRowDB, error) {
	const query = `
		SELECT i.id AS item_id,
		       i.name AS item_name,
		       i.quantity,
		       i.expire_date,
		       c.id AS category_id,
		       c.name AS category_name
		FROM items i
		JOIN categories c ON i.category_id = c.id
		WHERE i.user_id = $1
		  AND ($2::BIGINT IS NULL OR c.area_id = $2)
		ORDER BY i.id
	`

	var rows []models.ItemCategoryRowDB
	err := r.db.SelectContext(ctx, &rows, query, userID, areaID)

	logger.Log.Infow("item read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, areaID},
		"count", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return rows, nil
}

type ItemWriteRepository struct {
	db *sqlx.DB
}

func NewItemWriteRepository(db *sqlx.DB) *ItemWriteRepository {
	return &ItemWriteRepository{db: db}
}

// Create inserts an item owned by userID and returns the stored row.
func (r *ItemWriteRepository) Create(ctx context.Context, userID int64, name string, quantity int, expireDate time.Time, categoryID int64) (*models.ItemDB, error) {
	const query = `
		INSERT INTO items (name, quantity, expire_date, category_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, name, quantity, expire_date, category_id, user_id, created_at, updated_at
	`
	args := []any{name, quantity, expireDate, categoryID, userID}

	var item models.ItemDB
	err := r.db.GetContext(ctx, &item, query, args...)

	logger.Log.Infow("item write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &item, nil
}

// Update changes the name and quantity of the item with the given id owned by
// userID and returns the stored row, or nil when the item is absent or owned
// by someone else. Expiration date and category are fixed at creation.
func (r *ItemWriteRepository) Update(ctx context.Context, id, userID int64, name string, quantity int) (*models.ItemDB, error) {
	const query = `
		UPDATE items
		SET name = $3, quantity = $4, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, name, quantity, expire_date, category_id, user_id, created_at, updated_at
	`
	args := []any{id, userID, name, quantity}

	var item models.ItemDB
	err := r.db.GetContext(ctx, &item, query, args...)

	logger.Log.Infow("item write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// Delete removes the item with the given id owned by userID. It reports
// whether a row was deleted.
func (r *ItemWriteRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	const query = `
		DELETE FROM items
		WHERE id = $1 AND user_id = $2
	`
	args := []any{id, userID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("item write",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
