package services

import (
	"context"
	"errors"
	"time"

	"github.com/homestock/homestock/internal/logger"
	"github.com/homestock/homestock/internal/models"
)

// ErrItemNotFound is returned when an item id does not exist or is owned by
// another user. The two cases are deliberately indistinguishable.
var ErrItemNotFound = errors.New("item not found")

// ItemReader defines read-only operations for items.
type ItemReader interface {
	GetByID(ctx context.Context, id, userID int64) (*models.ItemDB, error)
	ListWithCategory(ctx context.Context, userID int64, areaID *int64) ([]models.ItemCategoryRowDB, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	Create(ctx context.Context, userID int64, name string, quantity int, expireDate time.Time, categoryID int64) (*models.ItemDB, error)
	Update(ctx context.Context, id, userID int64, name string, quantity int) (*models.ItemDB, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

// InventoryService serves the caller's items. Every operation is scoped to
// the requesting user.
type InventoryService struct {
	reader ItemReader
	writer ItemWriter
}

// NewInventoryService creates a new InventoryService instance.
func NewInventoryService(reader ItemReader, writer ItemWriter) *InventoryService {
	return &InventoryService{
		reader: reader,
		writer: writer,
	}
}

// ListGrouped returns the caller's items grouped by category. A non-nil
// areaID restricts the listing to categories of that area; both the
// area-scoped and the unscoped endpoints share this one pipeline.
func (svc *InventoryService) ListGrouped(ctx context.Context, userID int64, areaID *int64) ([]models.CategoryWithItems, error) {
	rows, err := svc.reader.ListWithCategory(ctx, userID, areaID)
	if err != nil {
		logger.Log.Errorw("failed to list items", "user_id", userID, "err", err)
		return nil, err
	}
	return groupByCategory(rows), nil
}

// groupByCategory regroups flat item-with-category rows into one group per
// distinct category. Group order follows the first occurrence of each
// category in the row scan; items keep their scan order within each group.
// Categories without matching rows never appear.
func groupByCategory(rows []models.ItemCategoryRowDB) []models.CategoryWithItems {
	groups := make([]models.CategoryWithItems, 0, len(rows))
	index := make(map[int64]int, len(rows))

	for _, row := range rows {
		i, ok := index[row.CategoryID]
		if !ok {
			i = len(groups)
			index[row.CategoryID] = i
			groups = append(groups, models.CategoryWithItems{
				ID:    row.CategoryID,
				Name:  row.CategoryName,
				Items: []models.ItemOut{},
			})
		}
		groups[i].Items = append(groups[i].Items, models.ItemOut{
			ID:         row.ItemID,
			Name:       row.ItemName,
			Quantity:   row.Quantity,
			ExpireDate: row.ExpireDate,
		})
	}

	return groups
}

// Get returns one of the caller's items by id.
func (svc *InventoryService) Get(ctx context.Context, id, userID int64) (*models.ItemDB, error) {
	item, err := svc.reader.GetByID(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to get item", "item_id", id, "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Create stores a new item owned by the caller. Expiration date and category
// are fixed here and not updatable afterwards.
func (svc *InventoryService) Create(ctx context.Context, userID int64, name string, quantity int, expireDate time.Time, categoryID int64) (*models.ItemDB, error) {
	item, err := svc.writer.Create(ctx, userID, name, quantity, expireDate, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to create item", "user_id", userID, "err", err)
		return nil, err
	}
	return item, nil
}

// Update changes the name and quantity of one of the caller's items.
func (svc *InventoryService) Update(ctx context.Context, id, userID int64, name string, quantity int) (*models.ItemDB, error) {
	item, err := svc.writer.Update(ctx, id, userID, name, quantity)
	if err != nil {
		logger.Log.Errorw("failed to update item", "item_id", id, "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Delete removes one of the caller's items.
func (svc *InventoryService) Delete(ctx context.Context, id, userID int64) error {
	deleted, err := svc.writer.Delete(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete item", "item_id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}
