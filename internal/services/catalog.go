package services

import (
	"context"
	"errors"

	"github.com/homestock/homestock/internal/logger"
	"github.com/homestock/homestock/internal/models"
)

// ErrCategoryNotFound is returned when a category id does not exist.
var ErrCategoryNotFound = errors.New("category not found")

// AreaReader defines read-only operations for areas.
type AreaReader interface {
	List(ctx context.Context) ([]models.AreaDB, error)
}

// CategoryReader defines read-only operations for categories.
type CategoryReader interface {
	List(ctx context.Context) ([]models.CategoryDB, error)
	ListByArea(ctx context.Context, areaID int64) ([]models.CategoryDB, error)
	GetByID(ctx context.Context, id int64) (*models.CategoryDB, error)
}

// CatalogService serves the shared area/category reference data. Areas and
// categories are not user-owned: any caller may read them.
type CatalogService struct {
	areas      AreaReader
	categories CategoryReader
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(areas AreaReader, categories CategoryReader) *CatalogService {
	return &CatalogService{
		areas:      areas,
		categories: categories,
	}
}

// ListAreas returns all areas.
func (svc *CatalogService) ListAreas(ctx context.Context) ([]models.AreaDB, error) {
	areas, err := svc.areas.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list areas", "err", err)
		return nil, err
	}
	return areas, nil
}

// ListCategories returns all categories.
func (svc *CatalogService) ListCategories(ctx context.Context) ([]models.CategoryDB, error) {
	categories, err := svc.categories.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "err", err)
		return nil, err
	}
	return categories, nil
}

// ListCategoriesByArea returns the categories of one area.
func (svc *CatalogService) ListCategoriesByArea(ctx context.Context, areaID int64) ([]models.CategoryDB, error) {
	categories, err := svc.categories.ListByArea(ctx, areaID)
	if err != nil {
		logger.Log.Errorw("failed to list categories by area", "area_id", areaID, "err", err)
		return nil, err
	}
	return categories, nil
}

// GetCategory returns one category by id.
func (svc *CatalogService) GetCategory(ctx context.Context, id int64) (*models.CategoryDB, error) {
	category, err := svc.categories.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get category", "category_id", id, "err", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}
