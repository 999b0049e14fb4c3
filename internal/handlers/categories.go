package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/homestock/homestock/internal/logger"
	"github.com/homestock/homestock/internal/models"
	"github.com/homestock/homestock/internal/services"
)

// CategoryLister defines the interface that the category listing service must implement.
type CategoryLister interface {
	ListCategories(ctx context.Context) ([]models.CategoryDB, error)
}

// CategoryGetter defines the interface for fetching one category.
type CategoryGetter interface {
	GetCategory(ctx context.Context, id int64) (*models.CategoryDB, error)
}

// CategoryErrorResponse represents an error response for category endpoints
// swagger:model CategoryErrorResponse
type CategoryErrorResponse struct {
	// Error message
	// example: Category not found
	Error string `json:"error"`
}

// NewListCategoriesHandler returns an HTTP handler listing all categories.
// @Summary List categories
// @Description Returns all categories. Categories are shared reference data, no authentication required.
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryDB "All categories"
// @Router /categories/ [get]
func NewListCategoriesHandler(svc CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "Internal server error"})
			return
		}

		if categories == nil {
			categories = []models.CategoryDB{}
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(categories)
	}
}

// NewGetCategoryHandler returns an HTTP handler fetching one category by id.
// @Summary Get a category
// @Description Returns one category by id. No authentication required.
// @Tags categories
// @Produce json
// @Param id path int true "Category id"
// @Success 200 {object} models.CategoryDB "The category"
// @Failure 400 {object} handlers.CategoryErrorResponse "Invalid category id"
// @Failure 404 {object} handlers.CategoryErrorResponse "Category not found"
// @Router /categories/{id} [get]
func NewGetCategoryHandler(svc CategoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "invalid category id"})
			return
		}

		category, err := svc.GetCategory(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCategoryNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "Category not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CategoryErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(category)
	}
}
