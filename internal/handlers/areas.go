package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/homestock/homestock/internal/logger"
	"github.com/homestock/homestock/internal/middlewares"
	"github.com/homestock/homestock/internal/models"
)

// AreaLister defines the interface that the area listing service must implement.
type AreaLister interface {
	ListAreas(ctx context.Context) ([]models.AreaDB, error)
}

// AreaCategoryLister defines the interface for listing categories of one area.
type AreaCategoryLister interface {
	ListCategoriesByArea(ctx context.Context, areaID int64) ([]models.CategoryDB, error)
}

// AreaErrorResponse represents an error response for area endpoints
// swagger:model AreaErrorResponse
type AreaErrorResponse struct {
	// Error message
	// example: invalid area id
	Error string `json:"error"`
}

// NewListAreasHandler returns an HTTP handler listing all areas.
// @Summary List areas
// @Description Returns all areas. Areas are shared reference data, no authentication required.
// @Tags areas
// @Produce json
// @Success 200 {array} models.AreaDB "All areas"
// @Router /areas/ [get]
func NewListAreasHandler(svc AreaLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areas, err := svc.ListAreas(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AreaErrorResponse{Error: "Internal server error"})
			return
		}

		if areas == nil {
			areas = []models.AreaDB{}
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(areas)
	}
}

// NewListAreaCategoriesHandler returns an HTTP handler listing the categories of one area.
// @Summary List categories of an area
// @Description Returns the categories belonging to the given area. No authentication required.
// @Tags areas
// @Produce json
// @Param id path int true "Area id"
// @Success 200 {array} models.CategoryDB "Categories of the area"
// @Failure 400 {object} handlers.AreaErrorResponse "Invalid area id"
// @Router /areas/{id}/categories [get]
func NewListAreaCategoriesHandler(svc AreaCategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areaID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AreaErrorResponse{Error: "invalid area id"})
			return
		}

		categories, err := svc.ListCategoriesByArea(r.Context(), areaID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AreaErrorResponse{Error: "Internal server error"})
			return
		}

		if categories == nil {
			categories = []models.CategoryDB{}
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(categories)
	}
}

// NewListAreaItemsHandler returns an HTTP handler listing the caller's items
// of one area, grouped by category.
// @Summary List own items of an area grouped by category
// @Description Returns the authenticated user's items in the given area, grouped by category in first-occurrence order.
// @Tags areas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Area id"
// @Success 200 {array} models.CategoryWithItems "Grouped items"
// @Failure 400 {object} handlers.AreaErrorResponse "Invalid area id"
// @Failure 401 {object} handlers.AreaErrorResponse "Missing or invalid token"
// @Router /areas/{id}/items [get]
func NewListAreaItemsHandler(svc GroupedItemsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		areaID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AreaErrorResponse{Error: "invalid area id"})
			return
		}

		groups, err := svc.ListGrouped(r.Context(), user.ID, &areaID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AreaErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(groups)
	}
}
