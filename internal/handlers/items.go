package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/homestock/homestock/internal/logger"
	"github.com/homestock/homestock/internal/middlewares"
	"github.com/homestock/homestock/internal/models"
	"github.com/homestock/homestock/internal/services"
)

// GroupedItemsLister defines the grouped listing shared by GET /items/ and
// GET /areas/{id}/items. A nil areaID lists across all areas.
type GroupedItemsLister interface {
	ListGrouped(ctx context.Context, userID int64, areaID *int64) ([]models.CategoryWithItems, error)
}

// ItemGetter defines the interface for fetching one of the caller's items.
type ItemGetter interface {
	Get(ctx context.Context, id, userID int64) (*models.ItemDB, error)
}

// ItemCreator defines the interface for creating an item.
type ItemCreator interface {
	Create(ctx context.Context, userID int64, name string, quantity int, expireDate time.Time, categoryID int64) (*models.ItemDB, error)
}

// ItemUpdater defines the interface for updating an item's name and quantity.
type ItemUpdater interface {
	Update(ctx context.Context, id, userID int64, name string, quantity int) (*models.ItemDB, error)
}

// ItemDeleter defines the interface for deleting an item.
type ItemDeleter interface {
	Delete(ctx context.Context, id, userID int64) error
}

// CreateItemRequest represents the JSON body for item creation
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	// Item name
	// required: true
	// example: Milk
	Name string `json:"name"`

	// Quantity on hand
	// required: true
	// example: 2
	Quantity int `json:"quantity"`

	// Expiration timestamp
	// required: true
	ExpireDate time.Time `json:"expire_date"`

	// Category id
	// required: true
	CategoryID int64 `json:"category_id"`
}

// UpdateItemRequest represents the JSON body for an item update.
// Only name and quantity are updatable.
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	// Item name
	// required: true
	// example: Milk
	Name string `json:"name"`

	// Quantity on hand
	// required: true
	// example: 1
	Quantity int `json:"quantity"`
}

// ItemErrorResponse represents an error response for item endpoints
// swagger:model ItemErrorResponse
type ItemErrorResponse struct {
	// Error message
	// example: Item not found
	Error string `json:"error"`
}

func itemOut(item *models.ItemDB) models.ItemOut {
	return models.ItemOut{
		ID:         item.ID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		ExpireDate: item.ExpireDate,
	}
}

// NewListItemsHandler returns an HTTP handler listing all of the caller's
// items grouped by category.
// @Summary List own items grouped by category
// @Description Returns all of the authenticated user's items, grouped by category in first-occurrence order.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CategoryWithItems "Grouped items"
// @Failure 401 {object} handlers.ItemErrorResponse "Missing or invalid token"
// @Router /items/ [get]
func NewListItemsHandler(svc GroupedItemsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		groups, err := svc.ListGrouped(r.Context(), user.ID, nil)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ItemErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(groups)
	}
}

// NewGetItemHandler returns an HTTP handler fetching one of the caller's items.
// @Summary Get an item
// @Description Returns one item by id, scoped to the authenticated user. Items of other users report as not found.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item id"
// @Success 200 {object} models.ItemOut "The item"
// @Failure 401 {object} handlers.ItemErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ItemErrorResponse "Item not found"
// @Router /items/{id} [get]
func NewGetItemHandler(svc ItemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ItemErrorResponse{Error: "invalid item id"})
			return
		}

		item, err := svc.Get(r.Context(), id, user.ID)
		if err != nil {
			writeItemError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(itemOut(item))
	}
}

// NewCreateItemHandler returns an HTTP handler creating an item owned by the caller.
// @Summary Create an item
// @Description Stores a new item owned by the authenticated user. Expiration date and category are fixed at creation.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createItemRequest body handlers.CreateItemRequest true "Item to create"
// @Success 200 {object} models.ItemOut "The stored item"
// @Failure 400 {object} handlers.ItemErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ItemErrorResponse "Missing or invalid token"
// @Router /items/ [post]
func NewCreateItemHandler(svc ItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ItemErrorResponse{Error: "invalid request body"})
			return
		}

		item, err := svc.Create(r.Context(), user.ID, req.Name, req.Quantity, req.ExpireDate, req.CategoryID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ItemErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(itemOut(item))
	}
}

// NewUpdateItemHandler returns an HTTP handler updating name and quantity of
// one of the caller's items.
// @Summary Update an item
// @Description Updates name and quantity of one item, scoped to the authenticated user.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item id"
// @Param updateItemRequest body handlers.UpdateItemRequest true "Fields to update"
// @Success 200 {object} models.ItemOut "The updated item"
// @Failure 400 {object} handlers.ItemErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ItemErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ItemErrorResponse "Item not found"
// @Router /items/{id} [put]
func NewUpdateItemHandler(svc ItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ItemErrorResponse{Error: "invalid item id"})
			return
		}

		var req UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ItemErrorResponse{Error: "invalid request body"})
			return
		}

		item, err := svc.Update(r.Context(), id, user.ID, req.Name, req.Quantity)
		if err != nil {
			writeItemError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(itemOut(item))
	}
}

// NewDeleteItemHandler returns an HTTP handler deleting one of the caller's items.
// @Summary Delete an item
// @Description Deletes one item, scoped to the authenticated user.
// @Tags items
// @Security BearerAuth
// @Param id path int true "Item id"
// @Success 204 "Item deleted"
// @Failure 401 {object} handlers.ItemErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ItemErrorResponse "Item not found"
// @Router /items/{id} [delete]
func NewDeleteItemHandler(svc ItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ItemErrorResponse{Error: "invalid item id"})
			return
		}

		if err := svc.Delete(r.Context(), id, user.ID); err != nil {
			writeItemError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeItemError maps item service errors to status codes. "Absent" and
// "owned by another user" both surface as 404.
func writeItemError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ItemErrorResponse{Error: "Item not found"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ItemErrorResponse{Error: "Internal server error"})
	}
}
