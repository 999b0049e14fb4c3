package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/homestock/homestock/internal/models"
	"github.com/homestock/homestock/internal/services"
)

func TestInventoryService_ListGrouped_FirstOccurrenceOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockItemReader(ctrl)
	mockWriter := services.NewMockItemWriter(ctrl)
	svc := services.NewInventoryService(mockReader, mockWriter)

	// Insertion order: (cat2,item1), (cat1,item2), (cat2,item3).
	rows := []models.ItemCategoryRowDB{
		{ItemID: 1, ItemName: "item1", Quantity: 1, CategoryID: 2, CategoryName: "cat2"},
		{ItemID: 2, ItemName: "item2", Quantity: 1, CategoryID: 1, CategoryName: "cat1"},
		{ItemID: 3, ItemName: "item3", Quantity: 1, CategoryID: 2, CategoryName: "cat2"},
	}
	mockReader.EXPECT().ListWithCategory(gomock.Any(), int64(10), nil).Return(rows, nil)

	groups, err := svc.ListGrouped(context.Background(), 10, nil)
	assert.NoError(t, err)
	assert.Len(t, groups, 2)

	// cat2 comes first because it appeared first in the scan.
	assert.Equal(t, int64(2), groups[0].ID)
	assert.Equal(t, "cat2", groups[0].Name)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, int64(1), groups[0].Items[0].ID)
	assert.Equal(t, int64(3), groups[0].Items[1].ID)

	assert.Equal(t, int64(1), groups[1].ID)
	assert.Equal(t, "cat1", groups[1].Name)
	assert.Len(t, groups[1].Items, 1)
	assert.Equal(t, int64(2), groups[1].Items[0].ID)
}

func TestInventoryService_ListGrouped_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockItemReader(ctrl)
	mockWriter := services.NewMockItemWriter(ctrl)
	svc := services.NewInventoryService(mockReader, mockWriter)

	mockReader.EXPECT().ListWithCategory(gomock.Any(), int64(10), nil).Return(nil, nil)

	groups, err := svc.ListGrouped(context.Background(), 10, nil)
	assert.NoError(t, err)
	assert.Empty(t, groups)
}

func TestInventoryService_ListGrouped_AreaScoped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockItemReader(ctrl)
	mockWriter := services.NewMockItemWriter(ctrl)
	svc := services.NewInventoryService(mockReader, mockWriter)

	areaID := int64(3)
	rows := []models.ItemCategoryRowDB{
		{ItemID: 4, ItemName: "jam", Quantity: 1, CategoryID: 9, CategoryName: "Spices"},
	}
	mockReader.EXPECT().ListWithCategory(gomock.Any(), int64(10), &areaID).Return(rows, nil)

	groups, err := svc.ListGrouped(context.Background(), 10, &areaID)
	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, int64(9), groups[0].ID)
}

func TestInventoryService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	item := &models.ItemDB{ID: 1, Name: "Milk", Quantity: 2, UserID: 10}

	tests := []struct {
		name      string
		item      *models.ItemDB
		readerErr error
		wantErr   error
	}{
		{name: "found", item: item},
		{name: "absent or not owned", wantErr: services.ErrItemNotFound},
		{name: "reader error", readerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockItemReader(ctrl)
			mockWriter := services.NewMockItemWriter(ctrl)
			svc := services.NewInventoryService(mockReader, mockWriter)

			mockReader.EXPECT().GetByID(gomock.Any(), int64(1), int64(10)).Return(tt.item, tt.readerErr)

			got, err := svc.Get(context.Background(), 1, 10)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.item, got)
			}
		})
	}
}

func TestInventoryService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockItemReader(ctrl)
	mockWriter := services.NewMockItemWriter(ctrl)
	svc := services.NewInventoryService(mockReader, mockWriter)

	expire := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	stored := &models.ItemDB{ID: 1, Name: "Milk", Quantity: 2, ExpireDate: expire, CategoryID: 5, UserID: 10}

	mockWriter.EXPECT().
		Create(gomock.Any(), int64(10), "Milk", 2, expire, int64(5)).
		Return(stored, nil)

	got, err := svc.Create(context.Background(), 10, "Milk", 2, expire, 5)
	assert.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestInventoryService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("updates name and quantity", func(t *testing.T) {
		mockReader := services.NewMockItemReader(ctrl)
		mockWriter := services.NewMockItemWriter(ctrl)
		svc := services.NewInventoryService(mockReader, mockWriter)

		updated := &models.ItemDB{ID: 1, Name: "Milk", Quantity: 1, UserID: 10}
		mockWriter.EXPECT().Update(gomock.Any(), int64(1), int64(10), "Milk", 1).Return(updated, nil)

		got, err := svc.Update(context.Background(), 1, 10, "Milk", 1)
		assert.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("absent or not owned", func(t *testing.T) {
		mockReader := services.NewMockItemReader(ctrl)
		mockWriter := services.NewMockItemWriter(ctrl)
		svc := services.NewInventoryService(mockReader, mockWriter)

		mockWriter.EXPECT().Update(gomock.Any(), int64(99), int64(10), "Milk", 1).Return(nil, nil)

		got, err := svc.Update(context.Background(), 99, 10, "Milk", 1)
		assert.ErrorIs(t, err, services.ErrItemNotFound)
		assert.Nil(t, got)
	})
}

func TestInventoryService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("deletes own item", func(t *testing.T) {
		mockReader := services.NewMockItemReader(ctrl)
		mockWriter := services.NewMockItemWriter(ctrl)
		svc := services.NewInventoryService(mockReader, mockWriter)

		mockWriter.EXPECT().Delete(gomock.Any(), int64(1), int64(10)).Return(true, nil)

		assert.NoError(t, svc.Delete(context.Background(), 1, 10))
	})

	t.Run("absent or not owned", func(t *testing.T) {
		mockReader := services.NewMockItemReader(ctrl)
		mockWriter := services.NewMockItemWriter(ctrl)
		svc := services.NewInventoryService(mockReader, mockWriter)

		mockWriter.EXPECT().Delete(gomock.Any(), int64(99), int64(10)).Return(false, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), 99, 10), services.ErrItemNotFound)
	})

	t.Run("writer error", func(t *testing.T) {
		mockReader := services.NewMockItemReader(ctrl)
		mockWriter := services.NewMockItemWriter(ctrl)
		svc := services.NewInventoryService(mockReader, mockWriter)

		mockWriter.EXPECT().Delete(gomock.Any(), int64(1), int64(10)).Return(false, errors.New("db error"))

		assert.EqualError(t, svc.Delete(context.Background(), 1, 10), "db error")
	})
}
