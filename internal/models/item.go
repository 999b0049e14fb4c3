package models

import "time"

// ItemDB represents an item record in the database
type ItemDB struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Quantity   int       `json:"quantity" db:"quantity"`
	ExpireDate time.Time `json:"expire_date" db:"expire_date"`
	CategoryID int64     `json:"category_id" db:"category_id"`
	UserID     int64     `json:"user_id" db:"user_id"` // Owning user
	CreatedAt  time.Time `json:"-" db:"created_at"`
	UpdatedAt  time.Time `json:"-" db:"updated_at"`
}

// ItemCategoryRowDB is a flat item-with-category row produced by the
// items ⋈ categories join used for grouped listings.
type ItemCategoryRowDB struct {
	ItemID       int64     `db:"item_id"`
	ItemName     string    `db:"item_name"`
	Quantity     int       `db:"quantity"`
	ExpireDate   time.Time `db:"expire_date"`
	CategoryID   int64     `db:"category_id"`
	CategoryName string    `db:"category_name"`
}

// ItemOut is the item shape exposed by the HTTP surface
// swagger:model ItemOut
type ItemOut struct {
	// Item id
	ID int64 `json:"id"`
	// Item name
	// example: Milk
	Name string `json:"name"`
	// Quantity on hand
	// example: 2
	Quantity int `json:"quantity"`
	// Expiration timestamp
	ExpireDate time.Time `json:"expire_date"`
}

// CategoryWithItems is one group of the grouped item listing: a category
// together with the caller's items in it, in first-occurrence order.
// swagger:model CategoryWithItems
type CategoryWithItems struct {
	// Category id
	ID int64 `json:"id"`
	// Category name
	// example: Dairy
	Name string `json:"name"`
	// Items of the requesting user in this category
	Items []ItemOut `json:"items"`
}
