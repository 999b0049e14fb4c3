package models

import "time"

// AreaDB represents an area record in the database
type AreaDB struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"` // Globally unique area name
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}
