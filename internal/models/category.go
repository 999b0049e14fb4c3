package models

import "time"

// CategoryDB represents a category record in the database
type CategoryDB struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	AreaID    int64     `json:"area_id" db:"area_id"` // Owning area
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}
