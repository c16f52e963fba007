package models

import "time"

// Category represents a product category.
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryCreate is the payload for creating a category.
type CategoryCreate struct {
	Name string `json:"name"`
}

// CategoryUpdate is the payload for renaming a category.
type CategoryUpdate struct {
	Name *string `json:"name"`
}
