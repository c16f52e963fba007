package models

import "time"

// User represents an account in the user_system table.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	FullName     string    `json:"full_name"`
	Address      string    `json:"address"`
	PhoneNumber  string    `json:"phone_number"`
	Photo        string    `json:"photo"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserCreate is the payload for creating a new user.
type UserCreate struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Photo       string `json:"photo"`
	Role        string `json:"role"`
}

// UserUpdate is the payload for a partial user update; nil fields keep their stored value.
type UserUpdate struct {
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	FullName    *string `json:"full_name"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	Photo       *string `json:"photo"`
	Role        *string `json:"role"`
}
