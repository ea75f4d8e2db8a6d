package models

import (
	"time"
)

// User is the owner record referenced by reservations, requests and documents.
// Credential handling is out of scope; the password hash column exists only
// so externally managed accounts can be mirrored in.
type User struct {
	ID           string    `json:"id" gorm:"primary_key"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email" gorm:"unique;not null"`
	PasswordHash string    `json:"-" gorm:"column:password"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName sets the table name for User
func (User) TableName() string {
	return "users"
}

// UserRole represents the access level of a user
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)
