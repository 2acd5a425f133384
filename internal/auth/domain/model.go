package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// Roles stored on the users row. Admin is assigned out of band; every synced
// sign-in (social or anonymous) starts as a regular user.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an authenticated visitor. The Firebase UID is the external
// identity; ID is the database identity that project ownership points at.
type User struct {
	ID          string     `json:"id"`
	FirebaseUID string     `json:"firebase_uid"`
	Email       string     `json:"email"`
	DisplayName *string    `json:"display_name,omitempty"`
	PhotoURL    *string    `json:"photo_url,omitempty"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// SyncUserRequest carries the identity data captured from a verified Firebase
// token plus any optional profile fields the client sent along.
type SyncUserRequest struct {
	FirebaseUID string
	Email       string
	DisplayName *string
	PhotoURL    *string
}
