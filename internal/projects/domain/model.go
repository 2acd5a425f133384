package domain

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no project matches the requested id
	// (and, for scoped updates, owner).
	ErrNotFound = errors.New("project not found")
)

// Valid values for Project.Category.
const (
	CategoryFullStack = "full-stack"
	CategoryFrontend  = "frontend"
	CategoryBackend   = "backend"
)

// Categories lists the allowed project categories.
var Categories = []string{CategoryFullStack, CategoryFrontend, CategoryBackend}

// Project represents a single portfolio work item owned by an admin user.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description"`
	Image           string    `json:"image"`
	Technologies    []string  `json:"technologies"`
	LiveURL         string    `json:"live_url,omitempty"`
	GithubURL       string    `json:"github_url,omitempty"`
	Category        string    `json:"category"`
	Featured        bool      `json:"featured"`
	OwnerID         string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProjectInput carries the editable fields of a project as submitted by the
// admin panel. Identity, owner and timestamps are always server-assigned.
type ProjectInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	Image           string   `json:"image"`
	Technologies    []string `json:"technologies"`
	LiveURL         string   `json:"live_url"`
	GithubURL       string   `json:"github_url"`
	Category        string   `json:"category"`
	Featured        *bool    `json:"featured"`
}
