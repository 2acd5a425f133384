package service

import (
	"context"
	"errors"
	"log"

	"github.com/devfolio/portfolio-backend/internal/auth"
	"github.com/devfolio/portfolio-backend/internal/projects/cache"
	"github.com/devfolio/portfolio-backend/internal/projects/domain"
	"github.com/devfolio/portfolio-backend/internal/projects/validator"
)

// ProjectStore is the persistence surface the actions run against.
type ProjectStore interface {
	Create(ctx context.Context, ownerID string, in domain.ProjectInput) (*domain.Project, error)
	ListAll(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, id, ownerID string, in domain.ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// ListingCache is the cached-listing surface mutations invalidate.
type ListingCache interface {
	Get(ctx context.Context) ([]domain.Project, error)
	Set(ctx context.Context, projects []domain.Project) error
	Invalidate(ctx context.Context) error
}

// ProjectService implements the project mutation actions. Every mutation runs
// authorize, validate, persist, invalidate listing, respond — in that order —
// and any failure short-circuits to a uniform error Result. Authorization is
// checked before validation, so an unauthorized caller never learns whether
// their payload was well-formed.
type ProjectService struct {
	store   ProjectStore
	listing ListingCache
}

// NewProjectService creates a new project service.
func NewProjectService(store ProjectStore, listing ListingCache) *ProjectService {
	return &ProjectService{
		store:   store,
		listing: listing,
	}
}

// CreateProject creates a new project owned by the calling admin.
func (s *ProjectService) CreateProject(ctx context.Context, in domain.ProjectInput) Result {
	user, err := auth.RequireAdmin(ctx)
	if err != nil {
		return failure("Not authorized")
	}

	if violations := validator.Validate(in); len(violations) > 0 {
		return Result{Status: StatusError, Message: "Invalid form data", Fields: violations}
	}

	if _, err := s.store.Create(ctx, user.UserID, in); err != nil {
		log.Printf("[projects] create failed: %v", err)
		return failure("Failed to create project")
	}

	s.invalidateListing(ctx)
	return success("Project created successfully")
}

// EditProject replaces the editable fields of a project. The update is scoped
// to the calling admin's own records; an id owned by someone else behaves
// exactly like a missing id.
func (s *ProjectService) EditProject(ctx context.Context, projectID string, in domain.ProjectInput) Result {
	user, err := auth.RequireAdmin(ctx)
	if err != nil {
		return failure("Not authorized")
	}

	if violations := validator.Validate(in); len(violations) > 0 {
		return Result{Status: StatusError, Message: "Invalid form data", Fields: violations}
	}

	if _, err := s.store.Update(ctx, projectID, user.UserID, in); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("[projects] edit %s failed: %v", projectID, err)
		}
		return failure("Failed to edit project")
	}

	s.invalidateListing(ctx)
	return success("Project edited successfully")
}

// DeleteProject removes a project permanently. Deleting an id that does not
// exist is a failure, not a no-op.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) Result {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return failure("Not authorized")
	}

	if err := s.store.Delete(ctx, projectID); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("[projects] delete %s failed: %v", projectID, err)
		}
		return failure("Failed to delete project")
	}

	s.invalidateListing(ctx)
	return success("Project deleted successfully")
}

// GetAllProjects returns every project, newest first, serving the public
// listing from cache when possible.
func (s *ProjectService) GetAllProjects(ctx context.Context) ([]domain.Project, error) {
	if s.listing != nil {
		if projects, err := s.listing.Get(ctx); err == nil {
			return projects, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			log.Printf("[projects] listing cache read failed: %v", err)
		}
	}

	projects, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.listing != nil {
		if err := s.listing.Set(ctx, projects); err != nil {
			log.Printf("[projects] listing cache write failed: %v", err)
		}
	}
	return projects, nil
}

// GetProjectByID returns a single project or domain.ErrNotFound.
func (s *ProjectService) GetProjectByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.store.GetByID(ctx, id)
}

// invalidateListing drops the cached public listing after a successful
// mutation so the next read recomputes it. A cache failure here never fails
// the mutation; the TTL bounds staleness.
func (s *ProjectService) invalidateListing(ctx context.Context) {
	if s.listing == nil {
		return
	}
	if err := s.listing.Invalidate(ctx); err != nil {
		log.Printf("[projects] listing invalidation failed: %v", err)
	}
}
