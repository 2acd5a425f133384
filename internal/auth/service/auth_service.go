package service

import (
	"context"

	"github.com/devfolio/portfolio-backend/internal/auth/domain"
	"github.com/devfolio/portfolio-backend/internal/auth/repository"
)

// AuthService handles user sync and profile reads on top of the users table.
type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// GetUserByFirebaseUID retrieves a user by Firebase UID.
func (s *AuthService) GetUserByFirebaseUID(ctx context.Context, uid string) (*domain.User, error) {
	return s.userRepo.GetByFirebaseUID(ctx, uid)
}

// SyncUser creates or updates a user from verified Firebase identity data.
// Called after sign-in (social or anonymous) so the row backing project
// ownership and the role check always exists.
func (s *AuthService) SyncUser(ctx context.Context, req domain.SyncUserRequest) (*domain.User, error) {
	return s.userRepo.EnsureUser(ctx, req)
}
