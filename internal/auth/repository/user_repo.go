package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devfolio/portfolio-backend/internal/auth/domain"
)

const userColumns = `id::text, firebase_uid, coalesce(email, ''), display_name, photo_url, role, created_at, updated_at, last_login_at`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureUser upserts a users row for the verified Firebase identity and
// returns the stored user. Existing profile fields win over empty incoming
// ones so an anonymous re-login never erases a linked email. Role is never
// touched here; admin promotion happens out of band.
func (r *UserRepository) EnsureUser(ctx context.Context, req domain.SyncUserRequest) (*domain.User, error) {
	if req.FirebaseUID == "" {
		return nil, fmt.Errorf("firebase_uid required")
	}

	q := `
INSERT INTO users (firebase_uid, email, display_name, photo_url, last_login_at, updated_at)
VALUES ($1, nullif($2, ''), $3, $4, now(), now())
ON CONFLICT (firebase_uid) DO UPDATE
SET
  email = coalesce(excluded.email, users.email),
  display_name = coalesce(excluded.display_name, users.display_name),
  photo_url = coalesce(excluded.photo_url, users.photo_url),
  last_login_at = now(),
  updated_at = now()
RETURNING ` + userColumns + `;
`
	u, err := scanUser(r.db.QueryRow(ctx, q, req.FirebaseUID, req.Email, req.DisplayName, req.PhotoURL))
	if err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}
	return u, nil
}

// GetByFirebaseUID retrieves a user by their Firebase UID.
func (r *UserRepository) GetByFirebaseUID(ctx context.Context, uid string) (*domain.User, error) {
	q := `
SELECT ` + userColumns + `
FROM users
WHERE firebase_uid = $1;
`
	u, err := scanUser(r.db.QueryRow(ctx, q, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.FirebaseUID, &u.Email, &u.DisplayName, &u.PhotoURL,
		&u.Role, &u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
