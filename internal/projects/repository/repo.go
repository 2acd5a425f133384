package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

const projectColumns = `id::text, title, description, long_description, image, technologies,
coalesce(live_url, ''), coalesce(github_url, ''), category, featured, user_id::text, created_at, updated_at`

// ProjectRepository provides persistence operations for portfolio projects.
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project owned by the given user and returns the stored
// row with its server-assigned id and timestamps.
func (r *ProjectRepository) Create(ctx context.Context, ownerID string, in domain.ProjectInput) (*domain.Project, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner id required")
	}

	q := `
INSERT INTO projects (id, title, description, long_description, image, technologies,
                      live_url, github_url, category, featured, user_id)
VALUES ($1::uuid, $2, $3, $4, $5, $6, nullif($7, ''), nullif($8, ''), $9, $10, $11::uuid)
RETURNING ` + projectColumns + `;
`
	id := uuid.New().String()
	row := r.db.QueryRow(ctx, q, id, in.Title, in.Description, in.LongDescription,
		in.Image, in.Technologies, in.LiveURL, in.GithubURL, in.Category, featured(in), ownerID)

	p, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

// ListAll returns every project, newest first. An empty slice is a valid
// result, not an error.
func (r *ProjectRepository) ListAll(ctx context.Context) ([]domain.Project, error) {
	q := `
SELECT ` + projectColumns + `
FROM projects
ORDER BY created_at DESC;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// GetByID returns the project with the given id, or domain.ErrNotFound.
// Absence is a regular outcome for callers, not a storage fault; that
// includes ids that are not even well-formed uuids.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	q := `
SELECT ` + projectColumns + `
FROM projects
WHERE id = $1::uuid;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update replaces the editable fields of a project in place. The match is
// scoped to (id, owner) so a caller cannot edit another owner's record by id
// guessing; domain.ErrNotFound is returned when no row matches both.
func (r *ProjectRepository) Update(ctx context.Context, id, ownerID string, in domain.ProjectInput) (*domain.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	q := `
UPDATE projects
SET title = $3, description = $4, long_description = $5, image = $6,
    technologies = $7, live_url = nullif($8, ''), github_url = nullif($9, ''),
    category = $10, featured = $11, updated_at = now()
WHERE id = $1::uuid AND user_id = $2::uuid
RETURNING ` + projectColumns + `;
`
	row := r.db.QueryRow(ctx, q, id, ownerID, in.Title, in.Description, in.LongDescription,
		in.Image, in.Technologies, in.LiveURL, in.GithubURL, in.Category, featured(in))

	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

// Delete removes a project permanently. Deleting an id that does not exist is
// reported as domain.ErrNotFound rather than a silent no-op.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}

	const q = `DELETE FROM projects WHERE id = $1::uuid;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func featured(in domain.ProjectInput) bool {
	return in.Featured != nil && *in.Featured
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.LongDescription, &p.Image,
		&p.Technologies, &p.LiveURL, &p.GithubURL, &p.Category, &p.Featured,
		&p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
