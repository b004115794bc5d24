package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// MaterialRepository handles database operations for course materials
type MaterialRepository struct {
	db *pgxpool.Pool
}

// NewMaterialRepository creates a new material repository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// Create inserts a new material
func (r *MaterialRepository) Create(ctx context.Context, m *models.Material) error {
	query := `
		INSERT INTO materials (course_id, created_by, title, content, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, m.CourseID, m.CreatedBy, m.Title, m.Content, m.Type).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating material: %w", err)
	}
	return nil
}

// GetByID retrieves a material by ID
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.Material, error) {
	query := `
		SELECT id, course_id, created_by, title, content, type, created_at, updated_at
		FROM materials
		WHERE id = $1
	`

	var m models.Material
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.CourseID, &m.CreatedBy, &m.Title, &m.Content, &m.Type,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("error retrieving material: %w", err)
	}
	return &m, nil
}

// ListByCourse retrieves the materials of a course, newest first.
func (r *MaterialRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Material, error) {
	query := `
		SELECT id, course_id, created_by, title, content, type, created_at, updated_at
		FROM materials
		WHERE course_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing materials: %w", err)
	}
	defer rows.Close()

	var materials []*models.Material
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.ID, &m.CourseID, &m.CreatedBy, &m.Title, &m.Content,
			&m.Type, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		materials = append(materials, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return materials, nil
}

// Update updates an existing material
func (r *MaterialRepository) Update(ctx context.Context, m *models.Material) error {
	query := `
		UPDATE materials
		SET title = $1, content = $2, type = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, m.Title, m.Content, m.Type, m.ID)
	if err != nil {
		return fmt.Errorf("error updating material: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}
	return nil
}

// Delete removes a material
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting material: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}
	return nil
}
