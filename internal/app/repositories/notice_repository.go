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

// NoticeRepository handles database operations for notices
type NoticeRepository struct {
	db *pgxpool.Pool
}

// NewNoticeRepository creates a new notice repository
func NewNoticeRepository(db *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{db: db}
}

// Create inserts a new notice
func (r *NoticeRepository) Create(ctx context.Context, n *models.Notice) error {
	query := `
		INSERT INTO notices (title, description, event_date, posted_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, n.Title, n.Description, n.EventDate, n.PostedBy).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating notice: %w", err)
	}
	return nil
}

// GetByID retrieves a notice by ID
func (r *NoticeRepository) GetByID(ctx context.Context, id int64) (*models.Notice, error) {
	query := `
		SELECT id, title, description, event_date, posted_by, created_at
		FROM notices
		WHERE id = $1
	`

	var n models.Notice
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.Title, &n.Description, &n.EventDate, &n.PostedBy, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoticeNotFound
		}
		return nil, fmt.Errorf("error retrieving notice: %w", err)
	}
	return &n, nil
}

// List retrieves all notices, newest first.
func (r *NoticeRepository) List(ctx context.Context) ([]*models.Notice, error) {
	query := `
		SELECT id, title, description, event_date, posted_by, created_at
		FROM notices
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing notices: %w", err)
	}
	defer rows.Close()

	var notices []*models.Notice
	for rows.Next() {
		var n models.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Description, &n.EventDate, &n.PostedBy, &n.CreatedAt); err != nil {
			return nil, err
		}
		notices = append(notices, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notices, nil
}

// Update updates an existing notice
func (r *NoticeRepository) Update(ctx context.Context, n *models.Notice) error {
	query := `
		UPDATE notices
		SET title = $1, description = $2, event_date = $3, posted_by = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query, n.Title, n.Description, n.EventDate, n.PostedBy, n.ID)
	if err != nil {
		return fmt.Errorf("error updating notice: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}
	return nil
}

// Delete removes a notice
func (r *NoticeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting notice: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}
	return nil
}
