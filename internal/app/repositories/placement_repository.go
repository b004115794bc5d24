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

const placementColumns = `id, title, company, description, location, salary, type,
	requirements, deadline, active, created_by, created_at, updated_at`

// PlacementRepository handles database operations for placements
type PlacementRepository struct {
	db *pgxpool.Pool
}

// NewPlacementRepository creates a new placement repository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{db: db}
}

func scanPlacement(row pgx.Row) (*models.Placement, error) {
	var p models.Placement
	err := row.Scan(
		&p.ID, &p.Title, &p.Company, &p.Description, &p.Location, &p.Salary, &p.Type,
		&p.Requirements, &p.Deadline, &p.Active, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new placement
func (r *PlacementRepository) Create(ctx context.Context, p *models.Placement) error {
	query := `
		INSERT INTO placements (title, company, description, location, salary, type,
			requirements, deadline, active, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		p.Title, p.Company, p.Description, p.Location, p.Salary, p.Type,
		p.Requirements, p.Deadline, p.Active, p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating placement: %w", err)
	}
	return nil
}

// GetByID retrieves a placement by ID
func (r *PlacementRepository) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	query := `SELECT ` + placementColumns + ` FROM placements WHERE id = $1`

	p, err := scanPlacement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("error retrieving placement: %w", err)
	}
	return p, nil
}

// List retrieves placements matching the search term over title and
// company, paginated. When activeOnly is set inactive rows are hidden.
func (r *PlacementRepository) List(ctx context.Context, activeOnly bool, search string, offset, limit int) ([]*models.Placement, int64, error) {
	where := `WHERE (NOT $1 OR active)
		AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR company ILIKE '%' || $2 || '%')`

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM placements `+where, activeOnly, search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting placements: %w", err)
	}

	query := `SELECT ` + placementColumns + ` FROM placements ` + where + `
		ORDER BY deadline
		OFFSET $3 LIMIT $4`

	rows, err := r.db.Query(ctx, query, activeOnly, search, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing placements: %w", err)
	}
	defer rows.Close()

	var placements []*models.Placement
	for rows.Next() {
		p, err := scanPlacement(rows)
		if err != nil {
			return nil, 0, err
		}
		placements = append(placements, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return placements, total, nil
}

// Update updates an existing placement
func (r *PlacementRepository) Update(ctx context.Context, p *models.Placement) error {
	query := `
		UPDATE placements
		SET title = $1, company = $2, description = $3, location = $4, salary = $5,
			type = $6, requirements = $7, deadline = $8, updated_at = NOW()
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		p.Title, p.Company, p.Description, p.Location, p.Salary,
		p.Type, p.Requirements, p.Deadline, p.ID)
	if err != nil {
		return fmt.Errorf("error updating placement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}
	return nil
}

// SetActive toggles the active flag and returns the new value.
func (r *PlacementRepository) SetActive(ctx context.Context, id int64, active bool) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE placements SET active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("error toggling placement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}
	return nil
}

// DeleteTx deletes a placement inside a transaction. The caller removes
// its applications in the same transaction first.
func (r *PlacementRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id int64) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM placements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting placement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}
	return nil
}

// CountByActive aggregates placement counts for the dashboard.
func (r *PlacementRepository) CountByActive(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT CASE WHEN active THEN 'active' ELSE 'inactive' END, COUNT(*) FROM placements GROUP BY 1`)
	if err != nil {
		return nil, fmt.Errorf("error counting placements: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		counts[key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
