package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rrens/autocatalog/internal/domain"
	"github.com/jackc/pgx/v5"
)

// CarMakeRepository handles car make data access
type CarMakeRepository struct {
	db *DB
}

// NewCarMakeRepository creates a new car make repository
func NewCarMakeRepository(db *DB) *CarMakeRepository {
	return &CarMakeRepository{db: db}
}

// Create inserts a new make. Returns domain.ErrConflict when the name is
// already taken.
func (r *CarMakeRepository) Create(ctx context.Context, make *domain.CarMake) error {
	query := `INSERT INTO car_makes (name) VALUES ($1) RETURNING id`

	err := r.db.Pool.QueryRow(ctx, query, make.Name).Scan(&make.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("failed to create make: %w", err)
	}

	return nil
}

// GetByID retrieves a make by ID. Returns nil, nil on miss.
func (r *CarMakeRepository) GetByID(ctx context.Context, id int64) (*domain.CarMake, error) {
	query := `SELECT id, name FROM car_makes WHERE id = $1`

	var make domain.CarMake
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&make.ID, &make.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get make: %w", err)
	}

	return &make, nil
}

// Update renames a make. Returns domain.ErrNotFound if the make does not
// exist and domain.ErrConflict if the new name is taken.
func (r *CarMakeRepository) Update(ctx context.Context, id int64, name string) error {
	query := `UPDATE car_makes SET name = $2 WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("failed to update make: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes a make and, via cascade, its models and years.
func (r *CarMakeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM car_makes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete make: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// List returns one page of makes in primary-key order.
func (r *CarMakeRepository) List(ctx context.Context, limit, offset int) ([]domain.CarMake, error) {
	query := `
		SELECT id, name
		FROM car_makes
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list makes: %w", err)
	}
	defer rows.Close()

	var makes []domain.CarMake
	for rows.Next() {
		var make domain.CarMake
		if err := rows.Scan(&make.ID, &make.Name); err != nil {
			return nil, fmt.Errorf("failed to scan make: %w", err)
		}
		makes = append(makes, make)
	}

	return makes, rows.Err()
}

// Count returns the total number of makes.
func (r *CarMakeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM car_makes`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count makes: %w", err)
	}

	return count, nil
}

// Upsert returns the ID of the make with the given name, inserting it if
// absent. Used by the feed sync; idempotent across concurrent runs.
func (r *CarMakeRepository) Upsert(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO car_makes (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	var id int64
	if err := r.db.Pool.QueryRow(ctx, query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to upsert make: %w", err)
	}

	return id, nil
}
