package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rrens/autocatalog/internal/domain"
	"github.com/jackc/pgx/v5"
)

// CarYearRepository handles car year data access
type CarYearRepository struct {
	db *DB
}

// NewCarYearRepository creates a new car year repository
func NewCarYearRepository(db *DB) *CarYearRepository {
	return &CarYearRepository{db: db}
}

// Create inserts a new year. Returns domain.ErrConflict when (model_id, year)
// is already taken and domain.ErrNotFound when the parent model is missing.
func (r *CarYearRepository) Create(ctx context.Context, year *domain.CarYear) error {
	query := `INSERT INTO car_years (year, model_id) VALUES ($1, $2) RETURNING id`

	err := r.db.Pool.QueryRow(ctx, query, year.Year, year.ModelID).Scan(&year.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to create year: %w", err)
	}

	return nil
}

// GetByID retrieves a year by ID. Returns nil, nil on miss.
func (r *CarYearRepository) GetByID(ctx context.Context, id int64) (*domain.CarYear, error) {
	query := `SELECT id, year, model_id FROM car_years WHERE id = $1`

	var year domain.CarYear
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&year.ID, &year.Year, &year.ModelID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get year: %w", err)
	}

	return &year, nil
}

// Update changes the year value. Returns domain.ErrNotFound if the row does
// not exist and domain.ErrConflict if the year already exists for the model.
func (r *CarYearRepository) Update(ctx context.Context, id int64, yearValue int) error {
	query := `UPDATE car_years SET year = $2 WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id, yearValue)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("failed to update year: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes a year.
func (r *CarYearRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM car_years WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete year: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// List returns one page of years in primary-key order.
func (r *CarYearRepository) List(ctx context.Context, limit, offset int) ([]domain.CarYear, error) {
	query := `
		SELECT id, year, model_id
		FROM car_years
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}
	defer rows.Close()

	var years []domain.CarYear
	for rows.Next() {
		var year domain.CarYear
		if err := rows.Scan(&year.ID, &year.Year, &year.ModelID); err != nil {
			return nil, fmt.Errorf("failed to scan year: %w", err)
		}
		years = append(years, year)
	}

	return years, rows.Err()
}

// Count returns the total number of years.
func (r *CarYearRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM car_years`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count years: %w", err)
	}

	return count, nil
}

// Upsert returns the ID of the year row for (year, modelID), inserting it if
// absent.
func (r *CarYearRepository) Upsert(ctx context.Context, yearValue int, modelID int64) (int64, error) {
	query := `
		INSERT INTO car_years (year, model_id)
		VALUES ($1, $2)
		ON CONFLICT (model_id, year) DO UPDATE SET year = EXCLUDED.year
		RETURNING id
	`

	var id int64
	if err := r.db.Pool.QueryRow(ctx, query, yearValue, modelID).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to upsert year: %w", err)
	}

	return id, nil
}
