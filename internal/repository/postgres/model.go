package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rrens/autocatalog/internal/domain"
	"github.com/jackc/pgx/v5"
)

// CarModelRepository handles car model data access
type CarModelRepository struct {
	db *DB
}

// NewCarModelRepository creates a new car model repository
func NewCarModelRepository(db *DB) *CarModelRepository {
	return &CarModelRepository{db: db}
}

// Create inserts a new model. Returns domain.ErrConflict when (make_id, name)
// is already taken and domain.ErrNotFound when the parent make is missing.
func (r *CarModelRepository) Create(ctx context.Context, model *domain.CarModel) error {
	query := `INSERT INTO car_models (name, make_id) VALUES ($1, $2) RETURNING id`

	err := r.db.Pool.QueryRow(ctx, query, model.Name, model.MakeID).Scan(&model.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to create model: %w", err)
	}

	return nil
}

// GetByID retrieves a model by ID. Returns nil, nil on miss.
func (r *CarModelRepository) GetByID(ctx context.Context, id int64) (*domain.CarModel, error) {
	query := `SELECT id, name, make_id FROM car_models WHERE id = $1`

	var model domain.CarModel
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&model.ID, &model.Name, &model.MakeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get model: %w", err)
	}

	return &model, nil
}

// Update renames a model. Returns domain.ErrNotFound if the model does not
// exist and domain.ErrConflict if the name is taken within its make.
func (r *CarModelRepository) Update(ctx context.Context, id int64, name string) error {
	query := `UPDATE car_models SET name = $2 WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("failed to update model: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes a model and, via cascade, its years.
func (r *CarModelRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM car_models WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete model: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// List returns one page of models in primary-key order.
func (r *CarModelRepository) List(ctx context.Context, limit, offset int) ([]domain.CarModel, error) {
	query := `
		SELECT id, name, make_id
		FROM car_models
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer rows.Close()

	var models []domain.CarModel
	for rows.Next() {
		var model domain.CarModel
		if err := rows.Scan(&model.ID, &model.Name, &model.MakeID); err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		models = append(models, model)
	}

	return models, rows.Err()
}

// Count returns the total number of models.
func (r *CarModelRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM car_models`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count models: %w", err)
	}

	return count, nil
}

// Upsert returns the ID of the model with the given name under the make,
// inserting it if absent.
func (r *CarModelRepository) Upsert(ctx context.Context, name string, makeID int64) (int64, error) {
	query := `
		INSERT INTO car_models (name, make_id)
		VALUES ($1, $2)
		ON CONFLICT (make_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	var id int64
	if err := r.db.Pool.QueryRow(ctx, query, name, makeID).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to upsert model: %w", err)
	}

	return id, nil
}
