package service

import (
	"context"
	"strings"

	"github.com/Rrens/autocatalog/internal/domain"
	"github.com/Rrens/autocatalog/internal/pagination"
	"github.com/rs/zerolog/log"
)

// Cached listing resources. Deleting a parent cascades, so its children's
// pages are invalidated together with its own.
const (
	resourceMakes  = "makes"
	resourceModels = "models"
	resourceYears  = "years"
)

// CarMakeRepository handles make persistence
type CarMakeRepository interface {
	Create(ctx context.Context, make *domain.CarMake) error
	GetByID(ctx context.Context, id int64) (*domain.CarMake, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.CarMake, error)
	Count(ctx context.Context) (int64, error)
	Upsert(ctx context.Context, name string) (int64, error)
}

// CarModelRepository handles model persistence
type CarModelRepository interface {
	Create(ctx context.Context, model *domain.CarModel) error
	GetByID(ctx context.Context, id int64) (*domain.CarModel, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.CarModel, error)
	Count(ctx context.Context) (int64, error)
	Upsert(ctx context.Context, name string, makeID int64) (int64, error)
}

// CarYearRepository handles year persistence
type CarYearRepository interface {
	Create(ctx context.Context, year *domain.CarYear) error
	GetByID(ctx context.Context, id int64) (*domain.CarYear, error)
	Update(ctx context.Context, id int64, yearValue int) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.CarYear, error)
	Count(ctx context.Context) (int64, error)
	Upsert(ctx context.Context, yearValue int, modelID int64) (int64, error)
}

// PageCache caches listing pages per resource
type PageCache interface {
	Get(ctx context.Context, resource string, page, perPage int, dest any) (bool, error)
	Set(ctx context.Context, resource string, page, perPage int, value any) error
	Invalidate(ctx context.Context, resource string) (int64, error)
}

// CatalogService handles the vehicle reference hierarchy
type CatalogService struct {
	makes  CarMakeRepository
	models CarModelRepository
	years  CarYearRepository
	cache  PageCache
}

// NewCatalogService creates a new catalog service. The cache may be nil to
// disable listing caching.
func NewCatalogService(makes CarMakeRepository, models CarModelRepository, years CarYearRepository, cache PageCache) *CatalogService {
	return &CatalogService{
		makes:  makes,
		models: models,
		years:  years,
		cache:  cache,
	}
}

func (s *CatalogService) invalidate(ctx context.Context, resources ...string) {
	if s.cache == nil {
		return
	}
	for _, resource := range resources {
		if _, err := s.cache.Invalidate(ctx, resource); err != nil {
			log.Warn().Err(err).Str("resource", resource).Msg("Failed to invalidate listing cache")
		}
	}
}

// listCached serves a listing page through the cache when one is configured.
func listCached[T any](ctx context.Context, s *CatalogService, resource string, p pagination.Params, count pagination.CountFunc, list pagination.ListFunc[T]) (*pagination.Page[T], error) {
	if s.cache != nil {
		var cached pagination.Page[T]
		hit, err := s.cache.Get(ctx, resource, p.Page, p.PerPage, &cached)
		if err != nil {
			log.Warn().Err(err).Str("resource", resource).Msg("Listing cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	page, err := pagination.Paginate(ctx, p, count, list, func(item T) T { return item })
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, resource, p.Page, p.PerPage, page); err != nil {
			log.Warn().Err(err).Str("resource", resource).Msg("Listing cache write failed")
		}
	}

	return page, nil
}

// ListMakes returns one page of makes
func (s *CatalogService) ListMakes(ctx context.Context, p pagination.Params) (*pagination.Page[domain.CarMake], error) {
	return listCached(ctx, s, resourceMakes, p, s.makes.Count, s.makes.List)
}

// CreateMake creates a new make
func (s *CatalogService) CreateMake(ctx context.Context, input domain.CarMakeInput) (*domain.CarMake, error) {
	make := &domain.CarMake{Name: strings.TrimSpace(input.Name)}
	if err := s.makes.Create(ctx, make); err != nil {
		return nil, err
	}

	s.invalidate(ctx, resourceMakes)
	return make, nil
}

// GetMake retrieves a make by ID
func (s *CatalogService) GetMake(ctx context.Context, id int64) (*domain.CarMake, error) {
	make, err := s.makes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if make == nil {
		return nil, domain.ErrNotFound
	}
	return make, nil
}

// UpdateMake renames a make
func (s *CatalogService) UpdateMake(ctx context.Context, id int64, input domain.CarMakeInput) (*domain.CarMake, error) {
	if err := s.makes.Update(ctx, id, strings.TrimSpace(input.Name)); err != nil {
		return nil, err
	}

	s.invalidate(ctx, resourceMakes)
	return s.GetMake(ctx, id)
}

// DeleteMake removes a make and its models and years
func (s *CatalogService) DeleteMake(ctx context.Context, id int64) error {
	if err := s.makes.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, resourceMakes, resourceModels, resourceYears)
	return nil
}

// ListModels returns one page of models
func (s *CatalogService) ListModels(ctx context.Context, p pagination.Params) (*pagination.Page[domain.CarModel], error) {
	return listCached(ctx, s, resourceModels, p, s.models.Count, s.models.List)
}

// CreateModel creates a new model under a make
func (s *CatalogService) CreateModel(ctx context.Context, input domain.CarModelInput) (*domain.CarModel, error) {
	model := &domain.CarModel{Name: strings.TrimSpace(input.Name), MakeID: input.MakeID}
	if err := s.models.Create(ctx, model); err != nil {
		return nil, err
	}

	s.invalidate(ctx, resourceModels)
	return model, nil
}

// GetModel retrieves a model by ID
func (s *CatalogService) GetModel(ctx context.Context, id int64) (*domain.CarModel, error) {
	model, err := s.models.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, domain.ErrNotFound
	}
	return model, nil
}

// UpdateModel renames a model
func (s *CatalogService) UpdateModel(ctx context.Context, id int64, name string) (*domain.CarModel, error) {
	if err := s.models.Update(ctx, id, strings.TrimSpace(name)); err != nil {
		return nil, err
	}

	s.invalidate(ctx, resourceModels)
	return s.GetModel(ctx, id)
}

// DeleteModel removes a model and its years
func (s *CatalogService) DeleteModel(ctx context.Context, id int64) error {
	if err := s.models.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, resourceModels, resourceYears)
	return nil
}

// ListYears returns one page of years
func (s *CatalogService) ListYears(ctx context.Context, p pagination.Params) (*pagination.Page[domain.CarYear], error) {
	return listCached(ctx, s, resourceYears, p, s.years.Count, s.years.List)
}

// CreateYear creates a new year under a model
func (s *CatalogService) CreateYear(ctx context.Context, input domain.CarYearInput) (*domain.CarYear, error) {
	year := &domain.CarYear{Year: input.Year, ModelID: input.ModelID}
	if err := s.years.Create(ctx, year); err != nil {
		return nil, err
	}

	s.invalidate(ctx, resourceYears)
	return year, nil
}

// GetYear retrieves a year by ID
func (s *CatalogService) GetYear(ctx context.Context, id int64) (*domain.CarYear, error) {
	year, err := s.years.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if year == nil {
		return nil, domain.ErrNotFound
	}
	return year, nil
}

// UpdateYear changes a year's value
func (s *CatalogService) UpdateYear(ctx context.Context, id int64, yearValue int) (*domain.CarYear, error) {
	if err := s.years.Update(ctx, id, yearValue); err != nil {
		return nil, err
	}

	s.invalidate(ctx, resourceYears)
	return s.GetYear(ctx, id)
}

// DeleteYear removes a year
func (s *CatalogService) DeleteYear(ctx context.Context, id int64) error {
	if err := s.years.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, resourceYears)
	return nil
}
