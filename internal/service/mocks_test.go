package service

import (
	"context"
	"time"

	"github.com/Rrens/autocatalog/internal/domain"
	"github.com/Rrens/autocatalog/internal/feed"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockCarMakeRepository mocks the CarMakeRepository interface
type MockCarMakeRepository struct {
	mock.Mock
}

func (m *MockCarMakeRepository) Create(ctx context.Context, make *domain.CarMake) error {
	args := m.Called(ctx, make)
	return args.Error(0)
}

func (m *MockCarMakeRepository) GetByID(ctx context.Context, id int64) (*domain.CarMake, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarMake), args.Error(1)
}

func (m *MockCarMakeRepository) Update(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockCarMakeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarMakeRepository) List(ctx context.Context, limit, offset int) ([]domain.CarMake, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.CarMake), args.Error(1)
}

func (m *MockCarMakeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarMakeRepository) Upsert(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

// MockCarModelRepository mocks the CarModelRepository interface
type MockCarModelRepository struct {
	mock.Mock
}

func (m *MockCarModelRepository) Create(ctx context.Context, model *domain.CarModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockCarModelRepository) GetByID(ctx context.Context, id int64) (*domain.CarModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarModel), args.Error(1)
}

func (m *MockCarModelRepository) Update(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockCarModelRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarModelRepository) List(ctx context.Context, limit, offset int) ([]domain.CarModel, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.CarModel), args.Error(1)
}

func (m *MockCarModelRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarModelRepository) Upsert(ctx context.Context, name string, makeID int64) (int64, error) {
	args := m.Called(ctx, name, makeID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCarYearRepository mocks the CarYearRepository interface
type MockCarYearRepository struct {
	mock.Mock
}

func (m *MockCarYearRepository) Create(ctx context.Context, year *domain.CarYear) error {
	args := m.Called(ctx, year)
	return args.Error(0)
}

func (m *MockCarYearRepository) GetByID(ctx context.Context, id int64) (*domain.CarYear, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CarYear), args.Error(1)
}

func (m *MockCarYearRepository) Update(ctx context.Context, id int64, yearValue int) error {
	args := m.Called(ctx, id, yearValue)
	return args.Error(0)
}

func (m *MockCarYearRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarYearRepository) List(ctx context.Context, limit, offset int) ([]domain.CarYear, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.CarYear), args.Error(1)
}

func (m *MockCarYearRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarYearRepository) Upsert(ctx context.Context, yearValue int, modelID int64) (int64, error) {
	args := m.Called(ctx, yearValue, modelID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPageCache mocks the PageCache interface
type MockPageCache struct {
	mock.Mock
}

func (m *MockPageCache) Get(ctx context.Context, resource string, page, perPage int, dest any) (bool, error) {
	args := m.Called(ctx, resource, page, perPage, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockPageCache) Set(ctx context.Context, resource string, page, perPage int, value any) error {
	args := m.Called(ctx, resource, page, perPage, value)
	return args.Error(0)
}

func (m *MockPageCache) Invalidate(ctx context.Context, resource string) (int64, error) {
	args := m.Called(ctx, resource)
	return args.Get(0).(int64), args.Error(1)
}

// MockFeedFetcher mocks the FeedFetcher interface
type MockFeedFetcher struct {
	mock.Mock
}

func (m *MockFeedFetcher) FetchVehicles(ctx context.Context) ([]feed.VehicleRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feed.VehicleRecord), args.Error(1)
}
