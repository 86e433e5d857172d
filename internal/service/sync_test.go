package service

import (
	"context"
	"testing"

	"github.com/Rrens/autocatalog/internal/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSyncMocks() (*MockFeedFetcher, *MockCarMakeRepository, *MockCarModelRepository, *MockCarYearRepository) {
	return new(MockFeedFetcher), new(MockCarMakeRepository), new(MockCarModelRepository), new(MockCarYearRepository)
}

func TestSyncService_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts the full hierarchy", func(t *testing.T) {
		fetcher, makes, models, years := newSyncMocks()
		svc := NewSyncService(fetcher, makes, models, years, nil, 2012, 2022)

		fetcher.On("FetchVehicles", ctx).Return([]feed.VehicleRecord{
			{Year: 2015, Make: "Toyota", Model: "Corolla"},
			{Year: 2016, Make: "Toyota", Model: "Corolla"},
			{Year: 2015, Make: "Honda", Model: "Civic"},
		}, nil)

		makes.On("Upsert", ctx, "Toyota").Return(int64(1), nil).Once()
		makes.On("Upsert", ctx, "Honda").Return(int64(2), nil).Once()
		models.On("Upsert", ctx, "Corolla", int64(1)).Return(int64(10), nil).Once()
		models.On("Upsert", ctx, "Civic", int64(2)).Return(int64(20), nil).Once()
		years.On("Upsert", ctx, 2015, int64(10)).Return(int64(100), nil)
		years.On("Upsert", ctx, 2016, int64(10)).Return(int64(101), nil)
		years.On("Upsert", ctx, 2015, int64(20)).Return(int64(102), nil)

		synced, err := svc.Run(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 3, synced)

		// Repeated makes and models hit storage once per run
		fetcher.AssertExpectations(t)
		makes.AssertExpectations(t)
		models.AssertExpectations(t)
		years.AssertExpectations(t)
	})

	t.Run("skips records outside the year window", func(t *testing.T) {
		fetcher, makes, models, years := newSyncMocks()
		svc := NewSyncService(fetcher, makes, models, years, nil, 2012, 2022)

		fetcher.On("FetchVehicles", ctx).Return([]feed.VehicleRecord{
			{Year: 2011, Make: "Toyota", Model: "Corolla"},
			{Year: 2023, Make: "Toyota", Model: "Corolla"},
			{Year: 2012, Make: "Toyota", Model: "Corolla"},
			{Year: 2022, Make: "Toyota", Model: "Corolla"},
		}, nil)

		makes.On("Upsert", ctx, "Toyota").Return(int64(1), nil).Once()
		models.On("Upsert", ctx, "Corolla", int64(1)).Return(int64(10), nil).Once()
		years.On("Upsert", ctx, 2012, int64(10)).Return(int64(100), nil)
		years.On("Upsert", ctx, 2022, int64(10)).Return(int64(101), nil)

		synced, err := svc.Run(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, synced)
		years.AssertNumberOfCalls(t, "Upsert", 2)
	})

	t.Run("skips blank makes and models", func(t *testing.T) {
		fetcher, makes, models, years := newSyncMocks()
		svc := NewSyncService(fetcher, makes, models, years, nil, 2012, 2022)

		fetcher.On("FetchVehicles", ctx).Return([]feed.VehicleRecord{
			{Year: 2015, Make: "", Model: "Corolla"},
			{Year: 2015, Make: "Toyota", Model: ""},
		}, nil)

		synced, err := svc.Run(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, synced)
		makes.AssertNotCalled(t, "Upsert")
	})

	t.Run("feed failure", func(t *testing.T) {
		fetcher, makes, models, years := newSyncMocks()
		svc := NewSyncService(fetcher, makes, models, years, nil, 2012, 2022)

		fetcher.On("FetchVehicles", ctx).Return(nil, assert.AnError)

		synced, err := svc.Run(ctx)
		assert.Error(t, err)
		assert.Equal(t, 0, synced)
	})

	t.Run("invalidates listing caches after changes", func(t *testing.T) {
		fetcher, makes, models, years := newSyncMocks()
		cache := new(MockPageCache)
		svc := NewSyncService(fetcher, makes, models, years, cache, 2012, 2022)

		fetcher.On("FetchVehicles", ctx).Return([]feed.VehicleRecord{
			{Year: 2015, Make: "Toyota", Model: "Corolla"},
		}, nil)
		makes.On("Upsert", ctx, "Toyota").Return(int64(1), nil)
		models.On("Upsert", ctx, "Corolla", int64(1)).Return(int64(10), nil)
		years.On("Upsert", ctx, 2015, int64(10)).Return(int64(100), nil)

		cache.On("Invalidate", ctx, "makes").Return(int64(1), nil)
		cache.On("Invalidate", ctx, "models").Return(int64(1), nil)
		cache.On("Invalidate", ctx, "years").Return(int64(1), nil)

		_, err := svc.Run(ctx)
		assert.NoError(t, err)
		cache.AssertExpectations(t)
	})

	t.Run("does not invalidate when nothing synced", func(t *testing.T) {
		fetcher, makes, models, years := newSyncMocks()
		cache := new(MockPageCache)
		svc := NewSyncService(fetcher, makes, models, years, cache, 2012, 2022)

		fetcher.On("FetchVehicles", ctx).Return([]feed.VehicleRecord{}, nil)

		_, err := svc.Run(ctx)
		assert.NoError(t, err)
		cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})
}
