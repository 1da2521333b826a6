package usecase_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recreation-search/internal/config"
	"github.com/recreation-search/internal/domain"
	"github.com/recreation-search/internal/pkg/errors"
	"github.com/recreation-search/internal/usecase"
	"github.com/recreation-search/internal/usecase/dto"
)

// MockRecreationResourceRepository is a mock of RecreationResourceRepository
type MockRecreationResourceRepository struct {
	mock.Mock
}

func (m *MockRecreationResourceRepository) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResult), args.Error(1)
}

func (m *MockRecreationResourceRepository) GetByID(ctx context.Context, id string) (*domain.ResourceRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResourceRow), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func sampleResult() *domain.SearchResult {
	return &domain.SearchResult{
		Rows: []domain.ResourceRow{
			{ID: "REC0001", Name: "Alice Lake", HasToilets: true},
			{ID: "REC0002", Name: "Brohm Lake"},
		},
		Dynamic: []domain.DynamicFacetCount{
			{ActivityCode: 1, Description: "Angling", Count: 2},
			{ActivityCode: 9, Description: "Hiking", Count: 0},
		},
		Static: []domain.StaticFacetCount{
			{Dimension: domain.DimensionDistrict, Code: "RDSQ", Description: "Sea to Sky", Count: 2},
			{Dimension: domain.DimensionType, Code: "SIT", Description: "Recreation site", Count: 2},
		},
		Totals: domain.FacetTotals{Total: 22, Toilets: 1, Tables: 0},
	}
}

func newSearchUseCase(repo *MockRecreationResourceRepository) *usecase.SearchUseCase {
	return usecase.NewSearchUseCase(repo, nil, zap.NewNop(), 0, config.DefaultSearchConfig())
}

func TestSearchUseCase_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("no limit uses cumulative window", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		repo.On("Search", ctx, domain.SearchCriteria{Filter: "lake", Take: 30, Skip: 0}).
			Return(sampleResult(), nil).Once()

		resp, err := newSearchUseCase(repo).Search(ctx, dto.SearchRequest{Page: 3, Filter: "lake"})
		require.NoError(t, err)

		assert.Equal(t, 3, resp.Page)
		assert.Nil(t, resp.Limit)
		assert.Equal(t, 22, resp.Total, "total comes from the scalar, not from len(data)")
		assert.Len(t, resp.Data, 2)
		assert.Len(t, resp.Filters, 5)
		repo.AssertExpectations(t)
	})

	t.Run("limit pages are disjoint", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		repo.On("Search", ctx, domain.SearchCriteria{Take: 5, Skip: 0}).Return(sampleResult(), nil).Once()
		repo.On("Search", ctx, domain.SearchCriteria{Take: 5, Skip: 5}).Return(sampleResult(), nil).Once()
		uc := newSearchUseCase(repo)

		first, err := uc.Search(ctx, dto.SearchRequest{Page: 1, Limit: intPtr(5)})
		require.NoError(t, err)
		_, err = uc.Search(ctx, dto.SearchRequest{Page: 2, Limit: intPtr(5)})
		require.NoError(t, err)

		require.NotNil(t, first.Limit)
		assert.Equal(t, 5, *first.Limit)
		repo.AssertExpectations(t)
	})

	t.Run("limit above max is clamped but echoed", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		repo.On("Search", ctx, domain.SearchCriteria{Take: 10, Skip: 10}).Return(sampleResult(), nil).Once()

		resp, err := newSearchUseCase(repo).Search(ctx, dto.SearchRequest{Page: 2, Limit: intPtr(50)})
		require.NoError(t, err)
		assert.Equal(t, 50, *resp.Limit)
		repo.AssertExpectations(t)
	})

	t.Run("page above max without limit is rejected before any query", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}

		_, err := newSearchUseCase(repo).Search(ctx, dto.SearchRequest{Page: 11})
		assert.ErrorIs(t, err, errors.ErrPageLimitExceeded)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("page above max with limit is allowed", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		repo.On("Search", ctx, domain.SearchCriteria{Take: 10, Skip: 100}).Return(sampleResult(), nil).Once()

		_, err := newSearchUseCase(repo).Search(ctx, dto.SearchRequest{Page: 11, Limit: intPtr(10)})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("last page without limit is allowed", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		repo.On("Search", ctx, domain.SearchCriteria{Take: 100, Skip: 0}).Return(sampleResult(), nil).Once()

		resp, err := newSearchUseCase(repo).Search(ctx, dto.SearchRequest{Page: 10})
		require.NoError(t, err)
		assert.Equal(t, 10, resp.Page)
		repo.AssertExpectations(t)
	})

	t.Run("page whose offset overflows is rejected", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}

		_, err := newSearchUseCase(repo).Search(ctx, dto.SearchRequest{Page: math.MaxInt/10 + 2, Limit: intPtr(10)})
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)

		// лимит клампится до 10, поэтому большой limit не сдвигает границу
		_, err = newSearchUseCase(repo).Search(ctx, dto.SearchRequest{Page: math.MaxInt/10 + 2, Limit: intPtr(500)})
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})

	t.Run("largest representable offset is allowed", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		repo.On("Search", ctx, domain.SearchCriteria{Take: 10, Skip: math.MaxInt / 10 * 10}).
			Return(sampleResult(), nil).Once()

		_, err := newSearchUseCase(repo).Search(ctx, dto.SearchRequest{Page: math.MaxInt/10 + 1, Limit: intPtr(10)})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("lat without lon is rejected", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		uc := newSearchUseCase(repo)

		_, err := uc.Search(ctx, dto.SearchRequest{Page: 1, Lat: floatPtr(49.3)})
		assert.ErrorIs(t, err, errors.ErrGeoPairRequired)
		_, err = uc.Search(ctx, dto.SearchRequest{Page: 1, Lon: floatPtr(-123.1)})
		assert.ErrorIs(t, err, errors.ErrGeoPairRequired)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("geo pair builds point", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		repo.On("Search", ctx, domain.SearchCriteria{
			Point: &domain.GeoPoint{Lat: 49.3, Lon: -123.1},
			Take:  10,
		}).Return(sampleResult(), nil).Once()

		_, err := newSearchUseCase(repo).Search(ctx, dto.SearchRequest{Page: 1, Lat: floatPtr(49.3), Lon: floatPtr(-123.1)})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}

		_, err := newSearchUseCase(repo).Search(ctx, dto.SearchRequest{Page: 1, Lat: floatPtr(95), Lon: floatPtr(0)})
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
	})

	t.Run("invalid page and limit", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		uc := newSearchUseCase(repo)

		_, err := uc.Search(ctx, dto.SearchRequest{Page: 0})
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)

		_, err = uc.Search(ctx, dto.SearchRequest{Page: 1, Limit: intPtr(-1)})
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)

		_, err = uc.Search(ctx, dto.SearchRequest{Page: 1, Facilities: []string{"shower"}})
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("empty result", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		repo.On("Search", ctx, mock.Anything).Return(&domain.SearchResult{}, nil).Once()

		resp, err := newSearchUseCase(repo).Search(ctx, dto.SearchRequest{Page: 1, Filter: "nothing"})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.NotNil(t, resp.Data)
		assert.Empty(t, resp.Data)
		for _, g := range resp.Filters {
			assert.NotNil(t, g.Options, g.Param)
		}
	})

	t.Run("store error is returned unchanged", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		storeErr := fmt.Errorf("query search page: %w", stderrors.New("connection refused"))
		repo.On("Search", ctx, mock.Anything).Return(nil, storeErr).Once()

		resp, err := newSearchUseCase(repo).Search(ctx, dto.SearchRequest{Page: 1})
		assert.Nil(t, resp)
		assert.Same(t, storeErr, err)
	})

	t.Run("criteria passes all filters", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		repo.On("Search", ctx, mock.MatchedBy(func(c domain.SearchCriteria) bool {
			return assert.ObjectsAreEqual([]int{1, 32}, c.Activities) &&
				assert.ObjectsAreEqual([]string{"SIT"}, c.Types) &&
				assert.ObjectsAreEqual([]string{"RDCK"}, c.Districts) &&
				assert.ObjectsAreEqual([]string{"B"}, c.Access) &&
				assert.ObjectsAreEqual([]string{"toilet"}, c.Facilities)
		})).Return(sampleResult(), nil).Once()

		_, err := newSearchUseCase(repo).Search(ctx, dto.SearchRequest{
			Page:       1,
			Activities: []int{1, 32},
			Type:       []string{"SIT"},
			District:   []string{"RDCK"},
			Access:     []string{"B"},
			Facilities: []string{"toilet"},
		})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestSearchUseCase_Cache(t *testing.T) {
	ctx := context.Background()
	ttl := 5 * time.Minute

	t.Run("miss queries store and caches response", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		cache := &MockCacheRepository{}
		repo.On("Search", ctx, mock.Anything).Return(sampleResult(), nil).Once()
		cache.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, nil).Once()
		cache.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, ttl).Return(nil).Once()

		uc := usecase.NewSearchUseCase(repo, cache, zap.NewNop(), ttl, config.DefaultSearchConfig())
		_, err := uc.Search(ctx, dto.SearchRequest{Page: 1, Filter: "lake"})
		require.NoError(t, err)

		key := cache.Calls[0].Arguments.String(1)
		assert.Regexp(t, `^search:[0-9a-f]{32}$`, key)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("hit skips store", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		cache := &MockCacheRepository{}
		cache.On("Get", ctx, mock.AnythingOfType("string")).
			Return([]byte(`{"data":[],"page":1,"total":7,"filters":[]}`), nil).Once()

		uc := usecase.NewSearchUseCase(repo, cache, zap.NewNop(), ttl, config.DefaultSearchConfig())
		resp, err := uc.Search(ctx, dto.SearchRequest{Page: 1})
		require.NoError(t, err)

		assert.Equal(t, 7, resp.Total)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("cache failures are ignored", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		cache := &MockCacheRepository{}
		repo.On("Search", ctx, mock.Anything).Return(sampleResult(), nil).Once()
		cache.On("Get", ctx, mock.Anything).Return(nil, stderrors.New("redis down")).Once()
		cache.On("Set", ctx, mock.Anything, mock.Anything, ttl).Return(stderrors.New("redis down")).Once()

		uc := usecase.NewSearchUseCase(repo, cache, zap.NewNop(), ttl, config.DefaultSearchConfig())
		resp, err := uc.Search(ctx, dto.SearchRequest{Page: 1})
		require.NoError(t, err)
		assert.Equal(t, 22, resp.Total)
	})

	t.Run("key ignores code order", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		cache := &MockCacheRepository{}
		repo.On("Search", ctx, mock.Anything).Return(sampleResult(), nil)
		cache.On("Get", ctx, mock.Anything).Return(nil, nil)
		cache.On("Set", ctx, mock.Anything, mock.Anything, ttl).Return(nil)

		uc := usecase.NewSearchUseCase(repo, cache, zap.NewNop(), ttl, config.DefaultSearchConfig())
		_, err := uc.Search(ctx, dto.SearchRequest{Page: 1, Activities: []int{32, 1}, District: []string{"B", "A"}})
		require.NoError(t, err)
		_, err = uc.Search(ctx, dto.SearchRequest{Page: 1, Activities: []int{1, 32}, District: []string{"A", "B"}})
		require.NoError(t, err)

		assert.Equal(t, cache.Calls[0].Arguments.String(1), cache.Calls[2].Arguments.String(1))
	})

	t.Run("zero ttl disables cache", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		cache := &MockCacheRepository{}
		repo.On("Search", ctx, mock.Anything).Return(sampleResult(), nil).Once()

		uc := usecase.NewSearchUseCase(repo, cache, zap.NewNop(), 0, config.DefaultSearchConfig())
		_, err := uc.Search(ctx, dto.SearchRequest{Page: 1})
		require.NoError(t, err)
		cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestRecreationResourceUseCase_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		repo.On("GetByID", ctx, "REC0001").Return(&domain.ResourceRow{
			ID:               "REC0001",
			Name:             "Alice Lake",
			ClosestCommunity: strPtr("Squamish"),
		}, nil).Once()

		uc := usecase.NewRecreationResourceUseCase(repo, zap.NewNop())
		res, err := uc.GetByID(ctx, " REC0001 ")
		require.NoError(t, err)
		assert.Equal(t, "Squamish", res.ClosestCommunity)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &MockRecreationResourceRepository{}
		repo.On("GetByID", ctx, "REC9999").Return(nil, errors.ErrResourceNotFound).Once()

		uc := usecase.NewRecreationResourceUseCase(repo, zap.NewNop())
		_, err := uc.GetByID(ctx, "REC9999")
		assert.ErrorIs(t, err, errors.ErrResourceNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		uc := usecase.NewRecreationResourceUseCase(&MockRecreationResourceRepository{}, zap.NewNop())
		_, err := uc.GetByID(ctx, "  ")
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})
}
