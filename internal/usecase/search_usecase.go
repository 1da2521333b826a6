package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/recreation-search/internal/config"
	"github.com/recreation-search/internal/domain"
	"github.com/recreation-search/internal/domain/repository"
	"github.com/recreation-search/internal/pkg/errors"
	"github.com/recreation-search/internal/pkg/utils"
	"github.com/recreation-search/internal/pkg/validator"
	"github.com/recreation-search/internal/usecase/dto"
)

// SearchUseCase - поиск объектов отдыха со страницей и меню фильтров
type SearchUseCase struct {
	resourceRepo repository.RecreationResourceRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	cacheTTL     time.Duration
	cfg          config.SearchConfig
}

// NewSearchUseCase - создание нового SearchUseCase. cacheRepo может быть nil,
// cacheTTL == 0 отключает кеш.
func NewSearchUseCase(
	resourceRepo repository.RecreationResourceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	cfg config.SearchConfig,
) *SearchUseCase {
	return &SearchUseCase{
		resourceRepo: resourceRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
		cfg:          cfg,
	}
}

// Search - валидация, окно выборки, три запроса в одном снапшоте, форматирование.
// Ошибки хранилища возвращаются как есть, частичный результат не отдается.
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	if req.Limit == nil && req.Page > uc.cfg.MaxPage {
		return nil, errors.ErrPageLimitExceeded
	}
	if (req.Lat == nil) != (req.Lon == nil) {
		return nil, errors.ErrGeoPairRequired
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if req.Lat != nil && !utils.ValidateCoordinates(*req.Lat, *req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	// skip = (page-1)*take не должен переполнять int
	if req.Limit != nil && req.Page-1 > math.MaxInt/uc.pageSize(*req.Limit) {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"page": "max"})
	}

	criteria := uc.buildCriteria(req)

	uc.logger.Debug("Search request",
		zap.Int("page", req.Page),
		zap.Int("take", criteria.Take),
		zap.Int("skip", criteria.Skip),
		zap.Any("active_filters", criteria.ActiveFilters()),
		zap.Bool("only_activities", criteria.IsOnly(domain.DimensionActivities)),
		zap.Bool("geo", criteria.Point != nil),
	)

	cacheKey := ""
	if uc.cacheEnabled() {
		cacheKey = uc.createCacheKey(criteria, req.Page, req.Limit)
	}
	if cacheKey != "" {
		if resp := uc.fromCache(ctx, cacheKey); resp != nil {
			return resp, nil
		}
	}

	result, err := uc.resourceRepo.Search(ctx, criteria)
	if err != nil {
		uc.logger.Error("Failed to search recreation resources", zap.Error(err))
		return nil, err
	}

	resp := &dto.SearchResponse{
		Data:    FormatResources(result.Rows),
		Page:    req.Page,
		Limit:   req.Limit,
		Total:   result.Totals.Total,
		Filters: BuildFilterMenu(result.FacetCounts(), result.Totals),
	}

	if cacheKey != "" {
		uc.toCache(ctx, cacheKey, resp)
	}

	return resp, nil
}

// buildCriteria вычисляет take/skip. С limit - обычная страница,
// без limit - накопительное окно page*default с начала выборки.
func (uc *SearchUseCase) buildCriteria(req dto.SearchRequest) domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		Filter:     req.Filter,
		Activities: req.Activities,
		Types:      req.Type,
		Districts:  req.District,
		Access:     req.Access,
		Facilities: req.Facilities,
	}
	if req.Lat != nil && req.Lon != nil {
		criteria.Point = &domain.GeoPoint{Lat: *req.Lat, Lon: *req.Lon}
	}

	if req.Limit != nil {
		take := uc.pageSize(*req.Limit)
		criteria.Take = take
		criteria.Skip = (req.Page - 1) * take
	} else {
		criteria.Take = req.Page * uc.cfg.DefaultLimit
	}

	return criteria
}

// pageSize - limit, ограниченный сверху MaxLimit
func (uc *SearchUseCase) pageSize(limit int) int {
	if limit > uc.cfg.MaxLimit {
		return uc.cfg.MaxLimit
	}
	return limit
}

func (uc *SearchUseCase) cacheEnabled() bool {
	return uc.cacheRepo != nil && uc.cacheTTL > 0
}

// createCacheKey - ключ не зависит от порядка кодов в фильтрах.
// Пустой ключ означает, что кеш для запроса не используется.
func (uc *SearchUseCase) createCacheKey(criteria domain.SearchCriteria, page int, limit *int) string {
	canonical := criteria
	canonical.Activities = append([]int(nil), criteria.Activities...)
	sort.Ints(canonical.Activities)
	canonical.Types = sortedCopy(criteria.Types)
	canonical.Districts = sortedCopy(criteria.Districts)
	canonical.Access = sortedCopy(criteria.Access)
	canonical.Facilities = sortedCopy(criteria.Facilities)

	params, err := json.Marshal(struct {
		Criteria domain.SearchCriteria `json:"criteria"`
		Page     int                   `json:"page"`
		Limit    *int                  `json:"limit"`
	}{canonical, page, limit})
	if err != nil {
		uc.logger.Warn("Failed to build search cache key, cache skipped", zap.Error(err))
		return ""
	}

	return fmt.Sprintf("search:%x", md5.Sum(params))
}

func (uc *SearchUseCase) fromCache(ctx context.Context, key string) *dto.SearchResponse {
	cached, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to get search from cache", zap.String("key", key), zap.Error(err))
		return nil
	}
	if len(cached) == 0 {
		return nil
	}

	var resp dto.SearchResponse
	if err := json.Unmarshal(cached, &resp); err != nil {
		uc.logger.Warn("Failed to unmarshal cached search", zap.String("key", key), zap.Error(err))
		return nil
	}

	uc.logger.Debug("Search cache hit", zap.String("key", key))
	return &resp
}

func (uc *SearchUseCase) toCache(ctx context.Context, key string, resp *dto.SearchResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("Failed to marshal search response", zap.Error(err))
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache search", zap.String("key", key), zap.Error(err))
	}
}

func sortedCopy(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}
