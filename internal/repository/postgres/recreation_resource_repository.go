package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/recreation-search/internal/domain"
	"github.com/recreation-search/internal/domain/repository"
	"github.com/recreation-search/internal/pkg/errors"
	"go.uber.org/zap"
)

type recreationResourceRepository struct {
	db           *sqlx.DB
	logger       *zap.Logger
	queries      *queryBuilder
	radiusMeters float64
}

// NewRecreationResourceRepository создает репозиторий поиска.
// radiusMeters - радиус гео-фильтра вокруг lat/lon.
func NewRecreationResourceRepository(
	db *DB,
	excluded domain.ExcludedCodes,
	radiusMeters float64,
) repository.RecreationResourceRepository {
	return &recreationResourceRepository{
		db:           db.DB,
		logger:       db.logger,
		queries:      newQueryBuilder(excluded),
		radiusMeters: radiusMeters,
	}
}

type resourceRecord struct {
	ID                  string         `db:"rec_resource_id"`
	Name                string         `db:"name"`
	ClosestCommunity    sql.NullString `db:"closest_community"`
	DisplayOnPublicSite sql.NullBool   `db:"display_on_public_site"`
	TypeCode            sql.NullString `db:"recreation_resource_type_code"`
	TypeDescription     sql.NullString `db:"recreation_resource_type"`
	Activities          []byte         `db:"recreation_activity"`
	Status              []byte         `db:"recreation_status"`
	Images              []byte         `db:"recreation_resource_images"`
	DistrictCode        sql.NullString `db:"district_code"`
	DistrictDescription sql.NullString `db:"district_description"`
	AccessCode          sql.NullString `db:"access_code"`
	AccessDescription   sql.NullString `db:"access_description"`
	HasToilets          sql.NullBool   `db:"has_toilets"`
	HasTables           sql.NullBool   `db:"has_tables"`
}

type dynamicCountRecord struct {
	ActivityCode     sql.NullInt64  `db:"recreation_activity_code"`
	Description      sql.NullString `db:"description"`
	Count            sql.NullInt64  `db:"recreation_activity_count"`
	TotalCount       int64          `db:"total_count"`
	TotalToiletCount int64          `db:"total_toilet_count"`
	TotalTableCount  int64          `db:"total_table_count"`
}

type staticCountRecord struct {
	Facet       string         `db:"facet"`
	Code        string         `db:"code"`
	Description sql.NullString `db:"description"`
	Count       int64          `db:"count"`
}

// Search выполняет три запроса (страница, динамические и статические
// счетчики) в одной read-only транзакции, чтобы total и фасеты совпадали со страницей
func (r *recreationResourceRepository) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	predicate := NewPredicate(criteria, r.radiusMeters)

	pageSQL, pageArgs, err := r.queries.PageQuery(predicate, criteria.Take, criteria.Skip)
	if err != nil {
		return nil, fmt.Errorf("build page query: %w", err)
	}
	dynamicSQL, dynamicArgs, err := r.queries.DynamicCountsQuery(predicate)
	if err != nil {
		return nil, fmt.Errorf("build dynamic counts query: %w", err)
	}
	staticSQL, staticArgs, err := r.queries.StaticCountsQuery(predicate)
	if err != nil {
		return nil, fmt.Errorf("build static counts query: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		r.logger.Error("Failed to begin search transaction", zap.Error(err))
		return nil, fmt.Errorf("begin search transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !stderrors.Is(rbErr, sql.ErrTxDone) {
			r.logger.Warn("Failed to rollback search transaction", zap.Error(rbErr))
		}
	}()

	var resources []resourceRecord
	if err := tx.SelectContext(ctx, &resources, pageSQL, pageArgs...); err != nil {
		r.logger.Error("Failed to query search page", zap.Error(err))
		return nil, fmt.Errorf("query search page: %w", err)
	}

	var dynamic []dynamicCountRecord
	if err := tx.SelectContext(ctx, &dynamic, dynamicSQL, dynamicArgs...); err != nil {
		r.logger.Error("Failed to query dynamic facet counts", zap.Error(err))
		return nil, fmt.Errorf("query dynamic facet counts: %w", err)
	}

	var static []staticCountRecord
	if err := tx.SelectContext(ctx, &static, staticSQL, staticArgs...); err != nil {
		r.logger.Error("Failed to query static facet counts", zap.Error(err))
		return nil, fmt.Errorf("query static facet counts: %w", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit search transaction", zap.Error(err))
		return nil, fmt.Errorf("commit search transaction: %w", err)
	}

	result := &domain.SearchResult{
		Rows:    make([]domain.ResourceRow, 0, len(resources)),
		Dynamic: make([]domain.DynamicFacetCount, 0, len(dynamic)),
		Static:  make([]domain.StaticFacetCount, 0, len(static)),
	}
	for i := range resources {
		result.Rows = append(result.Rows, r.toResourceRow(&resources[i]))
	}

	// итоги денормализованы: одинаковы во всех строках, берем из первой
	if len(dynamic) > 0 {
		result.Totals = domain.FacetTotals{
			Total:   int(dynamic[0].TotalCount),
			Toilets: int(dynamic[0].TotalToiletCount),
			Tables:  int(dynamic[0].TotalTableCount),
		}
	}
	for _, d := range dynamic {
		if !d.ActivityCode.Valid {
			continue
		}
		result.Dynamic = append(result.Dynamic, domain.DynamicFacetCount{
			ActivityCode: int(d.ActivityCode.Int64),
			Description:  d.Description.String,
			Count:        int(d.Count.Int64),
		})
	}

	for _, s := range static {
		result.Static = append(result.Static, domain.StaticFacetCount{
			Dimension:   domain.Dimension(s.Facet),
			Code:        s.Code,
			Description: s.Description.String,
			Count:       int(s.Count),
		})
	}

	r.logger.Debug("Search executed",
		zap.Int("rows", len(result.Rows)),
		zap.Int("total", result.Totals.Total),
		zap.Int("take", criteria.Take),
		zap.Int("skip", criteria.Skip),
	)

	return result, nil
}

func (r *recreationResourceRepository) GetByID(ctx context.Context, id string) (*domain.ResourceRow, error) {
	query, args, err := r.queries.ByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("build resource query: %w", err)
	}

	var rec resourceRecord
	err = r.db.GetContext(ctx, &rec, query, args...)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrResourceNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get recreation resource", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("get recreation resource %s: %w", id, err)
	}

	row := r.toResourceRow(&rec)
	return &row, nil
}

func (r *recreationResourceRepository) toResourceRow(rec *resourceRecord) domain.ResourceRow {
	row := domain.ResourceRow{
		ID:                  rec.ID,
		Name:                rec.Name,
		ClosestCommunity:    nullString(rec.ClosestCommunity),
		DisplayOnPublicSite: rec.DisplayOnPublicSite.Bool,
		TypeCode:            nullString(rec.TypeCode),
		TypeDescription:     nullString(rec.TypeDescription),
		DistrictCode:        nullString(rec.DistrictCode),
		DistrictDescription: nullString(rec.DistrictDescription),
		AccessCode:          nullString(rec.AccessCode),
		AccessDescription:   nullString(rec.AccessDescription),
		HasToilets:          rec.HasToilets.Bool,
		HasTables:           rec.HasTables.Bool,
	}

	r.decodeJSON(rec.ID, "recreation_activity", rec.Activities, &row.Activities)
	r.decodeJSON(rec.ID, "recreation_resource_images", rec.Images, &row.Images)

	var status domain.ResourceStatus
	if r.decodeJSON(rec.ID, "recreation_status", rec.Status, &status) {
		row.Status = &status
	}

	return row
}

// decodeJSON разбирает jsonb колонку; битый json логируется и пропускается
func (r *recreationResourceRepository) decodeJSON(id, column string, raw []byte, dst interface{}) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		r.logger.Warn("Failed to unmarshal json column",
			zap.String("id", id),
			zap.String("column", column),
			zap.Error(err),
		)
		return false
	}
	return true
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
