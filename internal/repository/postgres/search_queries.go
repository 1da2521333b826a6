package postgres

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/recreation-search/internal/domain"
)

const (
	dialectName = "postgres"
	searchView  = "recreation_resource_search_view"
)

// Проекция объекта: одна и та же для страницы поиска и для GetByID
var resourceColumns = []interface{}{
	goqu.I("r.rec_resource_id"),
	goqu.I("r.name"),
	goqu.I("r.closest_community"),
	goqu.I("r.display_on_public_site"),
	goqu.I("r.recreation_resource_type_code"),
	goqu.I("r.recreation_resource_type"),
	goqu.I("r.recreation_activity"),
	goqu.I("r.recreation_status"),
	goqu.I("r.recreation_resource_images"),
	goqu.I("r.district_code"),
	goqu.I("r.district_description"),
	goqu.I("r.access_code"),
	goqu.I("r.access_description"),
	goqu.I("r.has_toilets"),
	goqu.I("r.has_tables"),
}

// staticFacet описывает справочник, по которому считается статический фасет
type staticFacet struct {
	dimension  domain.Dimension
	table      string
	codeColumn string
	viewColumn string
}

var staticFacets = []staticFacet{
	{domain.DimensionDistrict, "recreation_district_code", "district_code", "district_code"},
	{domain.DimensionAccess, "recreation_access_code", "access_code", "access_code"},
	{domain.DimensionType, "recreation_resource_type_code", "rec_resource_type_code", "recreation_resource_type_code"},
}

// queryBuilder собирает параметризованные SQL запросы поиска
type queryBuilder struct {
	dialect  goqu.DialectWrapper
	excluded domain.ExcludedCodes
}

func newQueryBuilder(excluded domain.ExcludedCodes) *queryBuilder {
	return &queryBuilder{
		dialect:  goqu.Dialect(dialectName),
		excluded: excluded,
	}
}

func (b *queryBuilder) resources() *goqu.SelectDataset {
	return b.dialect.From(goqu.T(searchView).As("r")).Select(resourceColumns...)
}

// PageQuery - одна страница объектов по имени, rec_resource_id как tie-break.
// skip == 0 не добавляет OFFSET.
func (b *queryBuilder) PageQuery(p Predicate, take, skip int) (string, []interface{}, error) {
	ds := where(b.resources(), p.Expressions()).
		Order(goqu.I("r.name").Asc(), goqu.I("r.rec_resource_id").Asc()).
		Limit(uint(take))
	if skip > 0 {
		ds = ds.Offset(uint(skip))
	}
	return ds.Prepared(true).ToSQL()
}

// ByIDQuery - один объект в проекции поиска
func (b *queryBuilder) ByIDQuery(id string) (string, []interface{}, error) {
	return b.resources().
		Where(goqu.I("r.rec_resource_id").Eq(id)).
		Limit(1).
		Prepared(true).
		ToSQL()
}

// DynamicCountsQuery - счетчики активностей внутри выборки плюс итоги
// (всего, с туалетами, со столами), посчитанные один раз и присоединенные
// к каждой строке. Если активностей нет, остается одна строка с NULL
// активностью и итогами.
func (b *queryBuilder) DynamicCountsQuery(p Predicate) (string, []interface{}, error) {
	filtered := where(
		b.dialect.From(goqu.T(searchView).As("r")).
			Select(goqu.I("r.rec_resource_id"), goqu.I("r.has_toilets"), goqu.I("r.has_tables")),
		p.Expressions(),
	)

	totals := b.dialect.From("filtered").Select(
		goqu.COUNT(goqu.Star()).As("total_count"),
		goqu.L(`COUNT(*) FILTER (WHERE "has_toilets")`).As("total_toilet_count"),
		goqu.L(`COUNT(*) FILTER (WHERE "has_tables")`).As("total_table_count"),
	)

	activityCounts := b.dialect.From(goqu.T("recreation_activity_code").As("ac")).
		LeftJoin(
			goqu.T("recreation_activity").As("ra"),
			goqu.On(goqu.I("ra.recreation_activity_code").Eq(goqu.I("ac.recreation_activity_code"))),
		).
		LeftJoin(
			goqu.T("filtered").As("f"),
			goqu.On(goqu.I("f.rec_resource_id").Eq(goqu.I("ra.rec_resource_id"))),
		).
		Select(
			goqu.I("ac.recreation_activity_code"),
			goqu.I("ac.description"),
			goqu.COUNT(goqu.DISTINCT(goqu.I("f.rec_resource_id"))).As("recreation_activity_count"),
		).
		GroupBy(goqu.I("ac.recreation_activity_code"), goqu.I("ac.description"))
	if len(b.excluded.Activities) > 0 {
		activityCounts = activityCounts.Where(goqu.I("ac.recreation_activity_code").NotIn(b.excluded.Activities))
	}

	return b.dialect.From(goqu.T("totals").As("t")).
		With("filtered", filtered).
		With("totals", totals).
		With("activity_counts", activityCounts).
		LeftJoin(goqu.T("activity_counts").As("a"), goqu.On(goqu.L("TRUE"))).
		Select(
			goqu.I("a.recreation_activity_code"),
			goqu.I("a.description"),
			goqu.I("a.recreation_activity_count"),
			goqu.I("t.total_count"),
			goqu.I("t.total_toilet_count"),
			goqu.I("t.total_table_count"),
		).
		Order(
			goqu.I("a.description").Asc().NullsLast(),
			goqu.I("a.recreation_activity_code").Asc(),
		).
		Prepared(true).
		ToSQL()
}

// StaticCountsQuery - счетчики по районам, доступу и типам. Каждое измерение
// считается по предикату без собственного фильтра, остальные фильтры действуют.
func (b *queryBuilder) StaticCountsQuery(p Predicate) (string, []interface{}, error) {
	var union *goqu.SelectDataset
	for _, f := range staticFacets {
		ds := b.staticFacetQuery(f, p.Without(f.dimension))
		if union == nil {
			union = ds
			continue
		}
		union = union.UnionAll(ds)
	}

	return b.dialect.From(union.As("s")).
		Select(goqu.I("s.facet"), goqu.I("s.code"), goqu.I("s.description"), goqu.I("s.count")).
		Order(goqu.I("s.facet").Asc(), goqu.I("s.description").Asc(), goqu.I("s.code").Asc()).
		Prepared(true).
		ToSQL()
}

func (b *queryBuilder) staticFacetQuery(f staticFacet, p Predicate) *goqu.SelectDataset {
	codeCol := goqu.I("c." + f.codeColumn)
	on := append([]exp.Expression{goqu.I("r." + f.viewColumn).Eq(codeCol)}, p.Expressions()...)

	ds := b.dialect.From(goqu.T(f.table).As("c")).
		LeftJoin(goqu.T(searchView).As("r"), goqu.On(on...)).
		Select(
			goqu.L("?::text", string(f.dimension)).As("facet"),
			codeCol.As("code"),
			goqu.I("c.description").As("description"),
			goqu.COUNT(goqu.I("r.rec_resource_id")).As("count"),
		).
		GroupBy(codeCol, goqu.I("c.description"))

	if excluded := b.excludedCodes(f.dimension); len(excluded) > 0 {
		ds = ds.Where(codeCol.NotIn(excluded))
	}
	return ds
}

func (b *queryBuilder) excludedCodes(dim domain.Dimension) []string {
	switch dim {
	case domain.DimensionDistrict:
		return b.excluded.Districts
	case domain.DimensionType:
		return b.excluded.Types
	default:
		return nil
	}
}

func where(ds *goqu.SelectDataset, exprs []exp.Expression) *goqu.SelectDataset {
	if len(exprs) == 0 {
		return ds
	}
	return ds.Where(exprs...)
}
