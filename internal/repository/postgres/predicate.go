package postgres

import (
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/recreation-search/internal/domain"
)

// Колонки recreation_resource_search_view, по которым фильтрует предикат
var codeColumns = map[domain.Dimension]string{
	domain.DimensionDistrict: "r.district_code",
	domain.DimensionAccess:   "r.access_code",
	domain.DimensionType:     "r.recreation_resource_type_code",
}

var facilityColumns = map[string]string{
	domain.FacilityToilet: "r.has_toilets",
	domain.FacilityTable:  "r.has_tables",
}

// Predicate - неизменяемый набор пользовательских фильтров поиска.
// Пустой предикат не ограничивает выборку. Административные исключения
// сюда не входят, их применяют только запросы счетчиков.
type Predicate struct {
	text       string
	codes      map[domain.Dimension][]string
	activities []int
	facilities []string
	point      *domain.GeoPoint
	radius     float64
}

// NewPredicate строит предикат из критериев поиска
func NewPredicate(c domain.SearchCriteria, radiusMeters float64) Predicate {
	p := Predicate{}.
		WithTextSearch(c.Filter).
		WithCodes(domain.DimensionDistrict, c.Districts).
		WithCodes(domain.DimensionAccess, c.Access).
		WithCodes(domain.DimensionType, c.Types).
		WithActivities(c.Activities).
		WithFacilities(c.Facilities)
	if c.Point != nil {
		p = p.WithinRadius(c.Point.Lat, c.Point.Lon, radiusMeters)
	}
	return p
}

// WithTextSearch - поиск подстроки в названии или ближайшем населенном пункте без учета регистра
func (p Predicate) WithTextSearch(term string) Predicate {
	p.text = strings.TrimSpace(term)
	return p
}

// WithCodes - фильтр по кодам района, доступа или типа (любой из кодов)
func (p Predicate) WithCodes(dim domain.Dimension, codes []string) Predicate {
	if _, ok := codeColumns[dim]; !ok {
		return p
	}
	next := make(map[domain.Dimension][]string, len(p.codes)+1)
	for k, v := range p.codes {
		next[k] = v
	}
	if len(codes) == 0 {
		delete(next, dim)
	} else {
		next[dim] = append([]string(nil), codes...)
	}
	p.codes = next
	return p
}

// WithActivities - объект должен предлагать все перечисленные активности
func (p Predicate) WithActivities(codes []int) Predicate {
	p.activities = append([]int(nil), codes...)
	return p
}

// WithFacilities - объект должен иметь все перечисленные удобства (toilet, table)
func (p Predicate) WithFacilities(flags []string) Predicate {
	p.facilities = append([]string(nil), flags...)
	return p
}

// WithinRadius - объект не дальше radiusMeters от точки
func (p Predicate) WithinRadius(lat, lon, radiusMeters float64) Predicate {
	p.point = &domain.GeoPoint{Lat: lat, Lon: lon}
	p.radius = radiusMeters
	return p
}

// Without возвращает копию предиката без фильтра по измерению
func (p Predicate) Without(dim domain.Dimension) Predicate {
	switch dim {
	case domain.DimensionActivities:
		return p.WithActivities(nil)
	case domain.DimensionFacilities:
		return p.WithFacilities(nil)
	default:
		return p.WithCodes(dim, nil)
	}
}

// IsEmpty - true, если предикат ничего не ограничивает
func (p Predicate) IsEmpty() bool {
	return p.text == "" && len(p.codes) == 0 && len(p.activities) == 0 &&
		len(p.facilities) == 0 && p.point == nil
}

// Expressions возвращает условия для AND в WHERE или JOIN ON.
// Все пользовательские значения уходят параметрами.
func (p Predicate) Expressions() []exp.Expression {
	var exprs []exp.Expression

	if p.text != "" {
		pattern := "%" + escapeLike(p.text) + "%"
		exprs = append(exprs, goqu.Or(
			goqu.I("r.name").ILike(pattern),
			goqu.I("r.closest_community").ILike(pattern),
		))
	}

	// фиксированный порядок измерений, чтобы SQL был детерминированным
	for _, dim := range []domain.Dimension{domain.DimensionDistrict, domain.DimensionAccess, domain.DimensionType} {
		if codes, ok := p.codes[dim]; ok {
			exprs = append(exprs, goqu.I(codeColumns[dim]).In(codes))
		}
	}

	for _, code := range p.activities {
		sub := goqu.Dialect(dialectName).
			From(goqu.T("recreation_activity").As("ra")).
			Select(goqu.L("1")).
			Where(
				goqu.I("ra.rec_resource_id").Eq(goqu.I("r.rec_resource_id")),
				goqu.I("ra.recreation_activity_code").Eq(code),
			)
		exprs = append(exprs, goqu.L("EXISTS ?", sub))
	}

	for _, flag := range p.facilities {
		if col, ok := facilityColumns[flag]; ok {
			exprs = append(exprs, goqu.I(col).IsTrue())
		}
	}

	if p.point != nil {
		exprs = append(exprs, goqu.L(
			"ST_DWithin(r.recreation_site_point::geography, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
			p.point.Lon, p.point.Lat, p.radius,
		))
	}

	return exprs
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
