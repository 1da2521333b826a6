package domain

// Dimension - измерение статических фасетов и фильтров с кодами
type Dimension string

const (
	DimensionDistrict   Dimension = "district"
	DimensionAccess     Dimension = "access"
	DimensionType       Dimension = "type"
	DimensionActivities Dimension = "activities"
	DimensionFacilities Dimension = "facilities"
)

// FacetCount - счетчик фасета: DynamicFacetCount или StaticFacetCount
type FacetCount interface {
	facetCount()
}

// DynamicFacetCount - количество объектов с активностью внутри текущей выборки
type DynamicFacetCount struct {
	ActivityCode int
	Description  string
	Count        int
}

// StaticFacetCount - количество объектов по району, доступу или типу
type StaticFacetCount struct {
	Dimension   Dimension
	Code        string
	Description string
	Count       int
}

func (DynamicFacetCount) facetCount() {}
func (StaticFacetCount) facetCount()  {}

// FacetTotals - скаляры динамического запроса. В выдаче БД они повторяются
// в каждой строке, но читаются один раз и не суммируются.
type FacetTotals struct {
	Total   int
	Toilets int
	Tables  int
}

// ExcludedCodes - административно скрытые коды, никогда не попадают в фасеты
type ExcludedCodes struct {
	Activities []int
	Districts  []string
	Types      []string
}

// SearchResult - результат трех запросов поиска, прочитанных в одном снапшоте
type SearchResult struct {
	Rows    []ResourceRow
	Dynamic []DynamicFacetCount
	Static  []StaticFacetCount
	Totals  FacetTotals
}

// FacetCounts собирает оба вида счетчиков в один список для меню фильтров
func (r *SearchResult) FacetCounts() []FacetCount {
	counts := make([]FacetCount, 0, len(r.Dynamic)+len(r.Static))
	for _, d := range r.Dynamic {
		counts = append(counts, d)
	}
	for _, s := range r.Static {
		counts = append(counts, s)
	}
	return counts
}
