package usecase

import (
	"github.com/recreation-search/internal/domain"
	"github.com/recreation-search/internal/usecase/dto"
)

const filterTypeMultiSelect = "multi-select"

// menuGroup - порядок и подписи групп меню
type menuGroup struct {
	dimension domain.Dimension
	label     string
}

var menuGroups = []menuGroup{
	{domain.DimensionDistrict, "District"},
	{domain.DimensionType, "Type"},
	{domain.DimensionAccess, "Access"},
	{domain.DimensionActivities, "Things to do"},
	{domain.DimensionFacilities, "Facilities"},
}

// BuildFilterMenu объединяет динамические и статические счетчики в меню.
// Опции с нулевым счетчиком остаются; исключенные коды сюда уже не попадают.
func BuildFilterMenu(counts []domain.FacetCount, totals domain.FacetTotals) dto.FilterMenu {
	options := make(map[domain.Dimension][]dto.FilterOption, len(menuGroups))

	for _, fc := range counts {
		switch c := fc.(type) {
		case domain.DynamicFacetCount:
			options[domain.DimensionActivities] = append(options[domain.DimensionActivities], dto.FilterOption{
				ID:          c.ActivityCode,
				Description: c.Description,
				Count:       c.Count,
			})
		case domain.StaticFacetCount:
			options[c.Dimension] = append(options[c.Dimension], dto.FilterOption{
				ID:          c.Code,
				Description: c.Description,
				Count:       c.Count,
			})
		}
	}

	options[domain.DimensionFacilities] = []dto.FilterOption{
		{ID: domain.FacilityToilet, Description: "Toilet", Count: totals.Toilets},
		{ID: domain.FacilityTable, Description: "Table", Count: totals.Tables},
	}

	menu := make(dto.FilterMenu, 0, len(menuGroups))
	for _, g := range menuGroups {
		opts := options[g.dimension]
		if opts == nil {
			opts = []dto.FilterOption{}
		}
		menu = append(menu, dto.FilterGroup{
			Label:   g.label,
			Param:   string(g.dimension),
			Type:    filterTypeMultiSelect,
			Options: opts,
		})
	}
	return menu
}
