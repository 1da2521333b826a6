package domain

const (
	FacilityToilet = "toilet"
	FacilityTable  = "table"
)

// GeoPoint - точка для фильтра по радиусу
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// SearchCriteria - фильтры, выбранные пользователем, и окно выборки
type SearchCriteria struct {
	Filter     string    `json:"filter,omitempty"`
	Activities []int     `json:"activities,omitempty"`
	Types      []string  `json:"type,omitempty"`
	Districts  []string  `json:"district,omitempty"`
	Access     []string  `json:"access,omitempty"`
	Facilities []string  `json:"facilities,omitempty"`
	Point      *GeoPoint `json:"point,omitempty"`
	Take       int       `json:"take"`
	Skip       int       `json:"skip"`
}

// ActiveFilters возвращает измерения с непустым фильтром в фиксированном порядке
func (c SearchCriteria) ActiveFilters() []Dimension {
	var active []Dimension
	if len(c.Activities) > 0 {
		active = append(active, DimensionActivities)
	}
	if len(c.Types) > 0 {
		active = append(active, DimensionType)
	}
	if len(c.Districts) > 0 {
		active = append(active, DimensionDistrict)
	}
	if len(c.Access) > 0 {
		active = append(active, DimensionAccess)
	}
	if len(c.Facilities) > 0 {
		active = append(active, DimensionFacilities)
	}
	return active
}

// IsOnly - true, если из фильтров с кодами выбран только dim
func (c SearchCriteria) IsOnly(dim Dimension) bool {
	active := c.ActiveFilters()
	return len(active) == 1 && active[0] == dim
}
