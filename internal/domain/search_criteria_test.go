package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCriteria_ActiveFilters(t *testing.T) {
	assert.Empty(t, SearchCriteria{Filter: "lake"}.ActiveFilters())

	c := SearchCriteria{
		Activities: []int{1},
		Access:     []string{"B"},
		Facilities: []string{FacilityToilet},
	}
	assert.Equal(t, []Dimension{DimensionActivities, DimensionAccess, DimensionFacilities}, c.ActiveFilters())
}

func TestSearchCriteria_IsOnly(t *testing.T) {
	onlyAccess := SearchCriteria{Access: []string{"B"}, Filter: "lake"}
	assert.True(t, onlyAccess.IsOnly(DimensionAccess))
	assert.False(t, onlyAccess.IsOnly(DimensionType))

	mixed := SearchCriteria{Access: []string{"B"}, Types: []string{"SIT"}}
	assert.False(t, mixed.IsOnly(DimensionAccess))

	assert.False(t, SearchCriteria{}.IsOnly(DimensionAccess))
}

func TestSearchResult_FacetCounts(t *testing.T) {
	res := SearchResult{
		Dynamic: []DynamicFacetCount{{ActivityCode: 1, Description: "Angling", Count: 3}},
		Static:  []StaticFacetCount{{Dimension: DimensionDistrict, Code: "RDCK", Description: "Chilliwack", Count: 2}},
	}

	counts := res.FacetCounts()
	assert.Len(t, counts, 2)
	assert.IsType(t, DynamicFacetCount{}, counts[0])
	assert.IsType(t, StaticFacetCount{}, counts[1])
}
