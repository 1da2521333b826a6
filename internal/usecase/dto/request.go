package dto

// SearchRequest - параметры поиска объектов отдыха.
// Limit, Lat и Lon - указатели: отсутствие значения отличается от нуля.
type SearchRequest struct {
	Page       int      `json:"page" query:"page" validate:"min=1"`
	Filter     string   `json:"filter,omitempty" query:"filter" validate:"max=200"`
	Limit      *int     `json:"limit,omitempty" query:"limit" validate:"omitempty,min=1"`
	Activities []int    `json:"activities,omitempty" query:"activities" validate:"omitempty,dive,min=1"`
	Type       []string `json:"type,omitempty" query:"type" validate:"omitempty,dive,max=10"`
	District   []string `json:"district,omitempty" query:"district" validate:"omitempty,dive,max=10"`
	Access     []string `json:"access,omitempty" query:"access" validate:"omitempty,dive,max=10"`
	Facilities []string `json:"facilities,omitempty" query:"facilities" validate:"omitempty,dive,oneof=toilet table"`
	Lat        *float64 `json:"lat,omitempty" query:"lat"`
	Lon        *float64 `json:"lon,omitempty" query:"lon"`
}
