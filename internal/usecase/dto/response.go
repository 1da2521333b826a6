package dto

// SearchResponse - страница результатов поиска вместе с меню фильтров
type SearchResponse struct {
	Data    []RecreationResourceSummary `json:"data"`
	Page    int                         `json:"page"`
	Limit   *int                        `json:"limit,omitempty"`
	Total   int                         `json:"total"`
	Filters FilterMenu                  `json:"filters"`
}

// RecreationResourceSummary - объект отдыха в публичном виде
type RecreationResourceSummary struct {
	RecResourceID            string            `json:"rec_resource_id"`
	Name                     string            `json:"name"`
	ClosestCommunity         string            `json:"closest_community,omitempty"`
	DisplayOnPublicSite      bool              `json:"display_on_public_site"`
	RecreationResourceType   *CodeDescription  `json:"recreation_resource_type,omitempty"`
	RecreationActivity       []ActivitySummary `json:"recreation_activity"`
	RecreationStatus         *StatusSummary    `json:"recreation_status,omitempty"`
	RecreationResourceImages []ImageSummary    `json:"recreation_resource_images"`
	RecreationDistrict       *CodeDescription  `json:"recreation_district,omitempty"`
	RecreationAccess         *CodeDescription  `json:"recreation_access,omitempty"`
	RecreationStructure      StructureSummary  `json:"recreation_structure"`
}

// CodeDescription - код справочника и его описание
type CodeDescription struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

type ActivitySummary struct {
	RecreationActivityCode int    `json:"recreation_activity_code"`
	Description            string `json:"description,omitempty"`
}

type StatusSummary struct {
	StatusCode  *int   `json:"status_code,omitempty"`
	Description string `json:"description,omitempty"`
	Comment     string `json:"comment,omitempty"`
}

type ImageSummary struct {
	RefID    string         `json:"ref_id"`
	Caption  string         `json:"caption,omitempty"`
	Variants []ImageVariant `json:"recreation_resource_image_variants"`
}

type ImageVariant struct {
	SizeCode  string `json:"size_code"`
	URL       string `json:"url"`
	Width     *int   `json:"width,omitempty"`
	Height    *int   `json:"height,omitempty"`
	Extension string `json:"extension,omitempty"`
}

// StructureSummary - наличие туалетов и столов
type StructureSummary struct {
	HasToilet bool `json:"has_toilet"`
	HasTable  bool `json:"has_table"`
}

// FilterMenu - группы фильтров в фиксированном порядке
type FilterMenu []FilterGroup

// FilterGroup - группа опций, param - ключ query-параметра
type FilterGroup struct {
	Label   string         `json:"label"`
	Param   string         `json:"param"`
	Type    string         `json:"type"`
	Options []FilterOption `json:"options"`
}

// FilterOption - id строковый код или числовой код активности
type FilterOption struct {
	ID          interface{} `json:"id"`
	Description string      `json:"description"`
	Count       int         `json:"count"`
}
