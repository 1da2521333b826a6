package domain

// ResourceRow - строка проекции recreation_resource_search_view, как ее отдает БД.
// Необязательные значения остаются nil, нормализацией занимается форматтер.
type ResourceRow struct {
	ID                  string
	Name                string
	ClosestCommunity    *string
	DisplayOnPublicSite bool
	TypeCode            *string
	TypeDescription     *string
	Activities          []Activity
	Status              *ResourceStatus
	Images              []ResourceImage
	DistrictCode        *string
	DistrictDescription *string
	AccessCode          *string
	AccessDescription   *string
	HasToilets          bool
	HasTables           bool
}

// Activity - вид активности на объекте
type Activity struct {
	Code        int     `json:"recreation_activity_code"`
	Description *string `json:"description"`
}

// ResourceStatus - статус объекта (открыт/закрыт) с комментарием
type ResourceStatus struct {
	StatusCode  *int    `json:"status_code"`
	Description *string `json:"description"`
	Comment     *string `json:"comment"`
}

// ResourceImage - ссылка на изображение и его варианты в объектном хранилище
type ResourceImage struct {
	RefID    string         `json:"ref_id"`
	Caption  *string        `json:"caption"`
	Variants []ImageVariant `json:"recreation_resource_image_variants"`
}

// ImageVariant - одна из уменьшенных копий изображения
type ImageVariant struct {
	SizeCode  string  `json:"size_code"`
	URL       string  `json:"url"`
	Width     *int    `json:"width"`
	Height    *int    `json:"height"`
	Extension *string `json:"extension"`
}
