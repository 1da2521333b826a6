package usecase

import (
	"github.com/recreation-search/internal/domain"
	"github.com/recreation-search/internal/usecase/dto"
)

// FormatResources приводит строки БД к публичному виду. Порядок сохраняется,
// отсутствующие описания опускаются, nil-списки становятся пустыми.
func FormatResources(rows []domain.ResourceRow) []dto.RecreationResourceSummary {
	result := make([]dto.RecreationResourceSummary, 0, len(rows))
	for i := range rows {
		result = append(result, FormatResource(&rows[i]))
	}
	return result
}

// FormatResource - одна строка
func FormatResource(row *domain.ResourceRow) dto.RecreationResourceSummary {
	summary := dto.RecreationResourceSummary{
		RecResourceID:            row.ID,
		Name:                     row.Name,
		ClosestCommunity:         deref(row.ClosestCommunity),
		DisplayOnPublicSite:      row.DisplayOnPublicSite,
		RecreationResourceType:   codeDescription(row.TypeCode, row.TypeDescription),
		RecreationActivity:       make([]dto.ActivitySummary, 0, len(row.Activities)),
		RecreationResourceImages: make([]dto.ImageSummary, 0, len(row.Images)),
		RecreationDistrict:       codeDescription(row.DistrictCode, row.DistrictDescription),
		RecreationAccess:         codeDescription(row.AccessCode, row.AccessDescription),
		RecreationStructure: dto.StructureSummary{
			HasToilet: row.HasToilets,
			HasTable:  row.HasTables,
		},
	}

	for _, a := range row.Activities {
		summary.RecreationActivity = append(summary.RecreationActivity, dto.ActivitySummary{
			RecreationActivityCode: a.Code,
			Description:            deref(a.Description),
		})
	}

	if row.Status != nil {
		summary.RecreationStatus = &dto.StatusSummary{
			StatusCode:  row.Status.StatusCode,
			Description: deref(row.Status.Description),
			Comment:     deref(row.Status.Comment),
		}
	}

	for _, img := range row.Images {
		image := dto.ImageSummary{
			RefID:    img.RefID,
			Caption:  deref(img.Caption),
			Variants: make([]dto.ImageVariant, 0, len(img.Variants)),
		}
		for _, v := range img.Variants {
			image.Variants = append(image.Variants, dto.ImageVariant{
				SizeCode:  v.SizeCode,
				URL:       v.URL,
				Width:     v.Width,
				Height:    v.Height,
				Extension: deref(v.Extension),
			})
		}
		summary.RecreationResourceImages = append(summary.RecreationResourceImages, image)
	}

	return summary
}

// codeDescription - nil, если нет кода
func codeDescription(code, description *string) *dto.CodeDescription {
	if code == nil || *code == "" {
		return nil
	}
	return &dto.CodeDescription{
		Code:        *code,
		Description: deref(description),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
