package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/recreation-search/internal/domain/repository"
	"github.com/recreation-search/internal/pkg/errors"
	"github.com/recreation-search/internal/usecase/dto"
)

// RecreationResourceUseCase - карточка одного объекта
type RecreationResourceUseCase struct {
	resourceRepo repository.RecreationResourceRepository
	logger       *zap.Logger
}

func NewRecreationResourceUseCase(
	resourceRepo repository.RecreationResourceRepository,
	logger *zap.Logger,
) *RecreationResourceUseCase {
	return &RecreationResourceUseCase{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// GetByID - объект в той же проекции, что и в поиске
func (uc *RecreationResourceUseCase) GetByID(ctx context.Context, id string) (*dto.RecreationResourceSummary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": "required",
		})
	}

	row, err := uc.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, errors.ErrResourceNotFound) {
			uc.logger.Error("Failed to get recreation resource", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	summary := FormatResource(row)
	return &summary, nil
}
