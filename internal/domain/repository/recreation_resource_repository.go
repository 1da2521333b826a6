package repository

import (
	"context"

	"github.com/recreation-search/internal/domain"
)

// RecreationResourceRepository определяет методы чтения каталога объектов отдыха
type RecreationResourceRepository interface {
	// Search выполняет запрос страницы, динамических и статических счетчиков
	// в одной read-only транзакции
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error)

	// GetByID возвращает один объект в той же проекции, что и поиск
	GetByID(ctx context.Context, id string) (*domain.ResourceRow, error)
}
