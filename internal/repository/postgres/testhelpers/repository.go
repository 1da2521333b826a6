package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/recreation-search/internal/domain"
	"github.com/recreation-search/internal/domain/repository"
	"github.com/recreation-search/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewRecreationResourceRepositoryForTest - репозиторий поиска поверх тестовой базы
func NewRecreationResourceRepositoryForTest(
	db *sqlx.DB,
	logger *zap.Logger,
	excluded domain.ExcludedCodes,
	radiusMeters float64,
) repository.RecreationResourceRepository {
	return postgres.NewRecreationResourceRepository(postgres.NewDBForTest(db, logger), excluded, radiusMeters)
}
