package repository

import (
	"context"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
)

// RamoRepository defines the standard operations for branch persistence.
type RamoRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Ramo, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Exists reports whether any stored branch matches the criteria. Used by
	// the conflict detector with a case-insensitive name predicate.
	Exists(ctx context.Context, crit *match.Criteria) (bool, error)

	FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Ramo, error)
	FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Ramo, int64, error)

	Create(ctx context.Context, ramo *entity.Ramo) error
	Update(ctx context.Context, ramo *entity.Ramo) error
	DeleteByID(ctx context.Context, id int64) error
}
