package repository

import (
	"context"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
)

// CategoriaRepository defines the standard operations for category
// persistence. The application layer depends on this interface, not the
// concrete implementation.
type CategoriaRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Categoria, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindAll retrieves every category matching the fuzzy criteria.
	FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Categoria, error)

	// FindAllPaged retrieves one page of matching categories plus the total
	// number of matching rows.
	FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Categoria, int64, error)

	Create(ctx context.Context, categoria *entity.Categoria) error
	Update(ctx context.Context, categoria *entity.Categoria) error
	DeleteByID(ctx context.Context, id int64) error
}
