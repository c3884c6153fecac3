package repository

import (
	"context"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
)

// SugestaoRepository defines the standard operations for price-suggestion
// persistence.
type SugestaoRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Sugestao, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// FindByEstoqueID retrieves every suggestion submitted for a stock
	// entry, ordered by creation time.
	FindByEstoqueID(ctx context.Context, estoqueID int64) ([]entity.Sugestao, error)

	FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Sugestao, error)
	FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Sugestao, int64, error)

	Create(ctx context.Context, sugestao *entity.Sugestao) error
	Update(ctx context.Context, sugestao *entity.Sugestao) error
	DeleteByID(ctx context.Context, id int64) error
}
