package repository

import (
	"context"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
)

// EstoqueRepository defines the standard operations for stock-entry
// persistence.
type EstoqueRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Estoque, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Exists reports whether any stored entry matches the criteria. Used by
	// the conflict detector on the (produto_id, mercado_id) pair.
	Exists(ctx context.Context, crit *match.Criteria) (bool, error)

	// FindByProdutoID retrieves every stock entry of a product, the walk
	// performed by the price survey.
	FindByProdutoID(ctx context.Context, produtoID int64) ([]entity.Estoque, error)

	FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Estoque, error)
	FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Estoque, int64, error)

	Create(ctx context.Context, estoque *entity.Estoque) error
	Update(ctx context.Context, estoque *entity.Estoque) error
	DeleteByID(ctx context.Context, id int64) error
}
