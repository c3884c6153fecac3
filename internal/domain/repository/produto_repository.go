package repository

import (
	"context"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
)

// ProdutoRepository defines the standard operations for product persistence.
type ProdutoRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Produto, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Exists reports whether any stored product matches the criteria. Used
	// by the conflict detector with the product-characteristics predicates
	// (name, brand, size, color).
	Exists(ctx context.Context, crit *match.Criteria) (bool, error)

	FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Produto, error)
	FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Produto, int64, error)

	Create(ctx context.Context, produto *entity.Produto) error
	Update(ctx context.Context, produto *entity.Produto) error
	DeleteByID(ctx context.Context, id int64) error
}
