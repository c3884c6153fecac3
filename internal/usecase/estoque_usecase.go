package usecase

import (
	"context"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
	"precario/internal/domain/validation"
)

// EstoqueUsecase defines the stock-entry operations.
type EstoqueUsecase interface {
	Create(ctx context.Context, in *EstoqueInput) (*entity.Estoque, error)
	Get(ctx context.Context, id int64) (*entity.Estoque, error)
	List(ctx context.Context, crit *match.Criteria) ([]entity.Estoque, error)
	ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Estoque, int64, error)
	Patch(ctx context.Context, id int64, in *EstoqueInput) (*entity.Estoque, error)
	Replace(ctx context.Context, id int64, in *EstoqueInput) (*entity.Estoque, error)
	Delete(ctx context.Context, id int64) error
}

// EstoqueInput carries a submitted stock entry.
type EstoqueInput struct {
	ID        *int64 `json:"id,omitempty"`
	ProdutoID *int64 `json:"produtoId,omitempty"`
	MercadoID *int64 `json:"mercadoId,omitempty"`
	CriadoPor *int64 `json:"criadoPor,omitempty"`
}

// Rules is the ordered constraint table; first violation wins.
func (in *EstoqueInput) Rules() []validation.Rule {
	return []validation.Rule{
		validation.Referencia("produto_invalido", in.ProdutoID),
		validation.Referencia("mercado_invalido", in.MercadoID),
		validation.Referencia("usuario_invalido", in.CriadoPor),
	}
}
