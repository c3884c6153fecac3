package usecase

import (
	"context"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
	"precario/internal/domain/validation"
)

// ProdutoUsecase defines the product operations, including the aggregated
// price survey.
type ProdutoUsecase interface {
	Create(ctx context.Context, in *ProdutoInput) (*entity.Produto, error)
	Get(ctx context.Context, id int64) (*entity.Produto, error)
	List(ctx context.Context, crit *match.Criteria) ([]entity.Produto, error)
	ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Produto, int64, error)
	Patch(ctx context.Context, id int64, in *ProdutoInput) (*entity.Produto, error)
	Replace(ctx context.Context, id int64, in *ProdutoInput) (*entity.Produto, error)
	Delete(ctx context.Context, id int64) error

	// Levantamento walks the product's stock entries and their suggestions
	// and reduces them into summary price statistics.
	Levantamento(ctx context.Context, produtoID int64) (*entity.LevantamentoPrecos, error)
}

// ProdutoInput carries a submitted product.
type ProdutoInput struct {
	ID          *int64  `json:"id,omitempty"`
	Nome        *string `json:"nome,omitempty"`
	Marca       *string `json:"marca,omitempty"`
	Tamanho     *string `json:"tamanho,omitempty"`
	Cor         *string `json:"cor,omitempty"`
	CategoriaID *int64  `json:"categoriaId,omitempty"`
	CriadoPor   *int64  `json:"criadoPor,omitempty"`
}

// Rules is the ordered constraint table; first violation wins. Cor is
// optional and clearable: an explicit empty string is acceptable.
func (in *ProdutoInput) Rules() []validation.Rule {
	return []validation.Rule{
		validation.Texto("nome_invalido", in.Nome, 10, 150),
		validation.Texto("marca_invalida", in.Marca, 2, 50),
		validation.Texto("tamanho_invalido", in.Tamanho, 1, 20),
		validation.TextoOpcional("cor_invalida", in.Cor, 3, 20),
		validation.Referencia("categoria_invalida", in.CategoriaID),
		validation.Referencia("usuario_invalido", in.CriadoPor),
	}
}
