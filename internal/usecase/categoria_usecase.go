// Package usecase contains the application-specific business rules: one
// usecase interface per catalog resource, the input DTOs with their
// validation rule tables, and the pure merge functions behind PATCH.
package usecase

import (
	"context"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
	"precario/internal/domain/validation"
)

// CategoriaUsecase defines the category operations.
type CategoriaUsecase interface {
	Create(ctx context.Context, in *CategoriaInput) (*entity.Categoria, error)
	Get(ctx context.Context, id int64) (*entity.Categoria, error)
	List(ctx context.Context, crit *match.Criteria) ([]entity.Categoria, error)
	ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Categoria, int64, error)
	Patch(ctx context.Context, id int64, in *CategoriaInput) (*entity.Categoria, error)
	Replace(ctx context.Context, id int64, in *CategoriaInput) (*entity.Categoria, error)
	Delete(ctx context.Context, id int64) error
}

// CategoriaInput carries a submitted category. Nil fields were absent from
// the request; in full mode absence of a required field is a violation.
type CategoriaInput struct {
	ID        *int64  `json:"id,omitempty"`
	Nome      *string `json:"nome,omitempty"`
	Descricao *string `json:"descricao,omitempty"`
}

// Rules is the ordered constraint table; first violation wins.
func (in *CategoriaInput) Rules() []validation.Rule {
	return []validation.Rule{
		validation.Texto("nome_invalido", in.Nome, 1, 30),
		validation.Texto("descricao_invalida", in.Descricao, 1, 150),
	}
}
