package usecase

import (
	"context"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
	"precario/internal/domain/validation"
)

// RamoUsecase defines the branch operations.
type RamoUsecase interface {
	Create(ctx context.Context, in *RamoInput) (*entity.Ramo, error)
	Get(ctx context.Context, id int64) (*entity.Ramo, error)
	List(ctx context.Context, crit *match.Criteria) ([]entity.Ramo, error)
	ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Ramo, int64, error)
	Patch(ctx context.Context, id int64, in *RamoInput) (*entity.Ramo, error)
	Replace(ctx context.Context, id int64, in *RamoInput) (*entity.Ramo, error)
	Delete(ctx context.Context, id int64) error
}

// RamoInput carries a submitted branch.
type RamoInput struct {
	ID        *int64  `json:"id,omitempty"`
	Nome      *string `json:"nome,omitempty"`
	Descricao *string `json:"descricao,omitempty"`
}

// Rules is the ordered constraint table; first violation wins.
func (in *RamoInput) Rules() []validation.Rule {
	return []validation.Rule{
		validation.Texto("nome_invalido", in.Nome, 3, 30),
		validation.Texto("descricao_invalida", in.Descricao, 10, 150),
	}
}
