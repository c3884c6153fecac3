package usecase

import (
	"context"
	"time"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
	"precario/internal/domain/validation"

	"github.com/shopspring/decimal"
)

// SugestaoUsecase defines the price-suggestion operations.
type SugestaoUsecase interface {
	Create(ctx context.Context, in *SugestaoInput) (*SugestaoOutput, error)
	Get(ctx context.Context, id int64) (*SugestaoOutput, error)
	List(ctx context.Context, crit *match.Criteria) ([]SugestaoOutput, error)
	ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]SugestaoOutput, int64, error)
	Patch(ctx context.Context, id int64, in *SugestaoInput) (*SugestaoOutput, error)
	Replace(ctx context.Context, id int64, in *SugestaoInput) (*SugestaoOutput, error)
	Delete(ctx context.Context, id int64) error
}

// SugestaoInput carries a submitted price suggestion. Preco is a decimal
// major-unit amount; it is converted to integer centavos before any merge
// or store operation.
type SugestaoInput struct {
	ID        *int64           `json:"id,omitempty"`
	Preco     *decimal.Decimal `json:"preco,omitempty"`
	EstoqueID *int64           `json:"estoqueId,omitempty"`
	CriadoPor *int64           `json:"criadoPor,omitempty"`
}

// Rules is the ordered constraint table; first violation wins.
func (in *SugestaoInput) Rules() []validation.Rule {
	return []validation.Rule{
		validation.Preco("preco_invalido", in.Preco),
		validation.Referencia("estoque_invalido", in.EstoqueID),
		validation.Referencia("usuario_invalido", in.CriadoPor),
	}
}

// SugestaoOutput is the caller-facing view of a suggestion, with the price
// converted back to decimal major units.
type SugestaoOutput struct {
	ID        int64           `json:"id"`
	Preco     decimal.Decimal `json:"preco"`
	CriadoEm  time.Time       `json:"criadoEm"`
	EstoqueID int64           `json:"estoqueId"`
	CriadoPor int64           `json:"criadoPor"`
}

// ToSugestaoOutput maps a stored suggestion to its external representation.
func ToSugestaoOutput(s *entity.Sugestao) *SugestaoOutput {
	if s == nil {
		return nil
	}

	return &SugestaoOutput{
		ID:        s.ID,
		Preco:     s.Preco(),
		CriadoEm:  s.CriadoEm,
		EstoqueID: s.EstoqueID,
		CriadoPor: s.CriadoPor,
	}
}
