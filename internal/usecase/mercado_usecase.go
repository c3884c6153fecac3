package usecase

import (
	"context"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
	"precario/internal/domain/validation"
)

// MercadoUsecase defines the market operations.
type MercadoUsecase interface {
	Create(ctx context.Context, in *MercadoInput) (*entity.Mercado, error)
	Get(ctx context.Context, id int64) (*entity.Mercado, error)
	List(ctx context.Context, crit *match.Criteria) ([]entity.Mercado, error)
	ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Mercado, int64, error)
	Patch(ctx context.Context, id int64, in *MercadoInput) (*entity.Mercado, error)
	Replace(ctx context.Context, id int64, in *MercadoInput) (*entity.Mercado, error)
	Delete(ctx context.Context, id int64) error
}

// MercadoInput carries a submitted market with its flattened address.
type MercadoInput struct {
	ID          *int64  `json:"id,omitempty"`
	Nome        *string `json:"nome,omitempty"`
	Logradouro  *string `json:"logradouro,omitempty"`
	Numero      *int    `json:"numero,omitempty"`
	Complemento *string `json:"complemento,omitempty"`
	Bairro      *string `json:"bairro,omitempty"`
	Cidade      *string `json:"cidade,omitempty"`
	UF          *string `json:"uf,omitempty"`
	CEP         *string `json:"cep,omitempty"`
	RamoID      *int64  `json:"ramoId,omitempty"`
	CriadoPor   *int64  `json:"criadoPor,omitempty"`
}

// Rules is the ordered constraint table; first violation wins. Complemento
// is optional and clearable: an explicit empty string is acceptable.
func (in *MercadoInput) Rules() []validation.Rule {
	return []validation.Rule{
		validation.Texto("nome_invalido", in.Nome, 5, 50),
		validation.Texto("logradouro_invalido", in.Logradouro, 5, 120),
		validation.Numero("numero_invalido", in.Numero, 1, 999999),
		validation.TextoOpcional("complemento_invalido", in.Complemento, 1, 20),
		validation.Texto("bairro_invalido", in.Bairro, 5, 50),
		validation.Texto("cidade_invalida", in.Cidade, 3, 30),
		validation.UF("uf_invalida", in.UF),
		validation.CEP("cep_invalido", in.CEP),
		validation.Referencia("ramo_invalido", in.RamoID),
		validation.Referencia("usuario_invalido", in.CriadoPor),
	}
}
