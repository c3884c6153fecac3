package usecase

import (
	"context"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
	"precario/internal/domain/validation"
)

// UsuarioUsecase defines the user account operations. Delete is a soft
// delete: personal fields are blanked and the row is kept so audit
// references stay resolvable.
type UsuarioUsecase interface {
	Create(ctx context.Context, in *UsuarioInput) (*UsuarioOutput, error)
	Get(ctx context.Context, id int64) (*UsuarioOutput, error)
	List(ctx context.Context, crit *match.Criteria) ([]UsuarioOutput, error)
	ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]UsuarioOutput, int64, error)
	Patch(ctx context.Context, id int64, in *UsuarioInput) (*UsuarioOutput, error)
	Replace(ctx context.Context, id int64, in *UsuarioInput) (*UsuarioOutput, error)
	Delete(ctx context.Context, id int64) error

	Login(ctx context.Context, in *LoginInput) (*LoginOutput, error)
}

// UsuarioInput carries a submitted user with its flattened address. Senha
// is the plaintext password; it is hashed before anything is stored.
type UsuarioInput struct {
	ID          *int64  `json:"id,omitempty"`
	Nome        *string `json:"nome,omitempty"`
	Email       *string `json:"email,omitempty"`
	Senha       *string `json:"senha,omitempty"`
	Logradouro  *string `json:"logradouro,omitempty"`
	Numero      *int    `json:"numero,omitempty"`
	Complemento *string `json:"complemento,omitempty"`
	Bairro      *string `json:"bairro,omitempty"`
	Cidade      *string `json:"cidade,omitempty"`
	UF          *string `json:"uf,omitempty"`
	CEP         *string `json:"cep,omitempty"`
}

// Rules is the ordered constraint table; first violation wins.
func (in *UsuarioInput) Rules() []validation.Rule {
	return []validation.Rule{
		validation.Texto("nome_invalido", in.Nome, 3, 50),
		validation.Email("email_invalido", in.Email),
		validation.Senha("senha_invalida", in.Senha),
		validation.Texto("logradouro_invalido", in.Logradouro, 5, 120),
		validation.Numero("numero_invalido", in.Numero, 1, 999999),
		validation.TextoOpcional("complemento_invalido", in.Complemento, 1, 20),
		validation.Texto("bairro_invalido", in.Bairro, 5, 50),
		validation.Texto("cidade_invalida", in.Cidade, 3, 30),
		validation.UF("uf_invalida", in.UF),
		validation.CEP("cep_invalido", in.CEP),
	}
}

// UsuarioOutput is the caller-facing view of an account. The password hash
// never leaves the service layer.
type UsuarioOutput struct {
	ID          int64   `json:"id"`
	Nome        string  `json:"nome"`
	Email       string  `json:"email"`
	Logradouro  string  `json:"logradouro"`
	Numero      int     `json:"numero"`
	Complemento *string `json:"complemento,omitempty"`
	Bairro      string  `json:"bairro"`
	Cidade      string  `json:"cidade"`
	UF          string  `json:"uf"`
	CEP         string  `json:"cep"`
}

// ToUsuarioOutput maps a stored account to its external representation.
func ToUsuarioOutput(u *entity.Usuario) *UsuarioOutput {
	if u == nil {
		return nil
	}

	return &UsuarioOutput{
		ID:          u.ID,
		Nome:        u.Nome,
		Email:       u.Email,
		Logradouro:  u.Logradouro,
		Numero:      u.Numero,
		Complemento: u.Complemento,
		Bairro:      u.Bairro,
		Cidade:      u.Cidade,
		UF:          u.UF,
		CEP:         u.CEP,
	}
}

// LoginInput carries the credentials of a login attempt.
type LoginInput struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginOutput carries the issued access token.
type LoginOutput struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}
