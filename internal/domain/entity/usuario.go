package entity

import "strings"

// StatusUsuario represents the lifecycle state of a user account.
type StatusUsuario string

const (
	// StatusAtivo indicates a live account.
	StatusAtivo StatusUsuario = "ativo"
	// StatusExcluido indicates a soft-deleted account. The row is kept so
	// audit references (CriadoPor) stay resolvable.
	StatusExcluido StatusUsuario = "excluido"
)

// String returns the string representation of the status.
func (s StatusUsuario) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s StatusUsuario) IsValid() bool {
	switch s {
	case StatusAtivo, StatusExcluido:
		return true
	default:
		return false
	}
}

// Usuario is an account that registers markets, products, stock entries and
// price suggestions. Users are never hard-deleted: deletion blanks the
// personal fields and flips Status to StatusExcluido.
type Usuario struct {
	ID        int64
	Nome      string // 3-50 characters.
	Email     string // 7-255 characters, unique among active users.
	SenhaHash string // Salted bcrypt hash, never the plaintext password.
	Endereco
	Status StatusUsuario
}

// Ativo reports whether the account still exists from the domain's point of
// view. A soft-deleted user keeps its row but no longer "exists".
func (u *Usuario) Ativo() bool {
	return u != nil && u.Status == StatusAtivo && strings.TrimSpace(u.Email) != ""
}

// Excluir blanks all personal fields and marks the account as deleted.
// Rows created by this user keep referencing its ID.
func (u *Usuario) Excluir() {
	u.Nome = ""
	u.Email = ""
	u.SenhaHash = ""
	u.Endereco = Endereco{}
	u.Status = StatusExcluido
}
