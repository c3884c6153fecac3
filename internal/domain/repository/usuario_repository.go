package repository

import (
	"context"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
)

// UsuarioRepository defines the standard operations for user persistence.
// Users are soft-deleted: rows stay behind for audit references, so finders
// may return accounts whose Status is StatusExcluido.
type UsuarioRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)

	FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Usuario, error)
	FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Usuario, int64, error)

	Create(ctx context.Context, usuario *entity.Usuario) error
	Update(ctx context.Context, usuario *entity.Usuario) error
}
