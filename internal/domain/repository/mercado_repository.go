package repository

import (
	"context"

	"precario/internal/domain/entity"
	"precario/internal/domain/match"
)

// MercadoRepository defines the standard operations for market persistence.
type MercadoRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Mercado, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, crit *match.Criteria) (bool, error)

	FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Mercado, error)
	FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Mercado, int64, error)

	Create(ctx context.Context, mercado *entity.Mercado) error
	Update(ctx context.Context, mercado *entity.Mercado) error
	DeleteByID(ctx context.Context, id int64) error
}
