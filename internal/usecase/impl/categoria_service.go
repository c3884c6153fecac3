// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"precario/internal/domain/entity"
	domainerrors "precario/internal/domain/errors"
	"precario/internal/domain/match"
	"precario/internal/domain/repository"
	"precario/internal/domain/validation"
	"precario/internal/errors"
	"precario/internal/infra/cache"
	"precario/internal/usecase"
)

// categoriaService implements the CategoriaUsecase interface.
type categoriaService struct {
	txManager repository.TransactionManager
	store     *cache.Store
	logger    *slog.Logger
}

// NewCategoriaService is the constructor for categoriaService.
func NewCategoriaService(
	txManager repository.TransactionManager,
	store *cache.Store,
	logger *slog.Logger,
) usecase.CategoriaUsecase {
	return &categoriaService{
		txManager: txManager,
		store:     store,
		logger:    logger,
	}
}

// Create validates and persists a new category.
func (srv *categoriaService) Create(ctx context.Context, in *usecase.CategoriaInput) (*entity.Categoria, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(false, in.Rules()); err != nil {
		return nil, err
	}

	categoria := &entity.Categoria{
		Nome:      *in.Nome,
		Descricao: *in.Descricao,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CategoriaRepo().Create(ctx, categoria)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.store.Evict(cache.Categorias)
	srv.logger.Debug("category created", slog.Int64("id", categoria.ID))

	return categoria, nil
}

// Get retrieves one category by ID.
func (srv *categoriaService) Get(ctx context.Context, id int64) (*entity.Categoria, error) {
	var categoria *entity.Categoria

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CategoriaRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to find category")
		}
		categoria = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return categoria, nil
}

// List retrieves every category matching the criteria, read-through cached.
func (srv *categoriaService) List(ctx context.Context, crit *match.Criteria) ([]entity.Categoria, error) {
	if v, ok := srv.store.Get(cache.Categorias, listKey(crit)); ok {
		return v.([]entity.Categoria), nil
	}

	var categorias []entity.Categoria

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CategoriaRepo().FindAll(ctx, crit)
		if err != nil {
			return errors.Wrap(err, "failed to list categories")
		}
		categorias = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.store.Put(cache.Categorias, listKey(crit), categorias)

	return categorias, nil
}

// ListPaged retrieves one page of matching categories plus the total count.
func (srv *categoriaService) ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Categoria, int64, error) {
	key := pageKey(crit, page, size)
	if v, ok := srv.store.Get(cache.Categorias, key); ok {
		p := v.(pagina[entity.Categoria])

		return p.itens, p.total, nil
	}

	var (
		categorias []entity.Categoria
		total      int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.CategoriaRepo().FindAllPaged(ctx, crit, page, size)
		if err != nil {
			return errors.Wrap(err, "failed to list category page")
		}
		categorias, total = found, count

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	srv.store.Put(cache.Categorias, key, pagina[entity.Categoria]{itens: categorias, total: total})

	return categorias, total, nil
}

// Patch applies a partial update onto a stored category.
func (srv *categoriaService) Patch(ctx context.Context, id int64, in *usecase.CategoriaInput) (*entity.Categoria, error) {
	return srv.update(ctx, id, in, true)
}

// Replace rewrites a stored category; the ID comes from the URL, never the
// body.
func (srv *categoriaService) Replace(ctx context.Context, id int64, in *usecase.CategoriaInput) (*entity.Categoria, error) {
	return srv.update(ctx, id, in, false)
}

func (srv *categoriaService) update(ctx context.Context, id int64, in *usecase.CategoriaInput, partial bool) (*entity.Categoria, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(partial, in.Rules()); err != nil {
		return nil, err
	}

	var categoria *entity.Categoria

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.CategoriaRepo()

		current, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to find category")
		}

		merged := usecase.MergeCategoria(*current, in)
		if err := repo.Update(ctx, &merged); err != nil {
			return errors.Wrap(err, "failed to update category")
		}
		categoria = &merged

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.store.Evict(cache.Categorias)

	return categoria, nil
}

// Delete removes a stored category.
func (srv *categoriaService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CategoriaRepo().DeleteByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to delete category")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.store.Evict(cache.Categorias)
	srv.logger.Debug("category deleted", slog.Int64("id", id))

	return nil
}
