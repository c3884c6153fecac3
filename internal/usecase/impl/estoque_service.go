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

// estoqueService implements the EstoqueUsecase interface. At most one entry
// exists per (product, market) pair.
type estoqueService struct {
	txManager repository.TransactionManager
	store     *cache.Store
	logger    *slog.Logger
}

// NewEstoqueService is the constructor for estoqueService.
func NewEstoqueService(
	txManager repository.TransactionManager,
	store *cache.Store,
	logger *slog.Logger,
) usecase.EstoqueUsecase {
	return &estoqueService{
		txManager: txManager,
		store:     store,
		logger:    logger,
	}
}

// Create validates and persists a new stock entry.
func (srv *estoqueService) Create(ctx context.Context, in *usecase.EstoqueInput) (*entity.Estoque, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(false, in.Rules()); err != nil {
		return nil, err
	}

	estoque := &entity.Estoque{
		CriadoPor: *in.CriadoPor,
		ProdutoID: *in.ProdutoID,
		MercadoID: *in.MercadoID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := verificarProduto(ctx, repoFactory, estoque.ProdutoID); err != nil {
			return err
		}
		if err := verificarMercado(ctx, repoFactory, estoque.MercadoID); err != nil {
			return err
		}
		if err := verificarUsuario(ctx, repoFactory, estoque.CriadoPor); err != nil {
			return err
		}

		repo := repoFactory.EstoqueRepo()
		duplicado, err := repo.Exists(ctx, critEstoque(estoque))
		if err != nil {
			return errors.Wrap(err, "failed to check stock entry uniqueness")
		}
		if duplicado {
			return domainerrors.NewDadosConflitantes("estoque_existente")
		}

		return repo.Create(ctx, estoque)
	})
	if err != nil {
		return nil, err
	}

	srv.evict()
	srv.logger.Debug("stock entry created", slog.Int64("id", estoque.ID))

	return estoque, nil
}

// Get retrieves one stock entry by ID.
func (srv *estoqueService) Get(ctx context.Context, id int64) (*entity.Estoque, error) {
	var estoque *entity.Estoque

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EstoqueRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to find stock entry")
		}
		estoque = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return estoque, nil
}

// List retrieves every stock entry matching the criteria, read-through
// cached.
func (srv *estoqueService) List(ctx context.Context, crit *match.Criteria) ([]entity.Estoque, error) {
	if v, ok := srv.store.Get(cache.Estoques, listKey(crit)); ok {
		return v.([]entity.Estoque), nil
	}

	var estoques []entity.Estoque

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EstoqueRepo().FindAll(ctx, crit)
		if err != nil {
			return errors.Wrap(err, "failed to list stock entries")
		}
		estoques = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.store.Put(cache.Estoques, listKey(crit), estoques)

	return estoques, nil
}

// ListPaged retrieves one page of matching stock entries plus the total
// count.
func (srv *estoqueService) ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Estoque, int64, error) {
	key := pageKey(crit, page, size)
	if v, ok := srv.store.Get(cache.Estoques, key); ok {
		p := v.(pagina[entity.Estoque])

		return p.itens, p.total, nil
	}

	var (
		estoques []entity.Estoque
		total    int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.EstoqueRepo().FindAllPaged(ctx, crit, page, size)
		if err != nil {
			return errors.Wrap(err, "failed to list stock entry page")
		}
		estoques, total = found, count

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	srv.store.Put(cache.Estoques, key, pagina[entity.Estoque]{itens: estoques, total: total})

	return estoques, total, nil
}

// Patch applies a partial update onto a stored stock entry.
func (srv *estoqueService) Patch(ctx context.Context, id int64, in *usecase.EstoqueInput) (*entity.Estoque, error) {
	return srv.update(ctx, id, in, true)
}

// Replace rewrites a stored stock entry. CriadoPor is immutable.
func (srv *estoqueService) Replace(ctx context.Context, id int64, in *usecase.EstoqueInput) (*entity.Estoque, error) {
	return srv.update(ctx, id, in, false)
}

func (srv *estoqueService) update(ctx context.Context, id int64, in *usecase.EstoqueInput, partial bool) (*entity.Estoque, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(partial, in.Rules()); err != nil {
		return nil, err
	}

	var estoque *entity.Estoque

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.EstoqueRepo()

		current, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to find stock entry")
		}

		merged := usecase.MergeEstoque(*current, in)

		if merged.ProdutoID != current.ProdutoID {
			if err := verificarProduto(ctx, repoFactory, merged.ProdutoID); err != nil {
				return err
			}
		}
		if merged.MercadoID != current.MercadoID {
			if err := verificarMercado(ctx, repoFactory, merged.MercadoID); err != nil {
				return err
			}
		}

		if merged.ProdutoID != current.ProdutoID || merged.MercadoID != current.MercadoID {
			duplicado, err := repo.Exists(ctx, critEstoque(&merged))
			if err != nil {
				return errors.Wrap(err, "failed to check stock entry uniqueness")
			}
			if duplicado {
				return domainerrors.NewDadosConflitantes("estoque_existente")
			}
		}

		if err := repo.Update(ctx, &merged); err != nil {
			return errors.Wrap(err, "failed to update stock entry")
		}
		estoque = &merged

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.evict()

	return estoque, nil
}

// Delete removes a stored stock entry.
func (srv *estoqueService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.EstoqueRepo().DeleteByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to delete stock entry")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.evict()
	srv.logger.Debug("stock entry deleted", slog.Int64("id", id))

	return nil
}

func (srv *estoqueService) evict() {
	srv.store.Evict(cache.Estoques)
	srv.store.Evict(cache.ProdutoMercado)
	srv.store.Evict(cache.MercadoSugestoes)
}

// critEstoque builds the duplicate criteria on the (product, market) pair.
func critEstoque(e *entity.Estoque) *match.Criteria {
	return match.New().
		Eq("produto_id", e.ProdutoID).
		Eq("mercado_id", e.MercadoID)
}

// verificarProduto resolves a product reference against live rows.
func verificarProduto(ctx context.Context, repoFactory repository.RepositoryFactory, produtoID int64) error {
	ok, err := repoFactory.ProdutoRepo().ExistsByID(ctx, produtoID)
	if err != nil {
		return errors.Wrap(err, "failed to check product reference")
	}
	if !ok {
		return domainerrors.ErrNaoEncontrado.WrapMessage("referenced product does not exist")
	}

	return nil
}

// verificarMercado resolves a market reference against live rows.
func verificarMercado(ctx context.Context, repoFactory repository.RepositoryFactory, mercadoID int64) error {
	ok, err := repoFactory.MercadoRepo().ExistsByID(ctx, mercadoID)
	if err != nil {
		return errors.Wrap(err, "failed to check market reference")
	}
	if !ok {
		return domainerrors.ErrNaoEncontrado.WrapMessage("referenced market does not exist")
	}

	return nil
}
