package impl

import (
	"context"
	"log/slog"
	"strings"

	"precario/internal/domain/entity"
	domainerrors "precario/internal/domain/errors"
	"precario/internal/domain/match"
	"precario/internal/domain/repository"
	"precario/internal/domain/validation"
	"precario/internal/errors"
	"precario/internal/infra/cache"
	"precario/internal/usecase"
)

// ramoService implements the RamoUsecase interface. Branch names are unique
// ignoring case, enforced before any write.
type ramoService struct {
	txManager repository.TransactionManager
	store     *cache.Store
	logger    *slog.Logger
}

// NewRamoService is the constructor for ramoService.
func NewRamoService(
	txManager repository.TransactionManager,
	store *cache.Store,
	logger *slog.Logger,
) usecase.RamoUsecase {
	return &ramoService{
		txManager: txManager,
		store:     store,
		logger:    logger,
	}
}

// Create validates and persists a new branch.
func (srv *ramoService) Create(ctx context.Context, in *usecase.RamoInput) (*entity.Ramo, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(false, in.Rules()); err != nil {
		return nil, err
	}

	ramo := &entity.Ramo{
		Nome:      *in.Nome,
		Descricao: *in.Descricao,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.RamoRepo()

		duplicado, err := repo.Exists(ctx, match.New().FoldEq("nome", ramo.Nome))
		if err != nil {
			return errors.Wrap(err, "failed to check branch name")
		}
		if duplicado {
			return domainerrors.NewDadosConflitantes("ramo_existente")
		}

		return repo.Create(ctx, ramo)
	})
	if err != nil {
		return nil, err
	}

	srv.store.Evict(cache.Ramos)
	srv.logger.Debug("branch created", slog.Int64("id", ramo.ID))

	return ramo, nil
}

// Get retrieves one branch by ID.
func (srv *ramoService) Get(ctx context.Context, id int64) (*entity.Ramo, error) {
	var ramo *entity.Ramo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RamoRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to find branch")
		}
		ramo = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ramo, nil
}

// List retrieves every branch matching the criteria, read-through cached.
func (srv *ramoService) List(ctx context.Context, crit *match.Criteria) ([]entity.Ramo, error) {
	if v, ok := srv.store.Get(cache.Ramos, listKey(crit)); ok {
		return v.([]entity.Ramo), nil
	}

	var ramos []entity.Ramo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RamoRepo().FindAll(ctx, crit)
		if err != nil {
			return errors.Wrap(err, "failed to list branches")
		}
		ramos = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.store.Put(cache.Ramos, listKey(crit), ramos)

	return ramos, nil
}

// ListPaged retrieves one page of matching branches plus the total count.
func (srv *ramoService) ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Ramo, int64, error) {
	key := pageKey(crit, page, size)
	if v, ok := srv.store.Get(cache.Ramos, key); ok {
		p := v.(pagina[entity.Ramo])

		return p.itens, p.total, nil
	}

	var (
		ramos []entity.Ramo
		total int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.RamoRepo().FindAllPaged(ctx, crit, page, size)
		if err != nil {
			return errors.Wrap(err, "failed to list branch page")
		}
		ramos, total = found, count

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	srv.store.Put(cache.Ramos, key, pagina[entity.Ramo]{itens: ramos, total: total})

	return ramos, total, nil
}

// Patch applies a partial update onto a stored branch.
func (srv *ramoService) Patch(ctx context.Context, id int64, in *usecase.RamoInput) (*entity.Ramo, error) {
	return srv.update(ctx, id, in, true)
}

// Replace rewrites a stored branch.
func (srv *ramoService) Replace(ctx context.Context, id int64, in *usecase.RamoInput) (*entity.Ramo, error) {
	return srv.update(ctx, id, in, false)
}

func (srv *ramoService) update(ctx context.Context, id int64, in *usecase.RamoInput, partial bool) (*entity.Ramo, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(partial, in.Rules()); err != nil {
		return nil, err
	}

	var ramo *entity.Ramo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.RamoRepo()

		current, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to find branch")
		}

		merged := usecase.MergeRamo(*current, in)

		// The name stays unique ignoring case; an update keeping the stored
		// name (any casing) is not a conflict with itself.
		if in.Nome != nil && !strings.EqualFold(merged.Nome, current.Nome) {
			duplicado, err := repo.Exists(ctx, match.New().FoldEq("nome", merged.Nome))
			if err != nil {
				return errors.Wrap(err, "failed to check branch name")
			}
			if duplicado {
				return domainerrors.NewDadosConflitantes("ramo_existente")
			}
		}

		if err := repo.Update(ctx, &merged); err != nil {
			return errors.Wrap(err, "failed to update branch")
		}
		ramo = &merged

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.store.Evict(cache.Ramos)

	return ramo, nil
}

// Delete removes a stored branch.
func (srv *ramoService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RamoRepo().DeleteByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to delete branch")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.store.Evict(cache.Ramos)
	srv.logger.Debug("branch deleted", slog.Int64("id", id))

	return nil
}
