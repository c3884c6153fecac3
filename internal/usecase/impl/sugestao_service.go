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

// sugestaoService implements the SugestaoUsecase interface. Prices arrive
// as decimal major units and are stored as integer centavos.
type sugestaoService struct {
	txManager repository.TransactionManager
	store     *cache.Store
	logger    *slog.Logger
}

// NewSugestaoService is the constructor for sugestaoService.
func NewSugestaoService(
	txManager repository.TransactionManager,
	store *cache.Store,
	logger *slog.Logger,
) usecase.SugestaoUsecase {
	return &sugestaoService{
		txManager: txManager,
		store:     store,
		logger:    logger,
	}
}

// Create validates and persists a new price suggestion.
func (srv *sugestaoService) Create(ctx context.Context, in *usecase.SugestaoInput) (*usecase.SugestaoOutput, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(false, in.Rules()); err != nil {
		return nil, err
	}

	sugestao := &entity.Sugestao{
		PrecoCentavos: entity.CentavosDePreco(*in.Preco),
		EstoqueID:     *in.EstoqueID,
		CriadoPor:     *in.CriadoPor,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := verificarEstoque(ctx, repoFactory, sugestao.EstoqueID); err != nil {
			return err
		}
		if err := verificarUsuario(ctx, repoFactory, sugestao.CriadoPor); err != nil {
			return err
		}

		return repoFactory.SugestaoRepo().Create(ctx, sugestao)
	})
	if err != nil {
		return nil, err
	}

	srv.evict()
	srv.logger.Debug("suggestion created", slog.Int64("id", sugestao.ID))

	return usecase.ToSugestaoOutput(sugestao), nil
}

// Get retrieves one suggestion by ID.
func (srv *sugestaoService) Get(ctx context.Context, id int64) (*usecase.SugestaoOutput, error) {
	var sugestao *entity.Sugestao

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SugestaoRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to find suggestion")
		}
		sugestao = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.ToSugestaoOutput(sugestao), nil
}

// List retrieves every suggestion matching the criteria, read-through
// cached.
func (srv *sugestaoService) List(ctx context.Context, crit *match.Criteria) ([]usecase.SugestaoOutput, error) {
	if v, ok := srv.store.Get(cache.Sugestoes, listKey(crit)); ok {
		return v.([]usecase.SugestaoOutput), nil
	}

	var sugestoes []entity.Sugestao

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SugestaoRepo().FindAll(ctx, crit)
		if err != nil {
			return errors.Wrap(err, "failed to list suggestions")
		}
		sugestoes = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	outputs := toSugestaoOutputs(sugestoes)
	srv.store.Put(cache.Sugestoes, listKey(crit), outputs)

	return outputs, nil
}

// ListPaged retrieves one page of matching suggestions plus the total
// count.
func (srv *sugestaoService) ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]usecase.SugestaoOutput, int64, error) {
	key := pageKey(crit, page, size)
	if v, ok := srv.store.Get(cache.Sugestoes, key); ok {
		p := v.(pagina[usecase.SugestaoOutput])

		return p.itens, p.total, nil
	}

	var (
		sugestoes []entity.Sugestao
		total     int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.SugestaoRepo().FindAllPaged(ctx, crit, page, size)
		if err != nil {
			return errors.Wrap(err, "failed to list suggestion page")
		}
		sugestoes, total = found, count

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	outputs := toSugestaoOutputs(sugestoes)
	srv.store.Put(cache.Sugestoes, key, pagina[usecase.SugestaoOutput]{itens: outputs, total: total})

	return outputs, total, nil
}

// Patch applies a partial update onto a stored suggestion. The stored
// creator survives even a supplied criadoPor.
func (srv *sugestaoService) Patch(ctx context.Context, id int64, in *usecase.SugestaoInput) (*usecase.SugestaoOutput, error) {
	return srv.update(ctx, id, in, true)
}

// Replace rewrites a stored suggestion.
func (srv *sugestaoService) Replace(ctx context.Context, id int64, in *usecase.SugestaoInput) (*usecase.SugestaoOutput, error) {
	return srv.update(ctx, id, in, false)
}

func (srv *sugestaoService) update(ctx context.Context, id int64, in *usecase.SugestaoInput, partial bool) (*usecase.SugestaoOutput, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(partial, in.Rules()); err != nil {
		return nil, err
	}

	var sugestao *entity.Sugestao

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.SugestaoRepo()

		current, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to find suggestion")
		}

		merged := usecase.MergeSugestao(*current, in)

		if merged.EstoqueID != current.EstoqueID {
			if err := verificarEstoque(ctx, repoFactory, merged.EstoqueID); err != nil {
				return err
			}
		}

		if err := repo.Update(ctx, &merged); err != nil {
			return errors.Wrap(err, "failed to update suggestion")
		}
		sugestao = &merged

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.evict()

	return usecase.ToSugestaoOutput(sugestao), nil
}

// Delete removes a stored suggestion.
func (srv *sugestaoService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SugestaoRepo().DeleteByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to delete suggestion")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.evict()
	srv.logger.Debug("suggestion deleted", slog.Int64("id", id))

	return nil
}

func (srv *sugestaoService) evict() {
	srv.store.Evict(cache.Sugestoes)
	srv.store.Evict(cache.MercadoSugestoes)
}

func toSugestaoOutputs(sugestoes []entity.Sugestao) []usecase.SugestaoOutput {
	outputs := make([]usecase.SugestaoOutput, 0, len(sugestoes))
	for i := range sugestoes {
		outputs = append(outputs, *usecase.ToSugestaoOutput(&sugestoes[i]))
	}

	return outputs
}

// verificarEstoque resolves a stock-entry reference against live rows.
func verificarEstoque(ctx context.Context, repoFactory repository.RepositoryFactory, estoqueID int64) error {
	ok, err := repoFactory.EstoqueRepo().ExistsByID(ctx, estoqueID)
	if err != nil {
		return errors.Wrap(err, "failed to check stock entry reference")
	}
	if !ok {
		return domainerrors.ErrNaoEncontrado.WrapMessage("referenced stock entry does not exist")
	}

	return nil
}
