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

// mercadoService implements the MercadoUsecase interface. A market is a
// duplicate when another one carries the same name (ignoring case) at the
// same postal code.
type mercadoService struct {
	txManager repository.TransactionManager
	store     *cache.Store
	logger    *slog.Logger
}

// NewMercadoService is the constructor for mercadoService.
func NewMercadoService(
	txManager repository.TransactionManager,
	store *cache.Store,
	logger *slog.Logger,
) usecase.MercadoUsecase {
	return &mercadoService{
		txManager: txManager,
		store:     store,
		logger:    logger,
	}
}

// Create validates and persists a new market.
func (srv *mercadoService) Create(ctx context.Context, in *usecase.MercadoInput) (*entity.Mercado, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(false, in.Rules()); err != nil {
		return nil, err
	}

	mercado := &entity.Mercado{
		CriadoPor: *in.CriadoPor,
		RamoID:    *in.RamoID,
		Nome:      *in.Nome,
		Endereco: entity.Endereco{
			Logradouro: *in.Logradouro,
			Numero:     *in.Numero,
			Bairro:     *in.Bairro,
			Cidade:     *in.Cidade,
			UF:         *in.UF,
			CEP:        *in.CEP,
		},
	}
	if in.Complemento != nil && *in.Complemento != "" {
		v := *in.Complemento
		mercado.Complemento = &v
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := verificarRamo(ctx, repoFactory, mercado.RamoID); err != nil {
			return err
		}
		if err := verificarUsuario(ctx, repoFactory, mercado.CriadoPor); err != nil {
			return err
		}

		repo := repoFactory.MercadoRepo()
		duplicado, err := repo.Exists(ctx, critMercado(mercado))
		if err != nil {
			return errors.Wrap(err, "failed to check market uniqueness")
		}
		if duplicado {
			return domainerrors.NewDadosConflitantes("mercado_existente")
		}

		return repo.Create(ctx, mercado)
	})
	if err != nil {
		return nil, err
	}

	srv.store.Evict(cache.Mercados)
	srv.logger.Debug("market created", slog.Int64("id", mercado.ID))

	return mercado, nil
}

// Get retrieves one market by ID.
func (srv *mercadoService) Get(ctx context.Context, id int64) (*entity.Mercado, error) {
	var mercado *entity.Mercado

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MercadoRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to find market")
		}
		mercado = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return mercado, nil
}

// List retrieves every market matching the criteria, read-through cached.
func (srv *mercadoService) List(ctx context.Context, crit *match.Criteria) ([]entity.Mercado, error) {
	if v, ok := srv.store.Get(cache.Mercados, listKey(crit)); ok {
		return v.([]entity.Mercado), nil
	}

	var mercados []entity.Mercado

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MercadoRepo().FindAll(ctx, crit)
		if err != nil {
			return errors.Wrap(err, "failed to list markets")
		}
		mercados = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.store.Put(cache.Mercados, listKey(crit), mercados)

	return mercados, nil
}

// ListPaged retrieves one page of matching markets plus the total count.
func (srv *mercadoService) ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Mercado, int64, error) {
	key := pageKey(crit, page, size)
	if v, ok := srv.store.Get(cache.Mercados, key); ok {
		p := v.(pagina[entity.Mercado])

		return p.itens, p.total, nil
	}

	var (
		mercados []entity.Mercado
		total    int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.MercadoRepo().FindAllPaged(ctx, crit, page, size)
		if err != nil {
			return errors.Wrap(err, "failed to list market page")
		}
		mercados, total = found, count

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	srv.store.Put(cache.Mercados, key, pagina[entity.Mercado]{itens: mercados, total: total})

	return mercados, total, nil
}

// Patch applies a partial update onto a stored market.
func (srv *mercadoService) Patch(ctx context.Context, id int64, in *usecase.MercadoInput) (*entity.Mercado, error) {
	return srv.update(ctx, id, in, true)
}

// Replace rewrites a stored market. CriadoPor is immutable: the stored
// creator survives whatever the body carries.
func (srv *mercadoService) Replace(ctx context.Context, id int64, in *usecase.MercadoInput) (*entity.Mercado, error) {
	return srv.update(ctx, id, in, false)
}

func (srv *mercadoService) update(ctx context.Context, id int64, in *usecase.MercadoInput, partial bool) (*entity.Mercado, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(partial, in.Rules()); err != nil {
		return nil, err
	}

	var mercado *entity.Mercado

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.MercadoRepo()

		current, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to find market")
		}

		merged := usecase.MergeMercado(*current, in)

		if merged.RamoID != current.RamoID {
			if err := verificarRamo(ctx, repoFactory, merged.RamoID); err != nil {
				return err
			}
		}

		identityChanged := !strings.EqualFold(merged.Nome, current.Nome) ||
			merged.CEP != current.CEP
		if identityChanged {
			duplicado, err := repo.Exists(ctx, critMercado(&merged))
			if err != nil {
				return errors.Wrap(err, "failed to check market uniqueness")
			}
			if duplicado {
				return domainerrors.NewDadosConflitantes("mercado_existente")
			}
		}

		if err := repo.Update(ctx, &merged); err != nil {
			return errors.Wrap(err, "failed to update market")
		}
		mercado = &merged

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.store.Evict(cache.Mercados)

	return mercado, nil
}

// Delete removes a stored market.
func (srv *mercadoService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.MercadoRepo().DeleteByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to delete market")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.store.Evict(cache.Mercados)
	srv.logger.Debug("market deleted", slog.Int64("id", id))

	return nil
}

// critMercado builds the duplicate criteria: same name ignoring case at the
// same postal code.
func critMercado(m *entity.Mercado) *match.Criteria {
	return match.New().
		FoldEq("nome", m.Nome).
		Eq("cep", m.CEP)
}

// verificarRamo resolves a branch reference against live rows.
func verificarRamo(ctx context.Context, repoFactory repository.RepositoryFactory, ramoID int64) error {
	ok, err := repoFactory.RamoRepo().ExistsByID(ctx, ramoID)
	if err != nil {
		return errors.Wrap(err, "failed to check branch reference")
	}
	if !ok {
		return domainerrors.ErrNaoEncontrado.WrapMessage("referenced branch does not exist")
	}

	return nil
}

// verificarUsuario resolves a user reference. Soft-deleted accounts no
// longer exist from the domain's point of view.
func verificarUsuario(ctx context.Context, repoFactory repository.RepositoryFactory, usuarioID int64) error {
	usuario, err := repoFactory.UsuarioRepo().FindByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrUsuarioNaoEncontrado
		}

		return errors.Wrap(err, "failed to check user reference")
	}
	if !usuario.Ativo() {
		return domainerrors.ErrUsuarioNaoEncontrado
	}

	return nil
}
