package impl

import (
	"context"
	"log/slog"

	"precario/internal/domain/entity"
	domainerrors "precario/internal/domain/errors"
	"precario/internal/domain/match"
	"precario/internal/domain/repository"
	"precario/internal/domain/service"
	"precario/internal/domain/validation"
	"precario/internal/errors"
	"precario/internal/usecase"
)

// usuarioService implements the UsuarioUsecase interface. Accounts are
// soft-deleted: a delete blanks the personal fields and flips the status
// flag while the row stays behind for audit references.
type usuarioService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokens    service.TokenService
	logger    *slog.Logger
}

// NewUsuarioService is the constructor for usuarioService.
func NewUsuarioService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.UsuarioUsecase {
	return &usuarioService{
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Create validates and persists a new account. The e-mail must not be held
// by another active account; blanked soft-deleted rows never collide.
func (srv *usuarioService) Create(ctx context.Context, in *usecase.UsuarioInput) (*usecase.UsuarioOutput, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(false, in.Rules()); err != nil {
		return nil, err
	}

	senhaHash, err := srv.hasher.Hash(*in.Senha)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	usuario := &entity.Usuario{
		Nome:      *in.Nome,
		Email:     *in.Email,
		SenhaHash: senhaHash,
		Endereco: entity.Endereco{
			Logradouro: *in.Logradouro,
			Numero:     *in.Numero,
			Bairro:     *in.Bairro,
			Cidade:     *in.Cidade,
			UF:         *in.UF,
			CEP:        *in.CEP,
		},
		Status: entity.StatusAtivo,
	}
	if in.Complemento != nil && *in.Complemento != "" {
		v := *in.Complemento
		usuario.Complemento = &v
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.UsuarioRepo()

		if err := srv.verificarEmailLivre(ctx, repo, usuario.Email, 0); err != nil {
			return err
		}

		return repo.Create(ctx, usuario)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("user created", slog.Int64("id", usuario.ID))

	return usecase.ToUsuarioOutput(usuario), nil
}

// Get retrieves one active account by ID. Soft-deleted accounts no longer
// exist from the caller's point of view.
func (srv *usuarioService) Get(ctx context.Context, id int64) (*usecase.UsuarioOutput, error) {
	var usuario *entity.Usuario

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.buscarAtivo(ctx, repoFactory.UsuarioRepo(), id)
		if err != nil {
			return err
		}
		usuario = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.ToUsuarioOutput(usuario), nil
}

// List retrieves every active account matching the criteria.
func (srv *usuarioService) List(ctx context.Context, crit *match.Criteria) ([]usecase.UsuarioOutput, error) {
	var usuarios []entity.Usuario

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UsuarioRepo().FindAll(ctx, critAtivos(crit))
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		usuarios = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return toUsuarioOutputs(usuarios), nil
}

// ListPaged retrieves one page of matching active accounts plus the total
// count.
func (srv *usuarioService) ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]usecase.UsuarioOutput, int64, error) {
	var (
		usuarios []entity.Usuario
		total    int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.UsuarioRepo().FindAllPaged(ctx, critAtivos(crit), page, size)
		if err != nil {
			return errors.Wrap(err, "failed to list user page")
		}
		usuarios, total = found, count

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return toUsuarioOutputs(usuarios), total, nil
}

// Patch applies a partial update onto a stored account.
func (srv *usuarioService) Patch(ctx context.Context, id int64, in *usecase.UsuarioInput) (*usecase.UsuarioOutput, error) {
	return srv.update(ctx, id, in, true)
}

// Replace rewrites a stored account; the ID comes from the URL.
func (srv *usuarioService) Replace(ctx context.Context, id int64, in *usecase.UsuarioInput) (*usecase.UsuarioOutput, error) {
	return srv.update(ctx, id, in, false)
}

func (srv *usuarioService) update(ctx context.Context, id int64, in *usecase.UsuarioInput, partial bool) (*usecase.UsuarioOutput, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(partial, in.Rules()); err != nil {
		return nil, err
	}

	var senhaHash *string
	if in.Senha != nil {
		hashed, err := srv.hasher.Hash(*in.Senha)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		senhaHash = &hashed
	}

	var usuario *entity.Usuario

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.UsuarioRepo()

		current, err := srv.buscarAtivo(ctx, repo, id)
		if err != nil {
			return err
		}

		if in.Email != nil && *in.Email != current.Email {
			if err := srv.verificarEmailLivre(ctx, repo, *in.Email, id); err != nil {
				return err
			}
		}

		merged := usecase.MergeUsuario(*current, in, senhaHash)
		if err := repo.Update(ctx, &merged); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		usuario = &merged

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.ToUsuarioOutput(usuario), nil
}

// Delete soft-deletes an account: personal fields are blanked and the row
// is kept so audit references stay resolvable.
func (srv *usuarioService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.UsuarioRepo()

		usuario, err := srv.buscarAtivo(ctx, repo, id)
		if err != nil {
			return err
		}

		usuario.Excluir()
		if err := repo.Update(ctx, usuario); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("user deleted", slog.Int64("id", id))

	return nil
}

// Login checks the credentials and issues an access token. Missing account
// and wrong password are indistinguishable to the caller.
func (srv *usuarioService) Login(ctx context.Context, in *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var usuario *entity.Usuario

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UsuarioRepo().FindByEmail(ctx, in.Email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrCredenciaisInvalidas
			}

			return errors.Wrap(err, "failed to find user by email")
		}
		usuario = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(in.Senha, usuario.SenhaHash) {
		return nil, domainerrors.ErrCredenciaisInvalidas
	}

	token, err := srv.tokens.GenerateToken(usuario.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   int64(srv.tokens.AccessTokenDuration().Seconds()),
	}, nil
}

// buscarAtivo loads an account and treats soft-deleted rows as missing.
func (srv *usuarioService) buscarAtivo(ctx context.Context, repo repository.UsuarioRepository, id int64) (*entity.Usuario, error) {
	usuario, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrUsuarioNaoEncontrado
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if !usuario.Ativo() {
		return nil, domainerrors.ErrUsuarioNaoEncontrado
	}

	return usuario, nil
}

// verificarEmailLivre rejects an e-mail already held by another active
// account.
func (srv *usuarioService) verificarEmailLivre(ctx context.Context, repo repository.UsuarioRepository, email string, selfID int64) error {
	existente, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check email")
	}
	if existente.ID != selfID {
		return domainerrors.NewDadosConflitantes("email_em_uso")
	}

	return nil
}

// critAtivos narrows a caller-supplied filter to active accounts.
func critAtivos(crit *match.Criteria) *match.Criteria {
	if crit == nil {
		crit = match.New()
	}

	return crit.Eq("status", entity.StatusAtivo.String())
}

func toUsuarioOutputs(usuarios []entity.Usuario) []usecase.UsuarioOutput {
	outputs := make([]usecase.UsuarioOutput, 0, len(usuarios))
	for i := range usuarios {
		outputs = append(outputs, *usecase.ToUsuarioOutput(&usuarios[i]))
	}

	return outputs
}
