package postgres

import (
	"context"

	"precario/internal/domain/entity"
	domainerrors "precario/internal/domain/errors"
	"precario/internal/domain/match"
	"precario/internal/domain/repository"
	"precario/internal/errors"
	"precario/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// usuarioColumns is the allowlist for criteria translation.
var usuarioColumns = map[string]string{
	"id":     "id",
	"nome":   "nome",
	"email":  "email",
	"cidade": "cidade",
	"uf":     "uf",
	"status": "status",
}

// usuarioRepository implements the repository.UsuarioRepository interface.
// Users are soft-deleted, so there is no delete operation here; a deletion
// is an Update that blanks the row.
type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository is the constructor for usuarioRepository.
func NewUsuarioRepository(db *gorm.DB) repository.UsuarioRepository {
	return &usuarioRepository{db: db}
}

// FindByID retrieves a user by its unique ID. Soft-deleted rows are
// returned as-is; callers decide whether an inactive account "exists".
func (repo *usuarioRepository) FindByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	var usuarioM model.UsuarioModel
	if err := repo.db.WithContext(ctx).First(&usuarioM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUsuarioDomain(&usuarioM), nil
}

// FindByEmail retrieves the active user holding the given address. Blanked
// soft-deleted rows all share the empty email, so the status filter keeps
// them out.
func (repo *usuarioRepository) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	var usuarioM model.UsuarioModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND status = ?", email, entity.StatusAtivo.String()).
		First(&usuarioM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUsuarioDomain(&usuarioM), nil
}

// FindAll retrieves every user matching the criteria.
func (repo *usuarioRepository) FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Usuario, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx), crit, usuarioColumns)
	if err != nil {
		return nil, err
	}

	var usuarioModels []model.UsuarioModel
	if err := q.Order("id ASC").Find(&usuarioModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	usuarios := make([]entity.Usuario, 0, len(usuarioModels))
	for i := range usuarioModels {
		usuarios = append(usuarios, *toUsuarioDomain(&usuarioModels[i]))
	}

	return usuarios, nil
}

// FindAllPaged retrieves one page of matching users plus the total number
// of matching rows.
func (repo *usuarioRepository) FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Usuario, int64, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.UsuarioModel{}), crit, usuarioColumns)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	var usuarioModels []model.UsuarioModel
	if err := q.Order("id ASC").Offset(page * size).Limit(size).Find(&usuarioModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find user page")
	}

	usuarios := make([]entity.Usuario, 0, len(usuarioModels))
	for i := range usuarioModels {
		usuarios = append(usuarios, *toUsuarioDomain(&usuarioModels[i]))
	}

	return usuarios, total, nil
}

// Create persists a new user and writes the generated ID back.
func (repo *usuarioRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	usuarioM := fromUsuarioDomain(usuario)

	if err := repo.db.WithContext(ctx).Create(usuarioM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	usuario.ID = usuarioM.ID

	return nil
}

// Update rewrites an existing user record. A soft delete goes through here
// with the personal columns blanked and Status flipped.
func (repo *usuarioRepository) Update(ctx context.Context, usuario *entity.Usuario) error {
	usuarioM := fromUsuarioDomain(usuario)

	// The column list makes blanked strings and a nil Complemento reach the
	// row instead of being skipped as zero values.
	err := repo.db.WithContext(ctx).
		Model(&model.UsuarioModel{ID: usuarioM.ID}).
		Select("nome", "email", "senha_hash", "logradouro", "numero", "complemento", "bairro", "cidade", "uf", "cep", "status").
		Updates(usuarioM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

// --- Mapper Functions ---

func toUsuarioDomain(data *model.UsuarioModel) *entity.Usuario {
	if data == nil {
		return nil
	}

	return &entity.Usuario{
		ID:        data.ID,
		Nome:      data.Nome,
		Email:     data.Email,
		SenhaHash: data.SenhaHash,
		Endereco: entity.Endereco{
			Logradouro:  data.Logradouro,
			Numero:      data.Numero,
			Complemento: data.Complemento,
			Bairro:      data.Bairro,
			Cidade:      data.Cidade,
			UF:          data.UF,
			CEP:         data.CEP,
		},
		Status: entity.StatusUsuario(data.Status),
	}
}

func fromUsuarioDomain(data *entity.Usuario) *model.UsuarioModel {
	if data == nil {
		return nil
	}

	return &model.UsuarioModel{
		ID:          data.ID,
		Nome:        data.Nome,
		Email:       data.Email,
		SenhaHash:   data.SenhaHash,
		Logradouro:  data.Logradouro,
		Numero:      data.Numero,
		Complemento: data.Complemento,
		Bairro:      data.Bairro,
		Cidade:      data.Cidade,
		UF:          data.UF,
		CEP:         data.CEP,
		Status:      data.Status.String(),
	}
}
