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

// mercadoColumns is the allowlist for criteria translation.
var mercadoColumns = map[string]string{
	"id":         "id",
	"criado_por": "criado_por",
	"ramo_id":    "ramo_id",
	"nome":       "nome",
	"logradouro": "logradouro",
	"bairro":     "bairro",
	"cidade":     "cidade",
	"uf":         "uf",
	"cep":        "cep",
}

// mercadoRepository implements the repository.MercadoRepository interface.
type mercadoRepository struct {
	db *gorm.DB
}

// NewMercadoRepository is the constructor for mercadoRepository.
func NewMercadoRepository(db *gorm.DB) repository.MercadoRepository {
	return &mercadoRepository{db: db}
}

// FindByID retrieves a market by its unique ID.
func (repo *mercadoRepository) FindByID(ctx context.Context, id int64) (*entity.Mercado, error) {
	var mercadoM model.MercadoModel
	if err := repo.db.WithContext(ctx).First(&mercadoM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find market by ID")
	}

	return toMercadoDomain(&mercadoM), nil
}

// ExistsByID reports whether a market with the given ID is stored.
func (repo *mercadoRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.MercadoModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check market existence")
	}

	return count > 0, nil
}

// Exists reports whether any stored market matches the criteria.
func (repo *mercadoRepository) Exists(ctx context.Context, crit *match.Criteria) (bool, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.MercadoModel{}), crit, mercadoColumns)
	if err != nil {
		return false, err
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check market criteria")
	}

	return count > 0, nil
}

// FindAll retrieves every market matching the criteria.
func (repo *mercadoRepository) FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Mercado, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx), crit, mercadoColumns)
	if err != nil {
		return nil, err
	}

	var mercadoModels []model.MercadoModel
	if err := q.Order("id ASC").Find(&mercadoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find markets")
	}

	mercados := make([]entity.Mercado, 0, len(mercadoModels))
	for i := range mercadoModels {
		mercados = append(mercados, *toMercadoDomain(&mercadoModels[i]))
	}

	return mercados, nil
}

// FindAllPaged retrieves one page of matching markets plus the total
// number of matching rows.
func (repo *mercadoRepository) FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Mercado, int64, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.MercadoModel{}), crit, mercadoColumns)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count markets")
	}

	var mercadoModels []model.MercadoModel
	if err := q.Order("id ASC").Offset(page * size).Limit(size).Find(&mercadoModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find market page")
	}

	mercados := make([]entity.Mercado, 0, len(mercadoModels))
	for i := range mercadoModels {
		mercados = append(mercados, *toMercadoDomain(&mercadoModels[i]))
	}

	return mercados, total, nil
}

// Create persists a new market and writes the generated ID back.
func (repo *mercadoRepository) Create(ctx context.Context, mercado *entity.Mercado) error {
	mercadoM := fromMercadoDomain(mercado)

	if err := repo.db.WithContext(ctx).Create(mercadoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("invalid branch or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("missing required market information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create market")
	}

	mercado.ID = mercadoM.ID

	return nil
}

// Update rewrites an existing market record.
func (repo *mercadoRepository) Update(ctx context.Context, mercado *entity.Mercado) error {
	mercadoM := fromMercadoDomain(mercado)

	// Save skips nil pointer columns, so a cleared Complemento needs an
	// explicit column list.
	err := repo.db.WithContext(ctx).
		Model(&model.MercadoModel{ID: mercadoM.ID}).
		Select("criado_por", "ramo_id", "nome", "logradouro", "numero", "complemento", "bairro", "cidade", "uf", "cep").
		Updates(mercadoM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("invalid branch or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("missing required market information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update market")
	}

	return nil
}

// DeleteByID removes a market by its ID.
func (repo *mercadoRepository) DeleteByID(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.MercadoModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("market still referenced by stock entries")
		}

		return errors.Wrap(result.Error, "failed to delete market")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMercadoDomain(data *model.MercadoModel) *entity.Mercado {
	if data == nil {
		return nil
	}

	return &entity.Mercado{
		ID:        data.ID,
		CriadoPor: data.CriadoPor,
		RamoID:    data.RamoID,
		Nome:      data.Nome,
		Endereco: entity.Endereco{
			Logradouro:  data.Logradouro,
			Numero:      data.Numero,
			Complemento: data.Complemento,
			Bairro:      data.Bairro,
			Cidade:      data.Cidade,
			UF:          data.UF,
			CEP:         data.CEP,
		},
	}
}

func fromMercadoDomain(data *entity.Mercado) *model.MercadoModel {
	if data == nil {
		return nil
	}

	return &model.MercadoModel{
		ID:          data.ID,
		CriadoPor:   data.CriadoPor,
		RamoID:      data.RamoID,
		Nome:        data.Nome,
		Logradouro:  data.Logradouro,
		Numero:      data.Numero,
		Complemento: data.Complemento,
		Bairro:      data.Bairro,
		Cidade:      data.Cidade,
		UF:          data.UF,
		CEP:         data.CEP,
	}
}
