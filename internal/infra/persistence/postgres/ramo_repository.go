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

// ramoColumns is the allowlist for criteria translation.
var ramoColumns = map[string]string{
	"id":        "id",
	"nome":      "nome",
	"descricao": "descricao",
}

// ramoRepository implements the repository.RamoRepository interface.
type ramoRepository struct {
	db *gorm.DB
}

// NewRamoRepository is the constructor for ramoRepository.
func NewRamoRepository(db *gorm.DB) repository.RamoRepository {
	return &ramoRepository{db: db}
}

// FindByID retrieves a branch by its unique ID.
func (repo *ramoRepository) FindByID(ctx context.Context, id int64) (*entity.Ramo, error) {
	var ramoM model.RamoModel
	if err := repo.db.WithContext(ctx).First(&ramoM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find branch by ID")
	}

	return toRamoDomain(&ramoM), nil
}

// ExistsByID reports whether a branch with the given ID is stored.
func (repo *ramoRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RamoModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check branch existence")
	}

	return count > 0, nil
}

// Exists reports whether any stored branch matches the criteria.
func (repo *ramoRepository) Exists(ctx context.Context, crit *match.Criteria) (bool, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.RamoModel{}), crit, ramoColumns)
	if err != nil {
		return false, err
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check branch criteria")
	}

	return count > 0, nil
}

// FindAll retrieves every branch matching the criteria.
func (repo *ramoRepository) FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Ramo, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx), crit, ramoColumns)
	if err != nil {
		return nil, err
	}

	var ramoModels []model.RamoModel
	if err := q.Order("id ASC").Find(&ramoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find branches")
	}

	ramos := make([]entity.Ramo, 0, len(ramoModels))
	for i := range ramoModels {
		ramos = append(ramos, *toRamoDomain(&ramoModels[i]))
	}

	return ramos, nil
}

// FindAllPaged retrieves one page of matching branches plus the total
// number of matching rows.
func (repo *ramoRepository) FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Ramo, int64, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.RamoModel{}), crit, ramoColumns)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count branches")
	}

	var ramoModels []model.RamoModel
	if err := q.Order("id ASC").Offset(page * size).Limit(size).Find(&ramoModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find branch page")
	}

	ramos := make([]entity.Ramo, 0, len(ramoModels))
	for i := range ramoModels {
		ramos = append(ramos, *toRamoDomain(&ramoModels[i]))
	}

	return ramos, total, nil
}

// Create persists a new branch and writes the generated ID back.
func (repo *ramoRepository) Create(ctx context.Context, ramo *entity.Ramo) error {
	ramoM := fromRamoDomain(ramo)

	if err := repo.db.WithContext(ctx).Create(ramoM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("missing required branch information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create branch")
	}

	ramo.ID = ramoM.ID

	return nil
}

// Update rewrites an existing branch record.
func (repo *ramoRepository) Update(ctx context.Context, ramo *entity.Ramo) error {
	ramoM := fromRamoDomain(ramo)

	if err := repo.db.WithContext(ctx).Save(ramoM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("missing required branch information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update branch")
	}

	return nil
}

// DeleteByID removes a branch by its ID.
func (repo *ramoRepository) DeleteByID(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.RamoModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("branch still referenced by markets")
		}

		return errors.Wrap(result.Error, "failed to delete branch")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toRamoDomain(data *model.RamoModel) *entity.Ramo {
	if data == nil {
		return nil
	}

	return &entity.Ramo{
		ID:        data.ID,
		Nome:      data.Nome,
		Descricao: data.Descricao,
	}
}

func fromRamoDomain(data *entity.Ramo) *model.RamoModel {
	if data == nil {
		return nil
	}

	return &model.RamoModel{
		ID:        data.ID,
		Nome:      data.Nome,
		Descricao: data.Descricao,
	}
}
