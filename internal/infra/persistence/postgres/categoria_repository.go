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

// categoriaColumns is the allowlist for criteria translation.
var categoriaColumns = map[string]string{
	"id":        "id",
	"nome":      "nome",
	"descricao": "descricao",
}

// categoriaRepository implements the repository.CategoriaRepository interface.
type categoriaRepository struct {
	db *gorm.DB
}

// NewCategoriaRepository is the constructor for categoriaRepository.
func NewCategoriaRepository(db *gorm.DB) repository.CategoriaRepository {
	return &categoriaRepository{db: db}
}

// FindByID retrieves a category by its unique ID.
func (repo *categoriaRepository) FindByID(ctx context.Context, id int64) (*entity.Categoria, error) {
	var categoriaM model.CategoriaModel
	if err := repo.db.WithContext(ctx).First(&categoriaM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoriaDomain(&categoriaM), nil
}

// ExistsByID reports whether a category with the given ID is stored.
func (repo *categoriaRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CategoriaModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check category existence")
	}

	return count > 0, nil
}

// FindAll retrieves every category matching the criteria.
func (repo *categoriaRepository) FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Categoria, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx), crit, categoriaColumns)
	if err != nil {
		return nil, err
	}

	var categoriaModels []model.CategoriaModel
	if err := q.Order("id ASC").Find(&categoriaModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	categorias := make([]entity.Categoria, 0, len(categoriaModels))
	for i := range categoriaModels {
		categorias = append(categorias, *toCategoriaDomain(&categoriaModels[i]))
	}

	return categorias, nil
}

// FindAllPaged retrieves one page of matching categories plus the total
// number of matching rows.
func (repo *categoriaRepository) FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Categoria, int64, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.CategoriaModel{}), crit, categoriaColumns)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count categories")
	}

	var categoriaModels []model.CategoriaModel
	if err := q.Order("id ASC").Offset(page * size).Limit(size).Find(&categoriaModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find category page")
	}

	categorias := make([]entity.Categoria, 0, len(categoriaModels))
	for i := range categoriaModels {
		categorias = append(categorias, *toCategoriaDomain(&categoriaModels[i]))
	}

	return categorias, total, nil
}

// Create persists a new category and writes the generated ID back.
func (repo *categoriaRepository) Create(ctx context.Context, categoria *entity.Categoria) error {
	categoriaM := fromCategoriaDomain(categoria)

	if err := repo.db.WithContext(ctx).Create(categoriaM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("missing required category information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	categoria.ID = categoriaM.ID

	return nil
}

// Update rewrites an existing category record.
func (repo *categoriaRepository) Update(ctx context.Context, categoria *entity.Categoria) error {
	categoriaM := fromCategoriaDomain(categoria)

	if err := repo.db.WithContext(ctx).Save(categoriaM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("missing required category information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update category")
	}

	return nil
}

// DeleteByID removes a category by its ID.
func (repo *categoriaRepository) DeleteByID(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CategoriaModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("category still referenced by products")
		}

		return errors.Wrap(result.Error, "failed to delete category")
	}

	// If no rows were affected, the category was not found.
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCategoriaDomain converts a GORM CategoriaModel to a domain Categoria entity.
func toCategoriaDomain(data *model.CategoriaModel) *entity.Categoria {
	if data == nil {
		return nil
	}

	return &entity.Categoria{
		ID:        data.ID,
		Nome:      data.Nome,
		Descricao: data.Descricao,
	}
}

// fromCategoriaDomain converts a domain Categoria entity to a GORM CategoriaModel.
func fromCategoriaDomain(data *entity.Categoria) *model.CategoriaModel {
	if data == nil {
		return nil
	}

	return &model.CategoriaModel{
		ID:        data.ID,
		Nome:      data.Nome,
		Descricao: data.Descricao,
	}
}
