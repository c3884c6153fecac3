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

// estoqueColumns is the allowlist for criteria translation.
var estoqueColumns = map[string]string{
	"id":         "id",
	"criado_por": "criado_por",
	"produto_id": "produto_id",
	"mercado_id": "mercado_id",
}

// estoqueRepository implements the repository.EstoqueRepository interface.
type estoqueRepository struct {
	db *gorm.DB
}

// NewEstoqueRepository is the constructor for estoqueRepository.
func NewEstoqueRepository(db *gorm.DB) repository.EstoqueRepository {
	return &estoqueRepository{db: db}
}

// FindByID retrieves a stock entry by its unique ID.
func (repo *estoqueRepository) FindByID(ctx context.Context, id int64) (*entity.Estoque, error) {
	var estoqueM model.EstoqueModel
	if err := repo.db.WithContext(ctx).First(&estoqueM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock entry by ID")
	}

	return toEstoqueDomain(&estoqueM), nil
}

// ExistsByID reports whether a stock entry with the given ID is stored.
func (repo *estoqueRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.EstoqueModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check stock entry existence")
	}

	return count > 0, nil
}

// Exists reports whether any stored entry matches the criteria.
func (repo *estoqueRepository) Exists(ctx context.Context, crit *match.Criteria) (bool, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.EstoqueModel{}), crit, estoqueColumns)
	if err != nil {
		return false, err
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check stock entry criteria")
	}

	return count > 0, nil
}

// FindByProdutoID retrieves every stock entry of a product.
func (repo *estoqueRepository) FindByProdutoID(ctx context.Context, produtoID int64) ([]entity.Estoque, error) {
	var estoqueModels []model.EstoqueModel
	err := repo.db.WithContext(ctx).
		Where("produto_id = ?", produtoID).
		Order("id ASC").
		Find(&estoqueModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stock entries by product")
	}

	estoques := make([]entity.Estoque, 0, len(estoqueModels))
	for i := range estoqueModels {
		estoques = append(estoques, *toEstoqueDomain(&estoqueModels[i]))
	}

	return estoques, nil
}

// FindAll retrieves every stock entry matching the criteria.
func (repo *estoqueRepository) FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Estoque, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx), crit, estoqueColumns)
	if err != nil {
		return nil, err
	}

	var estoqueModels []model.EstoqueModel
	if err := q.Order("id ASC").Find(&estoqueModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stock entries")
	}

	estoques := make([]entity.Estoque, 0, len(estoqueModels))
	for i := range estoqueModels {
		estoques = append(estoques, *toEstoqueDomain(&estoqueModels[i]))
	}

	return estoques, nil
}

// FindAllPaged retrieves one page of matching stock entries plus the total
// number of matching rows.
func (repo *estoqueRepository) FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Estoque, int64, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.EstoqueModel{}), crit, estoqueColumns)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count stock entries")
	}

	var estoqueModels []model.EstoqueModel
	if err := q.Order("id ASC").Offset(page * size).Limit(size).Find(&estoqueModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find stock entry page")
	}

	estoques := make([]entity.Estoque, 0, len(estoqueModels))
	for i := range estoqueModels {
		estoques = append(estoques, *toEstoqueDomain(&estoqueModels[i]))
	}

	return estoques, total, nil
}

// Create persists a new stock entry and writes the generated ID back.
func (repo *estoqueRepository) Create(ctx context.Context, estoque *entity.Estoque) error {
	estoqueM := fromEstoqueDomain(estoque)

	if err := repo.db.WithContext(ctx).Create(estoqueM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// A racing duplicate slipped past the conflict detector.
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("stock entry already exists for this product and market")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("invalid product, market or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create stock entry")
	}

	estoque.ID = estoqueM.ID

	return nil
}

// Update rewrites an existing stock entry record.
func (repo *estoqueRepository) Update(ctx context.Context, estoque *entity.Estoque) error {
	estoqueM := fromEstoqueDomain(estoque)

	if err := repo.db.WithContext(ctx).Save(estoqueM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("stock entry already exists for this product and market")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("invalid product, market or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update stock entry")
	}

	return nil
}

// DeleteByID removes a stock entry by its ID.
func (repo *estoqueRepository) DeleteByID(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.EstoqueModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("stock entry still referenced by suggestions")
		}

		return errors.Wrap(result.Error, "failed to delete stock entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toEstoqueDomain(data *model.EstoqueModel) *entity.Estoque {
	if data == nil {
		return nil
	}

	return &entity.Estoque{
		ID:        data.ID,
		CriadoPor: data.CriadoPor,
		ProdutoID: data.ProdutoID,
		MercadoID: data.MercadoID,
	}
}

func fromEstoqueDomain(data *entity.Estoque) *model.EstoqueModel {
	if data == nil {
		return nil
	}

	return &model.EstoqueModel{
		ID:        data.ID,
		CriadoPor: data.CriadoPor,
		ProdutoID: data.ProdutoID,
		MercadoID: data.MercadoID,
	}
}
