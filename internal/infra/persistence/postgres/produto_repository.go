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

// produtoColumns is the allowlist for criteria translation.
var produtoColumns = map[string]string{
	"id":           "id",
	"nome":         "nome",
	"marca":        "marca",
	"tamanho":      "tamanho",
	"cor":          "cor",
	"criado_por":   "criado_por",
	"categoria_id": "categoria_id",
}

// produtoRepository implements the repository.ProdutoRepository interface.
type produtoRepository struct {
	db *gorm.DB
}

// NewProdutoRepository is the constructor for produtoRepository.
func NewProdutoRepository(db *gorm.DB) repository.ProdutoRepository {
	return &produtoRepository{db: db}
}

// FindByID retrieves a product by its unique ID.
func (repo *produtoRepository) FindByID(ctx context.Context, id int64) (*entity.Produto, error) {
	var produtoM model.ProdutoModel
	if err := repo.db.WithContext(ctx).First(&produtoM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProdutoDomain(&produtoM), nil
}

// ExistsByID reports whether a product with the given ID is stored.
func (repo *produtoRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProdutoModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check product existence")
	}

	return count > 0, nil
}

// Exists reports whether any stored product matches the criteria.
func (repo *produtoRepository) Exists(ctx context.Context, crit *match.Criteria) (bool, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.ProdutoModel{}), crit, produtoColumns)
	if err != nil {
		return false, err
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check product criteria")
	}

	return count > 0, nil
}

// FindAll retrieves every product matching the criteria.
func (repo *produtoRepository) FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Produto, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx), crit, produtoColumns)
	if err != nil {
		return nil, err
	}

	var produtoModels []model.ProdutoModel
	if err := q.Order("id ASC").Find(&produtoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	produtos := make([]entity.Produto, 0, len(produtoModels))
	for i := range produtoModels {
		produtos = append(produtos, *toProdutoDomain(&produtoModels[i]))
	}

	return produtos, nil
}

// FindAllPaged retrieves one page of matching products plus the total
// number of matching rows.
func (repo *produtoRepository) FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Produto, int64, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.ProdutoModel{}), crit, produtoColumns)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var produtoModels []model.ProdutoModel
	if err := q.Order("id ASC").Offset(page * size).Limit(size).Find(&produtoModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find product page")
	}

	produtos := make([]entity.Produto, 0, len(produtoModels))
	for i := range produtoModels {
		produtos = append(produtos, *toProdutoDomain(&produtoModels[i]))
	}

	return produtos, total, nil
}

// Create persists a new product and writes the generated ID back.
func (repo *produtoRepository) Create(ctx context.Context, produto *entity.Produto) error {
	produtoM := fromProdutoDomain(produto)

	if err := repo.db.WithContext(ctx).Create(produtoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("invalid category or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	produto.ID = produtoM.ID

	return nil
}

// Update rewrites an existing product record.
func (repo *produtoRepository) Update(ctx context.Context, produto *entity.Produto) error {
	produtoM := fromProdutoDomain(produto)

	// The explicit column list makes a cleared Cor reach the row as NULL.
	err := repo.db.WithContext(ctx).
		Model(&model.ProdutoModel{ID: produtoM.ID}).
		Select("nome", "marca", "tamanho", "cor", "criado_por", "categoria_id").
		Updates(produtoM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("invalid category or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// DeleteByID removes a product by its ID.
func (repo *produtoRepository) DeleteByID(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProdutoModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("product still referenced by stock entries")
		}

		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProdutoDomain(data *model.ProdutoModel) *entity.Produto {
	if data == nil {
		return nil
	}

	return &entity.Produto{
		ID:          data.ID,
		Nome:        data.Nome,
		Marca:       data.Marca,
		Tamanho:     data.Tamanho,
		Cor:         data.Cor,
		CriadoPor:   data.CriadoPor,
		CategoriaID: data.CategoriaID,
	}
}

func fromProdutoDomain(data *entity.Produto) *model.ProdutoModel {
	if data == nil {
		return nil
	}

	return &model.ProdutoModel{
		ID:          data.ID,
		Nome:        data.Nome,
		Marca:       data.Marca,
		Tamanho:     data.Tamanho,
		Cor:         data.Cor,
		CriadoPor:   data.CriadoPor,
		CategoriaID: data.CategoriaID,
	}
}
