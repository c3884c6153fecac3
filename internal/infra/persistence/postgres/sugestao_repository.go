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

// sugestaoColumns is the allowlist for criteria translation.
var sugestaoColumns = map[string]string{
	"id":             "id",
	"preco_centavos": "preco_centavos",
	"estoque_id":     "estoque_id",
	"criado_por":     "criado_por",
}

// sugestaoRepository implements the repository.SugestaoRepository interface.
type sugestaoRepository struct {
	db *gorm.DB
}

// NewSugestaoRepository is the constructor for sugestaoRepository.
func NewSugestaoRepository(db *gorm.DB) repository.SugestaoRepository {
	return &sugestaoRepository{db: db}
}

// FindByID retrieves a suggestion by its unique ID.
func (repo *sugestaoRepository) FindByID(ctx context.Context, id int64) (*entity.Sugestao, error) {
	var sugestaoM model.SugestaoModel
	if err := repo.db.WithContext(ctx).First(&sugestaoM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find suggestion by ID")
	}

	return toSugestaoDomain(&sugestaoM), nil
}

// ExistsByID reports whether a suggestion with the given ID is stored.
func (repo *sugestaoRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.SugestaoModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check suggestion existence")
	}

	return count > 0, nil
}

// FindByEstoqueID retrieves every suggestion submitted for a stock entry.
func (repo *sugestaoRepository) FindByEstoqueID(ctx context.Context, estoqueID int64) ([]entity.Sugestao, error) {
	var sugestaoModels []model.SugestaoModel
	err := repo.db.WithContext(ctx).
		Where("estoque_id = ?", estoqueID).
		Order("criado_em ASC, id ASC").
		Find(&sugestaoModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find suggestions by stock entry")
	}

	sugestoes := make([]entity.Sugestao, 0, len(sugestaoModels))
	for i := range sugestaoModels {
		sugestoes = append(sugestoes, *toSugestaoDomain(&sugestaoModels[i]))
	}

	return sugestoes, nil
}

// FindAll retrieves every suggestion matching the criteria.
func (repo *sugestaoRepository) FindAll(ctx context.Context, crit *match.Criteria) ([]entity.Sugestao, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx), crit, sugestaoColumns)
	if err != nil {
		return nil, err
	}

	var sugestaoModels []model.SugestaoModel
	if err := q.Order("id ASC").Find(&sugestaoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find suggestions")
	}

	sugestoes := make([]entity.Sugestao, 0, len(sugestaoModels))
	for i := range sugestaoModels {
		sugestoes = append(sugestoes, *toSugestaoDomain(&sugestaoModels[i]))
	}

	return sugestoes, nil
}

// FindAllPaged retrieves one page of matching suggestions plus the total
// number of matching rows.
func (repo *sugestaoRepository) FindAllPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Sugestao, int64, error) {
	q, err := applyCriteria(repo.db.WithContext(ctx).Model(&model.SugestaoModel{}), crit, sugestaoColumns)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count suggestions")
	}

	var sugestaoModels []model.SugestaoModel
	if err := q.Order("id ASC").Offset(page * size).Limit(size).Find(&sugestaoModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find suggestion page")
	}

	sugestoes := make([]entity.Sugestao, 0, len(sugestaoModels))
	for i := range sugestaoModels {
		sugestoes = append(sugestoes, *toSugestaoDomain(&sugestaoModels[i]))
	}

	return sugestoes, total, nil
}

// Create persists a new suggestion and writes the generated ID and creation
// timestamp back.
func (repo *sugestaoRepository) Create(ctx context.Context, sugestao *entity.Sugestao) error {
	sugestaoM := fromSugestaoDomain(sugestao)

	if err := repo.db.WithContext(ctx).Create(sugestaoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("invalid stock entry or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create suggestion")
	}

	sugestao.ID = sugestaoM.ID
	sugestao.CriadoEm = sugestaoM.CriadoEm

	return nil
}

// Update rewrites an existing suggestion record.
func (repo *sugestaoRepository) Update(ctx context.Context, sugestao *entity.Sugestao) error {
	sugestaoM := fromSugestaoDomain(sugestao)

	// The column list keeps a zero price from being skipped by GORM's
	// zero-value handling.
	err := repo.db.WithContext(ctx).
		Model(&model.SugestaoModel{ID: sugestaoM.ID}).
		Select("preco_centavos", "estoque_id", "criado_por").
		Updates(sugestaoM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrViolacaoIntegridade.WrapMessage("invalid stock entry or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update suggestion")
	}

	return nil
}

// DeleteByID removes a suggestion by its ID.
func (repo *sugestaoRepository) DeleteByID(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.SugestaoModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete suggestion")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSugestaoDomain(data *model.SugestaoModel) *entity.Sugestao {
	if data == nil {
		return nil
	}

	return &entity.Sugestao{
		ID:            data.ID,
		PrecoCentavos: data.PrecoCentavos,
		CriadoEm:      data.CriadoEm,
		EstoqueID:     data.EstoqueID,
		CriadoPor:     data.CriadoPor,
	}
}

func fromSugestaoDomain(data *entity.Sugestao) *model.SugestaoModel {
	if data == nil {
		return nil
	}

	return &model.SugestaoModel{
		ID:            data.ID,
		PrecoCentavos: data.PrecoCentavos,
		CriadoEm:      data.CriadoEm,
		EstoqueID:     data.EstoqueID,
		CriadoPor:     data.CriadoPor,
	}
}
