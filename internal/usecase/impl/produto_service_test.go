package impl

import (
	"context"
	"testing"
	"time"

	"precario/internal/domain/entity"
	domainerrors "precario/internal/domain/errors"
	mockRepo "precario/internal/mocks/repository"
	"precario/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type produtoFixture struct {
	service       usecase.ProdutoUsecase
	repo          *mockRepo.MockProdutoRepository
	categoriaRepo *mockRepo.MockCategoriaRepository
	usuarioRepo   *mockRepo.MockUsuarioRepository
	estoqueRepo   *mockRepo.MockEstoqueRepository
	sugestaoRepo  *mockRepo.MockSugestaoRepository
}

func newProdutoFixture(t *testing.T) produtoFixture {
	repo := mockRepo.NewMockProdutoRepository(t)
	categoriaRepo := mockRepo.NewMockCategoriaRepository(t)
	usuarioRepo := mockRepo.NewMockUsuarioRepository(t)
	estoqueRepo := mockRepo.NewMockEstoqueRepository(t)
	sugestaoRepo := mockRepo.NewMockSugestaoRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ProdutoRepo().Return(repo).Maybe()
	factory.EXPECT().CategoriaRepo().Return(categoriaRepo).Maybe()
	factory.EXPECT().UsuarioRepo().Return(usuarioRepo).Maybe()
	factory.EXPECT().EstoqueRepo().Return(estoqueRepo).Maybe()
	factory.EXPECT().SugestaoRepo().Return(sugestaoRepo).Maybe()

	service := NewProdutoService(passthroughTx(t, factory), newTestStore(), newDiscardLogger())

	return produtoFixture{
		service:       service,
		repo:          repo,
		categoriaRepo: categoriaRepo,
		usuarioRepo:   usuarioRepo,
		estoqueRepo:   estoqueRepo,
		sugestaoRepo:  sugestaoRepo,
	}
}

func TestProdutoService_Create_TitleCasesTheName(t *testing.T) {
	fx := newProdutoFixture(t)
	ctx := context.Background()

	fx.categoriaRepo.EXPECT().ExistsByID(ctx, int64(2)).Return(true, nil)
	fx.usuarioRepo.EXPECT().FindByID(ctx, int64(3)).
		Return(&entity.Usuario{ID: 3, Email: "ana@exemplo.com", Status: entity.StatusAtivo}, nil)
	fx.repo.EXPECT().Exists(ctx, mock.AnythingOfType("*match.Criteria")).Return(false, nil)
	fx.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Produto")).
		Run(func(_ context.Context, produto *entity.Produto) {
			produto.ID = 7
		}).
		Return(nil)

	produto, err := fx.service.Create(ctx, &usecase.ProdutoInput{
		Nome:        strPtr("arroz branco tipo 1"),
		Marca:       strPtr("Da Terra"),
		Tamanho:     strPtr("5kg"),
		CategoriaID: i64Ptr(2),
		CriadoPor:   i64Ptr(3),
	})

	require.NoError(t, err)
	assert.Equal(t, "Arroz Branco Tipo 1", produto.Nome)
	assert.Equal(t, int64(3), produto.CriadoPor)
}

func TestProdutoService_Create_DuplicateCharacteristics(t *testing.T) {
	fx := newProdutoFixture(t)
	ctx := context.Background()

	fx.categoriaRepo.EXPECT().ExistsByID(ctx, int64(2)).Return(true, nil)
	fx.usuarioRepo.EXPECT().FindByID(ctx, int64(3)).
		Return(&entity.Usuario{ID: 3, Email: "ana@exemplo.com", Status: entity.StatusAtivo}, nil)
	fx.repo.EXPECT().Exists(ctx, mock.AnythingOfType("*match.Criteria")).Return(true, nil)

	_, err := fx.service.Create(ctx, &usecase.ProdutoInput{
		Nome:        strPtr("arroz branco tipo 1"),
		Marca:       strPtr("Da Terra"),
		Tamanho:     strPtr("5kg"),
		CategoriaID: i64Ptr(2),
		CriadoPor:   i64Ptr(3),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "produto_existente", appErr.Reason())
}

func TestProdutoService_Patch_ClearingCorDoesNotCollideWithItself(t *testing.T) {
	fx := newProdutoFixture(t)
	ctx := context.Background()
	cor := "Azul"
	armazenado := entity.Produto{
		ID:          7,
		Nome:        "Arroz Branco Tipo 1",
		Marca:       "Da Terra",
		Tamanho:     "5kg",
		Cor:         &cor,
		CategoriaID: 2,
		CriadoPor:   3,
	}

	fx.repo.EXPECT().FindByID(ctx, int64(7)).Return(&armazenado, nil)
	// Without cor the duplicate criteria match the stored row itself; only
	// a different row counts as a collision.
	fx.repo.EXPECT().FindAll(ctx, mock.AnythingOfType("*match.Criteria")).
		Return([]entity.Produto{{ID: 7, Nome: "Arroz Branco Tipo 1", Marca: "Da Terra", Tamanho: "5kg"}}, nil)
	fx.repo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Produto")).Return(nil)

	produto, err := fx.service.Patch(ctx, 7, &usecase.ProdutoInput{Cor: strPtr("")})

	require.NoError(t, err)
	assert.Nil(t, produto.Cor)
}

func TestProdutoService_Patch_CollisionWithAnotherProduct(t *testing.T) {
	fx := newProdutoFixture(t)
	ctx := context.Background()
	armazenado := entity.Produto{
		ID:          7,
		Nome:        "Arroz Branco Tipo 1",
		Marca:       "Da Terra",
		Tamanho:     "5kg",
		CategoriaID: 2,
		CriadoPor:   3,
	}

	fx.repo.EXPECT().FindByID(ctx, int64(7)).Return(&armazenado, nil)
	fx.repo.EXPECT().FindAll(ctx, mock.AnythingOfType("*match.Criteria")).
		Return([]entity.Produto{{ID: 8, Nome: "Arroz Parboilizado", Marca: "Da Terra", Tamanho: "5kg"}}, nil)

	_, err := fx.service.Patch(ctx, 7, &usecase.ProdutoInput{Nome: strPtr("arroz parboilizado")})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "produto_existente", appErr.Reason())
}

func TestProdutoService_Levantamento_AggregatesAcrossMarkets(t *testing.T) {
	fx := newProdutoFixture(t)
	ctx := context.Background()
	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	fx.repo.EXPECT().ExistsByID(ctx, int64(7)).Return(true, nil).Once()
	fx.estoqueRepo.EXPECT().FindByProdutoID(ctx, int64(7)).
		Return([]entity.Estoque{{ID: 1, ProdutoID: 7, MercadoID: 10}, {ID: 2, ProdutoID: 7, MercadoID: 20}}, nil).
		Once()
	fx.sugestaoRepo.EXPECT().FindByEstoqueID(ctx, int64(1)).
		Return([]entity.Sugestao{{ID: 100, PrecoCentavos: 1000, CriadoEm: t1, EstoqueID: 1}}, nil).
		Once()
	fx.sugestaoRepo.EXPECT().FindByEstoqueID(ctx, int64(2)).
		Return([]entity.Sugestao{{ID: 101, PrecoCentavos: 3000, CriadoEm: t2, EstoqueID: 2}}, nil).
		Once()

	res, err := fx.service.Levantamento(ctx, 7)

	require.NoError(t, err)
	assert.True(t, res.PrecoMedio.Equal(decimal.NewFromFloat(20.00)), "media: %s", res.PrecoMedio)
	assert.True(t, res.PrecoMinimo.Equal(decimal.NewFromFloat(10.00)), "minimo: %s", res.PrecoMinimo)
	assert.True(t, res.PrecoMaximo.Equal(decimal.NewFromFloat(30.00)), "maximo: %s", res.PrecoMaximo)
	assert.Equal(t, int64(2), res.TotalSugestoes)
	assert.Equal(t, t2, res.UltimaSugestao)

	// A repeated survey is served from the cache; the Once expectations
	// above fail the test if any repository is touched again.
	again, err := fx.service.Levantamento(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestProdutoService_Levantamento_UnknownProduct(t *testing.T) {
	fx := newProdutoFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().ExistsByID(ctx, int64(99)).Return(false, nil)

	_, err := fx.service.Levantamento(ctx, 99)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "nao_encontrado", appErr.Reason())
}

func TestProdutoService_Levantamento_NoSuggestionsYieldsZeroes(t *testing.T) {
	fx := newProdutoFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().ExistsByID(ctx, int64(7)).Return(true, nil)
	fx.estoqueRepo.EXPECT().FindByProdutoID(ctx, int64(7)).Return(nil, nil)

	res, err := fx.service.Levantamento(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(0), res.TotalSugestoes)
	assert.True(t, res.PrecoMedio.IsZero())
	assert.True(t, res.UltimaSugestao.IsZero())
}
