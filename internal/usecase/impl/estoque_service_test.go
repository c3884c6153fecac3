package impl

import (
	"context"
	"testing"

	"precario/internal/domain/entity"
	domainerrors "precario/internal/domain/errors"
	"precario/internal/domain/match"
	mockRepo "precario/internal/mocks/repository"
	"precario/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type estoqueFixture struct {
	service     usecase.EstoqueUsecase
	repo        *mockRepo.MockEstoqueRepository
	produtoRepo *mockRepo.MockProdutoRepository
	mercadoRepo *mockRepo.MockMercadoRepository
	usuarioRepo *mockRepo.MockUsuarioRepository
}

func newEstoqueFixture(t *testing.T) estoqueFixture {
	repo := mockRepo.NewMockEstoqueRepository(t)
	produtoRepo := mockRepo.NewMockProdutoRepository(t)
	mercadoRepo := mockRepo.NewMockMercadoRepository(t)
	usuarioRepo := mockRepo.NewMockUsuarioRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().EstoqueRepo().Return(repo).Maybe()
	factory.EXPECT().ProdutoRepo().Return(produtoRepo).Maybe()
	factory.EXPECT().MercadoRepo().Return(mercadoRepo).Maybe()
	factory.EXPECT().UsuarioRepo().Return(usuarioRepo).Maybe()

	service := NewEstoqueService(passthroughTx(t, factory), newTestStore(), newDiscardLogger())

	return estoqueFixture{
		service:     service,
		repo:        repo,
		produtoRepo: produtoRepo,
		mercadoRepo: mercadoRepo,
		usuarioRepo: usuarioRepo,
	}
}

func (fx estoqueFixture) expectLiveReferences(ctx context.Context) {
	fx.produtoRepo.EXPECT().ExistsByID(ctx, int64(1)).Return(true, nil)
	fx.mercadoRepo.EXPECT().ExistsByID(ctx, int64(2)).Return(true, nil)
	fx.usuarioRepo.EXPECT().FindByID(ctx, int64(3)).
		Return(&entity.Usuario{ID: 3, Email: "ana@exemplo.com", Status: entity.StatusAtivo}, nil)
}

func TestEstoqueService_Create_Success(t *testing.T) {
	fx := newEstoqueFixture(t)
	ctx := context.Background()

	fx.expectLiveReferences(ctx)

	var verificado *match.Criteria
	fx.repo.EXPECT().
		Exists(ctx, mock.AnythingOfType("*match.Criteria")).
		Run(func(_ context.Context, crit *match.Criteria) {
			verificado = crit
		}).
		Return(false, nil)
	fx.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Estoque")).
		Run(func(_ context.Context, estoque *entity.Estoque) {
			estoque.ID = 8
		}).
		Return(nil)

	estoque, err := fx.service.Create(ctx, &usecase.EstoqueInput{
		ProdutoID: i64Ptr(1),
		MercadoID: i64Ptr(2),
		CriadoPor: i64Ptr(3),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(8), estoque.ID)

	// Uniqueness is the exact (produto, mercado) pair.
	require.NotNil(t, verificado)
	conds := verificado.Conds()
	require.Len(t, conds, 2)
	assert.Equal(t, "produto_id", conds[0].Field)
	assert.Equal(t, match.OpEq, conds[0].Op)
	assert.Equal(t, "mercado_id", conds[1].Field)
	assert.Equal(t, match.OpEq, conds[1].Op)
}

func TestEstoqueService_Create_DuplicatePair(t *testing.T) {
	fx := newEstoqueFixture(t)
	ctx := context.Background()

	fx.expectLiveReferences(ctx)
	fx.repo.EXPECT().Exists(ctx, mock.AnythingOfType("*match.Criteria")).Return(true, nil)

	_, err := fx.service.Create(ctx, &usecase.EstoqueInput{
		ProdutoID: i64Ptr(1),
		MercadoID: i64Ptr(2),
		CriadoPor: i64Ptr(3),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "estoque_existente", appErr.Reason())
}

func TestEstoqueService_Create_MissingProductReference(t *testing.T) {
	fx := newEstoqueFixture(t)
	ctx := context.Background()

	fx.produtoRepo.EXPECT().ExistsByID(ctx, int64(1)).Return(false, nil)

	_, err := fx.service.Create(ctx, &usecase.EstoqueInput{
		ProdutoID: i64Ptr(1),
		MercadoID: i64Ptr(2),
		CriadoPor: i64Ptr(3),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "nao_encontrado", appErr.Reason())
}

func TestEstoqueService_Create_NonPositiveReferenceFailsValidation(t *testing.T) {
	fx := newEstoqueFixture(t)

	_, err := fx.service.Create(context.Background(), &usecase.EstoqueInput{
		ProdutoID: i64Ptr(0),
		MercadoID: i64Ptr(2),
		CriadoPor: i64Ptr(3),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "produto_invalido", appErr.Reason())
}
