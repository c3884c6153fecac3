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

type sugestaoFixture struct {
	service     usecase.SugestaoUsecase
	repo        *mockRepo.MockSugestaoRepository
	estoqueRepo *mockRepo.MockEstoqueRepository
	usuarioRepo *mockRepo.MockUsuarioRepository
}

func newSugestaoFixture(t *testing.T) sugestaoFixture {
	repo := mockRepo.NewMockSugestaoRepository(t)
	estoqueRepo := mockRepo.NewMockEstoqueRepository(t)
	usuarioRepo := mockRepo.NewMockUsuarioRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().SugestaoRepo().Return(repo).Maybe()
	factory.EXPECT().EstoqueRepo().Return(estoqueRepo).Maybe()
	factory.EXPECT().UsuarioRepo().Return(usuarioRepo).Maybe()

	service := NewSugestaoService(passthroughTx(t, factory), newTestStore(), newDiscardLogger())

	return sugestaoFixture{
		service:     service,
		repo:        repo,
		estoqueRepo: estoqueRepo,
		usuarioRepo: usuarioRepo,
	}
}

func TestSugestaoService_Create_ConvertsPriceToCentavos(t *testing.T) {
	fx := newSugestaoFixture(t)
	ctx := context.Background()
	criadoEm := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	fx.estoqueRepo.EXPECT().ExistsByID(ctx, int64(1)).Return(true, nil)
	fx.usuarioRepo.EXPECT().FindByID(ctx, int64(2)).
		Return(&entity.Usuario{ID: 2, Email: "ana@exemplo.com", Status: entity.StatusAtivo}, nil)
	fx.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Sugestao")).
		Run(func(_ context.Context, sugestao *entity.Sugestao) {
			assert.Equal(t, int64(1234), sugestao.PrecoCentavos)
			sugestao.ID = 30
			sugestao.CriadoEm = criadoEm
		}).
		Return(nil)

	preco := decimal.NewFromFloat(12.34)
	out, err := fx.service.Create(ctx, &usecase.SugestaoInput{
		Preco:     &preco,
		EstoqueID: i64Ptr(1),
		CriadoPor: i64Ptr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(30), out.ID)
	assert.True(t, out.Preco.Equal(preco), "preco: %s", out.Preco)
	assert.Equal(t, criadoEm, out.CriadoEm)
}

func TestSugestaoService_Create_NegativePriceFailsValidation(t *testing.T) {
	fx := newSugestaoFixture(t)

	preco := decimal.NewFromFloat(-1.00)
	_, err := fx.service.Create(context.Background(), &usecase.SugestaoInput{
		Preco:     &preco,
		EstoqueID: i64Ptr(1),
		CriadoPor: i64Ptr(2),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "preco_invalido", appErr.Reason())
}

func TestSugestaoService_Create_MissingStockEntry(t *testing.T) {
	fx := newSugestaoFixture(t)
	ctx := context.Background()

	fx.estoqueRepo.EXPECT().ExistsByID(ctx, int64(1)).Return(false, nil)

	preco := decimal.NewFromFloat(5.00)
	_, err := fx.service.Create(ctx, &usecase.SugestaoInput{
		Preco:     &preco,
		EstoqueID: i64Ptr(1),
		CriadoPor: i64Ptr(2),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "nao_encontrado", appErr.Reason())
}

func TestSugestaoService_Create_SoftDeletedUserCannotSuggest(t *testing.T) {
	fx := newSugestaoFixture(t)
	ctx := context.Background()

	fx.estoqueRepo.EXPECT().ExistsByID(ctx, int64(1)).Return(true, nil)
	fx.usuarioRepo.EXPECT().FindByID(ctx, int64(2)).
		Return(&entity.Usuario{ID: 2, Status: entity.StatusExcluido}, nil)

	preco := decimal.NewFromFloat(5.00)
	_, err := fx.service.Create(ctx, &usecase.SugestaoInput{
		Preco:     &preco,
		EstoqueID: i64Ptr(1),
		CriadoPor: i64Ptr(2),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "usuario_nao_encontrado", appErr.Reason())
}

func TestSugestaoService_Get_ExposesPriceInMajorUnits(t *testing.T) {
	fx := newSugestaoFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, int64(30)).
		Return(&entity.Sugestao{ID: 30, PrecoCentavos: 999, EstoqueID: 1, CriadoPor: 2}, nil)

	out, err := fx.service.Get(ctx, 30)

	require.NoError(t, err)
	assert.True(t, out.Preco.Equal(decimal.NewFromFloat(9.99)), "preco: %s", out.Preco)
}
