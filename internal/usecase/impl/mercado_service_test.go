package impl

import (
	"context"
	"testing"

	"precario/internal/domain/entity"
	domainerrors "precario/internal/domain/errors"
	mockRepo "precario/internal/mocks/repository"
	"precario/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mercadoFixture struct {
	service     usecase.MercadoUsecase
	repo        *mockRepo.MockMercadoRepository
	ramoRepo    *mockRepo.MockRamoRepository
	usuarioRepo *mockRepo.MockUsuarioRepository
}

func newMercadoFixture(t *testing.T) mercadoFixture {
	repo := mockRepo.NewMockMercadoRepository(t)
	ramoRepo := mockRepo.NewMockRamoRepository(t)
	usuarioRepo := mockRepo.NewMockUsuarioRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().MercadoRepo().Return(repo).Maybe()
	factory.EXPECT().RamoRepo().Return(ramoRepo).Maybe()
	factory.EXPECT().UsuarioRepo().Return(usuarioRepo).Maybe()

	service := NewMercadoService(passthroughTx(t, factory), newTestStore(), newDiscardLogger())

	return mercadoFixture{service: service, repo: repo, ramoRepo: ramoRepo, usuarioRepo: usuarioRepo}
}

func validMercadoInput() *usecase.MercadoInput {
	return &usecase.MercadoInput{
		Nome:       strPtr("Mercado Central"),
		Logradouro: strPtr("Rua das Flores"),
		Numero:     intPtr(100),
		Bairro:     strPtr("Centro Velho"),
		Cidade:     strPtr("Campinas"),
		UF:         strPtr("SP"),
		CEP:        strPtr("13010-000"),
		RamoID:     i64Ptr(2),
		CriadoPor:  i64Ptr(3),
	}
}

func TestMercadoService_Create_Success(t *testing.T) {
	fx := newMercadoFixture(t)
	ctx := context.Background()

	fx.ramoRepo.EXPECT().ExistsByID(ctx, int64(2)).Return(true, nil)
	fx.usuarioRepo.EXPECT().FindByID(ctx, int64(3)).
		Return(&entity.Usuario{ID: 3, Email: "ana@exemplo.com", Status: entity.StatusAtivo}, nil)
	fx.repo.EXPECT().Exists(ctx, mock.AnythingOfType("*match.Criteria")).Return(false, nil)
	fx.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Mercado")).
		Run(func(_ context.Context, mercado *entity.Mercado) {
			mercado.ID = 4
		}).
		Return(nil)

	mercado, err := fx.service.Create(ctx, validMercadoInput())

	require.NoError(t, err)
	assert.Equal(t, int64(4), mercado.ID)
	assert.Nil(t, mercado.Complemento)
	assert.Equal(t, int64(3), mercado.CriadoPor)
}

func TestMercadoService_Create_SameNameAndCEPConflicts(t *testing.T) {
	fx := newMercadoFixture(t)
	ctx := context.Background()

	fx.ramoRepo.EXPECT().ExistsByID(ctx, int64(2)).Return(true, nil)
	fx.usuarioRepo.EXPECT().FindByID(ctx, int64(3)).
		Return(&entity.Usuario{ID: 3, Email: "ana@exemplo.com", Status: entity.StatusAtivo}, nil)
	fx.repo.EXPECT().Exists(ctx, mock.AnythingOfType("*match.Criteria")).Return(true, nil)

	_, err := fx.service.Create(ctx, validMercadoInput())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "mercado_existente", appErr.Reason())
}

func TestMercadoService_Create_UnknownBranchReference(t *testing.T) {
	fx := newMercadoFixture(t)
	ctx := context.Background()

	fx.ramoRepo.EXPECT().ExistsByID(ctx, int64(2)).Return(false, nil)

	_, err := fx.service.Create(ctx, validMercadoInput())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "nao_encontrado", appErr.Reason())
}

func TestMercadoService_Create_SoftDeletedCreator(t *testing.T) {
	fx := newMercadoFixture(t)
	ctx := context.Background()

	fx.ramoRepo.EXPECT().ExistsByID(ctx, int64(2)).Return(true, nil)
	fx.usuarioRepo.EXPECT().FindByID(ctx, int64(3)).
		Return(&entity.Usuario{ID: 3, Status: entity.StatusExcluido}, nil)

	_, err := fx.service.Create(ctx, validMercadoInput())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "usuario_nao_encontrado", appErr.Reason())
}

func TestMercadoService_Create_InvalidCEP(t *testing.T) {
	fx := newMercadoFixture(t)

	in := validMercadoInput()
	in.CEP = strPtr("13010000")

	_, err := fx.service.Create(context.Background(), in)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "cep_invalido", appErr.Reason())
}

func TestMercadoService_Create_StoresComplementoWhenSupplied(t *testing.T) {
	fx := newMercadoFixture(t)
	ctx := context.Background()

	fx.ramoRepo.EXPECT().ExistsByID(ctx, int64(2)).Return(true, nil)
	fx.usuarioRepo.EXPECT().FindByID(ctx, int64(3)).
		Return(&entity.Usuario{ID: 3, Email: "ana@exemplo.com", Status: entity.StatusAtivo}, nil)
	fx.repo.EXPECT().Exists(ctx, mock.AnythingOfType("*match.Criteria")).Return(false, nil)
	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Mercado")).Return(nil)

	in := validMercadoInput()
	in.Complemento = strPtr("loja 2")

	mercado, err := fx.service.Create(ctx, in)

	require.NoError(t, err)
	require.NotNil(t, mercado.Complemento)
	assert.Equal(t, "loja 2", *mercado.Complemento)
}
