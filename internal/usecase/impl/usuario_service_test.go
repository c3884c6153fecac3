package impl

import (
	"context"
	"testing"
	"time"

	"precario/internal/domain/entity"
	domainerrors "precario/internal/domain/errors"
	"precario/internal/domain/repository"
	mockRepo "precario/internal/mocks/repository"
	mockSvc "precario/internal/mocks/service"
	"precario/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type usuarioFixture struct {
	service usecase.UsuarioUsecase
	repo    *mockRepo.MockUsuarioRepository
	hasher  *mockSvc.MockPasswordHasher
	tokens  *mockSvc.MockTokenService
}

func newUsuarioFixture(t *testing.T) usuarioFixture {
	repo := mockRepo.NewMockUsuarioRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UsuarioRepo().Return(repo).Maybe()
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	service := NewUsuarioService(passthroughTx(t, factory), hasher, tokens, newDiscardLogger())

	return usuarioFixture{service: service, repo: repo, hasher: hasher, tokens: tokens}
}

func validUsuarioInput() *usecase.UsuarioInput {
	return &usecase.UsuarioInput{
		Nome:       strPtr("Ana Souza"),
		Email:      strPtr("ana@exemplo.com"),
		Senha:      strPtr("Senha123!"),
		Logradouro: strPtr("Avenida Paulista"),
		Numero:     intPtr(1000),
		Bairro:     strPtr("Bela Vista"),
		Cidade:     strPtr("São Paulo"),
		UF:         strPtr("SP"),
		CEP:        strPtr("01310-100"),
	}
}

func TestUsuarioService_Create_Success(t *testing.T) {
	fx := newUsuarioFixture(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Senha123!").Return("hash-bcrypt", nil)
	fx.repo.EXPECT().FindByEmail(ctx, "ana@exemplo.com").Return(nil, repository.ErrNotFound)
	fx.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Usuario")).
		Run(func(_ context.Context, usuario *entity.Usuario) {
			assert.Equal(t, "hash-bcrypt", usuario.SenhaHash)
			assert.Equal(t, entity.StatusAtivo, usuario.Status)
			usuario.ID = 5
		}).
		Return(nil)

	out, err := fx.service.Create(ctx, validUsuarioInput())

	require.NoError(t, err)
	assert.Equal(t, int64(5), out.ID)
	assert.Equal(t, "ana@exemplo.com", out.Email)
}

func TestUsuarioService_Create_EmailHeldByAnotherAccount(t *testing.T) {
	fx := newUsuarioFixture(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Senha123!").Return("hash-bcrypt", nil)
	fx.repo.EXPECT().FindByEmail(ctx, "ana@exemplo.com").
		Return(&entity.Usuario{ID: 2, Email: "ana@exemplo.com", Status: entity.StatusAtivo}, nil)

	out, err := fx.service.Create(ctx, validUsuarioInput())

	assert.Nil(t, out)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "email_em_uso", appErr.Reason())
}

func TestUsuarioService_Create_WeakPasswordFailsValidation(t *testing.T) {
	fx := newUsuarioFixture(t)

	in := validUsuarioInput()
	in.Senha = strPtr("fraca")

	_, err := fx.service.Create(context.Background(), in)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "senha_invalida", appErr.Reason())
}

func TestUsuarioService_Get_SoftDeletedAccountIsGone(t *testing.T) {
	fx := newUsuarioFixture(t)
	ctx := context.Background()

	excluido := &entity.Usuario{ID: 5, Status: entity.StatusExcluido}
	fx.repo.EXPECT().FindByID(ctx, int64(5)).Return(excluido, nil)

	_, err := fx.service.Get(ctx, 5)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "usuario_nao_encontrado", appErr.Reason())
}

func TestUsuarioService_Delete_BlanksFieldsAndKeepsTheRow(t *testing.T) {
	fx := newUsuarioFixture(t)
	ctx := context.Background()

	ativo := &entity.Usuario{
		ID:        5,
		Nome:      "Ana Souza",
		Email:     "ana@exemplo.com",
		SenhaHash: "hash",
		Endereco:  entity.Endereco{Logradouro: "Avenida Paulista", Numero: 1000, Bairro: "Bela Vista", Cidade: "São Paulo", UF: "SP", CEP: "01310-100"},
		Status:    entity.StatusAtivo,
	}
	fx.repo.EXPECT().FindByID(ctx, int64(5)).Return(ativo, nil)

	var gravado entity.Usuario
	fx.repo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Usuario")).
		Run(func(_ context.Context, usuario *entity.Usuario) {
			gravado = *usuario
		}).
		Return(nil)

	require.NoError(t, fx.service.Delete(ctx, 5))

	assert.Equal(t, int64(5), gravado.ID)
	assert.Empty(t, gravado.Nome)
	assert.Empty(t, gravado.Email)
	assert.Empty(t, gravado.SenhaHash)
	assert.Equal(t, entity.Endereco{}, gravado.Endereco)
	assert.Equal(t, entity.StatusExcluido, gravado.Status)
}

func TestUsuarioService_Patch_DoesNotRecheckUnchangedEmail(t *testing.T) {
	fx := newUsuarioFixture(t)
	ctx := context.Background()

	atual := &entity.Usuario{ID: 5, Nome: "Ana Souza", Email: "ana@exemplo.com", Status: entity.StatusAtivo}
	fx.repo.EXPECT().FindByID(ctx, int64(5)).Return(atual, nil)
	// No FindByEmail expectation: submitting the stored e-mail unchanged
	// must not run the conflict check.
	fx.repo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Usuario")).Return(nil)

	out, err := fx.service.Patch(ctx, 5, &usecase.UsuarioInput{
		Email: strPtr("ana@exemplo.com"),
		Nome:  strPtr("Ana Clara Souza"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Clara Souza", out.Nome)
}

func TestUsuarioService_Login_Success(t *testing.T) {
	fx := newUsuarioFixture(t)
	ctx := context.Background()

	conta := &entity.Usuario{ID: 5, Email: "ana@exemplo.com", SenhaHash: "hash", Status: entity.StatusAtivo}
	fx.repo.EXPECT().FindByEmail(ctx, "ana@exemplo.com").Return(conta, nil)
	fx.hasher.EXPECT().Check("Senha123!", "hash").Return(true)
	fx.tokens.EXPECT().GenerateToken(int64(5)).Return("token-assinado", nil)
	fx.tokens.EXPECT().AccessTokenDuration().Return(time.Hour)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@exemplo.com", Senha: "Senha123!"})

	require.NoError(t, err)
	assert.Equal(t, "token-assinado", out.AccessToken)
	assert.Equal(t, int64(3600), out.ExpiresIn)
}

func TestUsuarioService_Login_WrongPassword(t *testing.T) {
	fx := newUsuarioFixture(t)
	ctx := context.Background()

	conta := &entity.Usuario{ID: 5, Email: "ana@exemplo.com", SenhaHash: "hash", Status: entity.StatusAtivo}
	fx.repo.EXPECT().FindByEmail(ctx, "ana@exemplo.com").Return(conta, nil)
	fx.hasher.EXPECT().Check("errada", "hash").Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@exemplo.com", Senha: "errada"})

	assert.Nil(t, out)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "credenciais_invalidas", appErr.Reason())
}

func TestUsuarioService_Login_UnknownEmailIsIndistinguishable(t *testing.T) {
	fx := newUsuarioFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByEmail(ctx, "ninguem@exemplo.com").Return(nil, repository.ErrNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ninguem@exemplo.com", Senha: "tanto-faz"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "credenciais_invalidas", appErr.Reason())
}
