package impl

import (
	"context"
	"testing"

	"precario/internal/domain/entity"
	domainerrors "precario/internal/domain/errors"
	"precario/internal/domain/match"
	"precario/internal/domain/repository"
	mockRepo "precario/internal/mocks/repository"
	"precario/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ramoFixture struct {
	service usecase.RamoUsecase
	repo    *mockRepo.MockRamoRepository
}

func newRamoFixture(t *testing.T) ramoFixture {
	repo := mockRepo.NewMockRamoRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().RamoRepo().Return(repo).Maybe()

	service := NewRamoService(passthroughTx(t, factory), newTestStore(), newDiscardLogger())

	return ramoFixture{service: service, repo: repo}
}

func TestRamoService_Create_Success(t *testing.T) {
	fx := newRamoFixture(t)
	ctx := context.Background()

	var verificado *match.Criteria
	fx.repo.EXPECT().
		Exists(ctx, mock.AnythingOfType("*match.Criteria")).
		Run(func(_ context.Context, crit *match.Criteria) {
			verificado = crit
		}).
		Return(false, nil)
	fx.repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Ramo")).
		Run(func(_ context.Context, ramo *entity.Ramo) {
			ramo.ID = 10
		}).
		Return(nil)

	ramo, err := fx.service.Create(ctx, &usecase.RamoInput{
		Nome:      strPtr("Padarias"),
		Descricao: strPtr("Pães, bolos e confeitaria"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), ramo.ID)
	assert.Equal(t, "Padarias", ramo.Nome)

	// Uniqueness is checked ignoring case on the submitted name.
	require.NotNil(t, verificado)
	conds := verificado.Conds()
	require.Len(t, conds, 1)
	assert.Equal(t, "nome", conds[0].Field)
	assert.Equal(t, match.OpFoldEq, conds[0].Op)
	assert.Equal(t, "Padarias", conds[0].Value)
}

func TestRamoService_Create_DuplicateName(t *testing.T) {
	fx := newRamoFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().
		Exists(ctx, mock.AnythingOfType("*match.Criteria")).
		Return(true, nil)

	ramo, err := fx.service.Create(ctx, &usecase.RamoInput{
		Nome:      strPtr("Padarias"),
		Descricao: strPtr("Pães, bolos e confeitaria"),
	})

	assert.Nil(t, ramo)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ramo_existente", appErr.Reason())
}

func TestRamoService_Create_RejectsClientSuppliedID(t *testing.T) {
	fx := newRamoFixture(t)

	_, err := fx.service.Create(context.Background(), &usecase.RamoInput{
		ID:        i64Ptr(3),
		Nome:      strPtr("Padarias"),
		Descricao: strPtr("Pães, bolos e confeitaria"),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "id_fornecido", appErr.Reason())
}

func TestRamoService_Create_ValidationFailureNeverReachesTheStore(t *testing.T) {
	fx := newRamoFixture(t)

	_, err := fx.service.Create(context.Background(), &usecase.RamoInput{
		Nome:      strPtr("ab"), // Below the 3-character floor.
		Descricao: strPtr("Pães, bolos e confeitaria"),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "nome_invalido", appErr.Reason())
}

func TestRamoService_Get_NotFound(t *testing.T) {
	fx := newRamoFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrNotFound)

	_, err := fx.service.Get(ctx, 99)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "nao_encontrado", appErr.Reason())
}

func TestRamoService_Patch_SameNameDifferentCaseIsNotAConflict(t *testing.T) {
	fx := newRamoFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, int64(1)).
		Return(&entity.Ramo{ID: 1, Nome: "Padarias", Descricao: "Pães e bolos da região"}, nil)
	// No Exists expectation: re-submitting the stored name in another casing
	// must not trigger the duplicate check.
	fx.repo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Ramo")).
		Return(nil)

	ramo, err := fx.service.Patch(ctx, 1, &usecase.RamoInput{Nome: strPtr("PADARIAS")})

	require.NoError(t, err)
	assert.Equal(t, "PADARIAS", ramo.Nome)
	assert.Equal(t, "Pães e bolos da região", ramo.Descricao)
}

func TestRamoService_Patch_RenamingOntoAnotherBranchConflicts(t *testing.T) {
	fx := newRamoFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindByID(ctx, int64(1)).
		Return(&entity.Ramo{ID: 1, Nome: "Padarias", Descricao: "Pães e bolos da região"}, nil)
	fx.repo.EXPECT().
		Exists(ctx, mock.AnythingOfType("*match.Criteria")).
		Return(true, nil)

	_, err := fx.service.Patch(ctx, 1, &usecase.RamoInput{Nome: strPtr("Farmácias")})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ramo_existente", appErr.Reason())
}

func TestRamoService_List_SecondCallServedFromCache(t *testing.T) {
	fx := newRamoFixture(t)
	ctx := context.Background()

	ramos := []entity.Ramo{{ID: 1, Nome: "Padarias"}}
	fx.repo.EXPECT().FindAll(ctx, mock.Anything).Return(ramos, nil).Once()

	first, err := fx.service.List(ctx, nil)
	require.NoError(t, err)

	second, err := fx.service.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRamoService_Delete_EvictsTheListCache(t *testing.T) {
	fx := newRamoFixture(t)
	ctx := context.Background()

	fx.repo.EXPECT().FindAll(ctx, mock.Anything).Return([]entity.Ramo{{ID: 1}}, nil).Twice()
	fx.repo.EXPECT().DeleteByID(ctx, int64(1)).Return(nil)

	_, err := fx.service.List(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(ctx, 1))

	// The next list goes back to the store.
	_, err = fx.service.List(ctx, nil)
	require.NoError(t, err)
}
