package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"precario/internal/delivery/http/validator"
	"precario/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type loginStub struct {
	usecase.UsuarioUsecase

	called bool
	in     *usecase.LoginInput
	out    *usecase.LoginOutput
}

func (s *loginStub) Login(_ context.Context, in *usecase.LoginInput) (*usecase.LoginOutput, error) {
	s.called = true
	s.in = in

	return s.out, nil
}

func postLogin(t *testing.T, h *UsuarioHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	require.NoError(t, err)

	return rec
}

func TestLogin_RejectsMissingCredentials(t *testing.T) {
	stub := &loginStub{}
	h := NewUsuarioHandler(stub, newDiscardLogger())

	rec := postLogin(t, h, `{"senha":"Senha123!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "corpo_invalido")
	assert.False(t, stub.called)
}

func TestLogin_RejectsMalformedEmail(t *testing.T) {
	stub := &loginStub{}
	h := NewUsuarioHandler(stub, newDiscardLogger())

	rec := postLogin(t, h, `{"email":"nao-e-email","senha":"Senha123!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, stub.called)
}

func TestLogin_ForwardsValidCredentials(t *testing.T) {
	stub := &loginStub{out: &usecase.LoginOutput{AccessToken: "token-assinado", ExpiresIn: 3600}}
	h := NewUsuarioHandler(stub, newDiscardLogger())

	rec := postLogin(t, h, `{"email":"ana@exemplo.com","senha":"Senha123!"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, stub.called)
	assert.Equal(t, "ana@exemplo.com", stub.in.Email)
	assert.Equal(t, "Senha123!", stub.in.Senha)

	var envelope struct {
		Data usecase.LoginOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "token-assinado", envelope.Data.AccessToken)
	assert.Equal(t, int64(3600), envelope.Data.ExpiresIn)
}
