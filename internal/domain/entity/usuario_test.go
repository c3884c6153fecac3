package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsuario_Excluir(t *testing.T) {
	complemento := "apto 12"
	u := &Usuario{
		ID:        7,
		Nome:      "Ana Souza",
		Email:     "ana@exemplo.com",
		SenhaHash: "$2a$10$hash",
		Endereco: Endereco{
			Logradouro:  "Avenida Paulista",
			Numero:      1000,
			Complemento: &complemento,
			Bairro:      "Bela Vista",
			Cidade:      "São Paulo",
			UF:          "SP",
			CEP:         "01310-100",
		},
		Status: StatusAtivo,
	}

	u.Excluir()

	assert.Equal(t, int64(7), u.ID, "the row keeps its id for audit references")
	assert.Empty(t, u.Nome)
	assert.Empty(t, u.Email)
	assert.Empty(t, u.SenhaHash)
	assert.Equal(t, Endereco{}, u.Endereco)
	assert.Equal(t, StatusExcluido, u.Status)
	assert.False(t, u.Ativo())
}

func TestUsuario_Ativo(t *testing.T) {
	ativo := &Usuario{Email: "ana@exemplo.com", Status: StatusAtivo}
	assert.True(t, ativo.Ativo())

	excluido := &Usuario{Status: StatusExcluido}
	assert.False(t, excluido.Ativo())

	var nulo *Usuario
	assert.False(t, nulo.Ativo())
}

func TestStatusUsuario_IsValid(t *testing.T) {
	assert.True(t, StatusAtivo.IsValid())
	assert.True(t, StatusExcluido.IsValid())
	assert.False(t, StatusUsuario("pendente").IsValid())
}

func TestUFValida(t *testing.T) {
	assert.True(t, UFValida("SP"))
	assert.True(t, UFValida("AC"))
	assert.False(t, UFValida("sp"))
	assert.False(t, UFValida("ZZ"))
}

func TestTitleCaseNome(t *testing.T) {
	assert.Equal(t, "Arroz Branco Tipo 1", TitleCaseNome("arroz branco tipo 1"))
	assert.Equal(t, "Café Torrado E Moído", TitleCaseNome("café torrado e moído"))
}
