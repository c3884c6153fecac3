package validation

import (
	"testing"

	domainerrors "precario/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRun_FullModeRejectsAbsentRequiredField(t *testing.T) {
	rules := []Rule{
		Texto("nome_invalido", nil, 1, 30),
	}

	err := Run(false, rules)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "nome_invalido", appErr.Reason())
}

func TestRun_PartialModeSkipsAbsentFields(t *testing.T) {
	rules := []Rule{
		Texto("nome_invalido", nil, 1, 30),
		Texto("descricao_invalida", nil, 1, 150),
	}

	assert.NoError(t, Run(true, rules))
}

func TestRun_PartialModeStillChecksPresentFields(t *testing.T) {
	rules := []Rule{
		Texto("nome_invalido", strPtr(""), 1, 30),
	}

	err := Run(true, rules)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "nome_invalido", appErr.Reason())
}

func TestRun_FirstViolationWins(t *testing.T) {
	rules := []Rule{
		Texto("nome_invalido", strPtr(""), 3, 30),
		Texto("descricao_invalida", strPtr(""), 10, 150),
	}

	err := Run(false, rules)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "nome_invalido", appErr.Reason())
}

func TestRun_DeclaredOrderDecidesTheReportedReason(t *testing.T) {
	rules := []Rule{
		Texto("descricao_invalida", strPtr(""), 10, 150),
		Texto("nome_invalido", strPtr(""), 3, 30),
	}

	err := Run(false, rules)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "descricao_invalida", appErr.Reason())
}

func TestRun_OptionalFieldMayBeAbsentInFullMode(t *testing.T) {
	rules := []Rule{
		TextoOpcional("complemento_invalido", nil, 1, 20),
	}

	assert.NoError(t, Run(false, rules))
}

func TestNoID(t *testing.T) {
	assert.NoError(t, NoID(nil))

	id := int64(7)
	err := NoID(&id)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "id_fornecido", appErr.Reason())
}

func TestTexto_CountsRunesNotBytes(t *testing.T) {
	// Three runes, six bytes.
	rules := []Rule{Texto("cidade_invalida", strPtr("São"), 3, 30)}

	assert.NoError(t, Run(false, rules))
}

func TestTexto_Bounds(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"below minimum", "ab", false},
		{"at minimum", "abc", true},
		{"at maximum", "abcdefghij", true},
		{"above maximum", "abcdefghijk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(false, []Rule{Texto("campo_invalido", strPtr(tt.value), 3, 10)})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTextoOpcional_EmptyStringIsTheClearSentinel(t *testing.T) {
	rules := []Rule{TextoOpcional("complemento_invalido", strPtr(""), 1, 20)}

	assert.NoError(t, Run(true, rules))
}

func TestCEP(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"01310-100", true},
		{"12345-678", true},
		{"12345678", false},
		{"1234-678", false},
		{"12345-67a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := Run(false, []Rule{CEP("cep_invalido", strPtr(tt.value))})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUF(t *testing.T) {
	assert.NoError(t, Run(false, []Rule{UF("uf_invalida", strPtr("SP"))}))
	assert.NoError(t, Run(false, []Rule{UF("uf_invalida", strPtr("TO"))}))
	assert.Error(t, Run(false, []Rule{UF("uf_invalida", strPtr("sp"))}))
	assert.Error(t, Run(false, []Rule{UF("uf_invalida", strPtr("XX"))}))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"ana@exemplo.com", true},
		{"a@b.c", false},  // Below the 7-character floor.
		{"semarroba.com", false},
		{"sem@ponto", false},
		{"com espaco@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := Run(false, []Rule{Email("email_invalido", strPtr(tt.value))})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPreco(t *testing.T) {
	zero := decimal.Zero
	positivo := decimal.NewFromFloat(12.34)
	negativo := decimal.NewFromFloat(-0.01)

	assert.NoError(t, Run(false, []Rule{Preco("preco_invalido", &zero)}))
	assert.NoError(t, Run(false, []Rule{Preco("preco_invalido", &positivo)}))
	assert.Error(t, Run(false, []Rule{Preco("preco_invalido", &negativo)}))
}

func TestSenha(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"all character classes", "Abc123!@", true},
		{"missing uppercase", "abc123!@", false},
		{"missing digit", "Abcdef!@", false},
		{"missing symbol", "Abc12345", false},
		{"contains whitespace", "Abc 123!@", false},
		{"too short", "Ab1!", false},
		{"pattern longer than twenty", "Abc123!@Abc123!@Abc123!@", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(false, []Rule{Senha("senha_invalida", strPtr(tt.value))})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
