package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriteria_Empty(t *testing.T) {
	assert.True(t, New().Empty())
	assert.True(t, (*Criteria)(nil).Empty())
	assert.False(t, New().Eq("id", int64(1)).Empty())
}

func TestMatches_FoldEqIgnoresCase(t *testing.T) {
	crit := New().FoldEq("nome", "Supermercado")

	assert.True(t, crit.Matches(map[string]any{"nome": "supermercado"}))
	assert.True(t, crit.Matches(map[string]any{"nome": "SUPERMERCADO"}))
	assert.False(t, crit.Matches(map[string]any{"nome": "mercearia"}))
}

func TestMatches_FoldContains(t *testing.T) {
	crit := New().FoldContains("nome", "merc")

	assert.True(t, crit.Matches(map[string]any{"nome": "Supermercado Central"}))
	assert.True(t, crit.Matches(map[string]any{"nome": "MERCADINHO"}))
	assert.False(t, crit.Matches(map[string]any{"nome": "Padaria"}))
}

func TestMatches_FoldContainsIsLiteral(t *testing.T) {
	crit := New().FoldContains("tamanho", "50%")

	assert.True(t, crit.Matches(map[string]any{"tamanho": "50% cacau"}))
	assert.False(t, crit.Matches(map[string]any{"tamanho": "500ml"}))

	crit = New().FoldContains("tamanho", "tipo_1")
	assert.True(t, crit.Matches(map[string]any{"tamanho": "Tipo_1"}))
	assert.False(t, crit.Matches(map[string]any{"tamanho": "tipo 1"}))
}

func TestMatches_EqIsExact(t *testing.T) {
	crit := New().Eq("ramo_id", int64(3))

	assert.True(t, crit.Matches(map[string]any{"ramo_id": int64(3)}))
	assert.False(t, crit.Matches(map[string]any{"ramo_id": int64(4)}))
}

func TestMatches_ConjunctionRequiresEveryPredicate(t *testing.T) {
	crit := New().FoldEq("nome", "Feira Livre").Eq("cep", "01310-100")

	assert.True(t, crit.Matches(map[string]any{"nome": "feira livre", "cep": "01310-100"}))
	assert.False(t, crit.Matches(map[string]any{"nome": "feira livre", "cep": "99999-999"}))
}

func TestMatches_MissingFieldNeverMatches(t *testing.T) {
	crit := New().FoldEq("nome", "qualquer")

	assert.False(t, crit.Matches(map[string]any{"outro": "qualquer"}))
}

func TestKey_StableAndDistinct(t *testing.T) {
	a := New().FoldEq("nome", "Arroz").Eq("categoria_id", int64(2))
	b := New().FoldEq("nome", "Arroz").Eq("categoria_id", int64(2))
	c := New().FoldEq("nome", "Feijão").Eq("categoria_id", int64(2))

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.Equal(t, "*", New().Key())
	assert.Equal(t, "*", (*Criteria)(nil).Key())
}

func TestConds_PreservesInsertionOrder(t *testing.T) {
	crit := New().FoldContains("nome", "a").Eq("criado_por", int64(1))

	conds := crit.Conds()
	assert.Len(t, conds, 2)
	assert.Equal(t, "nome", conds[0].Field)
	assert.Equal(t, OpFoldContains, conds[0].Op)
	assert.Equal(t, "criado_por", conds[1].Field)
	assert.Equal(t, OpEq, conds[1].Op)
}
