package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_NilKeepsCurrentValue(t *testing.T) {
	dst := "atual"
	Field(&dst, nil)

	assert.Equal(t, "atual", dst)
}

func TestField_SuppliedValueReplaces(t *testing.T) {
	dst := "atual"
	src := "novo"
	Field(&dst, &src)

	assert.Equal(t, "novo", dst)
}

func TestField_WorksAcrossTypes(t *testing.T) {
	n := 10
	novo := 42
	Field(&n, &novo)
	assert.Equal(t, 42, n)

	id := int64(3)
	Field(&id, nil)
	assert.Equal(t, int64(3), id)
}

func TestClearable_NilKeepsCurrentValue(t *testing.T) {
	atual := "bloco B"
	dst := &atual
	Clearable(&dst, nil)

	require.NotNil(t, dst)
	assert.Equal(t, "bloco B", *dst)
}

func TestClearable_EmptyStringClears(t *testing.T) {
	atual := "bloco B"
	dst := &atual
	vazio := ""
	Clearable(&dst, &vazio)

	assert.Nil(t, dst)
}

func TestClearable_ValueSets(t *testing.T) {
	var dst *string
	novo := "fundos"
	Clearable(&dst, &novo)

	require.NotNil(t, dst)
	assert.Equal(t, "fundos", *dst)
}

func TestClearable_CopiesTheValue(t *testing.T) {
	var dst *string
	novo := "fundos"
	Clearable(&dst, &novo)
	novo = "mudou"

	assert.Equal(t, "fundos", *dst)
}
