package cache

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStore_PutGet(t *testing.T) {
	s := newTestStore()

	s.Put(Categorias, "lista:*", []string{"a", "b"})

	v, ok := s.Get(Categorias, "lista:*")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestStore_MissOnUnknownKey(t *testing.T) {
	s := newTestStore()

	_, ok := s.Get(Categorias, "inexistente")
	assert.False(t, ok)
}

func TestStore_KeysAreScopedByCategory(t *testing.T) {
	s := newTestStore()

	s.Put(Categorias, "k", 1)
	s.Put(Ramos, "k", 2)

	v, ok := s.Get(Ramos, "k")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestStore_EvictClearsOnlyThatCategory(t *testing.T) {
	s := newTestStore()
	s.Put(Produtos, "k", 1)
	s.Put(Sugestoes, "k", 2)

	s.Evict(Produtos)

	_, ok := s.Get(Produtos, "k")
	assert.False(t, ok)
	_, ok = s.Get(Sugestoes, "k")
	assert.True(t, ok)
}

func TestStore_EvictAll(t *testing.T) {
	s := newTestStore()
	s.Put(Produtos, "k", 1)
	s.Put(Mercados, "k", 2)
	s.Put(MercadoSugestoes, "k", 3)

	s.EvictAll()

	for _, cat := range []Categoria{Produtos, Mercados, MercadoSugestoes} {
		_, ok := s.Get(cat, "k")
		assert.False(t, ok, "category %s should be empty", cat)
	}
}

func TestKnown(t *testing.T) {
	for _, cat := range []Categoria{
		Categorias, Ramos, Mercados, Produtos,
		Sugestoes, MercadoSugestoes, Estoques, ProdutoMercado,
	} {
		assert.True(t, Known(cat), "%s", cat)
	}

	assert.False(t, Known(Categoria("desconhecida")))
	assert.False(t, Known(Categoria("")))
}

func TestEvictionIntervals(t *testing.T) {
	// Reference data holds for two hours, price data for ten minutes and
	// the product/market association for one hour.
	assert.Equal(t, 2*time.Hour, evictionIntervals[Categorias])
	assert.Equal(t, 2*time.Hour, evictionIntervals[Ramos])
	assert.Equal(t, 2*time.Hour, evictionIntervals[Mercados])
	assert.Equal(t, 10*time.Minute, evictionIntervals[Produtos])
	assert.Equal(t, 10*time.Minute, evictionIntervals[Sugestoes])
	assert.Equal(t, 10*time.Minute, evictionIntervals[MercadoSugestoes])
	assert.Equal(t, time.Hour, evictionIntervals[Estoques])
	assert.Equal(t, time.Hour, evictionIntervals[ProdutoMercado])
}

func TestStore_PutOverwrites(t *testing.T) {
	s := newTestStore()

	s.Put(Estoques, "k", 1)
	s.Put(Estoques, "k", 2)

	v, _ := s.Get(Estoques, "k")
	assert.Equal(t, 2, v)
}
