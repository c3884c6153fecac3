package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLevantamento_AggregatesSuggestions(t *testing.T) {
	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	var agg Levantamento
	agg.Observar(1000, t1) // R$ 10.00
	agg.Observar(3000, t2) // R$ 30.00

	res := agg.Resultado()

	assert.True(t, res.PrecoMedio.Equal(decimal.NewFromFloat(20.00)), "media: %s", res.PrecoMedio)
	assert.True(t, res.PrecoMinimo.Equal(decimal.NewFromFloat(10.00)), "minimo: %s", res.PrecoMinimo)
	assert.True(t, res.PrecoMaximo.Equal(decimal.NewFromFloat(30.00)), "maximo: %s", res.PrecoMaximo)
	assert.Equal(t, int64(2), res.TotalSugestoes)
	assert.Equal(t, t2, res.UltimaSugestao)
}

func TestLevantamento_AverageRoundsToTwoPlaces(t *testing.T) {
	var agg Levantamento
	agg.Observar(1000, time.Now())
	agg.Observar(1000, time.Now())
	agg.Observar(1001, time.Now())

	res := agg.Resultado()

	// 30.01 / 3 = 10.003..., rounded to 10.00.
	assert.True(t, res.PrecoMedio.Equal(decimal.NewFromFloat(10.00)), "media: %s", res.PrecoMedio)
}

func TestLevantamento_LatestTimestampWinsRegardlessOfOrder(t *testing.T) {
	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	var agg Levantamento
	agg.Observar(500, t2)
	agg.Observar(700, t1)

	assert.Equal(t, t2, agg.Resultado().UltimaSugestao)
}

func TestLevantamento_EmptyYieldsZeroes(t *testing.T) {
	var agg Levantamento

	res := agg.Resultado()

	assert.True(t, res.PrecoMedio.IsZero())
	assert.True(t, res.PrecoMinimo.IsZero())
	assert.True(t, res.PrecoMaximo.IsZero())
	assert.Equal(t, int64(0), res.TotalSugestoes)
	assert.True(t, res.UltimaSugestao.IsZero())
}

// A price of exactly zero leaves min/max in their "unset" state, so the
// next observation overwrites them. The average and the counter still see
// the free suggestion.
func TestLevantamento_ZeroPriceDoesNotPinMinimum(t *testing.T) {
	var agg Levantamento
	agg.Observar(0, time.Now())
	agg.Observar(2000, time.Now())

	res := agg.Resultado()

	assert.True(t, res.PrecoMinimo.Equal(decimal.NewFromFloat(20.00)), "minimo: %s", res.PrecoMinimo)
	assert.True(t, res.PrecoMaximo.Equal(decimal.NewFromFloat(20.00)), "maximo: %s", res.PrecoMaximo)
	assert.Equal(t, int64(2), res.TotalSugestoes)
	assert.True(t, res.PrecoMedio.Equal(decimal.NewFromFloat(10.00)), "media: %s", res.PrecoMedio)
}

func TestCentavosDePreco(t *testing.T) {
	assert.Equal(t, int64(1234), CentavosDePreco(decimal.NewFromFloat(12.34)))
	assert.Equal(t, int64(0), CentavosDePreco(decimal.Zero))
	// Sub-centavo amounts round to the nearest centavo.
	assert.Equal(t, int64(1235), CentavosDePreco(decimal.NewFromFloat(12.345)))
}

func TestPrecoDeCentavos(t *testing.T) {
	assert.True(t, PrecoDeCentavos(1234).Equal(decimal.NewFromFloat(12.34)))
	assert.True(t, PrecoDeCentavos(0).IsZero())
}

func TestPrecoRoundTrip(t *testing.T) {
	original := decimal.NewFromFloat(12.34)

	assert.True(t, PrecoDeCentavos(CentavosDePreco(original)).Equal(original))
}
