package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LevantamentoPrecos is the aggregated price survey for a product across
// every market that tracks it.
type LevantamentoPrecos struct {
	PrecoMedio     decimal.Decimal `json:"precoMedio"`
	PrecoMinimo    decimal.Decimal `json:"precoMinimo"`
	PrecoMaximo    decimal.Decimal `json:"precoMaximo"`
	TotalSugestoes int64           `json:"totalSugestoes"`
	UltimaSugestao time.Time       `json:"ultimaSugestao"`
}

// Levantamento accumulates price suggestions into a LevantamentoPrecos.
// The zero value is ready to use.
//
// Min/max tracking initializes lazily from the first observed price: a
// stored value of exactly zero counts as "unset" and is overwritten by the
// next observation. A legitimately free-priced suggestion is therefore
// dropped from min/max; this mirrors the established behavior and is kept
// deliberately (see DESIGN.md).
type Levantamento struct {
	soma   decimal.Decimal
	minimo decimal.Decimal
	maximo decimal.Decimal
	total  int64
	ultima time.Time
}

// Observar folds a single suggestion into the running aggregation.
func (l *Levantamento) Observar(precoCentavos int64, criadoEm time.Time) {
	preco := PrecoDeCentavos(precoCentavos)

	l.total++
	l.soma = l.soma.Add(preco)

	if l.minimo.IsZero() || preco.LessThan(l.minimo) {
		l.minimo = preco
	}
	if l.maximo.IsZero() || preco.GreaterThan(l.maximo) {
		l.maximo = preco
	}

	if criadoEm.After(l.ultima) {
		l.ultima = criadoEm
	}
}

// Resultado closes the aggregation. With no observations every statistic is
// zero valued and TotalSugestoes is 0.
func (l *Levantamento) Resultado() LevantamentoPrecos {
	media := decimal.Zero
	if l.total > 0 {
		media = l.soma.DivRound(decimal.NewFromInt(l.total), 2)
	}

	return LevantamentoPrecos{
		PrecoMedio:     media,
		PrecoMinimo:    l.minimo,
		PrecoMaximo:    l.maximo,
		TotalSugestoes: l.total,
		UltimaSugestao: l.ultima,
	}
}
