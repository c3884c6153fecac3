package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sugestao is a user-submitted price observation for a stock entry.
// Prices are persisted as integer minor units (centavos) and exposed to
// callers as decimal major units.
type Sugestao struct {
	ID            int64
	PrecoCentavos int64     // Non-negative price in centavos.
	CriadoEm      time.Time // Server-assigned creation timestamp.
	EstoqueID     int64
	CriadoPor     int64 // ID of the submitting user. Immutable after creation.
}

// Preco returns the price in decimal major units (reais).
func (s Sugestao) Preco() decimal.Decimal {
	return PrecoDeCentavos(s.PrecoCentavos)
}

// CentavosDePreco converts a decimal major-unit price to integer centavos,
// rounding to the nearest centavo.
func CentavosDePreco(preco decimal.Decimal) int64 {
	return preco.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// PrecoDeCentavos converts integer centavos back to decimal major units.
func PrecoDeCentavos(centavos int64) decimal.Decimal {
	return decimal.New(centavos, -2)
}
