package entity

// Ramo is the line of business a market belongs to (e.g. supermarket,
// pharmacy). Names are unique case-insensitively across the catalog.
type Ramo struct {
	ID        int64
	Nome      string // 3-30 characters, unique ignoring case.
	Descricao string // 10-150 characters.
}
