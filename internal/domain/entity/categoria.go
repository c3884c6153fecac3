// Package entity contains the core business objects of the catalog,
// each representing a unique, identifiable concept within the domain.
package entity

// Categoria groups products under a common classification (e.g. "Bebidas").
type Categoria struct {
	ID        int64  // Server-assigned identifier.
	Nome      string // Display name, up to 30 characters.
	Descricao string // Free-form description, up to 150 characters.
}
