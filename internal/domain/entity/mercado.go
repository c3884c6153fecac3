package entity

// Mercado is a physical store tracked by the catalog. It belongs to a Ramo
// and records the user that registered it for audit purposes.
type Mercado struct {
	ID        int64
	CriadoPor int64 // ID of the registering user. Immutable after creation.
	RamoID    int64
	Nome      string // 5-50 characters.
	Endereco
}
