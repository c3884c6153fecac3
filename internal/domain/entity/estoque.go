package entity

// Estoque is the join entity recording that a product is tracked at a
// market. At most one entry exists per (ProdutoID, MercadoID) pair.
type Estoque struct {
	ID        int64
	CriadoPor int64 // ID of the registering user. Immutable after creation.
	ProdutoID int64
	MercadoID int64
}
