package repository

import "context"

// TransactionManager defines the interface for managing database
// transactions. This allows the use case layer to handle transactions
// without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back. Otherwise, it's
	// committed. All repository operations within the function use the same
	// database transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, ensuring every operation inside the transaction uses the
// same database connection.
type RepositoryFactory interface {
	CategoriaRepo() CategoriaRepository
	RamoRepo() RamoRepository
	MercadoRepo() MercadoRepository
	ProdutoRepo() ProdutoRepository
	EstoqueRepo() EstoqueRepository
	SugestaoRepo() SugestaoRepository
	UsuarioRepo() UsuarioRepository
}
