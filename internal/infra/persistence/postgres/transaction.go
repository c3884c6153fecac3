// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"precario/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// CategoriaRepo creates a category repository bound to the transaction.
func (f *gormRepositoryFactory) CategoriaRepo() repository.CategoriaRepository {
	return NewCategoriaRepository(f.tx)
}

// RamoRepo creates a branch repository bound to the transaction.
func (f *gormRepositoryFactory) RamoRepo() repository.RamoRepository {
	return NewRamoRepository(f.tx)
}

// MercadoRepo creates a market repository bound to the transaction.
func (f *gormRepositoryFactory) MercadoRepo() repository.MercadoRepository {
	return NewMercadoRepository(f.tx)
}

// ProdutoRepo creates a product repository bound to the transaction.
func (f *gormRepositoryFactory) ProdutoRepo() repository.ProdutoRepository {
	return NewProdutoRepository(f.tx)
}

// EstoqueRepo creates a stock-entry repository bound to the transaction.
func (f *gormRepositoryFactory) EstoqueRepo() repository.EstoqueRepository {
	return NewEstoqueRepository(f.tx)
}

// SugestaoRepo creates a price-suggestion repository bound to the transaction.
func (f *gormRepositoryFactory) SugestaoRepo() repository.SugestaoRepository {
	return NewSugestaoRepository(f.tx)
}

// UsuarioRepo creates a user repository bound to the transaction.
func (f *gormRepositoryFactory) UsuarioRepo() repository.UsuarioRepository {
	return NewUsuarioRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback
	// function, the transaction is always rolled back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
