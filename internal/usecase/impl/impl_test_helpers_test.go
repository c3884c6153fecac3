package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"precario/internal/domain/repository"
	"precario/internal/infra/cache"
	mockRepo "precario/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore() *cache.Store {
	return cache.NewStore(newDiscardLogger())
}

// passthroughTx builds a transaction manager mock that hands the given
// factory to the callback, so service logic runs as if inside a
// transaction.
func passthroughTx(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func i64Ptr(n int64) *int64   { return &n }
