package impl

import (
	"fmt"

	"precario/internal/domain/match"
)

// listKey builds the cache key for a bare (unpaged) list.
func listKey(crit *match.Criteria) string {
	return "list|" + crit.Key()
}

// pageKey builds the cache key for one page of a filtered list.
func pageKey(crit *match.Criteria, page, size int) string {
	return fmt.Sprintf("page|%s|%d|%d", crit.Key(), page, size)
}

// produtoKey builds the cache key for per-product derived data.
func produtoKey(produtoID int64) string {
	return fmt.Sprintf("produto|%d", produtoID)
}

// pagina is the cached form of one page plus its total row count.
type pagina[T any] struct {
	itens []T
	total int64
}
