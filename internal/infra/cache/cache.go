// Package cache implements the process-wide query cache keyed by resource
// category. List and survey results are cached read-through; a miss always
// recomputes synchronously, no request ever blocks on population.
//
// Entries leave the cache two ways: a fixed-delay janitor clears each
// category on its own interval, and writes (or the administrative routes)
// evict a category on demand.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/fx"
)

// Categoria identifies one cached resource category.
type Categoria string

// The cached categories and their janitor intervals. Reference data that
// rarely changes is held for two hours, volatile price data for ten
// minutes, the product/market association for one hour.
const (
	Categorias       Categoria = "categorias"
	Ramos            Categoria = "ramos"
	Mercados         Categoria = "mercados"
	Produtos         Categoria = "produtos"
	Sugestoes        Categoria = "sugestoes"
	MercadoSugestoes Categoria = "mercadoSugestoes"
	Estoques         Categoria = "estoques"
	ProdutoMercado   Categoria = "produtoMercado"
)

var evictionIntervals = map[Categoria]time.Duration{
	Categorias:       2 * time.Hour,
	Ramos:            2 * time.Hour,
	Mercados:         2 * time.Hour,
	Produtos:         10 * time.Minute,
	Sugestoes:        10 * time.Minute,
	MercadoSugestoes: 10 * time.Minute,
	Estoques:         time.Hour,
	ProdutoMercado:   time.Hour,
}

// Store is the process-wide cache. The zero value is not usable; construct
// with NewStore.
type Store struct {
	mu      sync.RWMutex
	buckets map[Categoria]map[string]any
	logger  *slog.Logger
}

// NewStore creates an empty cache store. The janitor is started separately
// so tests can drive eviction by hand.
func NewStore(logger *slog.Logger) *Store {
	return &Store{
		buckets: make(map[Categoria]map[string]any, len(evictionIntervals)),
		logger:  logger,
	}
}

// Params defines the required parameters for the fx provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Logger *slog.Logger
}

// New is the fx constructor: it creates the store and ties the janitor to
// the application lifecycle.
func New(params Params) *Store {
	store := NewStore(params.Logger)

	janitorCtx, cancel := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			store.StartJanitor(janitorCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return store
}

// Get returns the cached value for a key within a category.
func (s *Store) Get(cat Categoria, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket, ok := s.buckets[cat]
	if !ok {
		return nil, false
	}
	v, ok := bucket[key]

	return v, ok
}

// Put stores a value for a key within a category.
func (s *Store) Put(cat Categoria, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[cat]
	if !ok {
		bucket = make(map[string]any)
		s.buckets[cat] = bucket
	}
	bucket[key] = value
}

// Evict clears every entry of a category.
func (s *Store) Evict(cat Categoria) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.buckets, cat)
}

// EvictAll clears the whole cache.
func (s *Store) EvictAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buckets = make(map[Categoria]map[string]any, len(evictionIntervals))
}

// Known reports whether cat is one of the cached categories, used by the
// administrative eviction route to reject unknown names.
func Known(cat Categoria) bool {
	_, ok := evictionIntervals[cat]

	return ok
}

// StartJanitor launches one eviction loop per category. Loops stop when ctx
// is canceled.
func (s *Store) StartJanitor(ctx context.Context) {
	for cat, interval := range evictionIntervals {
		go s.janitor(ctx, cat, interval)
	}
}

func (s *Store) janitor(ctx context.Context, cat Categoria, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Evict(cat)
			if s.logger != nil {
				s.logger.Debug("cache category evicted", slog.String("categoria", string(cat)))
			}
		}
	}
}
