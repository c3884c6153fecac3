package impl

import (
	"context"
	"log/slog"
	"strings"

	"precario/internal/domain/entity"
	domainerrors "precario/internal/domain/errors"
	"precario/internal/domain/match"
	"precario/internal/domain/repository"
	"precario/internal/domain/validation"
	"precario/internal/errors"
	"precario/internal/infra/cache"
	"precario/internal/usecase"
)

// produtoService implements the ProdutoUsecase interface, including the
// aggregated price survey.
type produtoService struct {
	txManager repository.TransactionManager
	store     *cache.Store
	logger    *slog.Logger
}

// NewProdutoService is the constructor for produtoService.
func NewProdutoService(
	txManager repository.TransactionManager,
	store *cache.Store,
	logger *slog.Logger,
) usecase.ProdutoUsecase {
	return &produtoService{
		txManager: txManager,
		store:     store,
		logger:    logger,
	}
}

// Create validates and persists a new product. Names are normalized to
// title case on the way in.
func (srv *produtoService) Create(ctx context.Context, in *usecase.ProdutoInput) (*entity.Produto, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(false, in.Rules()); err != nil {
		return nil, err
	}

	produto := &entity.Produto{
		Nome:        entity.TitleCaseNome(*in.Nome),
		Marca:       *in.Marca,
		Tamanho:     *in.Tamanho,
		CriadoPor:   *in.CriadoPor,
		CategoriaID: *in.CategoriaID,
	}
	if in.Cor != nil && *in.Cor != "" {
		v := *in.Cor
		produto.Cor = &v
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := verificarCategoria(ctx, repoFactory, produto.CategoriaID); err != nil {
			return err
		}
		if err := verificarUsuario(ctx, repoFactory, produto.CriadoPor); err != nil {
			return err
		}

		repo := repoFactory.ProdutoRepo()
		duplicado, err := repo.Exists(ctx, critProduto(produto))
		if err != nil {
			return errors.Wrap(err, "failed to check product uniqueness")
		}
		if duplicado {
			return domainerrors.NewDadosConflitantes("produto_existente")
		}

		return repo.Create(ctx, produto)
	})
	if err != nil {
		return nil, err
	}

	srv.evict()
	srv.logger.Debug("product created", slog.Int64("id", produto.ID))

	return produto, nil
}

// Get retrieves one product by ID.
func (srv *produtoService) Get(ctx context.Context, id int64) (*entity.Produto, error) {
	var produto *entity.Produto

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProdutoRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to find product")
		}
		produto = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return produto, nil
}

// List retrieves every product matching the criteria, read-through cached.
func (srv *produtoService) List(ctx context.Context, crit *match.Criteria) ([]entity.Produto, error) {
	if v, ok := srv.store.Get(cache.Produtos, listKey(crit)); ok {
		return v.([]entity.Produto), nil
	}

	var produtos []entity.Produto

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProdutoRepo().FindAll(ctx, crit)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		produtos = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.store.Put(cache.Produtos, listKey(crit), produtos)

	return produtos, nil
}

// ListPaged retrieves one page of matching products plus the total count.
func (srv *produtoService) ListPaged(ctx context.Context, crit *match.Criteria, page, size int) ([]entity.Produto, int64, error) {
	key := pageKey(crit, page, size)
	if v, ok := srv.store.Get(cache.Produtos, key); ok {
		p := v.(pagina[entity.Produto])

		return p.itens, p.total, nil
	}

	var (
		produtos []entity.Produto
		total    int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.ProdutoRepo().FindAllPaged(ctx, crit, page, size)
		if err != nil {
			return errors.Wrap(err, "failed to list product page")
		}
		produtos, total = found, count

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	srv.store.Put(cache.Produtos, key, pagina[entity.Produto]{itens: produtos, total: total})

	return produtos, total, nil
}

// Patch applies a partial update onto a stored product.
func (srv *produtoService) Patch(ctx context.Context, id int64, in *usecase.ProdutoInput) (*entity.Produto, error) {
	return srv.update(ctx, id, in, true)
}

// Replace rewrites a stored product. CriadoPor is immutable.
func (srv *produtoService) Replace(ctx context.Context, id int64, in *usecase.ProdutoInput) (*entity.Produto, error) {
	return srv.update(ctx, id, in, false)
}

func (srv *produtoService) update(ctx context.Context, id int64, in *usecase.ProdutoInput, partial bool) (*entity.Produto, error) {
	if err := validation.NoID(in.ID); err != nil {
		return nil, err
	}
	if err := validation.Run(partial, in.Rules()); err != nil {
		return nil, err
	}

	var produto *entity.Produto

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ProdutoRepo()

		current, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to find product")
		}

		merged := usecase.MergeProduto(*current, in)

		if merged.CategoriaID != current.CategoriaID {
			if err := verificarCategoria(ctx, repoFactory, merged.CategoriaID); err != nil {
				return err
			}
		}

		if identidadeProdutoMudou(current, &merged) {
			if err := verificarProdutoLivre(ctx, repo, &merged, id); err != nil {
				return err
			}
		}

		if err := repo.Update(ctx, &merged); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		produto = &merged

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.evict()

	return produto, nil
}

// Delete removes a stored product.
func (srv *produtoService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProdutoRepo().DeleteByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrNaoEncontrado
			}

			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.evict()
	srv.logger.Debug("product deleted", slog.Int64("id", id))

	return nil
}

// Levantamento walks the product's stock entries and their suggestions,
// reducing them into summary price statistics. The result and the
// product/market association are both read-through cached.
func (srv *produtoService) Levantamento(ctx context.Context, produtoID int64) (*entity.LevantamentoPrecos, error) {
	if v, ok := srv.store.Get(cache.MercadoSugestoes, produtoKey(produtoID)); ok {
		return v.(*entity.LevantamentoPrecos), nil
	}

	var resultado entity.LevantamentoPrecos

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ok, err := repoFactory.ProdutoRepo().ExistsByID(ctx, produtoID)
		if err != nil {
			return errors.Wrap(err, "failed to check product")
		}
		if !ok {
			return domainerrors.ErrNaoEncontrado
		}

		estoques, err := srv.estoquesDoProduto(ctx, repoFactory, produtoID)
		if err != nil {
			return err
		}

		var agg entity.Levantamento
		for _, estoque := range estoques {
			sugestoes, err := repoFactory.SugestaoRepo().FindByEstoqueID(ctx, estoque.ID)
			if err != nil {
				return errors.Wrap(err, "failed to load suggestions")
			}
			for _, sugestao := range sugestoes {
				agg.Observar(sugestao.PrecoCentavos, sugestao.CriadoEm)
			}
		}
		resultado = agg.Resultado()

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.store.Put(cache.MercadoSugestoes, produtoKey(produtoID), &resultado)

	return &resultado, nil
}

// estoquesDoProduto loads the product's stock entries through the
// product/market association cache.
func (srv *produtoService) estoquesDoProduto(ctx context.Context, repoFactory repository.RepositoryFactory, produtoID int64) ([]entity.Estoque, error) {
	if v, ok := srv.store.Get(cache.ProdutoMercado, produtoKey(produtoID)); ok {
		return v.([]entity.Estoque), nil
	}

	estoques, err := repoFactory.EstoqueRepo().FindByProdutoID(ctx, produtoID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load stock entries")
	}

	srv.store.Put(cache.ProdutoMercado, produtoKey(produtoID), estoques)

	return estoques, nil
}

func (srv *produtoService) evict() {
	srv.store.Evict(cache.Produtos)
	srv.store.Evict(cache.ProdutoMercado)
	srv.store.Evict(cache.MercadoSugestoes)
}

// critProduto builds the duplicate criteria over the product's identifying
// characteristics. The size matches by containment ("500" collides with
// "500ml"); an absent color collides with any color.
func critProduto(p *entity.Produto) *match.Criteria {
	crit := match.New().
		FoldEq("nome", p.Nome).
		FoldEq("marca", p.Marca).
		FoldContains("tamanho", p.Tamanho)
	if p.Cor != nil {
		crit.FoldEq("cor", *p.Cor)
	}

	return crit
}

// verificarProdutoLivre rejects identifying characteristics already held by
// another product. A clear of cor (or a narrowed tamanho) still collides
// with the product's own row, so the row under update is excluded by id.
func verificarProdutoLivre(ctx context.Context, repo repository.ProdutoRepository, merged *entity.Produto, selfID int64) error {
	iguais, err := repo.FindAll(ctx, critProduto(merged))
	if err != nil {
		return errors.Wrap(err, "failed to check product uniqueness")
	}
	for i := range iguais {
		if iguais[i].ID != selfID {
			return domainerrors.NewDadosConflitantes("produto_existente")
		}
	}

	return nil
}

// identidadeProdutoMudou reports whether any identifying characteristic
// differs between the stored product and the merged one.
func identidadeProdutoMudou(current, merged *entity.Produto) bool {
	if !strings.EqualFold(merged.Nome, current.Nome) ||
		!strings.EqualFold(merged.Marca, current.Marca) ||
		!strings.EqualFold(merged.Tamanho, current.Tamanho) {
		return true
	}

	switch {
	case current.Cor == nil && merged.Cor == nil:
		return false
	case current.Cor == nil || merged.Cor == nil:
		return true
	default:
		return !strings.EqualFold(*merged.Cor, *current.Cor)
	}
}

// verificarCategoria resolves a category reference against live rows.
func verificarCategoria(ctx context.Context, repoFactory repository.RepositoryFactory, categoriaID int64) error {
	ok, err := repoFactory.CategoriaRepo().ExistsByID(ctx, categoriaID)
	if err != nil {
		return errors.Wrap(err, "failed to check category reference")
	}
	if !ok {
		return domainerrors.ErrNaoEncontrado.WrapMessage("referenced category does not exist")
	}

	return nil
}
