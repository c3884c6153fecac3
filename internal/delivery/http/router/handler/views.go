package handler

import (
	"precario/internal/domain/entity"
	"precario/internal/pagination"
	"precario/internal/usecase"
)

// The view structs are the wire shape of each resource: camelCase fields
// plus the per-resource self link assembled from the collection path.

type categoriaView struct {
	ID        int64                `json:"id"`
	Nome      string               `json:"nome"`
	Descricao string               `json:"descricao"`
	Links     *pagination.SelfLink `json:"_links,omitempty"`
}

func viewCategoria(categoria *entity.Categoria, b pagination.LinkBuilder) categoriaView {
	return categoriaView{
		ID:        categoria.ID,
		Nome:      categoria.Nome,
		Descricao: categoria.Descricao,
		Links:     &pagination.SelfLink{Self: b.ResourceURL(categoria.ID)},
	}
}

type ramoView struct {
	ID        int64                `json:"id"`
	Nome      string               `json:"nome"`
	Descricao string               `json:"descricao"`
	Links     *pagination.SelfLink `json:"_links,omitempty"`
}

func viewRamo(ramo *entity.Ramo, b pagination.LinkBuilder) ramoView {
	return ramoView{
		ID:        ramo.ID,
		Nome:      ramo.Nome,
		Descricao: ramo.Descricao,
		Links:     &pagination.SelfLink{Self: b.ResourceURL(ramo.ID)},
	}
}

type mercadoView struct {
	ID          int64                `json:"id"`
	Nome        string               `json:"nome"`
	Logradouro  string               `json:"logradouro"`
	Numero      int                  `json:"numero"`
	Complemento *string              `json:"complemento,omitempty"`
	Bairro      string               `json:"bairro"`
	Cidade      string               `json:"cidade"`
	UF          string               `json:"uf"`
	CEP         string               `json:"cep"`
	RamoID      int64                `json:"ramoId"`
	CriadoPor   int64                `json:"criadoPor"`
	Links       *pagination.SelfLink `json:"_links,omitempty"`
}

func viewMercado(mercado *entity.Mercado, b pagination.LinkBuilder) mercadoView {
	return mercadoView{
		ID:          mercado.ID,
		Nome:        mercado.Nome,
		Logradouro:  mercado.Logradouro,
		Numero:      mercado.Numero,
		Complemento: mercado.Complemento,
		Bairro:      mercado.Bairro,
		Cidade:      mercado.Cidade,
		UF:          mercado.UF,
		CEP:         mercado.CEP,
		RamoID:      mercado.RamoID,
		CriadoPor:   mercado.CriadoPor,
		Links:       &pagination.SelfLink{Self: b.ResourceURL(mercado.ID)},
	}
}

type produtoView struct {
	ID          int64                `json:"id"`
	Nome        string               `json:"nome"`
	Marca       string               `json:"marca"`
	Tamanho     string               `json:"tamanho"`
	Cor         *string              `json:"cor,omitempty"`
	CategoriaID int64                `json:"categoriaId"`
	CriadoPor   int64                `json:"criadoPor"`
	Links       *pagination.SelfLink `json:"_links,omitempty"`
}

func viewProduto(produto *entity.Produto, b pagination.LinkBuilder) produtoView {
	return produtoView{
		ID:          produto.ID,
		Nome:        produto.Nome,
		Marca:       produto.Marca,
		Tamanho:     produto.Tamanho,
		Cor:         produto.Cor,
		CategoriaID: produto.CategoriaID,
		CriadoPor:   produto.CriadoPor,
		Links:       &pagination.SelfLink{Self: b.ResourceURL(produto.ID)},
	}
}

type estoqueView struct {
	ID        int64                `json:"id"`
	ProdutoID int64                `json:"produtoId"`
	MercadoID int64                `json:"mercadoId"`
	CriadoPor int64                `json:"criadoPor"`
	Links     *pagination.SelfLink `json:"_links,omitempty"`
}

func viewEstoque(estoque *entity.Estoque, b pagination.LinkBuilder) estoqueView {
	return estoqueView{
		ID:        estoque.ID,
		ProdutoID: estoque.ProdutoID,
		MercadoID: estoque.MercadoID,
		CriadoPor: estoque.CriadoPor,
		Links:     &pagination.SelfLink{Self: b.ResourceURL(estoque.ID)},
	}
}

type sugestaoView struct {
	usecase.SugestaoOutput
	Links *pagination.SelfLink `json:"_links,omitempty"`
}

func viewSugestao(out *usecase.SugestaoOutput, b pagination.LinkBuilder) sugestaoView {
	return sugestaoView{
		SugestaoOutput: *out,
		Links:          &pagination.SelfLink{Self: b.ResourceURL(out.ID)},
	}
}

type usuarioView struct {
	usecase.UsuarioOutput
	Links *pagination.SelfLink `json:"_links,omitempty"`
}

func viewUsuario(out *usecase.UsuarioOutput, b pagination.LinkBuilder) usuarioView {
	return usuarioView{
		UsuarioOutput: *out,
		Links:         &pagination.SelfLink{Self: b.ResourceURL(out.ID)},
	}
}
