package usecase

import (
	"precario/internal/domain/entity"
	"precario/internal/domain/patch"
)

// The Merge* functions implement the PATCH semantics as pure functions:
// absent input fields keep the stored value, supplied fields replace it,
// and the clearable fields (Complemento, Cor) treat an explicit empty
// string as "clear". Ownership (CriadoPor) is immutable post-creation and
// is never merged. Identifiers are never merged either; a replace keeps
// the id taken from the URL.

// MergeCategoria applies a category patch onto the stored entity.
func MergeCategoria(current entity.Categoria, in *CategoriaInput) entity.Categoria {
	patch.Field(&current.Nome, in.Nome)
	patch.Field(&current.Descricao, in.Descricao)

	return current
}

// MergeRamo applies a branch patch onto the stored entity.
func MergeRamo(current entity.Ramo, in *RamoInput) entity.Ramo {
	patch.Field(&current.Nome, in.Nome)
	patch.Field(&current.Descricao, in.Descricao)

	return current
}

// MergeMercado applies a market patch onto the stored entity.
func MergeMercado(current entity.Mercado, in *MercadoInput) entity.Mercado {
	patch.Field(&current.Nome, in.Nome)
	patch.Field(&current.Logradouro, in.Logradouro)
	patch.Field(&current.Numero, in.Numero)
	patch.Clearable(&current.Complemento, in.Complemento)
	patch.Field(&current.Bairro, in.Bairro)
	patch.Field(&current.Cidade, in.Cidade)
	patch.Field(&current.UF, in.UF)
	patch.Field(&current.CEP, in.CEP)
	patch.Field(&current.RamoID, in.RamoID)

	return current
}

// MergeProduto applies a product patch onto the stored entity.
func MergeProduto(current entity.Produto, in *ProdutoInput) entity.Produto {
	patch.Field(&current.Nome, in.Nome)
	patch.Field(&current.Marca, in.Marca)
	patch.Field(&current.Tamanho, in.Tamanho)
	patch.Clearable(&current.Cor, in.Cor)
	patch.Field(&current.CategoriaID, in.CategoriaID)

	return current
}

// MergeEstoque applies a stock-entry patch onto the stored entity.
func MergeEstoque(current entity.Estoque, in *EstoqueInput) entity.Estoque {
	patch.Field(&current.ProdutoID, in.ProdutoID)
	patch.Field(&current.MercadoID, in.MercadoID)

	return current
}

// MergeSugestao applies a suggestion patch onto the stored entity. The
// submitted decimal price is converted to integer centavos before the
// merge; CriadoPor keeps the stored value even when supplied.
func MergeSugestao(current entity.Sugestao, in *SugestaoInput) entity.Sugestao {
	if in.Preco != nil {
		current.PrecoCentavos = entity.CentavosDePreco(*in.Preco)
	}
	patch.Field(&current.EstoqueID, in.EstoqueID)

	return current
}

// MergeUsuario applies a user patch onto the stored entity. The password,
// when supplied, must already be hashed by the caller.
func MergeUsuario(current entity.Usuario, in *UsuarioInput, senhaHash *string) entity.Usuario {
	patch.Field(&current.Nome, in.Nome)
	patch.Field(&current.Email, in.Email)
	patch.Field(&current.SenhaHash, senhaHash)
	patch.Field(&current.Logradouro, in.Logradouro)
	patch.Field(&current.Numero, in.Numero)
	patch.Clearable(&current.Complemento, in.Complemento)
	patch.Field(&current.Bairro, in.Bairro)
	patch.Field(&current.Cidade, in.Cidade)
	patch.Field(&current.UF, in.UF)
	patch.Field(&current.CEP, in.CEP)

	return current
}
