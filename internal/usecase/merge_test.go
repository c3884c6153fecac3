package usecase

import (
	"testing"

	"precario/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func i64Ptr(n int64) *int64   { return &n }

func TestMergeCategoria_EmptyPatchIsIdentity(t *testing.T) {
	current := entity.Categoria{ID: 1, Nome: "Bebidas", Descricao: "Sucos, refrigerantes e afins"}

	merged := MergeCategoria(current, &CategoriaInput{})

	assert.Equal(t, current, merged)
}

func TestMergeCategoria_SuppliedFieldsReplace(t *testing.T) {
	current := entity.Categoria{ID: 1, Nome: "Bebidas", Descricao: "antiga"}

	merged := MergeCategoria(current, &CategoriaInput{Nome: strPtr("Limpeza")})

	assert.Equal(t, "Limpeza", merged.Nome)
	assert.Equal(t, "antiga", merged.Descricao)
	assert.Equal(t, int64(1), merged.ID)
}

func TestMergeMercado_ClearsComplementoOnEmptyString(t *testing.T) {
	complemento := "loja 2"
	current := entity.Mercado{
		ID:        5,
		CriadoPor: 9,
		RamoID:    2,
		Nome:      "Mercado Central",
		Endereco: entity.Endereco{
			Logradouro:  "Rua das Flores",
			Numero:      100,
			Complemento: &complemento,
			Bairro:      "Centro Velho",
			Cidade:      "Campinas",
			UF:          "SP",
			CEP:         "13010-000",
		},
	}

	merged := MergeMercado(current, &MercadoInput{Complemento: strPtr("")})

	assert.Nil(t, merged.Complemento)
	assert.Equal(t, current.Nome, merged.Nome)
}

func TestMergeMercado_NilComplementoKeepsStoredValue(t *testing.T) {
	complemento := "loja 2"
	current := entity.Mercado{Endereco: entity.Endereco{Complemento: &complemento}}

	merged := MergeMercado(current, &MercadoInput{Nome: strPtr("Outro Nome")})

	require.NotNil(t, merged.Complemento)
	assert.Equal(t, "loja 2", *merged.Complemento)
}

func TestMergeMercado_CriadoPorIsNeverMerged(t *testing.T) {
	current := entity.Mercado{ID: 5, CriadoPor: 9}

	merged := MergeMercado(current, &MercadoInput{CriadoPor: i64Ptr(77), Numero: intPtr(200)})

	assert.Equal(t, int64(9), merged.CriadoPor)
	assert.Equal(t, 200, merged.Numero)
}

func TestMergeProduto_ClearsCorOnEmptyString(t *testing.T) {
	cor := "vermelho"
	current := entity.Produto{ID: 3, Nome: "Caneta Esferográfica", Cor: &cor, CriadoPor: 4}

	merged := MergeProduto(current, &ProdutoInput{Cor: strPtr("")})

	assert.Nil(t, merged.Cor)
}

func TestMergeProduto_CriadoPorIsNeverMerged(t *testing.T) {
	current := entity.Produto{ID: 3, CriadoPor: 4}

	merged := MergeProduto(current, &ProdutoInput{CriadoPor: i64Ptr(99), Marca: strPtr("Genérica")})

	assert.Equal(t, int64(4), merged.CriadoPor)
	assert.Equal(t, "Genérica", merged.Marca)
}

func TestMergeEstoque(t *testing.T) {
	current := entity.Estoque{ID: 8, ProdutoID: 1, MercadoID: 2, CriadoPor: 3}

	merged := MergeEstoque(current, &EstoqueInput{MercadoID: i64Ptr(5), CriadoPor: i64Ptr(42)})

	assert.Equal(t, int64(1), merged.ProdutoID)
	assert.Equal(t, int64(5), merged.MercadoID)
	assert.Equal(t, int64(3), merged.CriadoPor, "ownership stays with the creator")
}

func TestMergeSugestao_ConvertsPrecoToCentavos(t *testing.T) {
	current := entity.Sugestao{ID: 2, PrecoCentavos: 500, EstoqueID: 1, CriadoPor: 3}
	preco := decimal.NewFromFloat(12.34)

	merged := MergeSugestao(current, &SugestaoInput{Preco: &preco})

	assert.Equal(t, int64(1234), merged.PrecoCentavos)
	assert.Equal(t, int64(3), merged.CriadoPor)
}

func TestMergeSugestao_NilPrecoKeepsCentavos(t *testing.T) {
	current := entity.Sugestao{PrecoCentavos: 500}

	merged := MergeSugestao(current, &SugestaoInput{EstoqueID: i64Ptr(7)})

	assert.Equal(t, int64(500), merged.PrecoCentavos)
	assert.Equal(t, int64(7), merged.EstoqueID)
}

func TestMergeUsuario_PasswordComesOnlyFromHashedArgument(t *testing.T) {
	current := entity.Usuario{ID: 1, Nome: "Ana Souza", SenhaHash: "hash-antigo", Status: entity.StatusAtivo}

	sem := MergeUsuario(current, &UsuarioInput{Senha: strPtr("NovaSenha1!")}, nil)
	assert.Equal(t, "hash-antigo", sem.SenhaHash, "plaintext never reaches the entity")

	novo := "hash-novo"
	com := MergeUsuario(current, &UsuarioInput{}, &novo)
	assert.Equal(t, "hash-novo", com.SenhaHash)
}

func TestMergeUsuario_EmptyPatchIsIdentity(t *testing.T) {
	current := entity.Usuario{
		ID:    1,
		Nome:  "Ana Souza",
		Email: "ana@exemplo.com",
		Endereco: entity.Endereco{
			Logradouro: "Avenida Paulista",
			Numero:     1000,
			Bairro:     "Bela Vista",
			Cidade:     "São Paulo",
			UF:         "SP",
			CEP:        "01310-100",
		},
		Status: entity.StatusAtivo,
	}

	merged := MergeUsuario(current, &UsuarioInput{}, nil)

	assert.Equal(t, current, merged)
}

func TestMergeIsIdempotent(t *testing.T) {
	current := entity.Categoria{ID: 1, Nome: "Bebidas", Descricao: "original"}
	in := &CategoriaInput{Descricao: strPtr("nova descrição")}

	once := MergeCategoria(current, in)
	twice := MergeCategoria(once, in)

	assert.Equal(t, once, twice)
}
