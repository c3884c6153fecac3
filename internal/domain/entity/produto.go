package entity

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var tituloPtBR = cases.Title(language.BrazilianPortuguese)

// Produto is a catalog item that can be tracked at any number of markets
// through Estoque entries.
type Produto struct {
	ID          int64
	Nome        string  // 10-150 characters, title-cased on creation.
	Marca       string  // Brand, 2-50 characters.
	Tamanho     string  // Package size, up to 20 characters (e.g. "500ml").
	Cor         *string // Optional color, 3-20 characters. Nil means no value.
	CriadoPor   int64   // ID of the registering user. Immutable after creation.
	CategoriaID int64
}

// TitleCaseNome normalizes a product name to title case the way it is
// stored on creation.
func TitleCaseNome(nome string) string {
	return tituloPtBR.String(nome)
}
