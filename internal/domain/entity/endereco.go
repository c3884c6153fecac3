package entity

import "regexp"

// CEPPattern is the accepted shape for Brazilian postal codes.
var CEPPattern = regexp.MustCompile(`^\d{5}-\d{3}$`)

// Endereco is the postal address value object shared by Mercado and Usuario.
type Endereco struct {
	Logradouro  string  // Street, 5-120 characters.
	Numero      int     // Street number, 1-999999.
	Complemento *string // Optional, up to 20 characters. Nil means no value.
	Bairro      string  // Neighborhood, 5-50 characters.
	Cidade      string  // City, 3-30 characters.
	UF          string  // Two-letter federative unit code, see UFValida.
	CEP         string  // Postal code in the NNNNN-NNN format.
}

// ufs holds the 27 Brazilian federative unit codes.
var ufs = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// UFValida reports whether code is one of the 27 federative unit codes.
func UFValida(code string) bool {
	_, ok := ufs[code]

	return ok
}
