package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"precario/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// passwordSymbols is the fixed set of symbols accepted by the password policy.
const passwordSymbols = "!@#$%^&*()-_=+[]{};:,.<>?/|~"

// Texto builds a required string rule with inclusive rune-length bounds.
func Texto(reason string, v *string, min, max int) Rule {
	return Rule{
		Reason:  reason,
		Present: func() bool { return v != nil },
		Valid:   func() bool { return lengthBetween(*v, min, max) },
	}
}

// TextoOpcional builds an optional string rule. An explicitly supplied
// empty string is acceptable: it is the "clear this field" sentinel.
func TextoOpcional(reason string, v *string, min, max int) Rule {
	return Rule{
		Reason:   reason,
		Optional: true,
		Present:  func() bool { return v != nil },
		Valid:    func() bool { return *v == "" || lengthBetween(*v, min, max) },
	}
}

// Numero builds a required integer rule with inclusive bounds.
func Numero(reason string, v *int, min, max int) Rule {
	return Rule{
		Reason:  reason,
		Present: func() bool { return v != nil },
		Valid:   func() bool { return *v >= min && *v <= max },
	}
}

// Referencia builds a required foreign-key rule; ids must be positive.
// Whether the referenced row is live is checked separately against the store.
func Referencia(reason string, v *int64) Rule {
	return Rule{
		Reason:  reason,
		Present: func() bool { return v != nil },
		Valid:   func() bool { return *v > 0 },
	}
}

// CEP builds the postal-code rule (NNNNN-NNN).
func CEP(reason string, v *string) Rule {
	return Rule{
		Reason:  reason,
		Present: func() bool { return v != nil },
		Valid:   func() bool { return entity.CEPPattern.MatchString(*v) },
	}
}

// UF builds the federative-unit rule against the fixed 27-entry enumeration.
func UF(reason string, v *string) Rule {
	return Rule{
		Reason:  reason,
		Present: func() bool { return v != nil },
		Valid:   func() bool { return entity.UFValida(*v) },
	}
}

// Email builds the e-mail shape rule: 7-255 characters containing both "@"
// and "." with no whitespace.
func Email(reason string, v *string) Rule {
	return Rule{
		Reason:  reason,
		Present: func() bool { return v != nil },
		Valid: func() bool {
			return lengthBetween(*v, 7, 255) &&
				strings.Contains(*v, "@") &&
				strings.Contains(*v, ".") &&
				!strings.ContainsFunc(*v, unicode.IsSpace)
		},
	}
}

// Senha builds the password policy rule: overall length 8-255 and a
// composed pattern requiring at least one digit, one lowercase, one
// uppercase and one symbol from the fixed set, with no whitespace and
// pattern length 8-20.
func Senha(reason string, v *string) Rule {
	return Rule{
		Reason:  reason,
		Present: func() bool { return v != nil },
		Valid:   func() bool { return lengthBetween(*v, 8, 255) && senhaForte(*v) },
	}
}

// Preco builds the non-negative monetary amount rule.
func Preco(reason string, v *decimal.Decimal) Rule {
	return Rule{
		Reason:  reason,
		Present: func() bool { return v != nil },
		Valid:   func() bool { return !v.IsNegative() },
	}
}

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)

	return n >= min && n <= max
}

func senhaForte(s string) bool {
	if !lengthBetween(s, 8, 20) {
		return false
	}

	var digit, lower, upper, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}

	return digit && lower && upper && symbol
}
