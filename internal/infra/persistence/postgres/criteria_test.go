package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain", "arroz", "arroz"},
		{"percent stays literal", "50%", `50\%`},
		{"underscore stays literal", "tipo_1", `tipo\_1`},
		{"backslash escaped first", `c:\dir`, `c:\\dir`},
		{"mixed", `50%_\`, `50\%\_\\`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.value))
		})
	}
}
