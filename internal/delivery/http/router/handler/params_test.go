package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "precario/internal/domain/errors"
	"precario/internal/domain/match"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/produtos?"+rawQuery, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestPathID(t *testing.T) {
	e := echo.New()

	tests := []struct {
		param string
		want  int64
		ok    bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			c := e.NewContext(req, httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			id, err := pathID(c)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, id)
			} else {
				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "nao_encontrado", appErr.Reason())
			}
		})
	}
}

func TestPaging_AbsentParametersMeanUnpaged(t *testing.T) {
	c := newQueryContext(t, "nome=arroz")

	_, _, paged, err := paging(c)

	require.NoError(t, err)
	assert.False(t, paged)
}

func TestPaging_EitherParameterSwitchesToPaged(t *testing.T) {
	c := newQueryContext(t, "page=2")
	page, size, paged, err := paging(c)
	require.NoError(t, err)
	assert.True(t, paged)
	assert.Equal(t, 2, page)
	assert.Equal(t, defaultSize, size)

	c = newQueryContext(t, "size=5")
	page, size, paged, err = paging(c)
	require.NoError(t, err)
	assert.True(t, paged)
	assert.Equal(t, defaultPage, page)
	assert.Equal(t, 5, size)
}

func TestPaging_InvalidValues(t *testing.T) {
	for _, raw := range []string{"page=abc", "page=-1", "size=0", "size=x"} {
		t.Run(raw, func(t *testing.T) {
			c := newQueryContext(t, raw)

			_, _, _, err := paging(c)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "pagina_invalida", appErr.Reason())
		})
	}
}

func TestCritFromQuery(t *testing.T) {
	c := newQueryContext(t, "nome=arroz&categoria_id=2&ignorado=x")

	crit, err := critFromQuery(c, []string{"nome"}, []string{"categoria_id"})
	require.NoError(t, err)

	conds := crit.Conds()
	require.Len(t, conds, 2)
	assert.Equal(t, "nome", conds[0].Field)
	assert.Equal(t, match.OpFoldContains, conds[0].Op)
	assert.Equal(t, "arroz", conds[0].Value)
	assert.Equal(t, "categoria_id", conds[1].Field)
	assert.Equal(t, match.OpEq, conds[1].Op)
	assert.Equal(t, int64(2), conds[1].Value)
}

func TestCritFromQuery_MalformedNumericFilter(t *testing.T) {
	c := newQueryContext(t, "categoria_id=dois")

	_, err := critFromQuery(c, nil, []string{"categoria_id"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "categoria_id_invalido", appErr.Reason())
}

func TestLinks_CarriesFilterParameters(t *testing.T) {
	c := newQueryContext(t, "nome=arroz&page=1&size=10")

	b := links(c, "/produtos")

	assert.Equal(t, "/produtos", b.Path)
	assert.Equal(t, "arroz", b.Query.Get("nome"))
}
