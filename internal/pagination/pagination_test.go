package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builder() LinkBuilder {
	return LinkBuilder{Path: "/produtos"}
}

func TestPaginate_MiddlePage(t *testing.T) {
	// 23 elements, size 10: pages 0..2.
	items := make([]int, 10)

	p := Paginate(items, 23, 1, 10, builder())

	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(23), p.TotalElements)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 11, p.Count)

	require.NotNil(t, p.Links)
	assert.Equal(t, "/produtos?page=0&size=10", p.Links.First)
	assert.Equal(t, "/produtos?page=0&size=10", p.Links.Previous)
	assert.Equal(t, "/produtos?page=2&size=10", p.Links.Next)
	assert.Equal(t, "/produtos?page=2&size=10", p.Links.Last)
}

func TestPaginate_FirstPageHasNoPrevious(t *testing.T) {
	p := Paginate(make([]int, 10), 23, 0, 10, builder())

	require.NotNil(t, p.Links)
	assert.Empty(t, p.Links.Previous)
	assert.NotEmpty(t, p.Links.Next)
	assert.Equal(t, 1, p.Count)
}

func TestPaginate_LastPageHasNoNext(t *testing.T) {
	p := Paginate(make([]int, 3), 23, 2, 10, builder())

	require.NotNil(t, p.Links)
	assert.NotEmpty(t, p.Links.Previous)
	assert.Empty(t, p.Links.Next)
	assert.Equal(t, 21, p.Count)
}

func TestPaginate_SinglePageHasNeitherDirection(t *testing.T) {
	p := Paginate(make([]int, 4), 4, 0, 10, builder())

	require.NotNil(t, p.Links)
	assert.Empty(t, p.Links.Previous)
	assert.Empty(t, p.Links.Next)
	assert.Equal(t, p.Links.First, p.Links.Last)
}

func TestPaginate_EmptyResultHasNoLinks(t *testing.T) {
	p := Paginate([]int(nil), 0, 0, 10, builder())

	assert.Nil(t, p.Links)
	assert.Equal(t, 0, p.TotalPages)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}

func TestPaginate_PageBeyondLastIsNotAnError(t *testing.T) {
	p := Paginate([]int{}, 23, 9, 10, builder())

	assert.Equal(t, 3, p.TotalPages)
	assert.Empty(t, p.Items)
	require.NotNil(t, p.Links)
	assert.Equal(t, "/produtos?page=2&size=10", p.Links.Last)
}

func TestPaginate_ExactMultipleOfPageSize(t *testing.T) {
	p := Paginate(make([]int, 10), 20, 1, 10, builder())

	assert.Equal(t, 2, p.TotalPages)
	assert.Empty(t, p.Links.Next)
}

func TestPageURL_PreservesFilterParameters(t *testing.T) {
	b := LinkBuilder{
		Path:  "/produtos",
		Query: url.Values{"nome": {"arroz"}},
	}

	u := b.PageURL(2, 5)

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "arroz", q.Get("nome"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "5", q.Get("size"))
}

func TestPageURL_OverridesStalePagingParameters(t *testing.T) {
	b := LinkBuilder{
		Path:  "/produtos",
		Query: url.Values{"page": {"7"}, "size": {"50"}},
	}

	parsed, err := url.Parse(b.PageURL(0, 10))
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "0", q.Get("page"))
	assert.Equal(t, "10", q.Get("size"))
}

func TestResourceURL(t *testing.T) {
	assert.Equal(t, "/produtos/42", builder().ResourceURL(42))
}
