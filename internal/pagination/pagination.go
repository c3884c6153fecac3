// Package pagination computes offset-based page metadata and the
// hypermedia navigation links for filtered collections.
package pagination

import (
	"net/url"
	"strconv"
)

// Links holds the navigation references of a paged collection. First and
// Last are present whenever the result set is non-empty; Previous and Next
// only when a page exists in that direction.
type Links struct {
	First    string `json:"first,omitempty"`
	Previous string `json:"previous,omitempty"`
	Next     string `json:"next,omitempty"`
	Last     string `json:"last,omitempty"`
}

// SelfLink is the per-resource hypermedia reference carried by list items
// and single resources.
type SelfLink struct {
	Self string `json:"self"`
}

// LinkBuilder constructs resolvable URLs for a route path plus query
// parameters. It is deliberately decoupled from any dispatch mechanism: a
// link is just the path with the page/size parameters substituted.
type LinkBuilder struct {
	Path  string
	Query url.Values
}

// PageURL renders the URL of a given page index.
func (b LinkBuilder) PageURL(page, size int) string {
	q := url.Values{}
	for k, vs := range b.Query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	return b.Path + "?" + q.Encode()
}

// ResourceURL renders the self URL of a single resource under the
// collection path.
func (b LinkBuilder) ResourceURL(id int64) string {
	return b.Path + "/" + strconv.FormatInt(id, 10)
}

// Page is the envelope returned by paged list operations.
type Page[T any] struct {
	Items         []T    `json:"items"`
	TotalPages    int    `json:"totalPages"`
	TotalElements int64  `json:"totalElements"`
	CurrentPage   int    `json:"currentPage"`
	PageSize      int    `json:"pageSize"`
	Count         int    `json:"count"`
	Links         *Links `json:"_links,omitempty"`
}

// Paginate assembles the page envelope for items already sliced to the
// requested page, given the total number of matching elements.
//
// Count is a display counter, not the literal item count of the page:
// size*(page+1)-(size-1), i.e. the first item ordinal of pages 0..page under
// full page size. The formula is preserved as-is for client compatibility.
//
// A page index beyond the last page is not an error: it yields an empty
// item list with the same metadata shape.
func Paginate[T any](items []T, total int64, page, size int, links LinkBuilder) Page[T] {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	p := Page[T]{
		Items:         items,
		TotalPages:    totalPages,
		TotalElements: total,
		CurrentPage:   page,
		PageSize:      size,
		Count:         size*(page+1) - (size - 1),
	}
	if p.Items == nil {
		p.Items = []T{}
	}

	if total > 0 {
		nav := &Links{
			First: links.PageURL(0, size),
			Last:  links.PageURL(totalPages-1, size),
		}
		if page > 0 {
			nav.Previous = links.PageURL(page-1, size)
		}
		if page < totalPages-1 {
			nav.Next = links.PageURL(page+1, size)
		}
		p.Links = nav
	}

	return p
}
