// Package pagination implements the shared paged-listing contract used by
// every collection endpoint. It is generic over the row type and the
// serialization applied to each item, so handlers never redo offset math.
package pagination

import (
	"context"
	"net/http"
	"strconv"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Params are the requested page coordinates. Invalid values collapse to the
// defaults rather than failing; per_page is capped to bound response size.
type Params struct {
	Page    int
	PerPage int
}

// ParseParams reads page and per_page from the request query string.
func ParseParams(r *http.Request) Params {
	return Params{
		Page:    parsePositive(r.URL.Query().Get("page"), DefaultPage),
		PerPage: parsePositive(r.URL.Query().Get("per_page"), DefaultPerPage),
	}.normalize()
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (p Params) normalize() Params {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

func (p Params) offset() int {
	return (p.Page - 1) * p.PerPage
}

// Meta describes a page's position within the whole collection.
type Meta struct {
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	Page    int   `json:"current_page"`
	PerPage int   `json:"per_page"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// Page is a bounded slice of an ordered collection plus metadata.
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"pagination"`
}

// CountFunc returns the total number of items ignoring paging.
type CountFunc func(ctx context.Context) (int64, error)

// ListFunc returns one page of items in a stable order.
type ListFunc[T any] func(ctx context.Context, limit, offset int) ([]T, error)

// Paginate fetches one page and applies the projection to each item. The
// backing ListFunc must order by a stable key so identical parameters over
// unchanged data always yield identical pages. Out-of-range pages return an
// empty item list with correct metadata, never an error.
func Paginate[T, U any](ctx context.Context, p Params, count CountFunc, list ListFunc[T], project func(T) U) (*Page[U], error) {
	p = p.normalize()

	total, err := count(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := list(ctx, p.PerPage, p.offset())
	if err != nil {
		return nil, err
	}

	items := make([]U, 0, len(rows))
	for _, row := range rows {
		items = append(items, project(row))
	}

	pages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))

	return &Page[U]{
		Items: items,
		Meta: Meta{
			Total:   total,
			Pages:   pages,
			Page:    p.Page,
			PerPage: p.PerPage,
			HasNext: p.Page < pages,
			HasPrev: p.Page > 1,
		},
	}, nil
}
