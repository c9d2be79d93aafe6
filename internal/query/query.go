// Package query turns loosely-typed list requests into filtered, ordered,
// windowed and shaped results over an in-memory resource collection.
//
// A resource declares a Catalog of typed field accessors once. Requests name
// fields and order keys as free text; the catalog keeps the tokens it
// recognises and silently drops the rest.
package query

import (
	"context"
)

// Params carries the paging and shaping part of a list request.
type Params struct {
	PageNumber int    `json:"pageNumber"`
	PageSize   int    `json:"pageSize"`
	Fields     string `json:"fields,omitempty"`
	OrderBy    string `json:"orderBy,omitempty"`
}

type SearchTerm struct {
	Value string `json:"value"`
}

// TableParams is the grid-style request: one free-text term instead of per
// field filters, plus the client's draw counter which is echoed back.
type TableParams struct {
	Draw       int        `json:"draw"`
	PageNumber int        `json:"pageNumber"`
	PageSize   int        `json:"pageSize"`
	Fields     string     `json:"fields,omitempty"`
	Search     SearchTerm `json:"search"`
}

// Spec is a fully resolved list query for one resource kind.
type Spec[T any] struct {
	Filter     Predicate[T]
	Fields     string
	OrderBy    string
	PageNumber int
	PageSize   int
}

type RecordsCount struct {
	Total    int64 `json:"recordsTotal"`
	Filtered int64 `json:"recordsFiltered"`
}

// Execute filters items, counts before and after filtering, orders and windows
// the filtered set and shapes the page. A done context is reported as its
// error, unchanged.
func Execute[T any](ctx context.Context, c *Catalog[T], items []T, spec Spec[T]) ([]Record, RecordsCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, RecordsCount{}, err
	}

	filtered := Apply(items, spec.Filter)
	count := RecordsCount{
		Total:    int64(len(items)),
		Filtered: int64(len(filtered)),
	}

	page := Paginate(c, filtered, spec.OrderBy, NewPage(spec.PageNumber, spec.PageSize))
	return Shape(c, page, spec.Fields), count, nil
}
