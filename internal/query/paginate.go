package query

import (
	"math"
	"slices"
	"strings"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a 1-based paging window.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps the number to at least 1 and the size into [1, MaxPageSize],
// substituting DefaultPageSize for sizes below 1.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset is the index of the page's first item. It saturates at math.MaxInt
// for page numbers whose offset does not fit in an int.
func (p Page) Offset() int {
	if p.Number < 1 || p.Size < 1 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

type orderKey[T any] struct {
	field Field[T]
	desc  bool
}

// parseOrder reads "<field> [asc|desc]" keys separated by commas. Direction
// defaults to ascending; keys naming unknown fields are skipped.
func parseOrder[T any](c *Catalog[T], orderBy string) []orderKey[T] {
	keys := make([]orderKey[T], 0)
	for _, token := range strings.Split(orderBy, ",") {
		parts := strings.Fields(token)
		if len(parts) == 0 {
			continue
		}
		f, ok := c.Field(parts[0])
		if !ok {
			continue
		}
		desc := len(parts) > 1 && strings.EqualFold(parts[1], "desc")
		keys = append(keys, orderKey[T]{field: f, desc: desc})
	}
	return keys
}

// Paginate orders a copy of items by orderBy (natural order when empty) and
// returns the page window. items is never modified.
func Paginate[T any](c *Catalog[T], items []T, orderBy string, page Page) []T {
	ordered := slices.Clone(items)

	if keys := parseOrder(c, orderBy); len(keys) > 0 {
		slices.SortStableFunc(ordered, func(a, b T) int {
			for _, k := range keys {
				r := k.field.compare(&a, &b)
				if k.desc {
					r = -r
				}
				if r != 0 {
					return r
				}
			}
			return 0
		})
	}

	start := min(page.Offset(), len(ordered))
	end := start + min(max(page.Size, 0), len(ordered)-start)
	return ordered[start:end]
}
