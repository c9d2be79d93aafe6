package query

import (
	"cmp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Field is one named, readable attribute of T. Fields are declared per
// resource with the typed constructors below; there is no reflection involved.
type Field[T any] struct {
	Name    string
	value   func(*T) any
	text    func(*T) string
	compare func(a, b *T) int
}

// Value reads the field from item.
func (f Field[T]) Value(item *T) any {
	return f.value(item)
}

// Searchable reports whether the field holds text and can take part in a
// free-text search.
func (f Field[T]) Searchable() bool {
	return f.text != nil
}

func String[T any](name string, get func(*T) string) Field[T] {
	return Field[T]{
		Name:  name,
		value: func(item *T) any { return get(item) },
		text:  get,
		compare: func(a, b *T) int {
			return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
		},
	}
}

// Enum registers a string-backed enumeration. It is searchable like a string.
func Enum[T any, E ~string](name string, get func(*T) E) Field[T] {
	return String(name, func(item *T) string { return string(get(item)) })
}

func Int[T any](name string, get func(*T) int64) Field[T] {
	return Field[T]{
		Name:    name,
		value:   func(item *T) any { return get(item) },
		compare: func(a, b *T) int { return cmp.Compare(get(a), get(b)) },
	}
}

// OptionalInt registers a nullable identifier. Absent values read as nil and
// sort before present ones.
func OptionalInt[T any](name string, get func(*T) *int64) Field[T] {
	return Field[T]{
		Name: name,
		value: func(item *T) any {
			if v := get(item); v != nil {
				return *v
			}
			return nil
		},
		compare: func(a, b *T) int {
			va, vb := get(a), get(b)
			switch {
			case va == nil && vb == nil:
				return 0
			case va == nil:
				return -1
			case vb == nil:
				return 1
			}
			return cmp.Compare(*va, *vb)
		},
	}
}

func Decimal[T any](name string, get func(*T) decimal.Decimal) Field[T] {
	return Field[T]{
		Name:    name,
		value:   func(item *T) any { return get(item) },
		compare: func(a, b *T) int { return get(a).Cmp(get(b)) },
	}
}

func Time[T any](name string, get func(*T) time.Time) Field[T] {
	return Field[T]{
		Name:    name,
		value:   func(item *T) any { return get(item) },
		compare: func(a, b *T) int { return get(a).Compare(get(b)) },
	}
}
