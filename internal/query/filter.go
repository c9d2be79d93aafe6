package query

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Predicate tests a single record. A nil Predicate places no constraint.
type Predicate[T any] func(*T) bool

// Match reports whether item satisfies p.
func (p Predicate[T]) Match(item *T) bool {
	return p == nil || p(item)
}

// And requires every non-nil predicate to hold. With nothing to combine it
// returns nil.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	active := compact(preds)
	if len(active) == 0 {
		return nil
	}
	return func(item *T) bool {
		for _, p := range active {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// Equal is an exact match for identifier-like values. An empty value places no
// constraint.
func Equal[T any](get func(*T) string, value string) Predicate[T] {
	if value == "" {
		return nil
	}
	return func(item *T) bool {
		return get(item) == value
	}
}

// Contains is a case-insensitive substring match.
func Contains[T any](get func(*T) string, term string) Predicate[T] {
	if term == "" {
		return nil
	}
	needle := strings.ToLower(term)
	return func(item *T) bool {
		return strings.Contains(strings.ToLower(get(item)), needle)
	}
}

func EnumEqual[T any, E comparable](get func(*T) E, value *E) Predicate[T] {
	if value == nil {
		return nil
	}
	want := *value
	return func(item *T) bool {
		return get(item) == want
	}
}

// DecimalRange is an inclusive range; either bound may be absent.
func DecimalRange[T any](get func(*T) decimal.Decimal, lower, upper *decimal.Decimal) Predicate[T] {
	if lower == nil && upper == nil {
		return nil
	}
	return func(item *T) bool {
		v := get(item)
		if lower != nil && v.LessThan(*lower) {
			return false
		}
		if upper != nil && v.GreaterThan(*upper) {
			return false
		}
		return true
	}
}

// DateRange is an inclusive range; either bound may be absent.
func DateRange[T any](get func(*T) time.Time, from, to *time.Time) Predicate[T] {
	if from == nil && to == nil {
		return nil
	}
	return func(item *T) bool {
		v := get(item)
		if from != nil && v.Before(*from) {
			return false
		}
		if to != nil && v.After(*to) {
			return false
		}
		return true
	}
}

// Search matches term as a case-insensitive substring of any of the named text
// fields. Names that are unknown or not text are ignored; with none left it
// places no constraint. It is the free-text counterpart of And and the two are
// never mixed in one request.
func Search[T any](c *Catalog[T], whitelist []string, term string) Predicate[T] {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	alternatives := make([]Predicate[T], 0, len(whitelist))
	for _, name := range whitelist {
		f, ok := c.Field(name)
		if !ok || !f.Searchable() {
			continue
		}
		alternatives = append(alternatives, Contains(f.text, term))
	}
	if len(alternatives) == 0 {
		return nil
	}

	return func(item *T) bool {
		for _, p := range alternatives {
			if p(item) {
				return true
			}
		}
		return false
	}
}

// Apply returns the items matching p in a new slice.
func Apply[T any](items []T, p Predicate[T]) []T {
	matched := make([]T, 0, len(items))
	for i := range items {
		if p.Match(&items[i]) {
			matched = append(matched, items[i])
		}
	}
	return matched
}

func compact[T any](preds []Predicate[T]) []Predicate[T] {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	return active
}
