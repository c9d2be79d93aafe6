package query

import (
	"fmt"
	"strings"
)

// Catalog is the registry of fields a resource's output shape may expose, in
// declaration order. It is built once per resource and is read-only afterwards.
type Catalog[T any] struct {
	fields []Field[T]
	byName map[string]int
}

// NewCatalog panics on duplicate names: catalogs are declared at package
// level, so a clash is a programming error.
func NewCatalog[T any](fields ...Field[T]) *Catalog[T] {
	c := &Catalog[T]{
		fields: fields,
		byName: make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		key := strings.ToLower(f.Name)
		if _, exists := c.byName[key]; exists {
			panic(fmt.Sprintf("query: duplicate field %q", f.Name))
		}
		c.byName[key] = i
	}
	return c
}

// CanonicalFields returns every field name in declaration order.
func (c *Catalog[T]) CanonicalFields() []string {
	names := make([]string, len(c.fields))
	for i, f := range c.fields {
		names[i] = f.Name
	}
	return names
}

// Field looks a field up by name, ignoring case.
func (c *Catalog[T]) Field(name string) (Field[T], bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Field[T]{}, false
	}
	return c.fields[i], true
}

// ValidateFields keeps the comma-separated candidate tokens whose field part
// names a catalog field, in the caller's order. Anything after the field name
// (an order direction) is passed through untouched. Unknown tokens are dropped
// without error; an empty result means "no usable selection".
func (c *Catalog[T]) ValidateFields(candidates string) string {
	if strings.TrimSpace(candidates) == "" {
		return ""
	}

	valid := make([]string, 0)
	for _, token := range strings.Split(candidates, ",") {
		token = strings.TrimSpace(token)
		parts := strings.Fields(token)
		if len(parts) == 0 {
			continue
		}
		if _, ok := c.Field(parts[0]); ok {
			valid = append(valid, token)
		}
	}
	return strings.Join(valid, ",")
}

// ResolveFields validates candidates and falls back to the canonical set when
// nothing usable is left.
func (c *Catalog[T]) ResolveFields(candidates string) string {
	if fields := c.ValidateFields(candidates); fields != "" {
		return fields
	}
	return strings.Join(c.CanonicalFields(), ",")
}

func (c *Catalog[T]) selection(fields string) []Field[T] {
	if strings.TrimSpace(fields) == "" {
		return c.fields
	}

	seen := make(map[string]struct{})
	selected := make([]Field[T], 0)
	for _, token := range strings.Split(fields, ",") {
		parts := strings.Fields(token)
		if len(parts) == 0 {
			continue
		}
		f, ok := c.Field(parts[0])
		if !ok {
			continue
		}
		if _, dup := seen[f.Name]; dup {
			continue
		}
		seen[f.Name] = struct{}{}
		selected = append(selected, f)
	}

	if len(selected) == 0 {
		return c.fields
	}
	return selected
}
