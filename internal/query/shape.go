package query

import (
	"bytes"
	"encoding/json"
)

type Entry struct {
	Key   string
	Value any
}

// Record is a shaped, ordered projection of one resource record. Each Record
// owns its entries; nothing is shared with the source or other records.
type Record struct {
	entries []Entry
}

func (r Record) Len() int {
	return len(r.entries)
}

func (r Record) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Key
	}
	return keys
}

func (r Record) Get(key string) (any, bool) {
	for _, e := range r.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes the entries as an object in selection order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ShapeOne projects item down to fields. An empty list selects the canonical
// fields.
func ShapeOne[T any](c *Catalog[T], item *T, fields string) Record {
	return project(c.selection(fields), item)
}

// Shape projects every item down to fields, preserving item order.
func Shape[T any](c *Catalog[T], items []T, fields string) []Record {
	selected := c.selection(fields)
	records := make([]Record, len(items))
	for i := range items {
		records[i] = project(selected, &items[i])
	}
	return records
}

func project[T any](selected []Field[T], item *T) Record {
	entries := make([]Entry, len(selected))
	for i, f := range selected {
		entries[i] = Entry{Key: f.Name, Value: f.Value(item)}
	}
	return Record{entries: entries}
}
