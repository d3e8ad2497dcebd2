package skema

import (
	"iter"

	json "github.com/goccy/go-json"

	"github.com/reoring/skema/internal/hashkey"
)

// Entry is one key/value pair of an OrderedMap.
type Entry struct {
	Key   any `json:"key"`
	Value any `json:"value"`
}

// OrderedMap is an insertion-ordered map whose keys may be any value,
// compared structurally. The zero value is an empty map ready to use.
type OrderedMap struct {
	entries []Entry
	buckets map[uint64][]int
}

// NewOrderedMap returns a map holding the given entries; later duplicates
// overwrite earlier values but keep the first position.
func NewOrderedMap(entries ...Entry) *OrderedMap {
	m := &OrderedMap{}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

func (m *OrderedMap) find(k any, h uint64) int {
	for _, i := range m.buckets[h] {
		if hashkey.Equal(m.entries[i].Key, k) {
			return i
		}
	}
	return -1
}

// Set stores v under k.
func (m *OrderedMap) Set(k, v any) {
	h := hashkey.Of(k)
	if i := m.find(k, h); i >= 0 {
		m.entries[i].Value = v
		return
	}
	if m.buckets == nil {
		m.buckets = make(map[uint64][]int)
	}
	m.buckets[h] = append(m.buckets[h], len(m.entries))
	m.entries = append(m.entries, Entry{Key: k, Value: v})
}

// Get returns the value stored under k.
func (m *OrderedMap) Get(k any) (any, bool) {
	if m == nil {
		return nil, false
	}
	if i := m.find(k, hashkey.Of(k)); i >= 0 {
		return m.entries[i].Value, true
	}
	return nil, false
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() []any {
	if m == nil {
		return nil
	}
	out := make([]any, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Key
	}
	return out
}

// Entries returns a copy of the entries in insertion order.
func (m *OrderedMap) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// All iterates over the entries in insertion order.
func (m *OrderedMap) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		if m == nil {
			return
		}
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the map as a JSON object when every key is a string
// (member order follows insertion order) and as an array of {key, value}
// pairs otherwise.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.entries) == 0 {
		return []byte("{}"), nil
	}
	for _, e := range m.entries {
		if _, ok := e.Key.(string); !ok {
			return json.Marshal(m.entries)
		}
	}
	b := []byte{'{'}
	for i, e := range m.entries {
		if i > 0 {
			b = append(b, ',')
		}
		kb, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		b = append(b, kb...)
		b = append(b, ':')
		b = append(b, vb...)
	}
	return append(b, '}'), nil
}
