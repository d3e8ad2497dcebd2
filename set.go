package skema

import (
	"iter"

	json "github.com/goccy/go-json"

	"github.com/reoring/skema/internal/hashkey"
)

// Set is an insertion-ordered collection of distinct values. Two values are
// the same element when they are structurally equal, so decoded objects and
// arrays can be members. The zero value is an empty set ready to use.
type Set struct {
	items   []any
	buckets map[uint64][]int
}

// NewSet returns a set holding the distinct values of items, in first-seen order.
func NewSet(items ...any) *Set {
	s := &Set{}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

func (s *Set) find(v any, h uint64) int {
	for _, i := range s.buckets[h] {
		if hashkey.Equal(s.items[i], v) {
			return i
		}
	}
	return -1
}

// Add inserts v and reports whether it was not already present.
func (s *Set) Add(v any) bool {
	h := hashkey.Of(v)
	if s.find(v, h) >= 0 {
		return false
	}
	if s.buckets == nil {
		s.buckets = make(map[uint64][]int)
	}
	s.buckets[h] = append(s.buckets[h], len(s.items))
	s.items = append(s.items, v)
	return true
}

// Has reports whether v is a member.
func (s *Set) Has(v any) bool {
	if s == nil {
		return false
	}
	return s.find(v, hashkey.Of(v)) >= 0
}

// Len returns the number of elements.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Values returns the elements in insertion order.
func (s *Set) Values() []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s.items))
	copy(out, s.items)
	return out
}

// All iterates over the elements in insertion order.
func (s *Set) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		if s == nil {
			return
		}
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// MarshalJSON encodes the set as a JSON array.
func (s *Set) MarshalJSON() ([]byte, error) {
	if s == nil || len(s.items) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}
