// Package hashkey derives stable 64-bit hashes for arbitrary decoded values
// so that sets and maps keyed by non-comparable values can bucket them.
package hashkey

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
	"github.com/zeebo/xxh3"
)

// Of hashes v. Values that are structurally equal (reflect.DeepEqual) hash
// equally; the reverse does not hold, so callers must confirm with Equal.
func Of(v any) uint64 {
	b := make([]byte, 0, 64)
	b = fmt.Appendf(b, "%T|", v)
	enc, err := json.Marshal(v)
	if err != nil {
		// channels, funcs and cyclic values cannot be encoded
		b = fmt.Appendf(b, "%#v", v)
	} else {
		b = append(b, enc...)
	}
	return xxh3.Hash(b)
}

// Equal reports whether a and b denote the same element.
func Equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
