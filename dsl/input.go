package dsl

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	json "github.com/goccy/go-json"

	"github.com/reoring/skema"
	"github.com/reoring/skema/internal/coerce"
)

// sequence returns the elements of a slice or array input.
func sequence(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case nil, string:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return []any{}, true
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// stringMap returns the members of an object-like input with a
// deterministic key order: insertion order for *skema.OrderedMap, sorted
// otherwise. Structs are projected through their JSON encoding.
func stringMap(v any) (map[string]any, []string, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, sortedKeys(x), true
	case *skema.OrderedMap:
		if x == nil {
			return nil, nil, false
		}
		m := make(map[string]any, x.Len())
		keys := make([]string, 0, x.Len())
		for k, val := range x.All() {
			ks, ok := k.(string)
			if !ok {
				return nil, nil, false
			}
			m[ks] = val
			keys = append(keys, ks)
		}
		return m, keys, true
	case nil, skema.Entry:
		return nil, nil, false
	}
	if skema.IsUndefined(v) {
		return nil, nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, nil, false
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return m, sortedKeys(m), true
	case reflect.Struct:
		if _, isSet := v.(*skema.Set); isSet {
			return nil, nil, false
		}
		b, err := json.Marshal(rv.Interface())
		if err != nil {
			return nil, nil, false
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil || m == nil {
			return nil, nil, false
		}
		return m, sortedKeys(m), true
	}
	return nil, nil, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// entries returns the key/value pairs of a map-like input: insertion order
// for *skema.OrderedMap, sorted keys for Go maps.
func entries(v any) ([]skema.Entry, bool) {
	if om, ok := v.(*skema.OrderedMap); ok {
		if om == nil {
			return nil, false
		}
		return om.Entries(), true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	out := make([]skema.Entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out = append(out, skema.Entry{Key: iter.Key().Interface(), Value: iter.Value().Interface()})
	}
	slices.SortFunc(out, func(a, b skema.Entry) int { return compareKeys(a.Key, b.Key) })
	return out, true
}

// compareKeys orders numbers numerically and everything else by its
// printed form.
func compareKeys(a, b any) int {
	fa, okA := coerce.Float(a)
	fb, okB := coerce.Float(b)
	switch {
	case okA && okB:
		return cmp.Compare(fa, fb)
	case okA:
		return -1
	case okB:
		return 1
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
