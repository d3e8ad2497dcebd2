package dsl

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
	"github.com/reoring/skema/internal/coerce"
)

// report adds an issue at the scope of c. The message is the caller's
// custom text when given, otherwise the catalog entry for key.
func report(c *skema.Ctx, code, key string, params map[string]any, custom string) {
	msg := custom
	if msg == "" {
		msg = i18n.T(key, textParams(params))
	}
	c.AddIssue(skema.Issue{Code: code, Message: msg, Params: params})
}

func invalidType(c *skema.Ctx, expected string, v any) {
	key := skema.CodeInvalidType
	if skema.IsUndefined(v) {
		key += ".required"
	}
	report(c, skema.CodeInvalidType, key, map[string]any{"expected": expected, "received": typeName(v)}, "")
}

func first(msg []string) string {
	if len(msg) == 0 {
		return ""
	}
	return msg[0]
}

func textParams(p map[string]any) map[string]string {
	if len(p) == 0 {
		return nil
	}
	out := make(map[string]string, len(p))
	for k, v := range p {
		sep := " | "
		if k == "keys" {
			sep = ", "
		}
		out[k] = display(v, sep)
	}
	return out
}

func display(v any, sep string) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		if x.Equal(x.Truncate(24*time.Hour)) && x.Location() == time.UTC {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.RFC3339)
	case []string:
		q := make([]string, len(x))
		for i, s := range x {
			q[i] = "'" + s + "'"
		}
		return strings.Join(q, sep)
	case []any:
		q := make([]string, len(x))
		for i, s := range x {
			q[i] = literalText(s)
		}
		return strings.Join(q, sep)
	}
	if f, ok := coerce.Float(v); ok {
		return coerce.FormatNumber(f)
	}
	return fmt.Sprint(v)
}

func literalText(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	if v == nil {
		return "null"
	}
	return display(v, ", ")
}

// typeName classifies v with the vocabulary used in invalid_type issues.
func typeName(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case time.Time, *time.Time:
		return "date"
	case *skema.Set:
		return "set"
	case *skema.OrderedMap:
		return "map"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case float64:
		if math.IsNaN(x) {
			return "nan"
		}
		return "number"
	}
	if skema.IsUndefined(v) {
		return "undefined"
	}
	if _, ok := coerce.Float(v); ok {
		return "number"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map:
		return "map"
	case reflect.Struct:
		return "object"
	case reflect.Func:
		return "function"
	case reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
		return typeName(rv.Elem().Interface())
	}
	return "unknown"
}
