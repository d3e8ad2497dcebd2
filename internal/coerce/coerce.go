// Package coerce converts loosely typed input values into the primitive
// kinds the dsl evaluates. Every function reports failure through its
// boolean result and never panics.
package coerce

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Float extracts a float64 from any numeric kind or json.Number without
// changing representation class (strings are not numbers here).
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	case nil, bool, string:
		return 0, false
	}
	// named numeric types
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// FormatNumber renders f the way a JavaScript engine stringifies numbers:
// plain decimals between 1e-6 and 1e21, exponent form outside that range.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	// Go pads the exponent to two digits ("1e-07"); JS does not.
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}

// ToString converts scalars to their canonical text form. nil fails.
func ToString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case json.Number:
		return string(x), true
	case time.Time:
		return x.Format(time.RFC3339Nano), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case fmt.Stringer:
		return x.String(), true
	}
	if f, ok := Float(v); ok {
		return FormatNumber(f), true
	}
	return "", false
}

// ToNumber converts numeric text, bools, numbers and times (Unix
// milliseconds). Empty strings and NaN results fail.
func ToNumber(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case string:
		s := strings.TrimSpace(x)
		if s == "" || !decimalText(s) {
			return 0, false
		}
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// ParseFloat reports out-of-range values as ±Inf with ErrRange
			if !errors.Is(err, strconv.ErrRange) {
				return 0, false
			}
		}
		f = p
	case bool:
		if x {
			f = 1
		}
	case time.Time:
		f = float64(x.UnixMilli())
	default:
		n, ok := Float(v)
		if !ok {
			return 0, false
		}
		f = n
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// decimalText rejects the spellings strconv.ParseFloat accepts beyond plain
// decimals: hex floats, digit separators and case-insensitive "inf".
// Infinity is accepted only as "Infinity" with an optional sign.
func decimalText(s string) bool {
	if strings.ContainsAny(s, "xX_") {
		return false
	}
	if strings.Contains(strings.ToLower(s), "inf") {
		return strings.TrimLeft(s, "+-") == "Infinity" && len(s) <= len("+Infinity")
	}
	return true
}

// ToBool accepts real bools and the exact strings "true" and "false".
func ToBool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case string:
		switch x {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// MaxDateMillis is the largest distance from the Unix epoch, in
// milliseconds, a numeric date may have (100,000,000 days).
const MaxDateMillis = 8.64e15

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ToDate converts calendar dates ("2006-01-02", read as UTC midnight),
// RFC 3339 timestamps, local timestamps without zone (UTC) and numbers
// (Unix milliseconds).
func ToDate(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, true
	case string:
		s := strings.TrimSpace(x)
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			return t, true
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}
	f, ok := Float(v)
	if !ok || math.IsNaN(f) || math.Abs(f) > MaxDateMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(f)).UTC(), true
}
