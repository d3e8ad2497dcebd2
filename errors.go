package skema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType               = "invalid_type"
	CodeTooSmall                  = "too_small"
	CodeTooLarge                  = "too_large"
	CodeInvalidString             = "invalid_string"
	CodeCustom                    = "custom"
	CodeUnrecognizedKeys          = "unrecognized_keys"
	CodeInvalidEnumValue          = "invalid_enum_value"
	CodeInvalidLiteral            = "invalid_literal"
	CodeInvalidUnion              = "invalid_union"
	CodeInvalidUnionDiscriminator = "invalid_union_discriminator"
	CodeNotMultipleOf             = "not_multiple_of"
	CodeNotFinite                 = "not_finite"
	// Input decoding (source package)
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    Path   `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
	// Params carries structured parameters (e.g., {"minimum":3, "type":"string"})
	// for i18n and observability.
	Params map[string]any `json:"params,omitempty"`
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_small at /password: String must contain at least 6 character(s)
		fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path.Pointer(), it.Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// FlatIssues groups issue messages by their first path segment, mirroring a
// form-oriented view of a failed object parse.
type FlatIssues struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// Flatten groups messages by top-level field. Issues at the root path land
// in FormErrors.
func (iss Issues) Flatten() FlatIssues {
	out := FlatIssues{FieldErrors: map[string][]string{}}
	for _, it := range iss {
		if len(it.Path) == 0 {
			out.FormErrors = append(out.FormErrors, it.Message)
			continue
		}
		k := it.Path[0].String()
		out.FieldErrors[k] = append(out.FieldErrors[k], it.Message)
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
