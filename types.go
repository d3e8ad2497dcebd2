package skema

// UnknownPolicy controls how object schemas handle input keys they do not declare.
type UnknownPolicy int

const (
	UnknownStrip       UnknownPolicy = iota // Drop unknown keys (default).
	UnknownStrict                           // Report unknown keys as unrecognized_keys.
	UnknownPassthrough                      // Copy unknown keys into the output unchanged.
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownStrict:
		return "strict"
	case UnknownPassthrough:
		return "passthrough"
	default:
		return "strip"
	}
}

// Kind tags the variant of a schema node.
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
	KindEnum
	KindLiteral
	KindObject
	KindArray
	KindSet
	KindMap
	KindRecord
	KindUnion
	KindOptional
	KindNullable
	KindDefault
	KindTransform
	KindRefine
)

var kindNames = [...]string{
	KindAny:       "any",
	KindString:    "string",
	KindNumber:    "number",
	KindBool:      "boolean",
	KindDate:      "date",
	KindEnum:      "enum",
	KindLiteral:   "literal",
	KindObject:    "object",
	KindArray:     "array",
	KindSet:       "set",
	KindMap:       "map",
	KindRecord:    "record",
	KindUnion:     "union",
	KindOptional:  "optional",
	KindNullable:  "nullable",
	KindDefault:   "default",
	KindTransform: "transform",
	KindRefine:    "refine",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsWrapper reports whether the kind wraps exactly one inner schema.
func (k Kind) IsWrapper() bool {
	switch k {
	case KindOptional, KindNullable, KindDefault, KindTransform, KindRefine:
		return true
	}
	return false
}

type undefinedValue struct{}

func (undefinedValue) String() string { return "undefined" }

// MarshalJSON renders Undefined as null.
func (undefinedValue) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

type neverValue struct{}

func (neverValue) String() string { return "never" }

// Undefined marks a missing value (an object property that is absent), as
// opposed to nil, which is an explicit null.
var Undefined any = undefinedValue{}

// Never is returned by Evaluate and by transform callbacks to signal that no
// usable value exists. Issues describing why are recorded on the Ctx.
var Never any = neverValue{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefinedValue)
	return ok
}

// IsNever reports whether v is the Never sentinel.
func IsNever(v any) bool {
	_, ok := v.(neverValue)
	return ok
}
