package skema

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// PathSegment is one accessor in a Path: an object/map key or an index.
type PathSegment struct {
	key     string
	index   int
	isIndex bool
}

// Key returns a key segment.
func Key(name string) PathSegment { return PathSegment{key: name} }

// Index returns an index segment.
func Index(i int) PathSegment { return PathSegment{index: i, isIndex: true} }

// IsIndex reports whether the segment addresses an element by position.
func (s PathSegment) IsIndex() bool { return s.isIndex }

// KeyName returns the key of a key segment ("" for index segments).
func (s PathSegment) KeyName() string { return s.key }

// IndexValue returns the position of an index segment (0 for key segments).
func (s PathSegment) IndexValue() int { return s.index }

func (s PathSegment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// MarshalJSON renders keys as JSON strings and indexes as JSON numbers.
func (s PathSegment) MarshalJSON() ([]byte, error) {
	if s.isIndex {
		return json.Marshal(s.index)
	}
	return json.Marshal(s.key)
}

// Path is an ordered sequence of accessors from the root of the input.
type Path []PathSegment

// Append returns a new Path; the receiver is never modified.
func (p Path) Append(segs ...PathSegment) Path {
	out := make(Path, len(p), len(p)+len(segs))
	copy(out, p)
	return append(out, segs...)
}

// Pointer renders the path as an RFC 6901 JSON Pointer ("/" for the root).
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range p {
		b.WriteByte('/')
		// escape '~' -> '~0', '/' -> '~1' per RFC6901
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s.String(), "~", "~0"), "/", "~1"))
	}
	return b.String()
}

// String renders the path in dotted form, e.g. "address.zip" or "tags[1]".
func (p Path) String() string {
	b := &strings.Builder{}
	for i, s := range p {
		if s.isIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.key)
	}
	return b.String()
}

// MarshalJSON renders the path as an array of keys and indexes ([] for the root).
func (p Path) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]PathSegment(p))
}

// Equal reports whether both paths address the same location.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}
