package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/skema"
)

// JSON returns a Source decoding a single JSON document. Numbers are kept
// as json.Number so that no precision is lost before a schema sees them.
func JSON(data []byte, opts ...Option) skema.Source {
	o := newOptions(opts)
	return skema.SourceFunc(func() (any, error) { return decodeJSON(data, o) })
}

// JSONReader is like JSON but reads the document from r on Decode.
func JSONReader(r io.Reader, opts ...Option) skema.Source {
	o := newOptions(opts)
	return skema.SourceFunc(func() (any, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, skema.Issues{parseIssue(nil, err.Error())}
		}
		return decodeJSON(data, o)
	})
}

type jsonDecoder struct {
	walker
	dec *json.Decoder
}

func decodeJSON(data []byte, o options) (any, error) {
	// the token stream skips separators without checking them
	if !json.Valid(data) {
		return nil, skema.Issues{parseIssue(nil, syntaxMessage(data))}
	}
	d := &jsonDecoder{walker: walker{opts: o}, dec: json.NewDecoder(bytes.NewReader(data))}
	d.dec.UseNumber()
	v, err := d.value(skema.Path{}, 0)
	if err != nil {
		return nil, err
	}
	if err := d.err(); err != nil {
		return nil, err
	}
	return v, nil
}

func syntaxMessage(data []byte) string {
	if len(bytes.TrimSpace(data)) == 0 {
		return "empty JSON document"
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err.Error()
	}
	return "invalid JSON document"
}

func (d *jsonDecoder) token(p skema.Path) (json.Token, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return nil, skema.Issues{parseIssue(p, err.Error())}
	}
	return tok, nil
}

func (d *jsonDecoder) value(p skema.Path, depth int) (any, error) {
	tok, err := d.token(p)
	if err != nil {
		return nil, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return d.object(p, depth+1)
		case '[':
			return d.array(p, depth+1)
		}
		return nil, skema.Issues{parseIssue(p, "unexpected "+v.String())}
	case json.Number:
		// number tokens share the decoder buffer
		return json.Number(strings.Clone(string(v))), nil
	case string:
		return strings.Clone(v), nil
	case bool, float64, nil:
		return v, nil
	}
	return nil, skema.Issues{parseIssue(p, fmt.Sprintf("unexpected token %v", tok))}
}

func (d *jsonDecoder) object(p skema.Path, depth int) (any, error) {
	if err := d.enter(p, depth); err != nil {
		return nil, err
	}
	out := map[string]any{}
	for d.dec.More() {
		tok, err := d.token(p)
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, skema.Issues{parseIssue(p, fmt.Sprintf("object key must be a string, got %v", tok))}
		}
		key = strings.Clone(key)
		v, err := d.value(p.Append(skema.Key(key)), depth)
		if err != nil {
			return nil, err
		}
		if _, dup := out[key]; dup && d.opts.rejectDup {
			d.duplicate(p, key, "")
		}
		out[key] = v
	}
	if _, err := d.token(p); err != nil { // '}'
		return nil, err
	}
	return out, nil
}

func (d *jsonDecoder) array(p skema.Path, depth int) (any, error) {
	if err := d.enter(p, depth); err != nil {
		return nil, err
	}
	out := []any{}
	for i := 0; d.dec.More(); i++ {
		v, err := d.value(p.Append(skema.Index(i)), depth)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if _, err := d.token(p); err != nil { // ']'
		return nil, err
	}
	return out, nil
}
