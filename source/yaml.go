package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/reoring/skema"
)

// YAML returns a Source decoding the first document of data. Mappings whose
// keys are all strings become map[string]any; other mappings become
// *skema.OrderedMap in document order. Plain timestamps decode to
// time.Time. An empty document decodes to nil.
func YAML(data []byte, opts ...Option) skema.Source {
	o := newOptions(opts)
	return skema.SourceFunc(func() (any, error) {
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, skema.Issues{parseIssue(nil, err.Error())}
		}
		w := &walker{opts: o}
		v, err := w.node(&doc, skema.Path{}, 0)
		if err == nil {
			err = w.err()
		}
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

// YAMLDocuments decodes every document of a multi-document stream. Issues
// of the i-th document are prefixed with its index.
func YAMLDocuments(data []byte, opts ...Option) ([]any, error) {
	o := newOptions(opts)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []any
	for i := 0; ; i++ {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, skema.Issues{parseIssue(skema.Path{skema.Index(i)}, err.Error())}
		}
		w := &walker{opts: o}
		v, err := w.node(&doc, skema.Path{skema.Index(i)}, 0)
		if err == nil {
			err = w.err()
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// Alias expansion limits, as applied by yaml.v3 when decoding into Go
// values: small documents may draw 99% of their nodes from aliases, very
// large ones only 10%.
const (
	aliasRatioLow  = 400000
	aliasRatioHigh = 4000000
)

func allowedAliasRatio(decoded int) float64 {
	switch {
	case decoded <= aliasRatioLow:
		return 0.99
	case decoded >= aliasRatioHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(decoded-aliasRatioLow)/float64(aliasRatioHigh-aliasRatioLow))
	}
}

type anchored struct {
	value any
	nodes int
}

// alias decodes the target of an alias node once and charges every further
// reference with the target's expanded size.
func (w *walker) alias(n *yaml.Node, p skema.Path, depth int) (any, error) {
	if n.Alias == nil {
		return nil, skema.Issues{parseIssue(p, fmt.Sprintf("unresolved alias at line %d", n.Line))}
	}
	a, ok := w.anchors[n.Alias]
	if !ok {
		before := w.decoded
		v, err := w.node(n.Alias, p, depth)
		if err != nil {
			return nil, err
		}
		a = anchored{value: v, nodes: w.decoded - before}
		if w.anchors == nil {
			w.anchors = map[*yaml.Node]anchored{}
		}
		w.anchors[n.Alias] = a
	} else {
		w.decoded += a.nodes
	}
	w.aliased += a.nodes
	if w.aliased > 100 && w.decoded > 1000 && float64(w.aliased)/float64(w.decoded) > allowedAliasRatio(w.decoded) {
		return nil, skema.Issues{parseIssue(p, "document contains excessive aliasing")}
	}
	return a.value, nil
}

func (w *walker) node(n *yaml.Node, p skema.Path, depth int) (any, error) {
	if n.Kind != yaml.AliasNode && n.Kind != yaml.DocumentNode {
		w.decoded++
	}
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return w.node(n.Content[0], p, depth)
	case yaml.AliasNode:
		return w.alias(n, p, depth)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, skema.Issues{parseIssue(p, err.Error())}
		}
		return v, nil
	case yaml.SequenceNode:
		if err := w.enter(p, depth+1); err != nil {
			return nil, err
		}
		out := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := w.node(c, p.Append(skema.Index(i)), depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		if err := w.enter(p, depth+1); err != nil {
			return nil, err
		}
		return w.mapping(n, p, depth+1)
	}
	return nil, skema.Issues{parseIssue(p, fmt.Sprintf("unsupported YAML node at line %d", n.Line))}
}

func (w *walker) mapping(n *yaml.Node, p skema.Path, depth int) (any, error) {
	stringKeys := true
	for i := 0; i+1 < len(n.Content); i += 2 {
		if k := n.Content[i]; k.ShortTag() != "!!str" && k.ShortTag() != "!!merge" {
			stringKeys = false
			break
		}
	}

	om := &skema.OrderedMap{}
	seen := map[string]bool{}
	var merged []*skema.OrderedMap
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		if kn.ShortTag() == "!!merge" {
			m, err := w.mergeSources(vn, p, depth)
			if err != nil {
				return nil, err
			}
			merged = append(merged, m...)
			continue
		}
		var key any
		if stringKeys {
			key = kn.Value
		} else {
			k, err := w.node(kn, p, depth)
			if err != nil {
				return nil, err
			}
			key = k
		}
		child := p
		if s, ok := key.(string); ok {
			child = p.Append(skema.Key(s))
			if seen[s] && w.opts.rejectDup {
				w.duplicate(p, s, fmt.Sprintf("line %d", kn.Line))
			}
			seen[s] = true
		}
		v, err := w.node(vn, child, depth)
		if err != nil {
			return nil, err
		}
		om.Set(key, v)
	}
	// explicit keys win over merged ones; earlier merge sources win over later
	for _, m := range merged {
		for k, v := range m.All() {
			if _, ok := om.Get(k); !ok {
				om.Set(k, v)
			}
		}
	}

	if !stringKeys {
		return om, nil
	}
	out := make(map[string]any, om.Len())
	for k, v := range om.All() {
		out[k.(string)] = v
	}
	return out, nil
}

// mergeSources resolves the value of a "<<" key: a mapping or a sequence
// of mappings, possibly through aliases.
func (w *walker) mergeSources(n *yaml.Node, p skema.Path, depth int) ([]*skema.OrderedMap, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil && n.Alias.Kind == yaml.MappingNode {
		v, err := w.alias(n, p, depth)
		if err != nil {
			return nil, err
		}
		return []*skema.OrderedMap{asOrdered(v)}, nil
	}
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		v, err := w.mapping(n, p, depth)
		if err != nil {
			return nil, err
		}
		return []*skema.OrderedMap{asOrdered(v)}, nil
	case yaml.SequenceNode:
		var out []*skema.OrderedMap
		for _, c := range n.Content {
			m, err := w.mergeSources(c, p, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, m...)
		}
		return out, nil
	}
	return nil, skema.Issues{parseIssue(p, fmt.Sprintf("merge value at line %d is not a mapping", n.Line))}
}

func asOrdered(v any) *skema.OrderedMap {
	switch m := v.(type) {
	case *skema.OrderedMap:
		return m
	case map[string]any:
		om := &skema.OrderedMap{}
		for _, k := range sortedKeys(m) {
			om.Set(k, m[k])
		}
		return om
	}
	return &skema.OrderedMap{}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
