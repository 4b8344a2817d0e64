package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-shape-utils/internal/config"
	"github.com/hasbyte1/go-shape-utils/pivot"
	"github.com/hasbyte1/go-shape-utils/table"
)

// record encodes any pivot.Record as a JSON or YAML mapping with its fields
// in Fields order.
type record struct{ pivot.Record }

func wrap(records []pivot.Record) []record {
	out := make([]record, len(records))
	for i, r := range records {
		out[i] = record{r}
	}
	return out
}

func (r record) MarshalJSON() ([]byte, error) {
	row := &pivot.Row{}
	for _, f := range r.Fields() {
		v, _ := r.Get(f)
		row.Set(f, v)
	}
	return row.MarshalJSON()
}

func (r record) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range r.Fields() {
		v, _ := r.Get(f)
		var val yaml.Node
		if err := val.Encode(v); err != nil {
			return nil, fmt.Errorf("field %q: %w", f, err)
		}
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f},
			&val)
	}
	return n, nil
}

// group is the encoded form of one pivot.Bucket.
type group struct {
	Key     string   `json:"key" yaml:"key"`
	Count   int      `json:"count" yaml:"count"`
	Groups  []group  `json:"groups,omitempty" yaml:"groups,omitempty"`
	Records []record `json:"records,omitempty" yaml:"records,omitempty"`
}

func groups(t *pivot.Tree) []group {
	out := make([]group, 0, t.Len())
	for _, b := range t.Buckets() {
		g := group{Key: b.Key}
		if b.IsLeaf() {
			g.Count = len(b.Records)
			g.Records = wrap(b.Records)
		} else {
			g.Count = b.Tree.Count()
			g.Groups = groups(b.Tree)
		}
		out = append(out, g)
	}
	return out
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: format %q", config.ErrInvalidConfig, format)
}

func writeRows(w io.Writer, format string, rows []*pivot.Row) error {
	if format == config.FormatTable {
		return table.Fprint(w, rows, pivot.Columns(rows))
	}
	return encode(w, format, wrap(pivot.Records(rows)))
}

// writeTree prints one line per bucket in table format: the key indented
// by depth, a tab, and the number of records below it.
func writeTree(w io.Writer, format string, t *pivot.Tree) error {
	if format != config.FormatTable {
		return encode(w, format, groups(t))
	}
	var b strings.Builder
	var walk func(t *pivot.Tree, depth int)
	walk = func(t *pivot.Tree, depth int) {
		for _, bucket := range t.Buckets() {
			count := len(bucket.Records)
			if !bucket.IsLeaf() {
				count = bucket.Tree.Count()
			}
			key := bucket.Key
			if key == "" {
				key = `""`
			}
			fmt.Fprintf(&b, "%s%s\t%d\n", strings.Repeat("  ", depth), key, count)
			if !bucket.IsLeaf() {
				walk(bucket.Tree, depth+1)
			}
		}
	}
	walk(t, 0)
	_, err := io.WriteString(w, b.String())
	return err
}
