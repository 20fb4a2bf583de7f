package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ReadText reads the text format: the vertex count n followed by n-1
// triples "a b w", all separated by white space.
func ReadText(r io.Reader) (Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func(what string) (int64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: missing %s", ErrFormat, what)
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrFormat, what, err)
		}
		return v, nil
	}

	n, err := next("vertex count")
	if err != nil {
		return Graph{}, err
	}
	if n < 0 {
		return Graph{}, fmt.Errorf("%w: %d vertices", ErrFormat, n)
	}
	g := Graph{Vertices: int(n)}
	for i := int64(1); i < n; i++ {
		var t [3]int64
		for j, what := range []string{"edge source", "edge target", "edge weight"} {
			if t[j], err = next(what); err != nil {
				return Graph{}, fmt.Errorf("edge %d: %w", i-1, err)
			}
		}
		g.Edges = append(g.Edges, Edge{A: int(t[0]), B: int(t[1]), Weight: t[2]})
	}
	return g, g.Check()
}

// ReadYAML reads a single YAML document describing a Graph. Unknown fields
// are rejected.
func ReadYAML(r io.Reader) (Graph, error) {
	var g Graph
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&g); err != nil {
		return Graph{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return g, g.Check()
}

// WriteYAML writes g as a YAML document.
func WriteYAML(w io.Writer, g Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		return err
	}
	return enc.Close()
}
