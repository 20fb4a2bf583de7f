// Package graph reads and writes the weighted trees fed to the toptree
// driver, either in the whitespace separated text format or as YAML.
package graph

import (
	"errors"
	"fmt"
)

var (
	ErrFormat     = errors.New("graph: malformed input")
	ErrVertex     = errors.New("graph: vertex out of range")
	ErrSelfLoop   = errors.New("graph: self loop")
	ErrEdgeWeight = errors.New("graph: negative edge weight")
)

type Edge struct {
	A      int   `yaml:"a"`
	B      int   `yaml:"b"`
	Weight int64 `yaml:"w"`
}

// PathCase is an expected path length, carried by fixtures.
type PathCase struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Length int64 `yaml:"length"`
}

// Graph is a forest on the vertices 0..Vertices-1.
type Graph struct {
	Name     string `yaml:"name,omitempty"`
	Vertices int    `yaml:"vertices"`
	// Weights are the vertex weights used by median queries, missing
	// entries weigh 1.
	Weights []int64    `yaml:"weights,omitempty"`
	Edges   []Edge     `yaml:"edges"`
	Paths   []PathCase `yaml:"paths,omitempty"`
}

// VertexWeight returns the weight of vertex i.
func (g *Graph) VertexWeight(i int) int64 {
	if i < len(g.Weights) {
		return g.Weights[i]
	}
	return 1
}

// Check reports the first edge that does not fit the vertex range. It does
// not look for cycles, linking into a forest does that.
func (g *Graph) Check() error {
	if g.Vertices < 0 {
		return fmt.Errorf("%w: %d vertices", ErrFormat, g.Vertices)
	}
	if len(g.Weights) > g.Vertices {
		return fmt.Errorf("%w: %d weights for %d vertices", ErrFormat, len(g.Weights), g.Vertices)
	}
	for i, e := range g.Edges {
		switch {
		case e.A < 0 || e.A >= g.Vertices || e.B < 0 || e.B >= g.Vertices:
			return fmt.Errorf("%w: edge %d (%d, %d)", ErrVertex, i, e.A, e.B)
		case e.A == e.B:
			return fmt.Errorf("%w: edge %d at %d", ErrSelfLoop, i, e.A)
		case e.Weight < 0:
			return fmt.Errorf("%w: edge %d weight %d", ErrEdgeWeight, i, e.Weight)
		}
	}
	for i, p := range g.Paths {
		if p.From < 0 || p.From >= g.Vertices || p.To < 0 || p.To >= g.Vertices {
			return fmt.Errorf("%w: path case %d (%d, %d)", ErrVertex, i, p.From, p.To)
		}
	}
	return nil
}
