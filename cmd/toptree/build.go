package main

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-toptree/algebra"
	"github.com/forestrie/go-toptree/graph"
	"github.com/forestrie/go-toptree/toptree"
)

type (
	distanceForest = toptree.Forest[int64, algebra.Reach[int64]]
	medianForest   = toptree.Forest[int64, algebra.Mass[int64]]
	lengthForest   = toptree.Forest[int64, int64]
)

// build adds every vertex of g to a new forest and links its edges in input
// order.
func build[T any](
	log logger.Logger, g graph.Graph, alg toptree.Algebra[int64, T], weight func(w int64) T,
) (*toptree.Forest[int64, T], []toptree.VertexID, error) {
	f := toptree.New(alg, toptree.WithLogger(log), toptree.WithCapacity(g.Vertices))
	vs := make([]toptree.VertexID, g.Vertices)
	for i := range vs {
		vs[i] = f.AddVertex(g.VertexWeight(i))
	}
	for i, e := range g.Edges {
		if _, err := f.Link(vs[e.A], vs[e.B], weight(e.Weight)); err != nil {
			return nil, nil, fmt.Errorf("edge %d (%d, %d): %w", i, e.A, e.B, err)
		}
	}
	return f, vs, nil
}

func buildDistance(log logger.Logger, g graph.Graph) (*distanceForest, []toptree.VertexID, error) {
	return build(log, g, algebra.Distance[int64, int64]{}, algebra.Edge[int64])
}

func buildLength(log logger.Logger, g graph.Graph) (*lengthForest, []toptree.VertexID, error) {
	return build(log, g, algebra.Sum[int64, int64]{}, func(w int64) int64 { return w })
}

func buildMedian(log logger.Logger, g graph.Graph) (*medianForest, []toptree.VertexID, error) {
	return build(log, g, algebra.Median[int64]{}, func(int64) algebra.Mass[int64] { return algebra.Mass[int64]{} })
}

// components returns the smallest vertex index of every tree.
func components[V, T any](f *toptree.Forest[V, T], vs []toptree.VertexID) ([]int, error) {
	var roots []int
next:
	for i, v := range vs {
		for _, r := range roots {
			ok, err := f.Connected(vs[r], v)
			if err != nil {
				return nil, err
			}
			if ok {
				continue next
			}
		}
		roots = append(roots, i)
	}
	return roots, nil
}

// indexOf maps vertex ids back to input indices.
func indexOf(vs []toptree.VertexID) map[toptree.VertexID]int {
	m := make(map[toptree.VertexID]int, len(vs))
	for i, v := range vs {
		m[v] = i
	}
	return m
}
