package toptree

import (
	"testing"

	"github.com/forestrie/go-toptree/algebra"
	"github.com/forestrie/go-toptree/graph"
	"github.com/forestrie/go-toptree/toptreetesting"
	"github.com/stretchr/testify/require"
)

type (
	lengths   = Forest[int64, int64]
	distances = Forest[int64, algebra.Reach[int64]]
	masses    = Forest[int64, algebra.Mass[int64]]
)

func eqInt(a, b int64) bool { return a == b }
func eqReach(a, b algebra.Reach[int64]) bool { return a == b }
func eqMass(a, b algebra.Mass[int64]) bool { return a == b }
func noMass(int64) algebra.Mass[int64] { return algebra.Mass[int64]{} }
func identityWeight(w int64) int64 { return w }

func newTestContext(t *testing.T, seed int64) toptreetesting.TestContext {
	return toptreetesting.NewTestContext(t, toptreetesting.TestConfig{Seed: seed, TestLabelPrefix: t.Name()})
}

// buildForest loads g into a validating forest. Vertex values are the
// graph's vertex weights.
func buildForest[T any](
	tc *toptreetesting.TestContext, g graph.Graph, alg Algebra[int64, T], weight func(int64) T, eq func(a, b T) bool,
) (*Forest[int64, T], []VertexID) {
	f := New(alg, WithLogger(tc.Log), WithCapacity(g.Vertices), WithValidation(eq))
	vs := make([]VertexID, g.Vertices)
	for i := range vs {
		vs[i] = f.AddVertex(g.VertexWeight(i))
	}
	for _, e := range g.Edges {
		_, err := f.Link(vs[e.A], vs[e.B], weight(e.Weight))
		require.NoError(tc.T, err)
	}
	return f, vs
}

func buildLengths(tc *toptreetesting.TestContext, g graph.Graph) (*lengths, []VertexID) {
	return buildForest[int64](tc, g, algebra.Sum[int64, int64]{}, identityWeight, eqInt)
}

func buildDistances(tc *toptreetesting.TestContext, g graph.Graph) (*distances, []VertexID) {
	return buildForest[algebra.Reach[int64]](tc, g, algebra.Distance[int64, int64]{}, algebra.Edge[int64], eqReach)
}

func buildMasses(tc *toptreetesting.TestContext, g graph.Graph) (*masses, []VertexID) {
	return buildForest[algebra.Mass[int64]](tc, g, algebra.Median[int64]{}, noMass, eqMass)
}

// directed is a path algebra that tells the two directions of travel apart:
// an edge linked a->b with weight w costs w forwards and 100*w backwards.
type directed struct{}

type cost struct{ Fwd, Bwd int64 }

func arrow(w int64) cost { return cost{Fwd: w, Bwd: 100 * w} }

func (directed) Identity() cost { return cost{} }
func (directed) Compress(a, b cost, _ int64) cost { return cost{Fwd: a.Fwd + b.Fwd, Bwd: a.Bwd + b.Bwd} }
func (directed) Rake(a, _ cost) cost { return a }
func (directed) Reverse(x cost) cost { return cost{Fwd: x.Bwd, Bwd: x.Fwd} }
func eqCost(a, b cost) bool { return a == b }
