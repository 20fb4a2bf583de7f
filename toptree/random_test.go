package toptree

import (
	"testing"

	"github.com/forestrie/go-toptree/algebra"
	"github.com/forestrie/go-toptree/graph"
	"github.com/forestrie/go-toptree/toptreetesting"
	"github.com/stretchr/testify/require"
)

// TestRandom_LinkCut drives a forest and the oracle through the same random
// links, cuts and weight changes, validating the whole structure after every
// step.
func TestRandom_LinkCut(t *testing.T) {
	for _, seed := range []int64{11, 12, 13} {
		tc := newTestContext(t, seed)
		const n = 24
		g := graph.Graph{Vertices: n}
		f, vs := buildDistances(&tc, g)
		o := toptreetesting.NewOracle(g)

		type linked struct {
			a, b int
			id   EdgeID
		}
		var edges []linked

		for step := 0; step < 600; step++ {
			a, b := tc.Rand.Intn(n), tc.Rand.Intn(n)
			switch op := tc.Rand.Intn(10); {
			case op < 5:
				w := tc.Rand.Int63n(20)
				id, err := f.Link(vs[a], vs[b], algebra.Edge(w))
				if o.Connected(a, b) {
					require.ErrorIs(t, err, ErrAlreadyConnected, "seed %d step %d", seed, step)
					continue
				}
				require.NoError(t, err, "seed %d step %d", seed, step)
				o.Link(a, b, w)
				edges = append(edges, linked{a, b, id})
			case op < 8 && len(edges) > 0:
				i := tc.Rand.Intn(len(edges))
				e := edges[i]
				if op == 7 {
					require.NoError(t, f.CutEdge(e.id), "seed %d step %d", seed, step)
				} else {
					require.NoError(t, f.Cut(vs[e.b], vs[e.a]), "seed %d step %d", seed, step)
				}
				o.Cut(e.a, e.b)
				edges[i] = edges[len(edges)-1]
				edges = edges[:len(edges)-1]
			case op < 9 && len(edges) > 0:
				e := edges[tc.Rand.Intn(len(edges))]
				w := tc.Rand.Int63n(20)
				require.NoError(t, f.SetEdgeWeight(e.id, algebra.Edge(w)), "seed %d step %d", seed, step)
				o.SetWeight(e.a, e.b, w)
			default:
				d, err := f.PathQuery(vs[a], vs[b])
				if !o.Connected(a, b) {
					require.ErrorIs(t, err, ErrNotConnected)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, o.Distances(a)[b], d.Length, "seed %d step %d: path %d-%d", seed, step, a, b)
			}

			x := tc.Rand.Intn(n)
			fold, err := f.TreeFold(vs[x])
			require.NoError(t, err)
			require.Equal(t, o.Diameter(x), fold.Diameter, "seed %d step %d: diameter of %d", seed, step, x)
		}
		require.Equal(t, len(edges), f.EdgeCount())
	}
}
