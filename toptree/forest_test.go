package toptree

import (
	"testing"

	"github.com/forestrie/go-toptree/algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForest_SingleVertex(t *testing.T) {
	tc := newTestContext(t, 1)
	f := New[int64, algebra.Reach[int64]](algebra.Distance[int64, int64]{}, WithLogger(tc.Log), WithValidation(eqReach))

	v := f.AddVertex(7)
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, 0, f.EdgeCount())

	val, err := f.Value(v)
	require.NoError(t, err)
	assert.Equal(t, int64(7), val)

	fold, err := f.TreeFold(v)
	require.NoError(t, err)
	assert.Equal(t, algebra.Reach[int64]{}, fold)

	ok, err := f.Connected(v, v)
	require.NoError(t, err)
	assert.True(t, ok)

	d, err := f.PathQuery(v, v)
	require.NoError(t, err)
	assert.Equal(t, algebra.Reach[int64]{}, d)

	a, b, err := f.Select(v, algebra.SelectCenter[int64, int64])
	require.NoError(t, err)
	assert.Equal(t, v, a)
	assert.Equal(t, v, b)

	require.NoError(t, f.Validate(eqReach))
}

func TestForest_InvalidHandles(t *testing.T) {
	tc := newTestContext(t, 1)
	f := New[int64, int64](algebra.Sum[int64, int64]{}, WithLogger(tc.Log))
	v := f.AddVertex(0)
	u := f.AddVertex(0)

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"zero vertex", func() error { _, err := f.Value(0); return err }, ErrInvalidVertex},
		{"out of range vertex", func() error { _, err := f.Value(99); return err }, ErrInvalidVertex},
		{"padding vertex", func() error { _, err := f.Value(v + 1); return err }, ErrInvalidVertex},
		{"link to zero vertex", func() error { _, err := f.Link(v, 0, 1); return err }, ErrInvalidVertex},
		{"zero edge", func() error { _, err := f.EdgeWeight(EdgeID{}); return err }, ErrInvalidEdge},
		{"negative edge", func() error { return f.CutEdge(EdgeID{idx: -3}) }, ErrInvalidEdge},
		{"self link", func() error { _, err := f.Link(v, v, 1); return err }, ErrAlreadyConnected},
		{"cut missing edge", func() error { return f.Cut(v, u) }, ErrEdgeNotFound},
		{"query across trees", func() error { _, err := f.PathQuery(v, u); return err }, ErrNotConnected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.call(), tt.want)
		})
	}
}

func TestForest_StaleEdge(t *testing.T) {
	tc := newTestContext(t, 1)
	f := New[int64, int64](algebra.Sum[int64, int64]{}, WithLogger(tc.Log), WithValidation(eqInt))
	v := f.AddVertex(0)
	u := f.AddVertex(0)

	e, err := f.Link(v, u, 4)
	require.NoError(t, err)
	_, err = f.Link(u, v, 4)
	require.ErrorIs(t, err, ErrAlreadyConnected)

	require.NoError(t, f.CutEdge(e))
	assert.Equal(t, 0, f.EdgeCount())
	require.ErrorIs(t, f.CutEdge(e), ErrInvalidEdge)
	_, _, err = f.Endpoints(e)
	require.ErrorIs(t, err, ErrInvalidEdge)

	// the freed slot is reused with a new generation
	e2, err := f.Link(u, v, 5)
	require.NoError(t, err)
	assert.NotEqual(t, e, e2)
	_, err = f.EdgeWeight(e)
	require.ErrorIs(t, err, ErrInvalidEdge)
	w, err := f.EdgeWeight(e2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), w)
}

func TestForest_EdgeWeight(t *testing.T) {
	tc := newTestContext(t, 1)
	g := tc.Fixture("thirteen")
	f, vs := buildForest[cost](&tc, g, directed{}, arrow, eqCost)

	// (10, 11) is linked 10 -> 11
	e, ok := f.edges[keyOf(int32(vs[10]-1), int32(vs[11]-1))]
	require.True(t, ok)
	id := EdgeID{idx: e, gen: f.nodes[e].gen}

	a, b, err := f.Endpoints(id)
	require.NoError(t, err)
	assert.Equal(t, vs[10], a)
	assert.Equal(t, vs[11], b)

	// reshape the tree around the far end before reading the weight
	_, err = f.TreeFold(vs[11])
	require.NoError(t, err)
	w, err := f.EdgeWeight(id)
	require.NoError(t, err)
	assert.Equal(t, arrow(9), w)

	require.NoError(t, f.SetEdgeWeight(id, arrow(2)))
	d, err := f.PathQuery(vs[0], vs[11])
	require.NoError(t, err)
	assert.Equal(t, arrow(3+4+7+2), d)
	d, err = f.PathQuery(vs[11], vs[0])
	require.NoError(t, err)
	assert.Equal(t, cost{Fwd: 100 * (3 + 4 + 7 + 2), Bwd: 3 + 4 + 7 + 2}, d)
}

func TestForest_SetValue(t *testing.T) {
	tc := newTestContext(t, 1)
	g := tc.Fixture("star")
	f, vs := buildMasses(&tc, g)

	fold, err := f.TreeFold(vs[3])
	require.NoError(t, err)
	assert.Equal(t, int64(16), fold.Weight)

	require.NoError(t, f.SetValue(vs[0], 5))
	require.NoError(t, f.SetValue(vs[6], 1))
	val, err := f.Value(vs[6])
	require.NoError(t, err)
	assert.Equal(t, int64(1), val)

	fold, err = f.TreeFold(vs[2])
	require.NoError(t, err)
	assert.Equal(t, int64(11), fold.Weight)
}

func TestForest_RootedFold(t *testing.T) {
	tc := newTestContext(t, 1)
	g := tc.Fixture("thirteen")
	f, vs := buildDistances(&tc, g)

	tests := []struct {
		v    int
		want int64
	}{
		{8, 36},
		{11, 36},
		{0, 23},
		{2, 34},
		{10, 27},
	}
	for _, tt := range tests {
		fold, err := f.RootedFold(vs[tt.v])
		require.NoError(t, err)
		assert.Equal(t, tt.want, fold.Left, "farthest from %d", tt.v)
	}
}
