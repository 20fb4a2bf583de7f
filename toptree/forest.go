package toptree

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Forest is a dynamic forest of weighted trees kept as a self-adjusting top
// tree. V is the vertex value type and T the cluster summary type, which is
// also the edge weight type.
//
// Note: Forest is not go routine safe. It is designed to be owned by a single
// go routine.
type Forest[V, T any] struct {
	alg   Algebra[V, T]
	nodes []node[T]
	free  []nodeID
	verts []vertex[V]
	edges map[edgeKey]nodeID
	users int

	log     logger.Logger
	check   func(a, b T) bool
	scratch []nodeID
}

// New creates an empty forest maintaining alg.
func New[V, T any](alg Algebra[V, T], opts ...Option) *Forest[V, T] {
	o := Options[T]{}
	for _, opt := range opts {
		opt(&o)
	}
	f := &Forest[V, T]{
		alg:   alg,
		edges: make(map[edgeKey]nodeID),
		log:   o.Log,
		check: o.Check,
	}
	if o.Capacity > 0 {
		// per vertex: itself and its dummy, the padding edge, and at most
		// one link edge, compress and rake node.
		f.verts = make([]vertex[V], 0, 2*o.Capacity)
		f.nodes = make([]node[T], 0, 4*o.Capacity)
	}
	return f
}

func (f *Forest[V, T]) debugf(format string, args ...any) {
	if f.log == nil {
		return
	}
	f.log.Debugf(format, args...)
}

func (f *Forest[V, T]) vertex(v VertexID) (int32, error) {
	x := int64(v) - 1
	if v == 0 || x >= int64(len(f.verts)) || f.verts[x].dummy {
		return 0, fmt.Errorf("%w: %v", ErrInvalidVertex, v)
	}
	return int32(x), nil
}

func (f *Forest[V, T]) edge(e EdgeID) (nodeID, error) {
	if e.idx < 0 || int(e.idx) >= len(f.nodes) {
		return nilNode, fmt.Errorf("%w: %v", ErrInvalidEdge, e)
	}
	n := &f.nodes[e.idx]
	if n.kind != kindEdge || n.gen != e.gen || f.verts[n.ends[1]].dummy {
		return nilNode, fmt.Errorf("%w: %v", ErrInvalidEdge, e)
	}
	return e.idx, nil
}

func (f *Forest[V, T]) validateIfChecked(op string) error {
	if f.check == nil {
		return nil
	}
	if err := f.Validate(f.check); err != nil {
		return fmt.Errorf("after %s: %w", op, err)
	}
	return nil
}

// Len returns the number of vertices added to the forest.
func (f *Forest[V, T]) Len() int { return f.users }

// EdgeCount returns the number of linked edges.
func (f *Forest[V, T]) EdgeCount() int { return len(f.edges) }

// AddVertex adds an isolated vertex carrying val.
func (f *Forest[V, T]) AddVertex(val V) VertexID {
	var zero V
	x := f.newVertex(val, false)
	d := f.newVertex(zero, true)
	f.verts[x].pad = d
	f.verts[d].pad = x

	e := f.alloc(kindEdge)
	f.nodes[e].v = [2]int32{x, d}
	f.nodes[e].ends = [2]int32{x, d}
	f.nodes[e].fold = f.alg.Identity()
	f.fix(e)

	f.users++
	return vertexIDOf(x)
}

func (f *Forest[V, T]) Value(v VertexID) (V, error) {
	x, err := f.vertex(v)
	if err != nil {
		var zero V
		return zero, err
	}
	return f.verts[x].val, nil
}

// SetValue replaces the value of v. Only the cluster with v as its middle
// vertex depends on the value, after exposing v that is the root or nothing.
func (f *Forest[V, T]) SetValue(v VertexID, val V) error {
	x, err := f.vertex(v)
	if err != nil {
		return err
	}
	root := f.expose(x)
	f.verts[x].val = val
	if f.nodes[root].kind == kindCompress {
		f.push(root)
		if f.mid(root) == x {
			f.fix(root)
		}
	}
	return f.validateIfChecked("set value")
}

func (f *Forest[V, T]) connected(v, u int32) bool {
	if v == u {
		return true
	}
	ru := f.expose(u)
	rv := f.expose(v)
	// exposing v either moved ru below the new root or left it alone
	return ru == rv || f.nodes[ru].parent != nilNode
}

// Connected reports whether v and u are in the same tree.
func (f *Forest[V, T]) Connected(v, u VertexID) (bool, error) {
	x, err := f.vertex(v)
	if err != nil {
		return false, err
	}
	y, err := f.vertex(u)
	if err != nil {
		return false, err
	}
	return f.connected(x, y), nil
}

// Link adds an edge between v and u with weight w, oriented from v to u.
func (f *Forest[V, T]) Link(v, u VertexID, w T) (EdgeID, error) {
	x, err := f.vertex(v)
	if err != nil {
		return EdgeID{}, err
	}
	y, err := f.vertex(u)
	if err != nil {
		return EdgeID{}, err
	}
	if f.connected(x, y) {
		return EdgeID{}, fmt.Errorf("%w: %v and %v", ErrAlreadyConnected, v, u)
	}
	e := f.link(x, y, w)
	f.debugf("link: %v-%v edge %d", v, u, e)
	return EdgeID{idx: e, gen: f.nodes[e].gen}, f.validateIfChecked("link")
}

// Cut removes the edge between v and u.
func (f *Forest[V, T]) Cut(v, u VertexID) error {
	x, err := f.vertex(v)
	if err != nil {
		return err
	}
	y, err := f.vertex(u)
	if err != nil {
		return err
	}
	e, ok := f.edges[keyOf(x, y)]
	if !ok {
		return fmt.Errorf("%w: %v and %v", ErrEdgeNotFound, v, u)
	}
	f.cut(e)
	f.debugf("cut: %v-%v edge %d", v, u, e)
	return f.validateIfChecked("cut")
}

// CutEdge removes e. e is stale afterwards.
func (f *Forest[V, T]) CutEdge(e EdgeID) error {
	n, err := f.edge(e)
	if err != nil {
		return err
	}
	f.cut(n)
	f.debugf("cut: edge %v", e)
	return f.validateIfChecked("cut")
}

// Endpoints returns the vertices e was linked with, in link order.
func (f *Forest[V, T]) Endpoints(e EdgeID) (VertexID, VertexID, error) {
	n, err := f.edge(e)
	if err != nil {
		return 0, 0, err
	}
	ends := f.nodes[n].ends
	return vertexIDOf(ends[0]), vertexIDOf(ends[1]), nil
}

// EdgeWeight returns the weight of e oriented as it was linked.
func (f *Forest[V, T]) EdgeWeight(e EdgeID) (T, error) {
	n, err := f.edge(e)
	if err != nil {
		var zero T
		return zero, err
	}
	ends := f.nodes[n].ends
	ex := f.softExpose(ends[0], ends[1])
	invariant(ex.path == n, "edge %d is not the path between its endpoints", n)
	w := f.nodes[n].fold
	if ex.flip {
		w = f.alg.Reverse(w)
	}
	return w, nil
}

// SetEdgeWeight replaces the weight of e, w is oriented as e was linked.
func (f *Forest[V, T]) SetEdgeWeight(e EdgeID, w T) error {
	n, err := f.edge(e)
	if err != nil {
		return err
	}
	ends := f.nodes[n].ends
	ex := f.softExpose(ends[0], ends[1])
	invariant(ex.path == n, "edge %d is not the path between its endpoints", n)
	if ex.flip {
		w = f.alg.Reverse(w)
	}
	f.nodes[n].fold = w
	// after soft expose the ancestors of n are pushed and at most two deep
	for p := f.nodes[n].parent; p != nilNode; p = f.nodes[p].parent {
		f.fix(p)
	}
	return f.validateIfChecked("set edge weight")
}

// PathQuery folds the path from v to u. The subtrees hanging off the path
// at its inner vertices are part of the fold, those at v and u are not. The
// fold of a vertex to itself is Identity.
func (f *Forest[V, T]) PathQuery(v, u VertexID) (T, error) {
	var zero T
	x, err := f.vertex(v)
	if err != nil {
		return zero, err
	}
	y, err := f.vertex(u)
	if err != nil {
		return zero, err
	}
	if x == y {
		return f.alg.Identity(), nil
	}
	if !f.connected(x, y) {
		return zero, fmt.Errorf("%w: %v and %v", ErrNotConnected, v, u)
	}
	ex := f.softExpose(x, y)
	fold := f.nodes[ex.path].fold
	if ex.flip {
		fold = f.alg.Reverse(fold)
	}
	return fold, nil
}

// TreeFold returns the summary of the whole tree containing v.
func (f *Forest[V, T]) TreeFold(v VertexID) (T, error) {
	x, err := f.vertex(v)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.nodes[f.expose(x)].fold, nil
}

// Select walks the tree containing v towards the side sel picks at each
// split and returns the endpoints of the edge it ends on. Padding edges
// report their owner for both endpoints, so a single vertex tree returns
// (v, v).
func (f *Forest[V, T]) Select(v VertexID, sel Selector[V, T]) (VertexID, VertexID, error) {
	x, err := f.vertex(v)
	if err != nil {
		return 0, 0, err
	}
	e := f.selectEdge(x, sel)
	a, b := f.nodes[e].v[0], f.nodes[e].v[1]
	// bring the chosen edge up so the descent is paid for
	f.softExpose(a, b)
	return vertexIDOf(f.owner(a)), vertexIDOf(f.owner(b)), nil
}

func (f *Forest[V, T]) owner(x int32) int32 {
	if f.verts[x].dummy {
		return f.verts[x].pad
	}
	return x
}

// RootedFold returns the summary of the whole tree containing v, oriented
// so that it starts at v. With a distance algebra its left reach is the
// distance from v to the farthest vertex.
func (f *Forest[V, T]) RootedFold(v VertexID) (T, error) {
	x, err := f.vertex(v)
	if err != nil {
		var zero T
		return zero, err
	}
	root := f.expose(x)
	n := &f.nodes[root]
	switch {
	case n.v[0] == x:
		return n.fold, nil
	case n.v[1] == x:
		return f.alg.Reverse(n.fold), nil
	}
	f.push(root)
	left := f.nodes[n.ch[0]].fold
	if n.rake != nilNode {
		left = f.alg.Rake(left, f.nodes[n.rake].fold)
	}
	return f.hangFront(f.nodes[n.ch[1]].fold, left), nil
}
