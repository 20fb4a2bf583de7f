package toptree

import (
	"fmt"
)

type validator[V, T any] struct {
	f     *Forest[V, T]
	eq    func(a, b T) bool
	edges int
}

func (c *validator[V, T]) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...)
}

// Validate checks the whole structure: parent links, adjacency of path
// children, orientation of rake leaves, vertex handles and, using eq, every
// cached summary against one recomputed from the edges up. Pending
// reversals are pushed down as a side effect.
func (f *Forest[V, T]) Validate(eq func(a, b T) bool) error {
	c := &validator[V, T]{f: f, eq: eq}
	for id := range f.nodes {
		x := nodeID(id)
		n := &f.nodes[x]
		if n.kind == kindFree || n.parent != nilNode {
			continue
		}
		if n.guard {
			return c.errorf("root %d left guarded", x)
		}
		if _, err := c.path(x, nilNode); err != nil {
			return err
		}
	}
	if want := len(f.edges) + f.users; c.edges != want {
		return c.errorf("%d edges reachable, want %d", c.edges, want)
	}
	for key, e := range f.edges {
		n := &f.nodes[e]
		if n.kind != kindEdge || keyOf(n.ends[0], n.ends[1]) != key {
			return c.errorf("edge index entry %v points at %s node %d", key, n.kind, e)
		}
	}
	for i := range f.verts {
		if err := c.handle(int32(i)); err != nil {
			return err
		}
	}
	return nil
}

// path checks the compression subtree at x and returns its summary
// recomputed from scratch.
func (c *validator[V, T]) path(x, parent nodeID) (T, error) {
	f := c.f
	var zero T
	n := &f.nodes[x]
	if n.parent != parent {
		return zero, c.errorf("node %d has parent %d, want %d", x, n.parent, parent)
	}
	switch n.kind {
	case kindEdge:
		c.edges++
		return n.fold, nil
	case kindCompress:
	default:
		return zero, c.errorf("%s node %d on a path", n.kind, x)
	}
	if n.guard {
		return zero, c.errorf("compress %d left guarded", x)
	}

	f.push(x)
	a, b := n.ch[0], n.ch[1]
	left, err := c.path(a, x)
	if err != nil {
		return zero, err
	}
	right, err := c.path(b, x)
	if err != nil {
		return zero, err
	}
	m := f.nodes[a].v[1]
	if m != f.nodes[b].v[0] {
		return zero, c.errorf("compress %d: children %d and %d are not adjacent", x, a, b)
	}
	if n.v != [2]int32{f.nodes[a].v[0], f.nodes[b].v[1]} {
		return zero, c.errorf("compress %d: boundary %v does not match its children", x, n.v)
	}
	if n.rake != nilNode {
		k, err := c.rake(n.rake, x, m)
		if err != nil {
			return zero, err
		}
		left = f.alg.Rake(left, k)
	}
	want := f.alg.Compress(left, right, f.verts[m].val)
	if !c.eq(want, n.fold) {
		return zero, c.errorf("compress %d: cached summary %v, want %v", x, n.fold, want)
	}
	return want, nil
}

func (c *validator[V, T]) rake(x, parent nodeID, m int32) (T, error) {
	f := c.f
	var zero T
	n := &f.nodes[x]
	if n.parent != parent {
		return zero, c.errorf("node %d has parent %d, want %d", x, n.parent, parent)
	}
	if n.kind != kindRake {
		fold, err := c.path(x, parent)
		if err != nil {
			return zero, err
		}
		if n.v[1] != m {
			return zero, c.errorf("rake leaf %d ends at %d, not at %d", x, n.v[1], m)
		}
		return fold, nil
	}
	p, err := c.rake(n.ch[0], x, m)
	if err != nil {
		return zero, err
	}
	q, err := c.rake(n.ch[1], x, m)
	if err != nil {
		return zero, err
	}
	want := f.alg.Rake(p, q)
	if !c.eq(want, n.fold) {
		return zero, c.errorf("rake %d: cached summary %v, want %v", x, n.fold, want)
	}
	return want, nil
}

// handle checks that vertex x points at the outermost cluster it bounds.
// All reversals are pushed by the time it runs.
func (c *validator[V, T]) handle(x int32) error {
	f := c.f
	h := f.verts[x].handle
	if h < 0 || int(h) >= len(f.nodes) || !f.isPath(h) {
		return c.errorf("vertex %d has no cluster handle", x)
	}
	n := &f.nodes[h]
	if n.kind == kindCompress && f.mid(h) == x {
		return nil
	}
	if n.v[0] != x && n.v[1] != x {
		return c.errorf("vertex %d is not on its handle %d", x, h)
	}
	at := f.attachmentOf(h)
	switch {
	case at.kind == attachComp:
		return c.errorf("vertex %d handle %d is not outermost", x, h)
	case at.kind != attachNone && n.v[0] != x:
		return c.errorf("vertex %d handle %d is the attach point of a rake leaf", x, h)
	}
	return nil
}
