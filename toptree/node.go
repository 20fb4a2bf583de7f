package toptree

type nodeID int32

const nilNode nodeID = -1

type nodeKind uint8

const (
	kindFree nodeKind = iota
	kindEdge
	kindCompress
	kindRake
)

func (k nodeKind) String() string {
	switch k {
	case kindEdge:
		return "edge"
	case kindCompress:
		return "compress"
	case kindRake:
		return "rake"
	default:
		return "free"
	}
}

// node is the arena record shared by the three cluster kinds.
//
//	edge:     v, parent, fold (the weight), ends
//	compress: ch (path children), v, rake, parent, rev, guard, fold
//	rake:     ch (rake nodes or compression roots), parent, fold
type node[T any] struct {
	kind  nodeKind
	rev   bool
	guard bool
	gen   uint32

	ch [2]nodeID
	// v are the boundary vertices in the current orientation.
	v [2]int32
	// ends are the endpoints an edge was linked with, its weight is
	// reported oriented from ends[0] to ends[1].
	ends   [2]int32
	rake   nodeID
	parent nodeID
	fold   T
}

type vertex[V any] struct {
	val    V
	handle nodeID
	// pad is the synthetic partner of a vertex, or the owner of a dummy.
	pad   int32
	dummy bool
}

func (f *Forest[V, T]) alloc(kind nodeKind) nodeID {
	var id nodeID
	if n := len(f.free); n > 0 {
		id = f.free[n-1]
		f.free = f.free[:n-1]
	} else {
		f.nodes = append(f.nodes, node[T]{})
		id = nodeID(len(f.nodes) - 1)
	}
	gen := f.nodes[id].gen
	f.nodes[id] = node[T]{
		kind:   kind,
		gen:    gen,
		ch:     [2]nodeID{nilNode, nilNode},
		rake:   nilNode,
		parent: nilNode,
	}
	return id
}

func (f *Forest[V, T]) release(id nodeID) {
	gen := f.nodes[id].gen + 1
	f.nodes[id] = node[T]{
		kind:   kindFree,
		gen:    gen,
		ch:     [2]nodeID{nilNode, nilNode},
		rake:   nilNode,
		parent: nilNode,
	}
	f.free = append(f.free, id)
}

func (f *Forest[V, T]) newVertex(val V, dummy bool) int32 {
	f.verts = append(f.verts, vertex[V]{val: val, handle: nilNode, pad: -1, dummy: dummy})
	return int32(len(f.verts) - 1)
}

func (f *Forest[V, T]) isPath(x nodeID) bool {
	k := f.nodes[x].kind
	return k == kindEdge || k == kindCompress
}

// mid is the vertex shared by the children of a pushed compress node.
func (f *Forest[V, T]) mid(x nodeID) int32 {
	return f.nodes[f.nodes[x].ch[0]].v[1]
}

// reverse flips the orientation of a path cluster. Compress children are
// swapped at once, their own contents are flipped lazily by push.
func (f *Forest[V, T]) reverse(x nodeID) {
	n := &f.nodes[x]
	switch n.kind {
	case kindEdge:
		n.v[0], n.v[1] = n.v[1], n.v[0]
		n.fold = f.alg.Reverse(n.fold)
	case kindCompress:
		n.ch[0], n.ch[1] = n.ch[1], n.ch[0]
		n.v[0], n.v[1] = n.v[1], n.v[0]
		n.fold = f.alg.Reverse(n.fold)
		n.rev = !n.rev
	default:
		invariant(false, "reverse of %s node %d", n.kind, x)
	}
}

// push hands a pending reversal down to the children. The rake is not
// affected, rake leaves always end at the middle vertex.
func (f *Forest[V, T]) push(x nodeID) {
	n := &f.nodes[x]
	if n.kind != kindCompress || !n.rev {
		return
	}
	n.rev = false
	f.reverse(n.ch[0])
	f.reverse(n.ch[1])
}

// fix recomputes the boundary and summary of x from its children and moves
// vertex handles onto x where x is now the outermost cluster.
func (f *Forest[V, T]) fix(x nodeID) {
	switch f.nodes[x].kind {
	case kindEdge:
		f.fixHandles(x)
	case kindCompress:
		f.push(x)
		n := &f.nodes[x]
		a, b := &f.nodes[n.ch[0]], &f.nodes[n.ch[1]]
		invariant(a.v[1] == b.v[0], "compress %d: children %d and %d are not adjacent", x, n.ch[0], n.ch[1])
		m := a.v[1]
		left := a.fold
		if n.rake != nilNode {
			left = f.alg.Rake(left, f.nodes[n.rake].fold)
		}
		n.v = [2]int32{a.v[0], b.v[1]}
		n.fold = f.alg.Compress(left, b.fold, f.verts[m].val)
		f.verts[m].handle = x
		f.fixHandles(x)
	case kindRake:
		n := &f.nodes[x]
		n.fold = f.alg.Rake(f.nodes[n.ch[0]].fold, f.nodes[n.ch[1]].fold)
	default:
		invariant(false, "fix of free node %d", x)
	}
}

func (f *Forest[V, T]) fixHandles(x nodeID) {
	n := &f.nodes[x]
	switch f.attachmentOf(x).kind {
	case attachNone:
		f.verts[n.v[0]].handle = x
		f.verts[n.v[1]].handle = x
	case attachRake, attachRakeRoot:
		// v[1] is the middle vertex of the owning compress node.
		f.verts[n.v[0]].handle = x
	}
}
