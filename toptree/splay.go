package toptree

func (f *Forest[V, T]) dirOf(p, x nodeID) int {
	if f.nodes[p].ch[0] == x {
		return 0
	}
	return 1
}

// compParent returns the compress node x can be rotated above, nilNode if x
// is the root of its compression tree or sits directly below a guard.
func (f *Forest[V, T]) compParent(x nodeID) nodeID {
	p := f.nodes[x].parent
	if p == nilNode {
		return nilNode
	}
	pn := &f.nodes[p]
	if pn.kind != kindCompress || pn.guard {
		return nilNode
	}
	if pn.ch[0] != x && pn.ch[1] != x {
		return nilNode
	}
	return p
}

func (f *Forest[V, T]) rakeParent(x nodeID) nodeID {
	p := f.nodes[x].parent
	if p == nilNode || f.nodes[p].kind != kindRake {
		return nilNode
	}
	return p
}

// rotate lifts x above its parent. Both must already be pushed. The
// grandparent is relinked but not fixed, its summary is unchanged.
func (f *Forest[V, T]) rotate(x nodeID) {
	p := f.nodes[x].parent
	up := f.attachmentOf(p)
	d := f.dirOf(p, x)
	b := f.nodes[x].ch[d^1]

	f.nodes[p].ch[d] = b
	f.nodes[b].parent = p
	f.nodes[x].ch[d^1] = p
	f.nodes[p].parent = x
	f.replaceAttachment(up, x)

	f.fix(p)
	f.fix(x)
}

// pushPath clears pending reversals from the root of the compression tree
// holding x down to x.
func (f *Forest[V, T]) pushPath(x nodeID) {
	path := f.scratch[:0]
	for y := x; y != nilNode; y = f.compParent(y) {
		path = append(path, y)
	}
	if at := f.attachmentOf(path[len(path)-1]); at.kind == attachComp {
		// guarded parent
		f.push(at.parent)
	}
	for i := len(path) - 1; i >= 0; i-- {
		f.push(path[i])
	}
	f.scratch = path[:0]
}

func (f *Forest[V, T]) splayComp(x nodeID) {
	f.pushPath(x)
	for {
		p := f.compParent(x)
		if p == nilNode {
			return
		}
		g := f.compParent(p)
		switch {
		case g == nilNode:
			f.rotate(x)
		case f.dirOf(g, p) == f.dirOf(p, x):
			f.rotate(p)
			f.rotate(x)
		default:
			f.rotate(x)
			f.rotate(x)
		}
	}
}

// splayRake needs no pushes, rake nodes carry no orientation.
func (f *Forest[V, T]) splayRake(x nodeID) {
	for {
		p := f.rakeParent(x)
		if p == nilNode {
			return
		}
		g := f.rakeParent(p)
		switch {
		case g == nilNode:
			f.rotate(x)
		case f.dirOf(g, p) == f.dirOf(p, x):
			f.rotate(p)
			f.rotate(x)
		default:
			f.rotate(x)
			f.rotate(x)
		}
	}
}
