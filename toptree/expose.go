package toptree

// expose restructures the tree holding x so that x is the middle vertex or
// an endpoint of the returned node. Without a guard that node is the root of
// the whole tree. With a guarded root the walk stops at the guarded node or
// at one of its path children.
func (f *Forest[V, T]) expose(x int32) nodeID {
	return f.exposeFrom(f.verts[x].handle)
}

func (f *Forest[V, T]) exposeFrom(cur nodeID) nodeID {
	for {
		if f.nodes[cur].kind == kindCompress {
			f.splayComp(cur)
		}

		var n nodeID
		switch at := f.attachmentOf(cur); at.kind {
		case attachNone:
			return cur
		case attachComp:
			invariant(f.nodes[at.parent].guard, "expose stopped below unguarded compress %d", at.parent)
			return cur
		case attachRake:
			f.splayRake(at.parent)
			n = f.nodes[at.parent].parent
		case attachRakeRoot:
			n = at.parent
		}
		invariant(n != nilNode && f.nodes[n].kind == kindCompress, "rake of node %d has no compress owner", cur)

		// Swap cur, a cluster hanging at mid(n), with the path child of n
		// on the side facing away from any guard.
		f.splayComp(n)
		dir := 0
		if up := f.attachmentOf(n); up.kind == attachComp {
			dir = up.dir
		}
		old := f.nodes[n].ch[dir]
		if dir == 1 {
			f.reverse(old)
			f.reverse(cur)
		}
		holder := f.attachmentOf(cur)
		f.replaceAttachment(holder, old)
		f.nodes[n].ch[dir] = cur
		f.nodes[cur].parent = n

		f.fix(old)
		if holder.kind == attachRake {
			f.fix(holder.parent)
			f.splayRake(holder.parent)
		}
		f.fix(cur)
		f.fix(n)

		if f.nodes[cur].kind == kindEdge {
			cur = n
		}
	}
}

// exposure locates the v..u path after softExpose.
type exposure struct {
	root nodeID
	// path is the node whose cluster is exactly the v..u path, nilNode
	// when v == u.
	path nodeID
	// flip is set when path is oriented from u to v.
	flip bool
}

// softExpose exposes v and u together. The result is one of:
//
//	root == path, oriented u..v                    (v and u are both leaves)
//	path == root.ch[1], oriented u..v              (v leaf, u middle of root)
//	path == root.ch[1]                             (v middle, u endpoint)
//	path == root.ch[1].ch[0]                       (v middle of root, u middle of root.ch[1])
//
// v and u must be connected.
func (f *Forest[V, T]) softExpose(v, u int32) exposure {
	root := f.expose(v)
	if v == u {
		return exposure{root: root, path: nilNode}
	}
	if f.nodes[root].v[0] == v {
		f.reverse(root)
	}
	f.push(root)

	if f.nodes[root].v[1] == v {
		root = f.expose(u)
		f.push(root)
		rn := &f.nodes[root]
		invariant(rn.v[1] == v, "leaf %d moved while exposing %d", v, u)
		if rn.v[0] == u {
			return exposure{root: root, path: root, flip: true}
		}
		invariant(rn.kind == kindCompress && f.mid(root) == u, "%d is not exposed in root %d", u, root)
		return exposure{root: root, path: rn.ch[1], flip: true}
	}

	invariant(f.nodes[root].kind == kindCompress && f.mid(root) == v, "%d is not exposed in root %d", v, root)
	s := f.exposeGuarded(root, u)
	if s == f.nodes[root].ch[0] || f.nodes[root].v[0] == u {
		f.reverse(root)
		f.push(root)
	}
	rn := &f.nodes[root]
	if rn.v[1] == u {
		return exposure{root: root, path: rn.ch[1]}
	}
	s = rn.ch[1]
	f.push(s)
	invariant(f.nodes[s].kind == kindCompress && f.mid(s) == u, "%d is not exposed below root %d", u, root)
	return exposure{root: root, path: f.nodes[s].ch[0]}
}

// exposeGuarded exposes u while root is frozen in place, then refreshes
// root.
func (f *Forest[V, T]) exposeGuarded(root nodeID, u int32) nodeID {
	f.nodes[root].guard = true
	defer func() {
		f.nodes[root].guard = false
		f.fix(root)
	}()
	return f.expose(u)
}
