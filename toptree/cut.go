package toptree

// cut removes edge e. Both endpoints of a caller edge also carry their
// padding edge, so after soft exposure e always sits between two middle
// vertices: v = mid(root), u = mid(root.ch[1]) and e = root.ch[1].ch[0].
func (f *Forest[V, T]) cut(e nodeID) {
	a, b := f.nodes[e].ends[0], f.nodes[e].ends[1]
	ex := f.softExpose(a, b)
	root := ex.root
	s := f.nodes[root].ch[1]
	invariant(!ex.flip && ex.path == e && f.nodes[s].kind == kindCompress && f.nodes[s].ch[0] == e,
		"edge %d (%d-%d) is not isolated by soft expose", e, a, b)

	f.nodes[s].parent = nilNode
	f.bring(s, 0)
	f.bring(root, 1)

	delete(f.edges, keyOf(a, b))
	f.release(e)
}

// bring repairs root n after its path child ch[dir] was taken away. A
// cluster from the rake of n is promoted into the gap, or if n has no rake
// the remaining child replaces n.
func (f *Forest[V, T]) bring(n nodeID, dir int) {
	r := f.nodes[n].rake
	switch {
	case r == nilNode:
		c := f.nodes[n].ch[dir^1]
		f.nodes[c].parent = nilNode
		f.fix(c)
		f.release(n)

	case f.nodes[r].kind != kindRake:
		f.nodes[n].rake = nilNode
		f.place(n, dir, r)

	default:
		for f.nodes[f.nodes[r].ch[1]].kind == kindRake {
			r = f.nodes[r].ch[1]
		}
		// r stays on the right spine while splaying, so ch[1] is kept.
		f.splayRake(r)
		leaf, rest := f.nodes[r].ch[1], f.nodes[r].ch[0]
		f.nodes[n].rake = rest
		f.nodes[rest].parent = n
		f.fix(rest)
		f.release(r)
		f.place(n, dir, leaf)
	}
}

// place puts a former rake leaf, which ends at mid(n), into path slot dir.
func (f *Forest[V, T]) place(n nodeID, dir int, leaf nodeID) {
	if dir == 1 {
		f.reverse(leaf)
	}
	f.nodes[n].ch[dir] = leaf
	f.nodes[leaf].parent = n
	f.fix(leaf)
	f.fix(n)
}
