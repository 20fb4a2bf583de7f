package toptree

// link joins the trees of v and u with a new edge. The trees must be
// distinct.
func (f *Forest[V, T]) link(v, u int32, w T) nodeID {
	e := f.alloc(kindEdge)
	f.nodes[e].v = [2]int32{v, u}
	f.nodes[e].ends = [2]int32{v, u}
	f.nodes[e].fold = w

	// Building the u side makes the new cluster the handle of v, so take
	// the handle into v's own tree first.
	hv := f.verts[v].handle
	left := f.graftFront(e, u)
	f.graftBack(f.exposeFrom(hv), left, v)

	f.edges[keyOf(v, u)] = e
	return e
}

// graftFront exposes u and joins e (ending at u) in front of it. The
// returned root starts at the far endpoint of e.
func (f *Forest[V, T]) graftFront(e nodeID, u int32) nodeID {
	root := f.expose(u)
	if f.nodes[root].v[1] == u {
		f.reverse(root)
	}
	f.push(root)

	if f.nodes[root].v[0] == u {
		c := f.alloc(kindCompress)
		f.nodes[c].ch = [2]nodeID{e, root}
		f.nodes[e].parent = c
		f.nodes[root].parent = c
		f.fix(e)
		f.fix(root)
		f.fix(c)
		return c
	}

	invariant(f.nodes[root].kind == kindCompress && f.mid(root) == u, "%d is not exposed in root %d", u, root)
	old := f.nodes[root].ch[0]
	f.nodes[root].ch[0] = e
	f.nodes[e].parent = root
	f.fix(e)
	f.hang(root, old)
	f.fix(root)
	return root
}

// graftBack appends left (starting at v) after the exposed root of v's tree.
func (f *Forest[V, T]) graftBack(root, left nodeID, v int32) {
	if f.nodes[root].v[0] == v {
		f.reverse(root)
	}
	f.push(root)

	if f.nodes[root].v[1] == v {
		c := f.alloc(kindCompress)
		f.nodes[c].ch = [2]nodeID{root, left}
		f.nodes[root].parent = c
		f.nodes[left].parent = c
		f.fix(root)
		f.fix(left)
		f.fix(c)
		return
	}

	invariant(f.nodes[root].kind == kindCompress && f.mid(root) == v, "%d is not exposed in root %d", v, root)
	old := f.nodes[root].ch[1]
	f.reverse(old)
	f.nodes[root].ch[1] = left
	f.nodes[left].parent = root
	f.fix(left)
	f.hang(root, old)
	f.fix(root)
}

// hang adds leaf, a compression root ending at mid(n), to the rake of n.
func (f *Forest[V, T]) hang(n, leaf nodeID) {
	r := f.nodes[n].rake
	if r == nilNode {
		f.nodes[n].rake = leaf
		f.nodes[leaf].parent = n
		f.fix(leaf)
		return
	}
	k := f.alloc(kindRake)
	f.nodes[k].ch = [2]nodeID{r, leaf}
	f.nodes[k].parent = n
	f.nodes[r].parent = k
	f.nodes[leaf].parent = k
	f.nodes[n].rake = k
	f.fix(r)
	f.fix(leaf)
	f.fix(k)
}
