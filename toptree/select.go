package toptree

// hangFront hangs k at the start of y and keeps y's orientation.
func (f *Forest[V, T]) hangFront(y, k T) T {
	return f.alg.Reverse(f.alg.Rake(f.alg.Reverse(y), k))
}

// selectEdge descends from the root of x's tree to a single edge. At every
// step sel sees the whole tree split in two at one vertex: the clusters
// outside the current node are carried along as outL, ending at v[0], and
// outR, starting at v[1].
func (f *Forest[V, T]) selectEdge(x int32, sel Selector[V, T]) nodeID {
	cur := f.expose(x)

	var outL, outR T
	hasL, hasR := false, false
	for f.nodes[cur].kind == kindCompress {
		f.push(cur)
		n := f.nodes[cur]
		midVal := f.verts[f.mid(cur)].val

		left := f.nodes[n.ch[0]].fold
		if hasL {
			left = f.alg.Compress(outL, left, f.verts[n.v[0]].val)
		}
		right := f.nodes[n.ch[1]].fold
		if hasR {
			right = f.alg.Compress(right, outR, f.verts[n.v[1]].val)
		}
		raked := left
		if n.rake != nilNode {
			raked = f.alg.Rake(left, f.nodes[n.rake].fold)
		}

		if sel(raked, right, midVal) != 0 {
			cur, outL, hasL = n.ch[1], raked, true
			continue
		}
		if n.rake == nilNode {
			cur, outR, hasR = n.ch[0], right, true
			continue
		}
		withRake := f.hangFront(right, f.nodes[n.rake].fold)
		if sel(left, withRake, midVal) == 0 {
			cur, outR, hasR = n.ch[0], withRake, true
			continue
		}

		var zero T
		cur, outR = f.selectRake(n.rake, f.hangFront(right, left), midVal, sel)
		outL, hasL, hasR = zero, false, true
	}
	return cur
}

// selectRake picks one leaf of the rake tree r hanging at a vertex with
// value midVal. out is everything else, as a cluster starting at that
// vertex. It returns the leaf and the new out.
func (f *Forest[V, T]) selectRake(r nodeID, out T, midVal V, sel Selector[V, T]) (nodeID, T) {
	for f.nodes[r].kind == kindRake {
		p, q := f.nodes[r].ch[0], f.nodes[r].ch[1]
		withQ := f.hangFront(out, f.nodes[q].fold)
		if sel(f.nodes[p].fold, withQ, midVal) == 0 {
			r, out = p, withQ
			continue
		}
		r, out = q, f.hangFront(out, f.nodes[p].fold)
	}
	return r, out
}
