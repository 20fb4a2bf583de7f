package toptree

type attachKind uint8

const (
	// attachNone is a tree root.
	attachNone attachKind = iota
	// attachComp is a path child of a compress node.
	attachComp
	// attachRake is a child of a rake node.
	attachRake
	// attachRakeRoot is the rake of a compress node.
	attachRakeRoot
)

// attachment says how a node hangs off its parent. Every relink goes
// through attachmentOf and replaceAttachment so the three parent shapes
// are dispatched in exactly one place.
type attachment struct {
	kind   attachKind
	parent nodeID
	dir    int
}

func (f *Forest[V, T]) attachmentOf(x nodeID) attachment {
	p := f.nodes[x].parent
	if p == nilNode {
		return attachment{kind: attachNone, parent: nilNode}
	}
	pn := &f.nodes[p]
	switch pn.kind {
	case kindCompress:
		switch x {
		case pn.ch[0]:
			return attachment{kind: attachComp, parent: p, dir: 0}
		case pn.ch[1]:
			return attachment{kind: attachComp, parent: p, dir: 1}
		case pn.rake:
			return attachment{kind: attachRakeRoot, parent: p}
		}
	case kindRake:
		switch x {
		case pn.ch[0]:
			return attachment{kind: attachRake, parent: p, dir: 0}
		case pn.ch[1]:
			return attachment{kind: attachRake, parent: p, dir: 1}
		}
	}
	invariant(false, "node %d is not a child of its parent %d (%s)", x, p, pn.kind)
	return attachment{}
}

// replaceAttachment puts y where a points and makes a.parent the parent of y.
func (f *Forest[V, T]) replaceAttachment(a attachment, y nodeID) {
	switch a.kind {
	case attachComp, attachRake:
		f.nodes[a.parent].ch[a.dir] = y
	case attachRakeRoot:
		f.nodes[a.parent].rake = y
	}
	f.nodes[y].parent = a.parent
}
