package toptree

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidVertex    = errors.New("toptree: invalid vertex")
	ErrInvalidEdge      = errors.New("toptree: invalid or stale edge")
	ErrAlreadyConnected = errors.New("toptree: vertices are already connected")
	ErrNotConnected     = errors.New("toptree: vertices are not connected")
	ErrEdgeNotFound     = errors.New("toptree: no edge between the vertices")
	ErrInvariant        = errors.New("toptree: structural invariant violated")
)

// Algebra supplies the cluster summaries maintained by a Forest.
//
// A cluster is a connected piece of a tree with at most two boundary
// vertices, v[0] and v[1]. Compress joins two path adjacent clusters which
// meet at mid into one cluster spanning both. Rake hangs right at the v[1]
// boundary of left, the result keeps left's boundary. Reverse swaps the
// orientation of a cluster. Identity is the summary of an empty path and is
// used as the weight of the synthetic edge that pads every vertex.
//
// Folds are computed as Compress(Rake(a, k), b, mid) where k is the summary
// of the subtrees hanging at mid, so Rake must accept a cluster that ends at
// the same vertex as left.
type Algebra[V, T any] interface {
	Identity() T
	Compress(left, right T, mid V) T
	Rake(left, right T) T
	Reverse(x T) T
}

// Selector steers Select. It is offered the whole tree split at mid into
// left, which ends at mid, and right, which starts at mid. Returning 0 picks
// the left side, anything else picks the right side.
type Selector[V, T any] func(left, right T, mid V) int

// VertexID identifies a vertex of a Forest. The zero VertexID is never valid.
type VertexID uint32

func (v VertexID) String() string { return fmt.Sprintf("v%d", uint32(v)) }

func vertexIDOf(x int32) VertexID { return VertexID(x + 1) }

// EdgeID identifies an edge of a Forest. An EdgeID becomes stale once the
// edge is cut.
type EdgeID struct {
	idx nodeID
	gen uint32
}

func (e EdgeID) String() string { return fmt.Sprintf("e%d.%d", e.idx, e.gen) }

type edgeKey struct{ a, b int32 }

func keyOf(a, b int32) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// invariant panics when the cluster structure is inconsistent. These are
// programming errors, never caller errors.
func invariant(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...))
}
