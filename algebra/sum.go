// Package algebra provides cluster algebras for toptree.Forest.
//
// Each algebra documents how edge weights are built and which fields of the
// summary answer which question.
package algebra

import (
	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum folds a path into the total of its edge weights. Raked subtrees and
// vertex values are ignored, so PathQuery returns the weighted path length.
type Sum[V any, N Number] struct{}

func (Sum[V, N]) Identity() N { return 0 }
func (Sum[V, N]) Compress(left, right N, _ V) N { return left + right }
func (Sum[V, N]) Rake(left, _ N) N { return left }
func (Sum[V, N]) Reverse(x N) N { return x }
