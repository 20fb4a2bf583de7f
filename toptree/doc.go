package toptree

/*

# Self-adjusting top trees

This package maintains a forest of undirected, edge weighted trees under
link and cut, and answers path folds, whole tree folds and guided searches
in amortized polylogarithmic time through a caller supplied Algebra.

## Clusters

Every tree is represented by a hierarchy of clusters. A cluster is a
connected set of edges with at most two boundary vertices, v[0] and v[1].

- an edge is a cluster with its endpoints as boundary
- a compress node joins two path adjacent clusters ch[0] and ch[1] which
  meet at the middle vertex, mid = ch[0].v[1] = ch[1].v[0]. Clusters
  hanging off mid (the rake) are folded onto ch[0] first:

	fold = Compress(Rake(ch[0], rake), ch[1], mid)

- a rake node merges two clusters hanging at the same vertex. Its leaves
  are roots of compression trees oriented so that v[1] is the vertex they
  hang at

The compression trees and the rake trees are both kept as splay trees.

## Padding

AddVertex creates the vertex together with a hidden dummy vertex and an
edge to it carrying Identity(). This makes every vertex part of a real
cluster, so a tree is never empty, and it guarantees that the leaves of every
tree are dummies. The endpoints of a caller edge therefore always have
degree two or more, which is what lets cut find the edge between two middle
vertices after a soft expose.

## Exposure

expose(v) walks from the cluster v is handled by to the root, splaying each
compression tree and swapping rake leaves into the path so that v ends as
the middle vertex or an endpoint of the root cluster.

softExpose(v, u) exposes v, then freezes the root with a guard flag and
exposes u below it, leaving the v..u path as the root, one of its children
or one of its grandchildren.

## Orientation

A compress node can be reversed in O(1): its children are swapped and a rev
flag is set. The children are reversed only when the flag is pushed, which
happens top-down before any read of a child.

## Handles

Each vertex records the outermost cluster for which it is the middle vertex
or a real endpoint. Handles are refreshed by fix whenever a cluster is
recomputed.

*/
