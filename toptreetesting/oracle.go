package toptreetesting

import (
	"github.com/forestrie/go-toptree/graph"
)

type arc struct {
	to int
	w  int64
}

// Oracle answers the same questions as a forest by walking adjacency lists,
// in linear time per query.
type Oracle struct {
	adj     [][]arc
	weights []int64
}

func NewOracle(g graph.Graph) *Oracle {
	o := &Oracle{adj: make([][]arc, g.Vertices), weights: make([]int64, g.Vertices)}
	for i := range o.weights {
		o.weights[i] = g.VertexWeight(i)
	}
	for _, e := range g.Edges {
		o.Link(e.A, e.B, e.Weight)
	}
	return o
}

func (o *Oracle) Len() int { return len(o.adj) }

func (o *Oracle) Link(a, b int, w int64) {
	o.adj[a] = append(o.adj[a], arc{to: b, w: w})
	o.adj[b] = append(o.adj[b], arc{to: a, w: w})
}

func (o *Oracle) Cut(a, b int) bool {
	return o.drop(a, b) && o.drop(b, a)
}

func (o *Oracle) drop(a, b int) bool {
	for i, x := range o.adj[a] {
		if x.to == b {
			o.adj[a] = append(o.adj[a][:i], o.adj[a][i+1:]...)
			return true
		}
	}
	return false
}

func (o *Oracle) SetWeight(a, b int, w int64) {
	for _, p := range [][2]int{{a, b}, {b, a}} {
		for i := range o.adj[p[0]] {
			if o.adj[p[0]][i].to == p[1] {
				o.adj[p[0]][i].w = w
			}
		}
	}
}

// Distances returns the distance from a to every vertex, -1 where there is
// no path.
func (o *Oracle) Distances(a int) []int64 {
	dist := make([]int64, len(o.adj))
	for i := range dist {
		dist[i] = -1
	}
	dist[a] = 0
	stack := []int{a}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, y := range o.adj[x] {
			if dist[y.to] < 0 {
				dist[y.to] = dist[x] + y.w
				stack = append(stack, y.to)
			}
		}
	}
	return dist
}

func (o *Oracle) Connected(a, b int) bool { return o.Distances(a)[b] >= 0 }

// Component lists the vertices in the tree of a.
func (o *Oracle) Component(a int) []int {
	var c []int
	for i, d := range o.Distances(a) {
		if d >= 0 {
			c = append(c, i)
		}
	}
	return c
}

func (o *Oracle) Eccentricity(a int) int64 {
	var m int64
	for _, d := range o.Distances(a) {
		m = max(m, d)
	}
	return m
}

func (o *Oracle) Diameter(a int) int64 {
	var m int64
	for _, x := range o.Component(a) {
		m = max(m, o.Eccentricity(x))
	}
	return m
}

// Radius is the least eccentricity over the tree of a.
func (o *Oracle) Radius(a int) int64 {
	r := int64(-1)
	for _, x := range o.Component(a) {
		if e := o.Eccentricity(x); r < 0 || e < r {
			r = e
		}
	}
	return r
}

// DistanceSum is the vertex weighted sum of distances from a.
func (o *Oracle) DistanceSum(a int) int64 {
	var s int64
	for i, d := range o.Distances(a) {
		if d > 0 {
			s += d * o.weights[i]
		}
	}
	return s
}

// MinDistanceSum is the weighted 1-median cost of the tree of a.
func (o *Oracle) MinDistanceSum(a int) int64 {
	best := int64(-1)
	for _, x := range o.Component(a) {
		if s := o.DistanceSum(x); best < 0 || s < best {
			best = s
		}
	}
	return best
}
