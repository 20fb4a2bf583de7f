package algebra

// Reach summarises a cluster for distance queries. For a cluster with
// boundary v[0] and v[1]:
//
//	Diameter  longest path between two vertices of the cluster
//	Left      distance from v[0] to the farthest vertex of the cluster
//	Right     distance from v[1] to the farthest vertex of the cluster
//	Length    distance from v[0] to v[1]
type Reach[N Number] struct {
	Diameter N `yaml:"diameter"`
	Left     N `yaml:"left"`
	Right    N `yaml:"right"`
	Length   N `yaml:"length"`
}

// Edge returns the summary of a single edge of length w.
func Edge[N Number](w N) Reach[N] {
	return Reach[N]{Diameter: w, Left: w, Right: w, Length: w}
}

// Distance maintains Reach over non negative edge lengths. The whole tree
// fold carries the tree diameter, and RootedFold(v).Left is the distance from
// v to its farthest vertex.
type Distance[V any, N Number] struct{}

func (Distance[V, N]) Identity() Reach[N] { return Reach[N]{} }

func (Distance[V, N]) Compress(a, b Reach[N], _ V) Reach[N] {
	return Reach[N]{
		Diameter: max(a.Diameter, b.Diameter, a.Right+b.Left),
		Left:     max(a.Left, a.Length+b.Left),
		Right:    max(b.Right, b.Length+a.Right),
		Length:   a.Length + b.Length,
	}
}

// Rake hangs b, which ends at a.v[1], onto a.
func (Distance[V, N]) Rake(a, b Reach[N]) Reach[N] {
	return Reach[N]{
		Diameter: max(a.Diameter, b.Diameter, a.Right+b.Right),
		Left:     max(a.Left, a.Length+b.Right),
		Right:    max(a.Right, b.Right),
		Length:   a.Length,
	}
}

func (Distance[V, N]) Reverse(x Reach[N]) Reach[N] {
	x.Left, x.Right = x.Right, x.Left
	return x
}

// SelectCenter steers Select towards the center of the tree, the vertex
// with the least eccentricity is one of the endpoints of the returned edge.
func SelectCenter[V any, N Number](left, right Reach[N], _ V) int {
	if left.Right >= right.Left {
		return 0
	}
	return 1
}
