package algebra

// Mass is the total vertex weight inside a cluster, boundary vertices
// excluded.
type Mass[W Number] struct {
	Weight W `yaml:"weight"`
}

// Median uses the vertex values as weights. Selecting with SelectMedian
// finds the weighted 1-median: the vertex minimising the weighted sum of
// distances to every other vertex. Edge lengths do not move the median, so
// every edge carries the zero Mass.
type Median[W Number] struct{}

func (Median[W]) Identity() Mass[W] { return Mass[W]{} }

func (Median[W]) Compress(a, b Mass[W], mid W) Mass[W] {
	return Mass[W]{Weight: a.Weight + b.Weight + mid}
}

func (Median[W]) Rake(a, b Mass[W]) Mass[W] {
	return Mass[W]{Weight: a.Weight + b.Weight}
}

func (Median[W]) Reverse(x Mass[W]) Mass[W] { return x }

// SelectMedian keeps to the heavier side. One endpoint of the returned edge
// is a weighted median.
func SelectMedian[W Number](left, right Mass[W], _ W) int {
	if left.Weight >= right.Weight {
		return 0
	}
	return 1
}
