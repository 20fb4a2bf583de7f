package toptreetesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-toptree/graph"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    *testing.T
}

type TestConfig struct {
	// Seed fixes the random trees and operation sequences so a failure
	// reproduces from run to run.
	Seed            int64
	TestLabelPrefix string
	// LogLevel defaults to NOOP.
	LogLevel string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	return TestContext{
		T:    t,
		Log:  logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		Rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomTree returns a random tree on n vertices with edge weights in
// [0, maxWeight] and vertex weights in [1, 4]. The edges are listed in a
// random order and with random orientation.
func (c *TestContext) RandomTree(n int, maxWeight int64) graph.Graph {
	g := graph.Graph{Vertices: n, Weights: make([]int64, n)}
	perm := c.Rand.Perm(n)
	for i := 0; i < n; i++ {
		g.Weights[i] = 1 + c.Rand.Int63n(4)
		if i == 0 {
			continue
		}
		a, b := perm[i], perm[c.Rand.Intn(i)]
		if c.Rand.Intn(2) == 0 {
			a, b = b, a
		}
		g.Edges = append(g.Edges, graph.Edge{A: a, B: b, Weight: c.Rand.Int63n(maxWeight + 1)})
	}
	c.Rand.Shuffle(len(g.Edges), func(i, j int) { g.Edges[i], g.Edges[j] = g.Edges[j], g.Edges[i] })
	return g
}
