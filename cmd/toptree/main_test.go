package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/forestrie/go-toptree/graph"
	"github.com/forestrie/go-toptree/toptreetesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the driver with stdin set to input and returns what it wrote
// to stdout.
func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func thirteen(t *testing.T) graph.Graph {
	tc := toptreetesting.NewTestContext(t, toptreetesting.TestConfig{TestLabelPrefix: "toptree"})
	return tc.Fixture("thirteen")
}

func asText(g graph.Graph) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", g.Vertices)
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "%d %d %d\n", e.A, e.B, e.Weight)
	}
	return b.String()
}

func asYAML(t *testing.T, g graph.Graph) string {
	var buf bytes.Buffer
	require.NoError(t, graph.WriteYAML(&buf, g))
	return buf.String()
}

func TestDiameter(t *testing.T) {
	g := thirteen(t)

	out, err := run(t, asText(g), "diameter")
	require.NoError(t, err)
	assert.Equal(t, "tree 0: diameter = 36\n", out)

	out, err = run(t, asYAML(t, g), "--format", "yaml", "diameter")
	require.NoError(t, err)
	assert.Equal(t, "tree 0: diameter = 36\n", out)
}

func TestDiameter_Forest(t *testing.T) {
	// yaml documents may describe a forest, vertex 4 stays isolated
	out, err := run(t, "vertices: 5\nedges:\n  - {a: 0, b: 1, w: 2}\n  - {a: 3, b: 2, w: 7}\n", "--format", "yaml", "diameter")
	require.NoError(t, err)
	assert.Equal(t, "tree 0: diameter = 2\ntree 2: diameter = 7\ntree 4: diameter = 0\n", out)
}

func TestPath(t *testing.T) {
	out, err := run(t, asText(thirteen(t)), "path", "1:0", "3:11", "12:6")
	require.NoError(t, err)
	assert.Equal(t, "path 1 0 = 1\npath 3 11 = 27\npath 12 6 = 18\n", out)

	_, err = run(t, asText(thirteen(t)), "path", "1-0")
	assert.ErrorContains(t, err, "want a:b")

	_, err = run(t, asText(thirteen(t)), "path", "1:13")
	assert.ErrorContains(t, err, "out of range")
}

func TestCut(t *testing.T) {
	out, err := run(t, asText(thirteen(t)), "cut", "0", "5")
	require.NoError(t, err)
	assert.Equal(t, "0 diameter = 24\n5 diameter = 20\n", out)

	_, err = run(t, asText(thirteen(t)), "cut", "2", "4")
	assert.Error(t, err)
}

func TestCenterAndMedian(t *testing.T) {
	path := "3\n0 1 1\n1 2 1\n"

	out, err := run(t, path, "center")
	require.NoError(t, err)
	assert.Contains(t, out, "center = 1, radius = 1\n")

	out, err = run(t, path, "median")
	require.NoError(t, err)
	assert.Contains(t, out, "median = 1, cost = 2\n")

	// the diameter path of thirteen has two centers, both at distance 20
	out, err = run(t, asText(thirteen(t)), "center")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "tree 0: center edge"))
	assert.Contains(t, out, "radius = 20\n")
}

func TestFarthest(t *testing.T) {
	ops := "5\n1 0 3\n1 1 4\n3 0 0\n2 1 10\n3 2 0\n"
	out, err := run(t, ops, "farthest")
	require.NoError(t, err)
	assert.Equal(t, "farthest from 0 = 7\nfarthest from 2 = 14\n", out)

	_, err = run(t, "1\n2 1 5\n", "farthest")
	assert.ErrorContains(t, err, "no edge 1")

	_, err = run(t, "2\n1 0 3\n", "farthest")
	assert.ErrorContains(t, err, "operation 1")
}

func TestBadInput(t *testing.T) {
	_, err := run(t, "", "--format", "json", "diameter")
	assert.ErrorContains(t, err, `unknown input format "json"`)

	_, err = run(t, "3\n0 1 1\n", "diameter")
	assert.ErrorIs(t, err, graph.ErrFormat)

	_, err = run(t, "3\n0 1 1\n1 0 1\n", "diameter")
	assert.Error(t, err)
}
