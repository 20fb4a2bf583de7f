package graph

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	g, err := ReadText(strings.NewReader("4\n0 1 5\n1 2 3\n  3 1\t7\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Vertices)
	assert.Equal(t, []Edge{{0, 1, 5}, {1, 2, 3}, {3, 1, 7}}, g.Edges)
	assert.Equal(t, int64(1), g.VertexWeight(2))
}

func TestReadText_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrFormat},
		{"not a number", "x", ErrFormat},
		{"truncated edge", "3\n0 1 2\n1 2", ErrFormat},
		{"vertex out of range", "2\n0 2 1", ErrVertex},
		{"self loop", "2\n1 1 1", ErrSelfLoop},
		{"negative weight", "2\n0 1 -4", ErrEdgeWeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadText(strings.NewReader(tt.input))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReadYAML(t *testing.T) {
	doc := `
name: pair
vertices: 2
weights: [3]
edges:
  - {a: 0, b: 1, w: 4}
paths:
  - {from: 1, to: 0, length: 4}
`
	g, err := ReadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "pair", g.Name)
	assert.Equal(t, int64(3), g.VertexWeight(0))
	assert.Equal(t, int64(1), g.VertexWeight(1))
	assert.Equal(t, []PathCase{{From: 1, To: 0, Length: 4}}, g.Paths)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, g))
	back, err := ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestReadYAML_Errors(t *testing.T) {
	_, err := ReadYAML(strings.NewReader("vertices: 2\nedges: []\ncolour: blue\n"))
	require.ErrorIs(t, err, ErrFormat)

	_, err = ReadYAML(strings.NewReader("vertices: 2\nedges:\n  - {a: 0, b: 5, w: 1}\n"))
	require.ErrorIs(t, err, ErrVertex)
}
