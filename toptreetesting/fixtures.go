package toptreetesting

import (
	"embed"
	"path"
	"strings"

	"github.com/forestrie/go-toptree/graph"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/*.yaml
var fixtures embed.FS

// FixtureNames lists the embedded graph fixtures.
func FixtureNames() []string {
	entries, err := fixtures.ReadDir("testdata")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names
}

// Fixture loads the named graph fixture, failing the test if it is missing
// or malformed.
func (c *TestContext) Fixture(name string) graph.Graph {
	f, err := fixtures.Open(path.Join("testdata", name+".yaml"))
	require.NoError(c.T, err)
	defer f.Close()
	g, err := graph.ReadYAML(f)
	require.NoError(c.T, err)
	return g
}
