// Package main provides the toptree driver: it loads a weighted tree and
// answers diameter, center, median, path and farthest vertex queries on it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"

	"github.com/forestrie/go-toptree/graph"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type rootOptions struct {
	logLevel string
	format   string
	input    string

	log logger.Logger
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "toptree",
		Short: "Dynamic tree queries backed by a self-adjusting top tree",
		Long: `toptree loads a weighted tree and answers queries on it.

The text input format is the vertex count n followed by n-1 edges "a b w".
The yaml format is a graph document with vertices, optional vertex weights
and a list of edges {a, b, w}.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch opts.format {
			case formatText, formatYAML:
			default:
				return fmt.Errorf("unknown input format %q", opts.format)
			}
			logger.New(opts.logLevel)
			opts.log = logger.Sugar.WithServiceName("toptree")
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			logger.OnExit()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "NOOP", "log level (NOOP, DEBUG, INFO, ...)")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", formatText, "input format: text or yaml")
	rootCmd.PersistentFlags().StringVarP(&opts.input, "input", "i", "-", "input file, - for stdin")

	rootCmd.AddCommand(diameterCmd(opts))
	rootCmd.AddCommand(centerCmd(opts))
	rootCmd.AddCommand(medianCmd(opts))
	rootCmd.AddCommand(pathCmd(opts))
	rootCmd.AddCommand(cutCmd(opts))
	rootCmd.AddCommand(farthestCmd(opts))

	return rootCmd
}

// openInput returns the reader named by --input. The caller closes it.
func (o *rootOptions) openInput(cmd *cobra.Command) (io.ReadCloser, error) {
	if o.input == "" || o.input == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(o.input)
}

func (o *rootOptions) loadGraph(cmd *cobra.Command) (graph.Graph, error) {
	r, err := o.openInput(cmd)
	if err != nil {
		return graph.Graph{}, err
	}
	defer r.Close()

	var g graph.Graph
	if o.format == formatYAML {
		g, err = graph.ReadYAML(r)
	} else {
		g, err = graph.ReadText(r)
	}
	if err != nil {
		return graph.Graph{}, err
	}
	o.log.Infof("loaded graph %q: %d vertices, %d edges", g.Name, g.Vertices, len(g.Edges))
	return g, nil
}
