package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-toptree/algebra"
	"github.com/forestrie/go-toptree/toptree"
)

const (
	opGrow = 1
	opSet  = 2
	opAsk  = 3
)

func farthestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "farthest",
		Short: "Answer farthest vertex queries on a growing tree",
		Long: `Reads q followed by q operations "t a c" on a tree that starts as vertex 0:

  1 a c   add a new vertex joined to a by an edge of length c
  2 a c   set the length of the a-th added edge (1-based) to c
  3 a _   print the distance from a to its farthest vertex

The --format flag does not apply.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := opts.openInput(cmd)
			if err != nil {
				return err
			}
			defer r.Close()
			return runFarthest(opts, r, cmd.OutOrStdout())
		},
	}
}

func runFarthest(opts *rootOptions, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func() (int64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		return strconv.ParseInt(sc.Text(), 10, 64)
	}

	q, err := next()
	if err != nil {
		return fmt.Errorf("operation count: %w", err)
	}
	f := toptree.New[int64, algebra.Reach[int64]](algebra.Distance[int64, int64]{}, toptree.WithLogger(opts.log))
	vs := []toptree.VertexID{f.AddVertex(0)}
	var es []toptree.EdgeID

	for i := int64(0); i < q; i++ {
		var op [3]int64
		for j := range op {
			if op[j], err = next(); err != nil {
				return fmt.Errorf("operation %d: %w", i, err)
			}
		}
		t, a, c := op[0], op[1], op[2]
		switch t {
		case opGrow:
			if a < 0 || a >= int64(len(vs)) {
				return fmt.Errorf("operation %d: no vertex %d", i, a)
			}
			v := f.AddVertex(0)
			e, err := f.Link(vs[a], v, algebra.Edge(c))
			if err != nil {
				return fmt.Errorf("operation %d: %w", i, err)
			}
			vs = append(vs, v)
			es = append(es, e)
		case opSet:
			if a < 1 || a > int64(len(es)) {
				return fmt.Errorf("operation %d: no edge %d", i, a)
			}
			if err := f.SetEdgeWeight(es[a-1], algebra.Edge(c)); err != nil {
				return fmt.Errorf("operation %d: %w", i, err)
			}
		case opAsk:
			if a < 0 || a >= int64(len(vs)) {
				return fmt.Errorf("operation %d: no vertex %d", i, a)
			}
			fold, err := f.RootedFold(vs[a])
			if err != nil {
				return fmt.Errorf("operation %d: %w", i, err)
			}
			fmt.Fprintf(w, "farthest from %d = %d\n", a, fold.Left)
		default:
			return fmt.Errorf("operation %d: unknown type %d", i, t)
		}
	}
	return nil
}
