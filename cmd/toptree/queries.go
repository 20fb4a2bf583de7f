package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-toptree/algebra"
	"github.com/forestrie/go-toptree/toptree"
)

func diameterCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diameter",
		Short: "Print the diameter of every tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := opts.loadGraph(cmd)
			if err != nil {
				return err
			}
			f, vs, err := buildDistance(opts.log, g)
			if err != nil {
				return err
			}
			roots, err := components(f, vs)
			if err != nil {
				return err
			}
			for _, r := range roots {
				fold, err := f.TreeFold(vs[r])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "tree %d: diameter = %d\n", r, fold.Diameter)
			}
			return nil
		},
	}
}

func centerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "center",
		Short: "Print the center and radius of every tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := opts.loadGraph(cmd)
			if err != nil {
				return err
			}
			f, vs, err := buildDistance(opts.log, g)
			if err != nil {
				return err
			}
			roots, err := components(f, vs)
			if err != nil {
				return err
			}
			index := indexOf(vs)
			for _, r := range roots {
				a, b, err := f.Select(vs[r], algebra.SelectCenter[int64, int64])
				if err != nil {
					return err
				}
				best, radius := -1, int64(0)
				for _, v := range []toptree.VertexID{a, b} {
					fold, err := f.RootedFold(v)
					if err != nil {
						return err
					}
					if best < 0 || fold.Left < radius {
						best, radius = index[v], fold.Left
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "tree %d: center edge (%d, %d), center = %d, radius = %d\n",
					r, index[a], index[b], best, radius)
			}
			return nil
		},
	}
}

func medianCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "median",
		Short: "Print the vertex weighted median of every tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := opts.loadGraph(cmd)
			if err != nil {
				return err
			}
			f, vs, err := buildMedian(opts.log, g)
			if err != nil {
				return err
			}
			lengths, _, err := buildLength(opts.log, g)
			if err != nil {
				return err
			}
			roots, err := components(f, vs)
			if err != nil {
				return err
			}
			index := indexOf(vs)
			for _, r := range roots {
				a, b, err := f.Select(vs[r], algebra.SelectMedian[int64])
				if err != nil {
					return err
				}
				best, cost := -1, int64(0)
				for _, v := range []toptree.VertexID{a, b} {
					s, err := distanceSum(lengths, vs, index[v], g.VertexWeight)
					if err != nil {
						return err
					}
					if best < 0 || s < cost {
						best, cost = index[v], s
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "tree %d: median edge (%d, %d), median = %d, cost = %d\n",
					r, index[a], index[b], best, cost)
			}
			return nil
		},
	}
}

// distanceSum is the weighted sum of distances from vertex i to its tree.
func distanceSum(f *lengthForest, vs []toptree.VertexID, i int, weight func(int) int64) (int64, error) {
	var s int64
	for j, v := range vs {
		ok, err := f.Connected(vs[i], v)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		d, err := f.PathQuery(vs[i], v)
		if err != nil {
			return 0, err
		}
		s += d * weight(j)
	}
	return s, nil
}

func pathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path <a:b>...",
		Short: "Print the length of the path between each pair of vertices",
		Example: `  toptree path 1:0 3:11 < tree.txt
  toptree --format yaml -i tree.yaml path 6:12`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := make([][2]int, len(args))
			for i, arg := range args {
				p, err := parsePair(arg)
				if err != nil {
					return err
				}
				pairs[i] = p
			}
			g, err := opts.loadGraph(cmd)
			if err != nil {
				return err
			}
			f, vs, err := buildLength(opts.log, g)
			if err != nil {
				return err
			}
			for _, p := range pairs {
				if p[0] >= len(vs) || p[1] >= len(vs) {
					return fmt.Errorf("pair %d:%d: vertex out of range", p[0], p[1])
				}
				d, err := f.PathQuery(vs[p[0]], vs[p[1]])
				if err != nil {
					return fmt.Errorf("pair %d:%d: %w", p[0], p[1], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "path %d %d = %d\n", p[0], p[1], d)
			}
			return nil
		},
	}
}

func cutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cut <a> <b>",
		Short: "Cut the edge a-b and print the diameters of both sides",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			b, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			g, err := opts.loadGraph(cmd)
			if err != nil {
				return err
			}
			f, vs, err := buildDistance(opts.log, g)
			if err != nil {
				return err
			}
			if a < 0 || b < 0 || a >= len(vs) || b >= len(vs) {
				return fmt.Errorf("edge %d-%d: vertex out of range", a, b)
			}
			if err := f.Cut(vs[a], vs[b]); err != nil {
				return err
			}
			for _, x := range []int{a, b} {
				fold, err := f.TreeFold(vs[x])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d diameter = %d\n", x, fold.Diameter)
			}
			return nil
		},
	}
}

func parsePair(s string) ([2]int, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return [2]int{}, fmt.Errorf("pair %q: want a:b", s)
	}
	x, err := strconv.Atoi(a)
	if err != nil {
		return [2]int{}, fmt.Errorf("pair %q: %w", s, err)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return [2]int{}, fmt.Errorf("pair %q: %w", s, err)
	}
	if x < 0 || y < 0 {
		return [2]int{}, fmt.Errorf("pair %q: negative vertex", s)
	}
	return [2]int{x, y}, nil
}
