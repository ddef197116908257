package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/kdtree"
	"github.com/hupe1980/kdtree/codec"
	"github.com/hupe1980/kdtree/point"
)

type globalFlags struct {
	points   string
	codec    string
	parallel bool
	verbose  bool
}

// neighbor is the JSON form of a k-nearest result entry.
type neighbor struct {
	Point           []float64 `json:"point"`
	SquaredDistance float64   `json:"squared_distance"`
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:           "kdtree",
		Short:         "Build a k-d tree from a points file and query it",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&flags.points, "points", "p", "", "JSON file with an array of coordinate arrays (required)")
	rootCmd.PersistentFlags().StringVar(&flags.codec, "codec", "go-json", "codec for input and output: "+strings.Join(codec.Names(), ", "))
	rootCmd.PersistentFlags().BoolVar(&flags.parallel, "parallel", false, "build the tree on several goroutines")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log build details to stderr")
	_ = rootCmd.MarkPersistentFlagRequired("points")

	rootCmd.AddCommand(
		newNearestCmd(&flags),
		newKNNCmd(&flags),
		newWithinCmd(&flags),
		newRadiusCmd(&flags),
		newDumpCmd(&flags),
	)
	return rootCmd
}

func newNearestCmd(flags *globalFlags) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Print the point closest to --query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, c, err := loadTree(flags)
			if err != nil {
				return err
			}
			q, err := parseCoords(query, tree.Dims())
			if err != nil {
				return fmt.Errorf("--query: %w", err)
			}
			nn, ok := tree.Nearest(q)
			if !ok {
				return writeJSON(cmd.OutOrStdout(), c, nil)
			}
			return writeJSON(cmd.OutOrStdout(), c, neighbor{Point: *nn.Item, SquaredDistance: nn.SquaredDistance})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "comma-separated query coordinates")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func newKNNCmd(flags *globalFlags) *cobra.Command {
	var (
		query string
		k     int
	)
	cmd := &cobra.Command{
		Use:   "knn",
		Short: "Print the --k points closest to --query, nearest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, c, err := loadTree(flags)
			if err != nil {
				return err
			}
			q, err := parseCoords(query, tree.Dims())
			if err != nil {
				return fmt.Errorf("--query: %w", err)
			}
			found := tree.Nearests(q, k)
			out := make([]neighbor, len(found))
			for i, n := range found {
				out[i] = neighbor{Point: *n.Item, SquaredDistance: n.SquaredDistance}
			}
			return writeJSON(cmd.OutOrStdout(), c, out)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "comma-separated query coordinates")
	cmd.Flags().IntVarP(&k, "k", "k", 1, "number of neighbors")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func newWithinCmd(flags *globalFlags) *cobra.Command {
	var lo, hi string
	cmd := &cobra.Command{
		Use:   "within",
		Short: "Print all points inside the box [--min, --max], bounds inclusive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, c, err := loadTree(flags)
			if err != nil {
				return err
			}
			minCorner, err := parseCoords(lo, tree.Dims())
			if err != nil {
				return fmt.Errorf("--min: %w", err)
			}
			maxCorner, err := parseCoords(hi, tree.Dims())
			if err != nil {
				return fmt.Errorf("--max: %w", err)
			}
			for axis := range minCorner {
				if minCorner[axis] > maxCorner[axis] {
					return fmt.Errorf("--min exceeds --max on axis %d", axis)
				}
			}
			return writeJSON(cmd.OutOrStdout(), c, deref(tree.Within([2][]float64{minCorner, maxCorner})))
		},
	}
	cmd.Flags().StringVar(&lo, "min", "", "comma-separated minimum corner")
	cmd.Flags().StringVar(&hi, "max", "", "comma-separated maximum corner")
	_ = cmd.MarkFlagRequired("min")
	_ = cmd.MarkFlagRequired("max")
	return cmd
}

func newRadiusCmd(flags *globalFlags) *cobra.Command {
	var (
		query  string
		radius float64
	)
	cmd := &cobra.Command{
		Use:   "radius",
		Short: "Print all points strictly closer than --radius to --query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, c, err := loadTree(flags)
			if err != nil {
				return err
			}
			q, err := parseCoords(query, tree.Dims())
			if err != nil {
				return fmt.Errorf("--query: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), c, deref(tree.WithinRadius(q, radius)))
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "comma-separated query coordinates")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 0, "search radius")
	_ = cmd.MarkFlagRequired("query")
	_ = cmd.MarkFlagRequired("radius")
	return cmd
}

func newDumpCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the points in built tree order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, c, err := loadTree(flags)
			if err != nil {
				return err
			}
			data, err := tree.Encode(c)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func loadTree(flags *globalFlags) (*kdtree.Tree[[]float64, float64], codec.Codec, error) {
	c, ok := codec.ByName(flags.codec)
	if !ok {
		return nil, nil, fmt.Errorf("unknown codec %q", flags.codec)
	}

	data, err := os.ReadFile(flags.points)
	if err != nil {
		return nil, nil, err
	}
	var points [][]float64
	if err := c.Unmarshal(data, &points); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", flags.points, err)
	}
	if len(points) == 0 {
		return nil, nil, errors.New("points file is empty")
	}
	dims := len(points[0])
	if dims == 0 {
		return nil, nil, errors.New("points have no coordinates")
	}
	for i, p := range points {
		if len(p) != dims {
			return nil, nil, fmt.Errorf("point %d has %d coordinates, want %d", i, len(p), dims)
		}
	}

	logger := kdtree.NoopLogger()
	if flags.verbose {
		logger = kdtree.NewTextLogger(slog.LevelDebug)
	}
	opts := []kdtree.Option{kdtree.WithLogger(logger), kdtree.WithCodec(c)}

	acc := point.Slice[float64]{K: dims}
	var tree *kdtree.Tree[[]float64, float64]
	if flags.parallel {
		tree, err = kdtree.ParBuildOrdered(points, acc, opts...)
	} else {
		tree, err = kdtree.BuildOrdered(points, acc, opts...)
	}
	if err != nil {
		return nil, nil, err
	}
	return tree, c, nil
}

func parseCoords(s string, dims int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != dims {
		return nil, fmt.Errorf("got %d coordinates, want %d", len(fields), dims)
	}
	out := make([]float64, dims)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func deref(found []*[]float64) [][]float64 {
	out := make([][]float64, len(found))
	for i, p := range found {
		out[i] = *p
	}
	return out
}

func writeJSON(w io.Writer, c codec.Codec, v any) error {
	data, err := c.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
