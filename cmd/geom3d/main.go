package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/akmonengine/geom3d"
	"github.com/akmonengine/geom3d/shape"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
)

type options struct {
	epsilon float64
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "geom3d",
		Short: "Intersect, measure and move 3D shapes",
		Long: `geom3d evaluates the geometry kernel from the command line.

` + shapeUsage,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().Float64Var(&opts.epsilon, "epsilon", 1e-9, "absolute tolerance of every comparison")

	rootCmd.AddCommand(
		newIntersectCmd(opts),
		newMeasureCmd(opts),
		newDistanceCmd(opts),
		newRotateCmd(opts),
	)
	return rootCmd
}

func newIntersectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "intersect SHAPE SHAPE",
		Short: "Print the intersection of two shapes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseShape(args[0], opts.epsilon)
			if err != nil {
				return err
			}
			b, err := parseShape(args[1], opts.epsilon)
			if err != nil {
				return err
			}

			g, err := geom3d.Intersect(a, b, opts.epsilon)
			if err != nil {
				// Solid pairs have no exact intersection but can still be
				// tested for overlap.
				fa, okA := a.(shape.FiniteGeometry)
				fb, okB := b.(shape.FiniteGeometry)
				if !okA || !okB {
					return err
				}
				overlap, overlapErr := geom3d.Overlaps(fa, fb, opts.epsilon)
				if overlapErr != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "overlap: %t\n", overlap)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), describe(g))
			return nil
		},
	}
}

func newMeasureCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "measure SHAPE",
		Short: "Print the measures of a shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseShape(args[0], opts.epsilon)
			if err != nil {
				return err
			}
			measure(cmd.OutOrStdout(), g)
			return nil
		},
	}
}

func measure(w io.Writer, g shape.Geometry) {
	fmt.Fprintln(w, describe(g))

	switch x := g.(type) {
	case *shape.Point:
		fmt.Fprintf(w, "octant: %d\n", x.Location())
	case *shape.LineSegment:
		fmt.Fprintf(w, "length: %.6g\n", x.Length())
	case *shape.Triangle:
		fmt.Fprintf(w, "area: %.6g\nperimeter: %.6g\n", x.Area(), x.Perimeter())
	case *shape.Rectangle:
		fmt.Fprintf(w, "area: %.6g\nperimeter: %.6g\n", x.Area(), x.Perimeter())
	case *shape.ConvexArea:
		fmt.Fprintf(w, "area: %.6g\nperimeter: %.6g\n", x.Area(), x.Perimeter())
	case *shape.PolygonNoInternalHoles:
		fmt.Fprintf(w, "area: %.6g\nperimeter: %.6g\nexternal holes: %d\n", x.Area(), x.Perimeter(), len(x.ExternalHoles()))
	case *shape.Tetrahedron:
		fmt.Fprintf(w, "volume: %.6g\narea: %.6g\n", x.Volume(), x.Area())
	}

	if f, ok := g.(shape.FiniteGeometry); ok {
		box := f.AABB()
		fmt.Fprintf(w, "centroid: %s\n", formatVec(f.Centroid().Abs()))
		fmt.Fprintf(w, "bounds: %s %s\n", formatVec(box.Min), formatVec(box.Max))
	}
}

func newDistanceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "distance x,y,z SHAPE",
		Short: "Print the distance from a point to a shape",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			g, err := parseShape(args[1], opts.epsilon)
			if err != nil {
				return err
			}

			d, err := geom3d.Distance(pt, g)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.6g\n", d)
			return nil
		},
	}
}

func newRotateCmd(opts *options) *cobra.Command {
	var (
		axis      string
		degrees   float64
		translate string
	)

	cmd := &cobra.Command{
		Use:   "rotate SHAPE",
		Short: "Rotate a shape about an axis, then translate it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseShape(args[0], opts.epsilon)
			if err != nil {
				return err
			}

			if axis != "" {
				r, err := parseRay(axis, opts.epsilon)
				if err != nil {
					return err
				}
				g.Rotate(*r, mgl64.DegToRad(degrees), opts.epsilon)
			} else if math.Mod(degrees, 360) != 0 {
				return fmt.Errorf("--degrees needs --axis")
			}

			if translate != "" {
				v, err := parseVec(translate)
				if err != nil {
					return err
				}
				g.Translate(v)
			}

			fmt.Fprintln(cmd.OutOrStdout(), describe(g))
			return nil
		},
	}
	cmd.Flags().StringVar(&axis, "axis", "", "rotation axis as P:DIR, e.g. 0,0,0:0,0,1")
	cmd.Flags().Float64Var(&degrees, "degrees", 0, "rotation angle in degrees, counterclockwise about the axis direction")
	cmd.Flags().StringVar(&translate, "translate", "", "translation vector x,y,z applied after the rotation")
	return cmd
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("geom3d: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
