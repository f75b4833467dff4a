package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/akmonengine/geom3d"
	"github.com/akmonengine/geom3d/shape"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		expected string
	}{
		{"point", "point:1,2,3", "*shape.Point"},
		{"line", "line:0,0,0:1,0,0", "*shape.Line"},
		{"ray", "ray:0,0,0:1,0,0", "*shape.Ray"},
		{"segment", "segment:0,0,0:1,0,0", "*shape.LineSegment"},
		{"plane", "plane:0,0,0:0,0,1", "*shape.Plane"},
		{"triangle", "triangle:0,0,0:1,0,0:0,1,0", "*shape.Triangle"},
		{"rectangle", "rectangle:0,0,0:2,0,0:2,1,0:0,1,0", "*shape.Rectangle"},
		{"tetrahedron", "tetrahedron:0,0,0:1,0,0:0,1,0:0,0,1", "*shape.Tetrahedron"},
		{"convex", "convex:0,0,1:0,0,0:1,0,0:1,1,0:0,1,0", "*shape.ConvexArea"},
		{"polygon", "polygon:0,0,1:0,0,0:2,0,0:1,1,0:2,2,0:0,2,0", "*shape.PolygonNoInternalHoles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := parseShape(tt.arg, 1e-9)
			if err != nil {
				t.Fatalf("parseShape(%q): %v", tt.arg, err)
			}
			if got := fmt.Sprintf("%T", g); got != tt.expected {
				t.Errorf("parseShape(%q) = %s, expected %s", tt.arg, got, tt.expected)
			}
		})
	}
}

func TestParseShapeErrors(t *testing.T) {
	tests := []struct {
		name   string
		arg    string
		target error
	}{
		{"unknown kind", "sphere:0,0,0", errSyntax},
		{"missing colon", "point", errSyntax},
		{"wrong arity", "triangle:0,0,0:1,0,0", errSyntax},
		{"short vector", "point:1,2", errSyntax},
		{"polygon without points", "polygon:0,0,1", errSyntax},
		{"zero direction", "line:0,0,0:0,0,0", shape.ErrZeroVector},
		{"collinear triangle", "triangle:0,0,0:1,0,0:2,0,0", shape.ErrCollinear},
		{"flat tetrahedron", "tetrahedron:0,0,0:1,0,0:0,1,0:1,1,0", shape.ErrCoplanar},
		{"skewed rectangle", "rectangle:0,0,0:2,0,0:3,1,0:0,1,0", shape.ErrNotRectangle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseShape(tt.arg, 1e-9); !errors.Is(err, tt.target) {
				t.Errorf("parseShape(%q) error = %v, expected %v", tt.arg, err, tt.target)
			}
		})
	}

	if _, err := parseShape("point:a,2,3", 1e-9); err == nil {
		t.Error("expected an error for a non-numeric coordinate")
	}
}

func TestIntersectCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"line and plane", []string{"intersect", "line:1,2,0:0,0,1", "plane:0,0,3:0,0,1"}, "point (1, 2, 3)"},
		{"parallel lines", []string{"intersect", "line:0,0,0:1,0,0", "line:0,1,0:1,0,0"}, "none"},
		{"tetrahedra", []string{"intersect", "tetrahedron:0,0,0:1,0,0:0,1,0:0,0,1", "tetrahedron:0.2,0.2,0.2:1.2,0.2,0.2:0.2,1.2,0.2:0.2,0.2,1.2"}, "overlap: true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if strings.TrimSpace(out) != tt.expected {
				t.Errorf("output = %q, expected %q", out, tt.expected)
			}
		})
	}

	t.Run("unsupported pair", func(t *testing.T) {
		_, err := run(t, "intersect", "polygon:0,0,1:0,0,0:1,0,0:0,1,0", "plane:0,0,0:0,0,1")
		if !errors.Is(err, geom3d.ErrUnsupported) {
			t.Errorf("expected ErrUnsupported, got %v", err)
		}
	})

	t.Run("wrong argument count", func(t *testing.T) {
		if _, err := run(t, "intersect", "point:0,0,0"); err == nil {
			t.Error("expected an argument error")
		}
	})
}

func TestMeasureCommand(t *testing.T) {
	out, err := run(t, "measure", "tetrahedron:0,0,0:1,0,0:0,1,0:0,0,1")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{"volume: 0.166667", "centroid: (0.25, 0.25, 0.25)", "bounds: (0, 0, 0) (1, 1, 1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}

	out, err = run(t, "measure", "rectangle:0,0,0:2,0,0:2,1,0:0,1,0")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{"area: 2", "perimeter: 6"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestDistanceCommand(t *testing.T) {
	out, err := run(t, "distance", "3,4,-2", "plane:0,0,0:0,0,1")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if strings.TrimSpace(out) != "2" {
		t.Errorf("output = %q, expected 2", out)
	}
}

func TestRotateCommand(t *testing.T) {
	out, err := run(t, "rotate", "point:1,0,0", "--axis", "0,0,0:0,0,1", "--degrees", "90", "--translate", "0,0,5")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// x keeps the rounding residue of cos(90°)
	if got := strings.TrimSpace(out); !strings.HasPrefix(got, "point (") || !strings.HasSuffix(got, ", 1, 5)") {
		t.Errorf("output = %q, expected point (0, 1, 5)", out)
	}

	if _, err := run(t, "rotate", "point:1,0,0", "--degrees", "90"); err == nil {
		t.Error("expected an error for an angle without axis")
	}
}

func TestEpsilonFlag(t *testing.T) {
	// Off the plane by 1e-4: a miss by default, a hit with a looser tolerance.
	out, err := run(t, "intersect", "point:0,0,1e-4", "plane:0,0,0:0,0,1")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if strings.TrimSpace(out) != "none" {
		t.Errorf("output = %q, expected none", out)
	}

	out, err = run(t, "--epsilon", "1e-3", "intersect", "point:0,0,1e-4", "plane:0,0,0:0,0,1")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "point") {
		t.Errorf("output = %q, expected a point", out)
	}
}
