package main

import (
	"fmt"
	"strings"

	"github.com/akmonengine/geom3d/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", v.X(), v.Y(), v.Z())
}

func formatPoints(points []shape.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = formatVec(p.Abs())
	}
	return strings.Join(parts, " ")
}

// describe renders g on one line.
func describe(g shape.Geometry) string {
	switch x := g.(type) {
	case nil:
		return "none"
	case *shape.Point:
		return "point " + formatVec(x.Abs())
	case *shape.Line:
		return fmt.Sprintf("line through %s direction %s", formatVec(x.P.Abs()), formatVec(x.V))
	case *shape.Ray:
		return fmt.Sprintf("ray from %s direction %s", formatVec(x.Origin().Abs()), formatVec(x.L.V))
	case *shape.LineSegment:
		return fmt.Sprintf("segment %s %s", formatVec(x.P().Abs()), formatVec(x.Q().Abs()))
	case *shape.Plane:
		return fmt.Sprintf("plane through %s normal %s", formatVec(x.P.Abs()), formatVec(x.N))
	case *shape.Triangle:
		return "triangle " + formatPoints(x.Points())
	case *shape.Rectangle:
		return "rectangle " + formatPoints(x.Points())
	case *shape.ConvexArea:
		return "convex " + formatPoints(x.Points())
	case *shape.PolygonNoInternalHoles:
		return "polygon " + formatPoints(x.Points())
	case *shape.Tetrahedron:
		return "tetrahedron " + formatPoints(x.Points())
	}
	return fmt.Sprintf("%T", g)
}
