package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/akmonengine/geom3d/shape"
	"github.com/go-gl/mathgl/mgl64"
)

var errSyntax = errors.New("invalid shape syntax")

// shapeUsage documents the shape argument syntax. Every vector is x,y,z.
const shapeUsage = `Shapes are written kind:vector:vector..., every vector being x,y,z:
  point:P                 line:P:DIR            ray:P:DIR
  segment:P:Q             plane:P:NORMAL        triangle:P:Q:R
  rectangle:P:Q:R:S       tetrahedron:P:Q:R:S
  convex:NORMAL:P1:P2:... polygon:NORMAL:P1:P2:...`

func parseVec(s string) (mgl64.Vec3, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("%q: expected x,y,z: %w", s, errSyntax)
	}

	var v mgl64.Vec3
	for i, f := range fields {
		c, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("%q: %w", s, err)
		}
		v[i] = c
	}
	return v, nil
}

func parsePoint(s string) (shape.Point, error) {
	v, err := parseVec(s)
	if err != nil {
		return shape.Point{}, err
	}
	return shape.PointAt(v.X(), v.Y(), v.Z()), nil
}

// parseRay reads an axis given as P:DIR.
func parseRay(s string, epsilon float64) (*shape.Ray, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 2 {
		return nil, fmt.Errorf("axis %q: expected P:DIR: %w", s, errSyntax)
	}
	p, err := parsePoint(fields[0])
	if err != nil {
		return nil, err
	}
	dir, err := parseVec(fields[1])
	if err != nil {
		return nil, err
	}
	return shape.NewRay(p, dir, epsilon)
}

// arity is the number of vectors each kind takes; -1 for a normal followed by
// at least three points.
var arity = map[string]int{
	"point":       1,
	"line":        2,
	"ray":         2,
	"segment":     2,
	"plane":       2,
	"triangle":    3,
	"rectangle":   4,
	"tetrahedron": 4,
	"convex":      -1,
	"polygon":     -1,
}

func parseShape(arg string, epsilon float64) (shape.Geometry, error) {
	kind, rest, found := strings.Cut(arg, ":")
	n, known := arity[kind]
	if !found || !known {
		return nil, fmt.Errorf("%q: unknown shape: %w", arg, errSyntax)
	}

	fields := strings.Split(rest, ":")
	if n > 0 && len(fields) != n {
		return nil, fmt.Errorf("%q: %s takes %d vectors, got %d: %w", arg, kind, n, len(fields), errSyntax)
	}
	if n < 0 && len(fields) < 2 {
		return nil, fmt.Errorf("%q: %s takes a normal and points: %w", arg, kind, errSyntax)
	}

	vecs := make([]mgl64.Vec3, len(fields))
	points := make([]shape.Point, len(fields))
	for i, f := range fields {
		v, err := parseVec(f)
		if err != nil {
			return nil, err
		}
		vecs[i] = v
		points[i] = shape.PointAt(v.X(), v.Y(), v.Z())
	}

	var (
		g   shape.Geometry
		err error
	)
	switch kind {
	case "point":
		g = &points[0]
	case "line":
		g, err = shape.NewLine(points[0], vecs[1], epsilon)
	case "ray":
		g, err = shape.NewRay(points[0], vecs[1], epsilon)
	case "segment":
		g, err = shape.NewLineSegment(points[0], points[1], epsilon)
	case "plane":
		g, err = shape.NewPlane(points[0], vecs[1], epsilon)
	case "triangle":
		g, err = shape.NewTriangle(points[0], points[1], points[2], epsilon)
	case "rectangle":
		g, err = shape.NewRectangle(points[0], points[1], points[2], points[3], epsilon)
	case "tetrahedron":
		g, err = shape.NewTetrahedron(points[0], points[1], points[2], points[3], epsilon)
	case "convex":
		g, err = shape.NewConvexArea(vecs[0], epsilon, points[1:]...)
	case "polygon":
		g, err = shape.NewPolygonNoInternalHoles(vecs[0], epsilon, points[1:]...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return g, nil
}
