package shape

import "github.com/go-gl/mathgl/mgl64"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABB returns the smallest box containing every point
func NewAABB(points ...Point) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	first := points[0].Abs()
	box := AABB{Min: first, Max: first}
	for _, p := range points[1:] {
		box = box.ExpandToPoint(p.Abs())
	}
	return box
}

// ExpandToPoint returns the box grown to include point
func (a AABB) ExpandToPoint(point mgl64.Vec3) AABB {
	for i := 0; i < 3; i++ {
		if point[i] < a.Min[i] {
			a.Min[i] = point[i]
		}
		if point[i] > a.Max[i] {
			a.Max[i] = point[i]
		}
	}
	return a
}

// Union returns the smallest box containing both boxes
func (a AABB) Union(other AABB) AABB {
	return a.ExpandToPoint(other.Min).ExpandToPoint(other.Max)
}

// Expand grows the box by margin on every side
func (a AABB) Expand(margin float64) AABB {
	m := mgl64.Vec3{margin, margin, margin}
	return AABB{Min: a.Min.Sub(m), Max: a.Max.Add(m)}
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// IsIntersectedBy checks if pt is inside the box grown by epsilon
func (a AABB) IsIntersectedBy(pt Point, epsilon float64) bool {
	return a.Expand(epsilon).ContainsPoint(pt.Abs())
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// Intersects checks if two AABBs overlap once grown by epsilon
func (a AABB) Intersects(other AABB, epsilon float64) bool {
	return a.Expand(epsilon).Overlaps(other)
}

// Center returns the middle of the box
func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Centroid returns the middle of the box as a point
func (a AABB) Centroid() Point {
	return Point{Rel: a.Center()}
}

// Size returns the extent of the box on each axis
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Corners returns the 8 corners of the box
func (a AABB) Corners() [8]mgl64.Vec3 {
	return [8]mgl64.Vec3{
		{a.Min.X(), a.Min.Y(), a.Min.Z()},
		{a.Max.X(), a.Min.Y(), a.Min.Z()},
		{a.Min.X(), a.Max.Y(), a.Min.Z()},
		{a.Max.X(), a.Max.Y(), a.Min.Z()},
		{a.Min.X(), a.Min.Y(), a.Max.Z()},
		{a.Max.X(), a.Min.Y(), a.Max.Z()},
		{a.Min.X(), a.Max.Y(), a.Max.Z()},
		{a.Max.X(), a.Max.Y(), a.Max.Z()},
	}
}

// Support returns the corner furthest along direction
func (a AABB) Support(direction mgl64.Vec3) mgl64.Vec3 {
	var result mgl64.Vec3
	for i := 0; i < 3; i++ {
		if direction[i] >= 0 {
			result[i] = a.Max[i]
		} else {
			result[i] = a.Min[i]
		}
	}
	return result
}
