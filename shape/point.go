package shape

import "github.com/go-gl/mathgl/mgl64"

// Point is a position in space stored as an offset and a relative position.
// The absolute position is Offset + Rel; equality always compares absolute
// positions. Points derived from another geometry (intersections, centroids)
// keep that geometry's offset.
type Point struct {
	Offset mgl64.Vec3
	Rel    mgl64.Vec3
}

// NewPoint creates a point at offset + rel.
func NewPoint(offset, rel mgl64.Vec3) Point {
	return Point{Offset: offset, Rel: rel}
}

// PointAt creates a point at absolute (x, y, z) with a zero offset.
func PointAt(x, y, z float64) Point {
	return Point{Rel: mgl64.Vec3{x, y, z}}
}

func pointFromAbs(offset, abs mgl64.Vec3) Point {
	return Point{Offset: offset, Rel: abs.Sub(offset)}
}

// Abs returns the absolute position.
func (p Point) Abs() mgl64.Vec3 {
	return p.Offset.Add(p.Rel)
}

// Translate moves the point by v. Only the offset changes.
func (p *Point) Translate(v mgl64.Vec3) {
	p.Offset = p.Offset.Add(v)
}

// Rotate rotates the point by theta radians about axis. The offset is kept
// and the relative position absorbs the move.
func (p *Point) Rotate(axis Ray, theta, epsilon float64) {
	newRotation(axis, theta, epsilon).point(p)
}

// SetOffset changes the offset while keeping the absolute position.
func (p *Point) SetOffset(offset mgl64.Vec3) {
	abs := p.Abs()
	p.Offset = offset
	p.Rel = abs.Sub(offset)
}

// SetRel changes the relative position, moving the point.
func (p *Point) SetRel(rel mgl64.Vec3) {
	p.Rel = rel
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return q.Abs().Sub(p.Abs()).Len()
}

// DistanceSquared returns the squared Euclidean distance between p and q.
func (p Point) DistanceSquared(q Point) float64 {
	d := q.Abs().Sub(p.Abs())
	return d.Dot(d)
}

// Equals reports whether p and q are within epsilon of each other.
func (p Point) Equals(q Point, epsilon float64) bool {
	return p.DistanceSquared(q) <= epsilon*epsilon
}

// EqualsExact compares absolute positions component by component.
func (p Point) EqualsExact(q Point) bool {
	return p.Abs() == q.Abs()
}

// IsBetween reports whether the projection of p onto the line through a and
// b falls between a and b, epsilon included. p does not need to be on that
// line: the test is against the slab bounded by the planes through a and b
// orthogonal to ab.
func (p Point) IsBetween(a, b Point, epsilon float64) bool {
	ab := b.Abs().Sub(a.Abs())
	length := ab.Len()
	if length <= epsilon {
		return p.Equals(a, epsilon)
	}
	along := p.Abs().Sub(a.Abs()).Dot(ab) / length
	return along >= -epsilon && along <= length+epsilon
}

// Location returns the octant of the absolute position, see Location.
func (p Point) Location() int {
	return Location(p.Abs())
}

// AABB returns the degenerate box around the point.
func (p Point) AABB() AABB {
	abs := p.Abs()
	return AABB{Min: abs, Max: abs}
}

// Points returns the point itself.
func (p Point) Points() []Point {
	return []Point{p}
}

// Centroid returns the point itself.
func (p Point) Centroid() Point {
	return p
}

// Support returns the point for any direction.
func (p Point) Support(direction mgl64.Vec3) mgl64.Vec3 {
	return p.Abs()
}

// Unique removes points equal within epsilon to an earlier one. The first
// point of each class is kept, order is preserved.
func Unique(points []Point, epsilon float64) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		duplicate := false
		for _, q := range result {
			if p.Equals(q, epsilon) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			result = append(result, p)
		}
	}
	return result
}

func absolutes(points []Point) []mgl64.Vec3 {
	result := make([]mgl64.Vec3, len(points))
	for i, p := range points {
		result[i] = p.Abs()
	}
	return result
}

func pointsFromAbs(offset mgl64.Vec3, positions []mgl64.Vec3) []Point {
	result := make([]Point, len(positions))
	for i, v := range positions {
		result[i] = pointFromAbs(offset, v)
	}
	return result
}

func meanPoint(points []Point) Point {
	var sum mgl64.Vec3
	for _, p := range points {
		sum = sum.Add(p.Abs())
	}
	return pointFromAbs(points[0].Offset, sum.Mul(1/float64(len(points))))
}

func supportOf(points []Point, direction mgl64.Vec3) mgl64.Vec3 {
	best := points[0].Abs()
	bestDot := best.Dot(direction)
	for _, p := range points[1:] {
		abs := p.Abs()
		if d := abs.Dot(direction); d > bestDot {
			best, bestDot = abs, d
		}
	}
	return best
}
