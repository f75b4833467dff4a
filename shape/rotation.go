package shape

import (
	"github.com/akmonengine/geom3d/numeric"
	"github.com/go-gl/mathgl/mgl64"
)

// rotation is a rotation about an arbitrary axis, stored as the axis origin
// and a unit quaternion.
type rotation struct {
	Origin   mgl64.Vec3
	Rotation mgl64.Quat
	identity bool
}

// newRotation builds the rotation of theta radians about axis. Angles within
// epsilon of a whole turn give the identity.
func newRotation(axis Ray, theta, epsilon float64) rotation {
	if numeric.IsFullTurn(theta, epsilon) {
		return rotation{Rotation: mgl64.QuatIdent(), identity: true}
	}
	direction := axis.L.V
	if l := direction.Len(); l > 0 {
		direction = direction.Mul(1 / l)
	}
	return rotation{
		Origin:   axis.L.P.Abs(),
		Rotation: mgl64.QuatRotate(numeric.NormalizeAngle(theta), direction),
	}
}

// position rotates an absolute position.
func (r rotation) position(v mgl64.Vec3) mgl64.Vec3 {
	if r.identity {
		return v
	}
	return r.Rotation.Rotate(v.Sub(r.Origin)).Add(r.Origin)
}

// vector rotates a free vector; the axis origin does not apply.
func (r rotation) vector(v mgl64.Vec3) mgl64.Vec3 {
	if r.identity {
		return v
	}
	return r.Rotation.Rotate(v)
}

func (r rotation) point(p *Point) {
	if r.identity {
		return
	}
	p.Rel = r.position(p.Abs()).Sub(p.Offset)
}
