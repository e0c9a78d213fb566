package gortrace

// Plane is the set of points where A*x + B*y + C*z + D == 0.
type Plane struct {
	A, B, C, D float64
}

func NewPlaneFromPoint(p Point3d, normal Vector3) Plane {
	pl := Plane{
		A: normal.X(),
		B: normal.Y(),
		C: normal.Z(),
	}
	pl.D = -(pl.A*p.X() + pl.B*p.Y() + pl.C*p.Z())
	return pl
}

// newSplitPlane returns the axis-aligned plane through value on axis. Its
// normal points to the negative side, so points on the low half are positive.
func newSplitPlane(axis Axis, value float64) Plane {
	return NewPlaneFromPoint(Point3d{}.withComponent(axis, value), axis.unit().Mul(-1))
}

// PointOnPlane returns the signed distance (scaled by the normal length) of p.
func (p Plane) PointOnPlane(pnt Point3d) float64 {
	return p.A*pnt.X() + p.B*pnt.Y() + p.C*pnt.Z() + p.D
}

// rayCrossing locates where the ray origin + t*direction crosses the plane
// through a, b and c. volume is the signed volume of the tetrahedron
// (a, b, c, origin); it is positive when the origin lies behind the plane
// (b-a) x (c-a). ok is false when the ray is parallel to the plane.
func rayCrossing(origin Point3d, direction Vector3, a, b, c Point3d) (t, volume float64, ok bool) {
	rayPoint := origin.Add(direction)

	v1 := MixedProduct(a.Sub(origin), b.Sub(origin), c.Sub(origin))
	v2 := MixedProduct(a.Sub(rayPoint), b.Sub(rayPoint), c.Sub(rayPoint))

	if FloatEqual(0, v1-v2) {
		return 0, v1, false
	}
	return v1 / (v1 - v2), v1, true
}
