package gortrace

import "math"

type Sphere struct {
	primitiveBase
	Center Point3d
	Radius float64
}

func NewSphere(center Point3d, radius float64, material Material) *Sphere {
	return &Sphere{
		primitiveBase: primitiveBase{material: material},
		Center:        center,
		Radius:        radius,
	}
}

// IntersectWithRay finds the closest approach of the ray line to the center
// and walks half a chord back (or forward, when the origin is inside).
func (s *Sphere) IntersectWithRay(origin Point3d, direction Vector3) (Intersection, bool) {
	if direction.LenSqr() == 0 {
		return Intersection{}, false
	}

	h := s.Center.FootOfPerpendicular(origin, origin.Add(direction))
	centerDistSqr := h.Sub(s.Center).LenSqr()
	if math.Sqrt(centerDistSqr) > s.Radius {
		return Intersection{}, false
	}

	chord := 2 * math.Sqrt(math.Max(0, s.Radius*s.Radius-centerDistSqr))
	unit := direction.Normalize()
	distance := h.Sub(origin).Dot(unit) - chord/2

	hit := Intersection{Primitive: s}
	if FloatLessOrEqual(distance, 0) {
		if FloatLessOrEqual(distance+chord, 0) {
			return Intersection{}, false
		}
		// origin inside the sphere: leave through the far wall
		hit.Distance = distance + chord
		hit.Point = origin.Add(unit.Mul(hit.Distance))
		hit.Normal = s.Center.Sub(hit.Point).Normalize()
		hit.Color = Black
		hit.FrontFace = false
		return hit, true
	}

	hit.Distance = distance
	hit.Point = origin.Add(unit.Mul(distance))
	hit.Normal = hit.Point.Sub(s.Center).Normalize()
	hit.Color = s.material.Color
	hit.FrontFace = true
	return hit, true
}

func (s *Sphere) BoundingBox() BoundingBox {
	r := NewVector3(s.Radius, s.Radius, s.Radius)
	return NewBoundingBox(s.Center.Sub(r), s.Center.Add(r))
}
