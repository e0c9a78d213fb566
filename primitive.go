package gortrace

import "math"

// Intersection describes where a ray meets a primitive.
type Intersection struct {
	Point     Point3d
	Distance  float64
	Normal    Vector3 // unit, facing the side the ray came from
	Color     Color
	Primitive Primitive
	FrontFace bool
}

// NoIntersection is the "no hit" value: its distance is +Inf.
func NoIntersection() Intersection {
	return Intersection{Distance: math.Inf(1)}
}

func (i Intersection) Hit() bool {
	return !math.IsInf(i.Distance, 1)
}

// Closer orders intersections by distance.
func (i Intersection) Closer(other Intersection) bool {
	return i.Distance < other.Distance
}

// Primitive is implemented by *Triangle, *Polygon and *Sphere only.
type Primitive interface {
	// IntersectWithRay returns the first hit at a strictly positive ray
	// parameter of origin + t*direction.
	IntersectWithRay(origin Point3d, direction Vector3) (Intersection, bool)
	BoundingBox() BoundingBox
	Material() Material

	sealed()
}

type primitiveBase struct {
	material Material
}

func (p *primitiveBase) Material() Material {
	return p.material
}

func (p *primitiveBase) sealed() {}

// hitFace fills the intersection for a planar face hit. volume is the signed
// tetrahedron volume returned by rayCrossing: a positive value means the ray
// arrives from behind the face.
func (p *primitiveBase) hitFace(self Primitive, origin, point Point3d, faceNormal Vector3, volume float64) Intersection {
	hit := Intersection{
		Point:     point,
		Distance:  point.Sub(origin).Len(),
		Primitive: self,
	}
	if volume > 0 {
		hit.Color = Black
		hit.FrontFace = false
		hit.Normal = faceNormal.NormalizeTo(-1)
	} else {
		hit.Color = p.material.Color
		hit.FrontFace = true
		hit.Normal = faceNormal.Normalize()
	}
	return hit
}
