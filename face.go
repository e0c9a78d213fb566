package gortrace

import (
	"errors"
	"fmt"
	"slices"
)

var ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")

// Triangle is a single planar face. Its outward normal is (B-A) x (C-A).
type Triangle struct {
	primitiveBase
	A, B, C Point3d
}

func NewTriangle(a, b, c Point3d, material Material) *Triangle {
	return &Triangle{
		primitiveBase: primitiveBase{material: material},
		A:             a,
		B:             b,
		C:             c,
	}
}

// NewTriangleWithNormal orders the vertices so that the outward normal agrees
// with normal. A zero normal keeps the given order.
func NewTriangleWithNormal(a, b, c Point3d, normal Vector3, material Material) *Triangle {
	if normal.LenSqr() == 0 || faceNormal(a, b, c).Dot(normal) > 0 {
		return NewTriangle(a, b, c, material)
	}
	return NewTriangle(a, c, b, material)
}

func (t *Triangle) Normal() Vector3 {
	return faceNormal(t.A, t.B, t.C).Normalize()
}

func (t *Triangle) IntersectWithRay(origin Point3d, direction Vector3) (Intersection, bool) {
	param, volume, ok := rayCrossing(origin, direction, t.A, t.B, t.C)
	if !ok || FloatLessOrEqual(param, 0) {
		return Intersection{}, false
	}

	x := origin.Add(direction.Mul(param))
	if outsideEdge(t.A, t.B, t.C, x) || outsideEdge(t.B, t.C, t.A, x) || outsideEdge(t.C, t.A, t.B, x) {
		return Intersection{}, false
	}

	return t.hitFace(t, origin, x, faceNormal(t.A, t.B, t.C), volume), true
}

func (t *Triangle) BoundingBox() BoundingBox {
	return boundPoints(t.A, t.B, t.C)
}

// Polygon is a convex planar face with at least three vertices.
type Polygon struct {
	primitiveBase
	Points []Point3d
}

func NewPolygon(points []Point3d, material Material) (*Polygon, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(points))
	}
	return &Polygon{
		primitiveBase: primitiveBase{material: material},
		Points:        slices.Clone(points),
	}, nil
}

// NewPolygonWithNormal reverses the vertex order when the implied normal
// disagrees with normal. A zero normal keeps the given order.
func NewPolygonWithNormal(points []Point3d, normal Vector3, material Material) (*Polygon, error) {
	p, err := NewPolygon(points, material)
	if err != nil {
		return nil, err
	}
	if normal.LenSqr() != 0 && !(faceNormal(p.Points[0], p.Points[1], p.Points[2]).Dot(normal) > 0) {
		slices.Reverse(p.Points)
	}
	return p, nil
}

func (p *Polygon) Normal() Vector3 {
	return faceNormal(p.Points[0], p.Points[1], p.Points[2]).Normalize()
}

func (p *Polygon) IntersectWithRay(origin Point3d, direction Vector3) (Intersection, bool) {
	a, b, c := p.Points[0], p.Points[1], p.Points[2]

	param, volume, ok := rayCrossing(origin, direction, a, b, c)
	if !ok || FloatLessOrEqual(param, 0) {
		return Intersection{}, false
	}

	x := origin.Add(direction.Mul(param))
	n := len(p.Points)
	for i := range p.Points {
		if outsideEdge(p.Points[i], p.Points[(i+1)%n], p.Points[(i+2)%n], x) {
			return Intersection{}, false
		}
	}

	return p.hitFace(p, origin, x, faceNormal(a, b, c), volume), true
}

func (p *Polygon) BoundingBox() BoundingBox {
	return boundPoints(p.Points...)
}

// get midpoint of the face
func (p *Polygon) MidPoint() Point3d {
	var sum Vector3
	for _, pnt := range p.Points {
		sum = sum.Add(pnt)
	}
	return sum.Mul(1 / float64(len(p.Points)))
}

func faceNormal(a, b, c Point3d) Vector3 {
	return b.Sub(a).Cross(c.Sub(a))
}

// outsideEdge reports whether x lies strictly on the other side of the edge
// from->to than the reference vertex ref.
func outsideEdge(from, to, ref, x Point3d) bool {
	edge := to.Sub(from)
	return FloatGreater(0, edge.Cross(x.Sub(from)).Dot(edge.Cross(ref.Sub(from))))
}
