package gortrace

import "math"

// BoundingBox is an axis-aligned box.
type BoundingBox struct {
	MinCorner Point3d
	MaxCorner Point3d
}

func NewBoundingBox(minCorner, maxCorner Point3d) BoundingBox {
	return BoundingBox{MinCorner: minCorner, MaxCorner: maxCorner}
}

// infiniteBox contains all of space.
func infiniteBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		MinCorner: NewPoint3d(-inf, -inf, -inf),
		MaxCorner: NewPoint3d(inf, inf, inf),
	}
}

func minCorner(a, b Point3d) Point3d {
	return NewPoint3d(math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z()))
}

func maxCorner(a, b Point3d) Point3d {
	return NewPoint3d(math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z()))
}

// boundPoints returns the tight box around points. It must not be empty.
func boundPoints(points ...Point3d) BoundingBox {
	box := BoundingBox{MinCorner: points[0], MaxCorner: points[0]}
	for _, p := range points[1:] {
		box.MinCorner = minCorner(box.MinCorner, p)
		box.MaxCorner = maxCorner(box.MaxCorner, p)
	}
	return box
}

// Union returns the smallest box containing both boxes.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		MinCorner: minCorner(b.MinCorner, other.MinCorner),
		MaxCorner: maxCorner(b.MaxCorner, other.MaxCorner),
	}
}

// Clip returns the intersection of both boxes.
func (b BoundingBox) Clip(other BoundingBox) BoundingBox {
	return BoundingBox{
		MinCorner: maxCorner(b.MinCorner, other.MinCorner),
		MaxCorner: minCorner(b.MaxCorner, other.MaxCorner),
	}
}

func (b BoundingBox) Center() Point3d {
	return b.MinCorner.Add(b.MaxCorner).Mul(0.5)
}

// Contains reports whether p lies in the box, with epsilon tolerance.
func (b BoundingBox) Contains(p Point3d) bool {
	for axis := AxisX; axis <= AxisZ; axis++ {
		if !FloatLessOrEqual(b.MinCorner.Component(axis), p.Component(axis)) ||
			!FloatLessOrEqual(p.Component(axis), b.MaxCorner.Component(axis)) {
			return false
		}
	}
	return true
}

// IntersectsWithRay reports whether the ray crosses any of the six faces.
func (b BoundingBox) IntersectsWithRay(origin Point3d, direction Vector3) bool {
	size := b.MaxCorner.Sub(b.MinCorner)
	dx := NewVector3(size.X(), 0, 0)
	dy := NewVector3(0, size.Y(), 0)
	dz := NewVector3(0, 0, size.Z())

	a0 := b.MinCorner
	b0 := a0.Add(dx)
	c0 := b0.Add(dy)
	d0 := a0.Add(dy)
	a1 := a0.Add(dz)
	b1 := b0.Add(dz)
	c1 := c0.Add(dz)
	d1 := d0.Add(dz)

	return b.rayCrossesSide(origin, direction, a0, b0, c0) ||
		b.rayCrossesSide(origin, direction, a1, b1, c1) ||
		b.rayCrossesSide(origin, direction, a0, a1, d1) ||
		b.rayCrossesSide(origin, direction, b0, b1, c1) ||
		b.rayCrossesSide(origin, direction, a0, a1, b1) ||
		b.rayCrossesSide(origin, direction, d0, d1, c1)
}

// rayCrossesSide tests the face spanned by a, b and c. The crossing point
// only has to lie inside the box since every face is one of its sides.
func (b BoundingBox) rayCrossesSide(origin Point3d, direction Vector3, p1, p2, p3 Point3d) bool {
	t, _, ok := rayCrossing(origin, direction, p1, p2, p3)
	if !ok || t < 0 {
		return false
	}
	return b.Contains(origin.Add(direction.Mul(t)))
}
