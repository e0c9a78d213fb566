package gortrace

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is an immutable 3D vector. Every operation returns a new value.
type Vector3 mgl64.Vec3

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

func (v Vector3) X() float64 { return v[0] }
func (v Vector3) Y() float64 { return v[1] }
func (v Vector3) Z() float64 { return v[2] }

func (v Vector3) vec() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3(v.vec().Add(other.vec()))
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3(v.vec().Sub(other.vec()))
}

func (v Vector3) Mul(k float64) Vector3 {
	return Vector3(v.vec().Mul(k))
}

// Dot is the scalar product.
func (v Vector3) Dot(other Vector3) float64 {
	return v.vec().Dot(other.vec())
}

// Cross is the vector product.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3(v.vec().Cross(other.vec()))
}

// MixedProduct returns a . (b x c), the signed volume of the parallelepiped
// spanned by the three vectors.
func MixedProduct(a, b, c Vector3) float64 {
	return a.Dot(b.Cross(c))
}

func (v Vector3) Len() float64 {
	return v.vec().Len()
}

func (v Vector3) LenSqr() float64 {
	return v.vec().LenSqr()
}

// DistanceTo returns the Euclidean distance between two points.
func (v Vector3) DistanceTo(other Vector3) float64 {
	return v.Sub(other).Len()
}

// Normalize returns the unit vector in the direction of v. The zero vector
// stays zero.
func (v Vector3) Normalize() Vector3 {
	return v.NormalizeTo(1)
}

// NormalizeTo returns a vector of length |k| along v (against v when k < 0).
func (v Vector3) NormalizeTo(k float64) Vector3 {
	length := v.Len()
	if length == 0 {
		return Vector3{}
	}
	return v.Mul(k / length)
}

// Reflect mirrors v about the plane with the given normal.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	n := normal.Normalize()
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract bends v through a surface with the given normal. eta is the ratio
// of the incident medium index to the transmission medium index. The
// refracted direction is a unit vector. When Snell's law has no solution the
// mirror reflection of v is returned instead.
func (v Vector3) Refract(normal Vector3, eta float64) Vector3 {
	lenSqr := v.LenSqr()
	if lenSqr == 0 {
		return v
	}

	n := normal.Normalize()
	projection := n.Mul(v.Dot(n))
	height := v.Sub(projection)

	sinOut := eta * math.Sqrt(math.Max(0, 1-projection.LenSqr()/lenSqr))
	if FloatGreaterOrEqual(sinOut, 1) {
		// total internal reflection
		return v.Reflect(normal)
	}
	cosOut := math.Sqrt(1 - sinOut*sinOut)

	if FloatEqual(height.Len(), 0) {
		return projection.Normalize()
	}
	return projection.NormalizeTo(cosOut).Add(height.NormalizeTo(sinOut))
}

// FootOfPerpendicular projects v onto the line through a and b.
func (v Vector3) FootOfPerpendicular(a, b Vector3) Vector3 {
	line := b.Sub(a)
	length := line.Len()
	if length == 0 {
		return a
	}
	return a.Add(line.NormalizeTo(line.Dot(v.Sub(a)) / length))
}

// Component returns the coordinate along the given axis.
func (v Vector3) Component(axis Axis) float64 {
	return v[axis]
}

func (v Vector3) withComponent(axis Axis, value float64) Vector3 {
	v[axis] = value
	return v
}

// ApproxEqual compares every coordinate with FloatEqual.
func (v Vector3) ApproxEqual(other Vector3) bool {
	return FloatEqual(v[0], other[0]) && FloatEqual(v[1], other[1]) && FloatEqual(v[2], other[2])
}
