package gortrace

// Point3d is a position in space. It shares all of Vector3's operations.
type Point3d = Vector3

func NewPoint3d(x, y, z float64) Point3d {
	return Point3d{x, y, z}
}

// Axis selects a coordinate of a Vector3.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

// unit returns the basis vector of the axis.
func (a Axis) unit() Vector3 {
	var v Vector3
	v[a] = 1
	return v
}
