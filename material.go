package gortrace

// Material describes how a surface answers light. RefractiveIndex 0 means the
// surface is opaque.
type Material struct {
	Color           Color
	Reflectivity    float64
	RefractiveIndex float64
}

func NewMaterial(col Color, reflectivity, refractiveIndex float64) Material {
	return Material{
		Color:           col,
		Reflectivity:    reflectivity,
		RefractiveIndex: refractiveIndex,
	}
}

func (m Material) IsOpaque() bool {
	return FloatEqual(m.RefractiveIndex, 0)
}

// LightSource is a point light.
type LightSource struct {
	Position  Point3d
	Intensity float64
}

func NewLightSource(position Point3d, intensity float64) LightSource {
	return LightSource{Position: position, Intensity: intensity}
}
