package gortrace

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

const (
	maxTraceDepth     = 15
	minTraceIntensity = 0.1
	minReflectivity   = 1e-3
)

// TraceStats counts tracing work. A nil *TraceStats counts nothing.
type TraceStats struct {
	Traces     int // traceRay calls that queried the scene
	ShadowRays int
	MaxDepth   int // deepest recursion level that queried the scene
}

func (s *TraceStats) trace(depth int) {
	if s == nil {
		return
	}
	s.Traces++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
}

func (s *TraceStats) shadowRay() {
	if s != nil {
		s.ShadowRays++
	}
}

// Renderer ray traces a built scene into a height x width grid of linear
// colors. Row 0 is the top of the image.
type Renderer struct {
	scene    *Scene
	viewport Viewport
	height   int
	width    int
	pixels   [][]Color
	stats    *TraceStats
}

func NewRenderer(scene *Scene, viewport Viewport, height, width int) *Renderer {
	return &Renderer{
		scene:    scene,
		viewport: viewport,
		height:   height,
		width:    width,
	}
}

func (r *Renderer) SetStats(stats *TraceStats) {
	r.stats = stats
}

func (r *Renderer) Height() int { return r.height }
func (r *Renderer) Width() int  { return r.width }

// Pixel returns the color at row (0 = top) and col.
func (r *Renderer) Pixel(row, col int) Color {
	return r.pixels[row][col]
}

// Render traces one primary ray per pixel. The scene must be built.
func (r *Renderer) Render() {
	r.pixels = make([][]Color, r.height)
	for i := range r.pixels {
		r.pixels[i] = make([]Color, r.width)
	}

	for i := 0; i < r.height; i++ {
		for j := 0; j < r.width; j++ {
			direction := r.viewport.PrimaryRay(float64(j)/float64(r.width), float64(i)/float64(r.height))
			r.pixels[r.height-1-i][j] = r.traceRay(r.viewport.Camera, direction, 1, 0)
		}
	}
}

func (r *Renderer) traceRay(origin Point3d, direction Vector3, intensity float64, depth int) Color {
	if depth > maxTraceDepth || intensity < minTraceIntensity {
		return BackgroundColor
	}
	r.stats.trace(depth)

	hit, ok := r.scene.FindRayIntersection(origin, direction)
	if !ok {
		return BackgroundColor
	}
	material := hit.Primitive.Material()

	reflected := Black
	if hit.FrontFace && material.Reflectivity > minReflectivity {
		reflected = r.traceRay(hit.Point, direction.Reflect(hit.Normal), intensity*material.Reflectivity, depth+1)
	}

	if material.IsOpaque() {
		lit := hit.Color.Scale(r.directIllumination(hit) * (1 - material.Reflectivity))
		return lit.Add(reflected.Scale(material.Reflectivity))
	}

	eta := material.RefractiveIndex
	if !hit.FrontFace {
		eta = 1 / eta
	}
	refracted := r.traceRay(hit.Point, direction.Refract(hit.Normal, eta), intensity*(1-material.Reflectivity), depth+1)
	return refracted.Scale(1 - material.Reflectivity).Add(reflected.Scale(material.Reflectivity))
}

// isVisible reports whether the light at from sees point on the given
// primitive: the first thing hit on the way must be that very point.
func (r *Renderer) isVisible(from, point Point3d, target Primitive) bool {
	r.stats.shadowRay()

	hit, ok := r.scene.FindRayIntersection(from, point.Sub(from))
	if !ok {
		return false
	}
	return hit.Primitive == target && FloatEqual(0, hit.Point.Sub(point).Len())
}

// directIllumination sums Lambertian inverse-square contributions of every
// light that can see the hit point.
func (r *Renderer) directIllumination(hit Intersection) float64 {
	total := 0.0
	for _, light := range r.scene.LightSources() {
		if !r.isVisible(light.Position, hit.Point, hit.Primitive) {
			continue
		}
		toLight := light.Position.Sub(hit.Point)
		incidence := hit.Normal.Normalize().Dot(toLight.Normalize())
		if incidence > 0 {
			total += light.Intensity * incidence / toLight.LenSqr()
		}
	}
	return total
}

// Image converts the framebuffer to 8 bit RGBA, clamping every channel.
func (r *Renderer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			img.SetRGBA(x, y, r.Pixel(y, x).ToRGBA())
		}
	}
	return img
}

func (r *Renderer) SavePNG(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", fileName, err)
	}

	if err := png.Encode(file, r.Image()); err != nil {
		file.Close()
		return fmt.Errorf("could not encode PNG %s: %w", fileName, err)
	}
	return file.Close()
}
