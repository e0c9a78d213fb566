package gortrace

import (
	"errors"
	"log"
)

var ErrEmptyScene = errors.New("scene has no primitives")

// Scene owns the primitives and lights to render. Add everything, call Build
// once, then query. The scene is read-only after Build.
type Scene struct {
	primitives *PrimitiveStore
	lights     []LightSource
	tree       *BspTree
	stats      *BspStats
}

func NewScene() *Scene {
	return &Scene{primitives: NewPrimitiveStore()}
}

func (s *Scene) AddObject(p Primitive) PrimitiveID {
	if s.tree != nil {
		panic("gortrace: AddObject called after Build")
	}
	return s.primitives.Add(p)
}

func (s *Scene) AddLightSource(l LightSource) {
	s.lights = append(s.lights, l)
}

func (s *Scene) LightSources() []LightSource {
	return s.lights
}

func (s *Scene) Primitive(id PrimitiveID) Primitive {
	return s.primitives.Get(id)
}

func (s *Scene) PrimitiveCount() int {
	return s.primitives.Count()
}

// SetStats attaches a counter to the BSP tree. Call it before Build.
func (s *Scene) SetStats(stats *BspStats) {
	s.stats = stats
}

// Bounds returns the box around every primitive.
func (s *Scene) Bounds() BoundingBox {
	return s.primitives.Bounds(s.primitives.IDs())
}

// Build creates the spatial index over the primitives added so far.
func (s *Scene) Build() error {
	if s.primitives.Count() == 0 {
		return ErrEmptyScene
	}

	log.Println("Creating BSP Tree...")
	s.tree = NewBspTree(s.primitives, s.stats)
	shape := s.tree.shape()
	log.Printf("BSP Tree Created. Primitives: %d, nodes: %d, leaves: %d, depth: %d",
		s.primitives.Count(), shape.nodes, shape.leaves, shape.maxDepth)
	return nil
}

func (s *Scene) IsBuilt() bool {
	return s.tree != nil
}

// FindRayIntersection returns the nearest primitive hit by the ray. It panics
// if Build has not been called.
func (s *Scene) FindRayIntersection(origin Point3d, direction Vector3) (Intersection, bool) {
	if s.tree == nil {
		panic("gortrace: FindRayIntersection called before Build")
	}
	return s.tree.FindRayIntersection(origin, direction)
}
