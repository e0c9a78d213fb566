package main

import (
	"sort"

	"github.com/smasonuk/gortrace"
)

type demoScene struct {
	description string
	build       func(s *gortrace.Scene) (gortrace.Viewport, error)
}

var (
	p = gortrace.NewPoint3d
	v = gortrace.NewVector3

	red   = gortrace.NewColor(1, 0, 0)
	green = gortrace.NewColor(0, 1, 0)
	blue  = gortrace.NewColor(0, 0, 1)
)

// standardViewport looks down -Z from above z.
func standardViewport(bottom, z float64) gortrace.Viewport {
	return gortrace.NewViewport(p(-4.0/3, bottom, z), v(8.0/3, 0, 0), v(0, 2, 0))
}

func addPolygon(s *gortrace.Scene, m gortrace.Material, points ...gortrace.Point3d) error {
	poly, err := gortrace.NewPolygon(points, m)
	if err != nil {
		return err
	}
	s.AddObject(poly)
	return nil
}

var demoScenes = map[string]demoScene{
	"triangle": {
		description: "single red right triangle",
		build: func(s *gortrace.Scene) (gortrace.Viewport, error) {
			s.AddObject(gortrace.NewTriangle(p(0, 0, 0), p(1, 0, 0), p(0, 1, 0), gortrace.NewMaterial(red, 0, 0)))
			s.AddLightSource(gortrace.NewLightSource(p(1, 1, 1), 1))
			return standardViewport(-1, 1), nil
		},
	},
	"polygon": {
		description: "convex red quadrangle",
		build: func(s *gortrace.Scene) (gortrace.Viewport, error) {
			err := addPolygon(s, gortrace.NewMaterial(red, 0, 0), p(0, 1, 0), p(-1, 0, 0), p(1, -2, 0), p(1, 0, 0))
			s.AddLightSource(gortrace.NewLightSource(p(1, 1, 1), 1.5))
			return standardViewport(-1.7, 3), err
		},
	},
	"sphere": {
		description: "green sphere lit from the upper right",
		build: func(s *gortrace.Scene) (gortrace.Viewport, error) {
			s.AddObject(gortrace.NewSphere(p(0, 0, 0), 0.7, gortrace.NewMaterial(green, 0, 0)))
			s.AddLightSource(gortrace.NewLightSource(p(1, 1, 1), 1))
			return standardViewport(-1, 1), nil
		},
	},
	"sphere-triangle": {
		description: "triangle cutting through a sphere, two lights",
		build: func(s *gortrace.Scene) (gortrace.Viewport, error) {
			s.AddObject(gortrace.NewSphere(p(0, 0, 0), 0.7, gortrace.NewMaterial(green, 0, 0)))
			s.AddObject(gortrace.NewTriangle(p(0, 0, 0.4), p(1, 0, 0.4), p(0, 1, 0.4), gortrace.NewMaterial(red, 0, 0)))
			s.AddLightSource(gortrace.NewLightSource(p(-1, -1, 1.5), 1.3))
			s.AddLightSource(gortrace.NewLightSource(p(0, 0, 5), 3))
			return standardViewport(-1, 1), nil
		},
	},
	"mirror1": {
		description: "two half mirrors meeting at an edge",
		build: func(s *gortrace.Scene) (gortrace.Viewport, error) {
			if err := addPolygon(s, gortrace.NewMaterial(blue, 0.5, 0), p(-1, -1, 1), p(0, -1, 0), p(0, 1, 0), p(-1, 1, 1)); err != nil {
				return gortrace.Viewport{}, err
			}
			err := addPolygon(s, gortrace.NewMaterial(red, 0.5, 0), p(0, -10, 0), p(1, -10, 10), p(1, 10, 10), p(0, 10, 0))
			s.AddLightSource(gortrace.NewLightSource(p(0, 0, 100), 100000))
			return standardViewport(-1, 3), err
		},
	},
	"mirror2": {
		description: "mirror sphere between two half mirrors",
		build: func(s *gortrace.Scene) (gortrace.Viewport, error) {
			if err := addPolygon(s, gortrace.NewMaterial(green, 0.5, 0), p(-1, -1, 1), p(0, -1, 0), p(0, 1, 0), p(-1, 1, 1)); err != nil {
				return gortrace.Viewport{}, err
			}
			s.AddObject(gortrace.NewSphere(p(-1, 0, 0), 1, gortrace.NewMaterial(blue, 0.95, 0)))
			err := addPolygon(s, gortrace.NewMaterial(red, 0.5, 0), p(0, 0, 0), p(1, 0, 10), p(1, 10, 10), p(0, 10, 0))
			s.AddLightSource(gortrace.NewLightSource(p(0, 0, 20), 700))
			return standardViewport(-1, 5), err
		},
	},
	"mirror3": {
		description: "two mirror spheres",
		build: func(s *gortrace.Scene) (gortrace.Viewport, error) {
			s.AddObject(gortrace.NewSphere(p(-2, 0, 0), 1.5, gortrace.NewMaterial(blue, 0.8, 0)))
			s.AddObject(gortrace.NewSphere(p(2, 0, 0), 1.5, gortrace.NewMaterial(blue, 0.8, 0)))
			s.AddLightSource(gortrace.NewLightSource(p(0, 0, 20), 500))
			return standardViewport(-1, 10), nil
		},
	},
	"glass1": {
		description: "sphere behind two glass panes",
		build: func(s *gortrace.Scene) (gortrace.Viewport, error) {
			s.AddObject(gortrace.NewSphere(p(0, 0, -3), 1, gortrace.NewMaterial(blue, 0, 0)))
			if err := addPolygon(s, gortrace.NewMaterial(green, 0, 0.5), p(-5, 0, 0), p(-5, -5, 0), p(5, -5, 0), p(5, 0, 0)); err != nil {
				return gortrace.Viewport{}, err
			}
			err := addPolygon(s, gortrace.NewMaterial(green, 0, 0.5), p(-5, 0, -1), p(-5, -5, -1), p(5, -5, -1), p(5, 0, -1))
			s.AddLightSource(gortrace.NewLightSource(p(0, 20, 20), 700))
			return standardViewport(-1, 5), err
		},
	},
	"glass2": {
		description: "sphere seen through a glass sphere",
		build: func(s *gortrace.Scene) (gortrace.Viewport, error) {
			s.AddObject(gortrace.NewSphere(p(0, 1, -3), 1, gortrace.NewMaterial(blue, 0, 0)))
			s.AddObject(gortrace.NewSphere(p(0, 0, -1), 1, gortrace.NewMaterial(blue, 0, 0.5)))
			s.AddLightSource(gortrace.NewLightSource(p(0, 20, 20), 700))
			return standardViewport(-1, 5), nil
		},
	},
	"internal-reflection": {
		description: "corridor of thin glass walls",
		build: func(s *gortrace.Scene) (gortrace.Viewport, error) {
			glass := gortrace.NewMaterial(green, 0, 0.01)
			wall := gortrace.NewMaterial(green, 0, 0)
			walls := []struct {
				m      gortrace.Material
				points []gortrace.Point3d
			}{
				{glass, []gortrace.Point3d{p(-1, 0, 30), p(-1, 0, -10), p(-1, -5, -10), p(-1, -5, 30)}},
				{glass, []gortrace.Point3d{p(1, 0, 30), p(1, -5, 30), p(1, -5, -10), p(1, 0, -10)}},
				{wall, []gortrace.Point3d{p(-1, 5, 30), p(-1, 5, -10), p(-1, 0, -10), p(-1, 0, 30)}},
				{wall, []gortrace.Point3d{p(1, 5, 30), p(1, 0, 30), p(1, 0, -10), p(1, 5, -10)}},
			}
			for _, w := range walls {
				if err := addPolygon(s, w.m, w.points...); err != nil {
					return gortrace.Viewport{}, err
				}
			}
			s.AddObject(gortrace.NewSphere(p(0, 0, -15), 1, gortrace.NewMaterial(blue, 0, 0)))
			s.AddLightSource(gortrace.NewLightSource(p(0, 20, 20), 700))
			return standardViewport(-1, 5), nil
		},
	},
	"lookat": {
		description: "mirror sphere over a floor, framed with a look-at camera",
		build: func(s *gortrace.Scene) (gortrace.Viewport, error) {
			err := addPolygon(s, gortrace.NewMaterial(gortrace.NewColor(0.8, 0.8, 0.8), 0.2, 0),
				p(-5, 0, -5), p(-5, 0, 5), p(5, 0, 5), p(5, 0, -5))
			s.AddObject(gortrace.NewSphere(p(0, 1, 0), 1, gortrace.NewMaterial(red, 0.6, 0)))
			s.AddObject(gortrace.NewSphere(p(2, 0.5, 1), 0.5, gortrace.NewMaterial(green, 0, 0)))
			s.AddLightSource(gortrace.NewLightSource(p(3, 6, 4), 60))
			return gortrace.NewViewportLookAt(v(0, 3, 8), v(0, 1, 0), v(0, 1, 0), 40, 4.0/3), err
		},
	},
}

func demoSceneNames() []string {
	names := make([]string, 0, len(demoScenes))
	for name := range demoScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
