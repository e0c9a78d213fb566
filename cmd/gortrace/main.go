package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/smasonuk/gortrace"
)

func main() {
	sceneName := flag.String("scene", "sphere-triangle", "Demo scene to render (see -list)")
	rtFile := flag.String("rt", "", "Load the scene from a .rt file instead of a demo scene")
	stlFile := flag.String("stl", "", "Render an ASCII STL mesh")
	plyFile := flag.String("ply", "", "Render an ASCII PLY mesh")
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 480, "Image height in pixels")
	out := flag.String("out", "render.png", "Output PNG file")
	stats := flag.Bool("stats", false, "Print BSP and tracing counters")
	show := flag.Bool("show", false, "Open a preview window after rendering")
	list := flag.Bool("list", false, "List the demo scenes and exit")
	flag.Parse()

	if *list {
		fmt.Println("Available scenes:")
		for _, name := range demoSceneNames() {
			fmt.Printf("  %-20s %s\n", name, demoScenes[name].description)
		}
		return
	}

	if *width <= 0 || *height <= 0 {
		log.Fatalf("invalid image size %dx%d", *width, *height)
	}

	scene := gortrace.NewScene()
	var bspStats gortrace.BspStats
	var traceStats gortrace.TraceStats
	if *stats {
		scene.SetStats(&bspStats)
	}

	viewport, err := loadScene(scene, *sceneName, *rtFile, *stlFile, *plyFile, float64(*width)/float64(*height))
	if err != nil {
		log.Fatal(err)
	}

	if err := scene.Build(); err != nil {
		log.Fatalf("could not build scene: %v", err)
	}
	buildCalls := bspStats.BuildCalls

	renderer := gortrace.NewRenderer(scene, viewport, *height, *width)
	if *stats {
		renderer.SetStats(&traceStats)
	}

	fmt.Printf("Rendering %dx%d...\n", *width, *height)
	startTime := time.Now()
	renderer.Render()
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	if *stats {
		pixels := float64(*width * *height)
		fmt.Printf("BSP build calls: %d\n", buildCalls)
		fmt.Printf("BSP find calls: %d (%.1f per pixel)\n", bspStats.FindCalls, float64(bspStats.FindCalls)/pixels)
		fmt.Printf("Traced rays: %d, shadow rays: %d, max depth: %d\n",
			traceStats.Traces, traceStats.ShadowRays, traceStats.MaxDepth)
	}

	if err := renderer.SavePNG(*out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Render saved as %s\n", *out)

	if *show {
		if err := runPreview(renderer, *out); err != nil {
			log.Fatal(err)
		}
	}
}

// loadScene fills scene from the first source given: an .rt file, a mesh or
// a demo scene.
func loadScene(scene *gortrace.Scene, name, rtFile, stlFile, plyFile string, aspect float64) (gortrace.Viewport, error) {
	meshMaterial := gortrace.NewMaterial(gortrace.NewColor(0.8, 0.8, 0.8), 0, 0)

	switch {
	case rtFile != "":
		return gortrace.LoadRtFile(rtFile, scene)
	case stlFile != "":
		if err := gortrace.LoadStlFile(stlFile, meshMaterial, scene); err != nil {
			return gortrace.Viewport{}, err
		}
		return frameMesh(scene, aspect), nil
	case plyFile != "":
		if err := gortrace.LoadPlyFile(plyFile, meshMaterial, scene); err != nil {
			return gortrace.Viewport{}, err
		}
		return frameMesh(scene, aspect), nil
	}

	demo, ok := demoScenes[name]
	if !ok {
		return gortrace.Viewport{}, fmt.Errorf("unknown scene %q, try -list", name)
	}
	fmt.Printf("Using %s scene...\n", name)
	return demo.build(scene)
}

// frameMesh points a look-at camera at the loaded mesh and adds a light
// over the camera's shoulder.
func frameMesh(scene *gortrace.Scene, aspect float64) gortrace.Viewport {
	bounds := scene.Bounds()
	center := bounds.Center()
	radius := bounds.MaxCorner.Sub(center).Len()
	if radius == 0 {
		radius = 1
	}

	eye := center.Add(gortrace.NewVector3(0.5, 0.7, 2.5).NormalizeTo(3 * radius))
	light := center.Add(gortrace.NewVector3(1, 2, 2).NormalizeTo(4 * radius))
	scene.AddLightSource(gortrace.NewLightSource(light, 16*radius*radius))

	return gortrace.NewViewportLookAt(eye, center, gortrace.NewVector3(0, 1, 0), 45, aspect)
}
