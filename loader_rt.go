package gortrace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
)

// tokenReader splits its input on white space.
type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &tokenReader{scanner: scanner}
}

func (tr *tokenReader) next() (string, error) {
	if !tr.scanner.Scan() {
		if err := tr.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return tr.scanner.Text(), nil
}

// expectNext is next with io.EOF turned into an error naming what was wanted.
func (tr *tokenReader) expectNext(what string) (string, error) {
	tok, err := tr.next()
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("unexpected end of file, expected %s", what)
	}
	return tok, err
}

func (tr *tokenReader) float() (float64, error) {
	tok, err := tr.expectNext("a number")
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse float value '%s': %w", tok, err)
	}
	return val, nil
}

func (tr *tokenReader) point() (Point3d, error) {
	var coords [3]float64
	for i := range coords {
		v, err := tr.float()
		if err != nil {
			return Point3d{}, err
		}
		coords[i] = v
	}
	return NewPoint3d(coords[0], coords[1], coords[2]), nil
}

func (tr *tokenReader) expect(want string) error {
	tok, err := tr.expectNext(want)
	if err != nil {
		return err
	}
	if tok != want {
		return fmt.Errorf("expected '%s', got '%s'", want, tok)
	}
	return nil
}

// LoadRtFile reads a .rt scene description into scene and returns its viewport.
func LoadRtFile(fileName string, scene *Scene) (Viewport, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return Viewport{}, fmt.Errorf("could not open RT file %s: %w", fileName, err)
	}
	defer file.Close()

	vp, err := LoadRt(file, scene)
	if err != nil {
		return Viewport{}, fmt.Errorf("error parsing RT file %s: %w", fileName, err)
	}
	return vp, nil
}

// LoadRt parses the viewport, materials, lights and geometry sections of a
// .rt scene. Sections may come in any order; geometry refers to materials
// declared before it.
func LoadRt(r io.Reader, scene *Scene) (Viewport, error) {
	tr := newTokenReader(r)
	materials := make(map[string]Material)
	var viewport Viewport
	haveViewport := false

	for {
		tok, err := tr.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Viewport{}, err
		}

		switch tok {
		case "viewport":
			viewport, err = readViewport(tr)
			haveViewport = true
		case "materials":
			err = readMaterials(tr, materials)
		case "lights":
			err = readLights(tr, scene)
		case "geometry":
			err = readGeometry(tr, scene, materials)
		default:
			err = fmt.Errorf("unknown section '%s'", tok)
		}
		if err != nil {
			return Viewport{}, fmt.Errorf("%s: %w", tok, err)
		}
	}

	if !haveViewport {
		return Viewport{}, errors.New("no viewport section")
	}
	log.Printf("RT scene loaded. Materials: %d, lights: %d, primitives: %d",
		len(materials), len(scene.LightSources()), scene.PrimitiveCount())
	return viewport, nil
}

func readViewport(tr *tokenReader) (Viewport, error) {
	var origin, topLeft, bottomLeft, topRight Point3d
	for {
		tok, err := tr.expectNext("endviewport")
		if err != nil {
			return Viewport{}, err
		}
		if tok == "endviewport" {
			break
		}
		p, err := tr.point()
		if err != nil {
			return Viewport{}, err
		}
		switch tok {
		case "origin":
			origin = p
		case "topleft":
			topLeft = p
		case "bottomleft":
			bottomLeft = p
		case "topright":
			topRight = p
		default:
			return Viewport{}, fmt.Errorf("unknown viewport corner '%s'", tok)
		}
	}
	return NewViewportWithCamera(origin, bottomLeft, topRight.Sub(topLeft), topLeft.Sub(bottomLeft)), nil
}

func readMaterials(tr *tokenReader, materials map[string]Material) error {
	for {
		tok, err := tr.expectNext("entry")
		if err != nil {
			return err
		}
		if tok == "endmaterials" {
			return nil
		}
		if tok != "entry" {
			return fmt.Errorf("expected 'entry', got '%s'", tok)
		}

		var name string
		m := NewMaterial(Black, 0, 0)
	entry:
		for {
			tok, err := tr.expectNext("endentry")
			if err != nil {
				return err
			}
			switch tok {
			case "name":
				if name, err = tr.expectNext("material name"); err != nil {
					return err
				}
			case "color":
				c, err := tr.point()
				if err != nil {
					return err
				}
				m.Color = NewColor(c.X()/255, c.Y()/255, c.Z()/255)
			case "reflect":
				if m.Reflectivity, err = tr.float(); err != nil {
					return err
				}
			case "refract":
				if m.RefractiveIndex, err = tr.float(); err != nil {
					return err
				}
			case "endentry":
				break entry
			default:
				return fmt.Errorf("unknown material property '%s'", tok)
			}
		}
		materials[name] = m
	}
}

func readLights(tr *tokenReader, scene *Scene) error {
	referencePower, referenceDistance := 1.0, 1.0

	for {
		tok, err := tr.expectNext("endlights")
		if err != nil {
			return err
		}

		switch tok {
		case "endlights":
			return nil
		case "reference":
			if err := readPairs(tr, "endreference", map[string]*float64{
				"power":    &referencePower,
				"distance": &referenceDistance,
			}); err != nil {
				return err
			}
		case "point":
			position := NewPoint3d(0, 0, 0)
			power := 1.0
			for {
				tok, err := tr.expectNext("endpoint")
				if err != nil {
					return err
				}
				if tok == "endpoint" {
					break
				}
				switch tok {
				case "coords":
					position, err = tr.point()
				case "power":
					power, err = tr.float()
				default:
					err = fmt.Errorf("unknown light property '%s'", tok)
				}
				if err != nil {
					return err
				}
			}
			scene.AddLightSource(NewLightSource(position, power/referencePower*referenceDistance*referenceDistance))
		default:
			return fmt.Errorf("unknown light entry '%s'", tok)
		}
	}
}

// readPairs reads "key number" pairs into fields until end.
func readPairs(tr *tokenReader, end string, fields map[string]*float64) error {
	for {
		tok, err := tr.expectNext(end)
		if err != nil {
			return err
		}
		if tok == end {
			return nil
		}
		field, ok := fields[tok]
		if !ok {
			return fmt.Errorf("unknown property '%s'", tok)
		}
		if *field, err = tr.float(); err != nil {
			return err
		}
	}
}

func readGeometry(tr *tokenReader, scene *Scene, materials map[string]Material) error {
	for {
		tok, err := tr.expectNext("endgeometry")
		if err != nil {
			return err
		}

		switch tok {
		case "endgeometry":
			return nil
		case "sphere":
			err = readSphere(tr, scene, materials)
		case "triangle":
			err = readFace(tr, scene, materials, "endtriangle", 3)
		case "quadrangle":
			err = readFace(tr, scene, materials, "endquadrangle", 4)
		default:
			err = fmt.Errorf("unknown primitive '%s'", tok)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", tok, err)
		}
	}
}

func lookupMaterial(tr *tokenReader, materials map[string]Material) (Material, error) {
	name, err := tr.expectNext("material name")
	if err != nil {
		return Material{}, err
	}
	m, ok := materials[name]
	if !ok {
		return Material{}, fmt.Errorf("unknown material '%s'", name)
	}
	return m, nil
}

func readSphere(tr *tokenReader, scene *Scene, materials map[string]Material) error {
	var center Point3d
	radius := 1.0
	var material Material

	for {
		tok, err := tr.expectNext("endsphere")
		if err != nil {
			return err
		}
		if tok == "endsphere" {
			break
		}
		switch tok {
		case "coords":
			center, err = tr.point()
		case "radius":
			radius, err = tr.float()
		case "material":
			material, err = lookupMaterial(tr, materials)
		default:
			err = fmt.Errorf("unknown sphere property '%s'", tok)
		}
		if err != nil {
			return err
		}
	}

	scene.AddObject(NewSphere(center, radius, material))
	return nil
}

func readFace(tr *tokenReader, scene *Scene, materials map[string]Material, end string, vertexCount int) error {
	vertices := make([]Point3d, 0, vertexCount)
	var material Material

	for {
		tok, err := tr.expectNext(end)
		if err != nil {
			return err
		}
		if tok == end {
			break
		}
		switch tok {
		case "vertex":
			var p Point3d
			if p, err = tr.point(); err == nil {
				vertices = append(vertices, p)
			}
		case "material":
			material, err = lookupMaterial(tr, materials)
		default:
			err = fmt.Errorf("unknown face property '%s'", tok)
		}
		if err != nil {
			return err
		}
	}

	if len(vertices) != vertexCount {
		return fmt.Errorf("expected %d vertices, got %d", vertexCount, len(vertices))
	}
	if vertexCount == 3 {
		scene.AddObject(NewTriangle(vertices[0], vertices[1], vertices[2], material))
		return nil
	}
	poly, err := NewPolygon(vertices, material)
	if err != nil {
		return err
	}
	scene.AddObject(poly)
	return nil
}
