package gortrace

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

type plyProperty struct {
	name   string
	typ    string
	isList bool
}

// plyElement is one header element. Columns of a record follow the property
// order, a list property taking its count plus that many values.
type plyElement struct {
	name  string
	count int
	props []plyProperty
}

func (e *plyElement) index(names ...string) int {
	for i, p := range e.props {
		for _, name := range names {
			if p.name == name {
				return i
			}
		}
	}
	return -1
}

// colorIndices finds the red, green and blue properties, or reports false
// when any of them is missing.
func (e *plyElement) colorIndices() ([3]int, bool) {
	idx := [3]int{
		e.index("red", "diffuse_red"),
		e.index("green", "diffuse_green"),
		e.index("blue", "diffuse_blue"),
	}
	return idx, idx[0] >= 0 && idx[1] >= 0 && idx[2] >= 0
}

// split cuts a record into one field per property.
func (e *plyElement) split(parts []string) ([][]string, error) {
	fields := make([][]string, len(e.props))
	pos := 0
	for i, p := range e.props {
		if pos >= len(parts) {
			return nil, fmt.Errorf("missing value for property '%s'", p.name)
		}
		if !p.isList {
			fields[i] = parts[pos : pos+1]
			pos++
			continue
		}
		n, err := strconv.Atoi(parts[pos])
		if err != nil {
			return nil, fmt.Errorf("invalid count '%s' for list '%s': %w", parts[pos], p.name, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("negative count %d for list '%s'", n, p.name)
		}
		pos++
		if pos+n > len(parts) {
			return nil, fmt.Errorf("expected %d values for list '%s', got %d", n, p.name, len(parts)-pos)
		}
		fields[i] = parts[pos : pos+n]
		pos += n
	}
	return fields, nil
}

type plyVertex struct {
	pos      Point3d
	color    Color
	hasColor bool
}

func LoadPlyFile(fileName string, material Material, scene *Scene) error {
	file, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("could not open PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	if err := LoadPly(file, material, scene); err != nil {
		return fmt.Errorf("error parsing PLY file %s: %w", fileName, err)
	}
	return nil
}

// LoadPly reads an ASCII PLY mesh. Three sided faces become triangles, larger
// ones polygons. Face or vertex colors, when present, replace the material
// color; the rest of the material is kept. Properties are read by name, so
// normals or other extras may sit anywhere in a record.
func LoadPly(reader io.Reader, material Material, scene *Scene) error {
	scanner := bufio.NewScanner(reader)

	var elements []*plyElement
	var current *plyElement

	headerDone := false
	for !headerDone && scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) > 1 && parts[1] != "ascii" {
				return fmt.Errorf("unsupported PLY format '%s'", parts[1])
			}
		case "element":
			if len(parts) != 3 {
				return fmt.Errorf("malformed element line '%s'", scanner.Text())
			}
			n, err := strconv.Atoi(parts[2])
			if err != nil {
				return fmt.Errorf("invalid element count '%s': %w", parts[2], err)
			}
			if n < 0 {
				return fmt.Errorf("negative element count %d", n)
			}
			current = &plyElement{name: parts[1], count: n}
			elements = append(elements, current)
		case "property":
			if current == nil {
				return fmt.Errorf("property outside of an element")
			}
			switch {
			case len(parts) == 5 && parts[1] == "list":
				current.props = append(current.props, plyProperty{name: parts[4], typ: parts[3], isList: true})
			case len(parts) == 3:
				current.props = append(current.props, plyProperty{name: parts[2], typ: parts[1]})
			default:
				return fmt.Errorf("malformed property line '%s'", scanner.Text())
			}
		case "end_header":
			headerDone = true
		}
	}
	if !headerDone {
		return fmt.Errorf("missing end_header")
	}

	var vertices []plyVertex
	faces := 0
	for _, e := range elements {
		var err error
		switch e.name {
		case "vertex":
			vertices, err = readPlyVertices(scanner, e)
		case "face":
			err = readPlyFaces(scanner, e, vertices, material, scene)
			faces += e.count
		default:
			for i := 0; i < e.count && err == nil; i++ {
				if !scanner.Scan() {
					err = fmt.Errorf("unexpected end of file while reading %s", e.name)
				}
			}
		}
		if err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading from PLY source: %w", err)
	}

	log.Printf("PLY vertices: %d, faces: %d", len(vertices), faces)
	return nil
}

func readPlyVertices(scanner *bufio.Scanner, vertex *plyElement) ([]plyVertex, error) {
	xyz := [3]int{vertex.index("x"), vertex.index("y"), vertex.index("z")}
	if xyz[0] < 0 || xyz[1] < 0 || xyz[2] < 0 {
		return nil, fmt.Errorf("vertex element lacks x, y or z")
	}
	colorIdx, hasColor := vertex.colorIndices()

	vertices := make([]plyVertex, 0, vertex.count)
	for i := 0; i < vertex.count; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading vertices")
		}
		fields, err := vertex.split(strings.Fields(scanner.Text()))
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		pos, err := plyFloats(fields, xyz)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		v := plyVertex{pos: NewPoint3d(pos[0], pos[1], pos[2]), hasColor: hasColor}
		if hasColor {
			if v.color, err = plyColor(vertex, fields, colorIdx); err != nil {
				return nil, fmt.Errorf("vertex %d: %w", i, err)
			}
		}
		vertices = append(vertices, v)
	}
	return vertices, nil
}

func readPlyFaces(scanner *bufio.Scanner, face *plyElement, vertices []plyVertex, material Material, scene *Scene) error {
	indices := face.index("vertex_indices", "vertex_index")
	if indices < 0 || !face.props[indices].isList {
		return fmt.Errorf("face element lacks a vertex_indices list")
	}
	colorIdx, hasColor := face.colorIndices()

	for i := 0; i < face.count; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected end of file while reading faces")
		}
		fields, err := face.split(strings.Fields(scanner.Text()))
		if err != nil {
			return fmt.Errorf("face %d: %w", i, err)
		}

		m := material
		if hasColor {
			if m.Color, err = plyColor(face, fields, colorIdx); err != nil {
				return fmt.Errorf("face %d: %w", i, err)
			}
		}
		prim, err := plyFace(fields[indices], vertices, m, !hasColor)
		if err != nil {
			return fmt.Errorf("face %d: %w", i, err)
		}
		scene.AddObject(prim)
	}
	return nil
}

func plyFloats(fields [][]string, idx [3]int) ([3]float64, error) {
	var vals [3]float64
	for i, col := range idx {
		if len(fields[col]) != 1 {
			return vals, fmt.Errorf("column %d is not a scalar", col)
		}
		v, err := strconv.ParseFloat(fields[col][0], 64)
		if err != nil {
			return vals, fmt.Errorf("could not parse float value '%s': %w", fields[col][0], err)
		}
		vals[i] = v
	}
	return vals, nil
}

// plyColor reads an 8 bit or a 0..1 floating point color.
func plyColor(e *plyElement, fields [][]string, idx [3]int) (Color, error) {
	vals, err := plyFloats(fields, idx)
	if err != nil {
		return Color{}, err
	}
	c := NewColor(vals[0], vals[1], vals[2])
	switch e.props[idx[0]].typ {
	case "float", "float32", "double", "float64":
		return c, nil
	}
	return c.Scale(1.0 / 255), nil
}

// plyFace builds one face. Vertex colors are averaged into the material when
// vertexColors is set and the vertices carry them.
func plyFace(indices []string, vertices []plyVertex, material Material, vertexColors bool) (Primitive, error) {
	if len(indices) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(indices))
	}

	points := make([]Point3d, len(indices))
	var sum Color
	for j, s := range indices {
		idx, err := strconv.Atoi(s)
		if err != nil || idx < 0 || idx >= len(vertices) {
			return nil, fmt.Errorf("invalid vertex index '%s'", s)
		}
		points[j] = vertices[idx].pos
		sum = sum.Add(vertices[idx].color)
		vertexColors = vertexColors && vertices[idx].hasColor
	}
	if vertexColors {
		material.Color = sum.Scale(1 / float64(len(indices)))
	}

	if len(points) == 3 {
		return NewTriangle(points[0], points[1], points[2], material), nil
	}
	poly, err := NewPolygon(points, material)
	if err != nil {
		return nil, err
	}
	return poly, nil
}
