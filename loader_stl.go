package gortrace

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// LoadStlFile adds every facet of an ASCII STL file to scene as a triangle
// with the given material.
func LoadStlFile(fileName string, material Material, scene *Scene) error {
	file, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("could not open STL file %s: %w", fileName, err)
	}
	defer file.Close()

	if err := LoadStl(file, material, scene); err != nil {
		return fmt.Errorf("error parsing STL file %s: %w", fileName, err)
	}
	return nil
}

// LoadStl reads ASCII STL. The facet normal decides the triangle winding.
func LoadStl(r io.Reader, material Material, scene *Scene) error {
	tr := newTokenReader(r)

	if err := tr.expect("solid"); err != nil {
		return err
	}

	facets := 0
	for {
		tok, err := tr.next()
		if errors.Is(err, io.EOF) {
			return errors.New("unexpected end of file, expected endsolid")
		}
		if err != nil {
			return err
		}

		switch tok {
		case "endsolid":
			log.Printf("STL facets: %d", facets)
			return nil
		case "facet":
			tri, err := readFacet(tr, material)
			if err != nil {
				return fmt.Errorf("facet %d: %w", facets, err)
			}
			scene.AddObject(tri)
			facets++
		default:
			if facets > 0 {
				return fmt.Errorf("unexpected token '%s'", tok)
			}
			// part of the solid name
		}
	}
}

func readFacet(tr *tokenReader, material Material) (*Triangle, error) {
	if err := tr.expect("normal"); err != nil {
		return nil, err
	}
	normal, err := tr.point()
	if err != nil {
		return nil, err
	}
	if err := tr.expect("outer"); err != nil {
		return nil, err
	}
	if err := tr.expect("loop"); err != nil {
		return nil, err
	}

	var vertices [3]Point3d
	for i := range vertices {
		if err := tr.expect("vertex"); err != nil {
			return nil, err
		}
		if vertices[i], err = tr.point(); err != nil {
			return nil, err
		}
	}

	if err := tr.expect("endloop"); err != nil {
		return nil, err
	}
	if err := tr.expect("endfacet"); err != nil {
		return nil, err
	}
	return NewTriangleWithNormal(vertices[0], vertices[1], vertices[2], normal, material), nil
}
