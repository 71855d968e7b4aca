// Package operator describes the user facing fractal mesh operators and the
// menu they are listed in. It converts generated leaves into named mesh
// objects and hands them to a Collection, keeping the fractal math free of
// any host application state.
package operator

import (
	"fmt"
	"math"

	"github.com/soypat/sierpinski"
	"gonum.org/v1/gonum/spatial/r3"
)

// Properties are the user editable parameters of an operator.
type Properties struct {
	Depth int
	Scale float64
	// Kind is the generation mode: Triangle (2D) or Tetrahedron (3D).
	Kind sierpinski.Kind
	// Orientation is the plane of Triangle fractals.
	Orientation sierpinski.Orientation
}

// Operator generates a Sierpinski fractal within fixed property limits.
type Operator struct {
	ID          string
	Label       string
	Description string
	// Kinds lists the modes the operator supports. The first one is the default.
	Kinds        []sierpinski.Kind
	MinDepth     int
	MaxDepth     int
	DefaultDepth int
	MinScale     float64
	MaxScale     float64
	DefaultScale float64
	// Orientable operators expose the orientation property for Triangle mode.
	Orientable bool
}

var (
	// Sierpinski generates both gaskets selected by mode.
	Sierpinski = Operator{
		ID:           "mesh.sierpinski_generator",
		Label:        "Generate Sierpinski",
		Description:  "Generate a 2D or 3D Sierpinski gasket",
		Kinds:        []sierpinski.Kind{sierpinski.Tetrahedron, sierpinski.Triangle},
		MaxDepth:     10,
		DefaultDepth: 3,
		MinScale:     0.1,
		MaxScale:     10,
		DefaultScale: 1,
		Orientable:   true,
	}
	// Sierpinski2D generates the triangle gasket on a chosen plane.
	Sierpinski2D = Operator{
		ID:           "mesh.sierpinski_2d_generator",
		Label:        "Generate Sierpinski 2D",
		Description:  "Generate a Sierpinski triangle gasket",
		Kinds:        []sierpinski.Kind{sierpinski.Triangle},
		MaxDepth:     10,
		DefaultDepth: 3,
		MinScale:     0.1,
		MaxScale:     10,
		DefaultScale: 1,
		Orientable:   true,
	}
	// Sierpinski3D generates the tetrahedron gasket. Its depth is capped lower
	// since every level multiplies the object count by 4.
	Sierpinski3D = Operator{
		ID:           "mesh.sierpinski_3d_generator",
		Label:        "Generate Sierpinski 3D",
		Description:  "Generate a Sierpinski tetrahedron gasket",
		Kinds:        []sierpinski.Kind{sierpinski.Tetrahedron},
		MaxDepth:     5,
		DefaultDepth: 3,
		MinScale:     0.1,
		MaxScale:     10,
		DefaultScale: 1,
	}
)

// Defaults returns the default properties of the operator.
func (op Operator) Defaults() Properties {
	p := Properties{
		Depth:       op.DefaultDepth,
		Scale:       op.DefaultScale,
		Orientation: sierpinski.XY,
	}
	if len(op.Kinds) > 0 {
		p.Kind = op.Kinds[0]
	}
	return p
}

// Check validates p against the operator limits.
func (op Operator) Check(p Properties) error {
	if !op.supports(p.Kind) {
		return fmt.Errorf("%w: %s does not support %s mode", sierpinski.ErrInvalidInput, op.ID, p.Kind)
	}
	if p.Depth < op.MinDepth || p.Depth > op.MaxDepth {
		return fmt.Errorf("%w: %s depth %d out of range [%d, %d]", sierpinski.ErrInvalidInput, op.ID, p.Depth, op.MinDepth, op.MaxDepth)
	}
	if math.IsNaN(p.Scale) || p.Scale < op.MinScale || p.Scale > op.MaxScale {
		return fmt.Errorf("%w: %s scale %g out of range [%g, %g]", sierpinski.ErrInvalidInput, op.ID, p.Scale, op.MinScale, op.MaxScale)
	}
	if p.Kind == sierpinski.Triangle && p.Orientation != sierpinski.XY && !op.Orientable {
		return fmt.Errorf("%w: %s is not orientable", sierpinski.ErrInvalidInput, op.ID)
	}
	return nil
}

func (op Operator) supports(k sierpinski.Kind) bool {
	for _, kind := range op.Kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Request checks p and returns the generation request it describes.
func (op Operator) Request(p Properties) (sierpinski.Request, error) {
	if err := op.Check(p); err != nil {
		return sierpinski.Request{}, err
	}
	req := sierpinski.Request{
		Kind:        p.Kind,
		Orientation: p.Orientation,
		Depth:       p.Depth,
		Scale:       p.Scale,
	}
	return req, req.Validate()
}

// Execute generates the fractal and links one mesh object per leaf into c.
// Nothing is linked if p is invalid. It returns the number of objects linked.
func (op Operator) Execute(p Properties, c Collection) (int, error) {
	req, err := op.Request(p)
	if err != nil {
		return 0, err
	}
	corners, err := req.Corners()
	if err != nil {
		return 0, err
	}
	name := "Triangle"
	if req.Kind == sierpinski.Tetrahedron {
		name = "Tetrahedron"
	}
	linked := 0
	err = sierpinski.Walk(req.Kind, corners, req.Depth, req.Scale, func(leaf sierpinski.Leaf) error {
		err := c.Link(MeshObject{
			Name:     name,
			Vertices: leaf.Vertices(),
			Faces:    leaf.Faces(),
		})
		if err != nil {
			return fmt.Errorf("linking %s object %d: %w", name, linked, err)
		}
		linked++
		return nil
	})
	return linked, err
}

// MeshObject is a named mesh made of vertices and triangular faces. Edges are implied by faces.
type MeshObject struct {
	Name     string
	Vertices []r3.Vec
	Faces    [][3]int
}

// Collection receives the mesh objects created by an operator.
type Collection interface {
	Link(obj MeshObject) error
}
