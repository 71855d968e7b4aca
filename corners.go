package sierpinski

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Orientation is the plane a triangle gasket is placed on.
type Orientation uint8

const (
	XY Orientation = iota
	XZ
	YZ
)

func (o Orientation) String() string {
	switch o {
	case XY:
		return "XY"
	case XZ:
		return "XZ"
	case YZ:
		return "YZ"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// ParseOrientation parses "XY", "XZ" or "YZ", case insensitive.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "XY":
		return XY, nil
	case "XZ":
		return XZ, nil
	case "YZ":
		return YZ, nil
	}
	return 0, fmt.Errorf("%w: unknown orientation %q", ErrInvalidInput, s)
}

// TetrahedronCorners returns the corners of a regular tetrahedron with apex up
// the Z axis, scaled by s.
func TetrahedronCorners(s float64) [4]r3.Vec {
	h := math.Sqrt(3) * 0.5 * s
	return [4]r3.Vec{
		{X: 0, Y: 0, Z: s},
		{X: s, Y: 0, Z: -s},
		{X: -0.5 * s, Y: h, Z: -s},
		{X: -0.5 * s, Y: -h, Z: -s},
	}
}

// TriangleCorners returns the corners of an equilateral triangle of half base s
// lying on the plane o. The axis normal to the plane is held at 0.
func TriangleCorners(o Orientation, s float64) [3]r3.Vec {
	apex := math.Sqrt(3) * s
	switch o {
	case XZ:
		return [3]r3.Vec{{X: -s}, {X: s}, {Z: apex}}
	case YZ:
		return [3]r3.Vec{{Y: -s}, {Y: s}, {Z: apex}}
	}
	return [3]r3.Vec{{X: -s}, {X: s}, {Y: apex}}
}

// Request describes a fractal generated from the canonical initial simplex of
// its Kind. Orientation is only used by Triangle.
type Request struct {
	Kind        Kind
	Orientation Orientation
	Depth       int
	Scale       float64
}

// Validate checks the request without generating any geometry.
func (req Request) Validate() error {
	if req.Kind == Triangle && req.Orientation > YZ {
		return fmt.Errorf("%w: unknown orientation %d", ErrInvalidInput, req.Orientation)
	}
	// Corners are derived from scale so the initial simplex is always finite for a valid scale.
	corners := make([]r3.Vec, req.Kind.Corners())
	return validate(req.Kind, corners, req.Depth, req.Scale)
}

// Corners returns the initial corners of the request, already scaled.
func (req Request) Corners() ([]r3.Vec, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Kind == Tetrahedron {
		c := TetrahedronCorners(req.Scale)
		return c[:], nil
	}
	c := TriangleCorners(req.Orientation, req.Scale)
	return c[:], nil
}

// Leaves generates the leaves of the request. See Generate.
func (req Request) Leaves() ([]Leaf, error) {
	corners, err := req.Corners()
	if err != nil {
		return nil, err
	}
	return Generate(req.Kind, corners, req.Depth, req.Scale)
}

// Cursor returns a Cursor over the leaves of the request.
func (req Request) Cursor() (*Cursor, error) {
	corners, err := req.Corners()
	if err != nil {
		return nil, err
	}
	return NewCursor(req.Kind, corners, req.Depth, req.Scale)
}
