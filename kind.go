package sierpinski

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Kind is the simplex a fractal is built from.
type Kind uint8

const (
	_ Kind = iota // zero Kind is invalid so unset values are caught.
	// Triangle builds the 2D Sierpinski gasket. Each level has 3 children.
	Triangle
	// Tetrahedron builds the 3D Sierpinski gasket (tetrix). Each level has 4 children.
	Tetrahedron
)

var (
	triangleFaces    = [...][3]int{{0, 1, 2}}
	tetrahedronFaces = [...][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
)

func (k Kind) valid() bool { return k == Triangle || k == Tetrahedron }

// Corners returns the number of corner points of the simplex. Returns 0 for an invalid Kind.
func (k Kind) Corners() int {
	switch k {
	case Triangle:
		return 3
	case Tetrahedron:
		return 4
	}
	return 0
}

// Branching returns the number of children a simplex of this kind
// is subdivided into on every recursion level.
func (k Kind) Branching() int {
	switch k {
	case Triangle:
		return 3
	case Tetrahedron:
		return 4
	}
	return 0
}

// NumFaces returns the number of triangular faces of a leaf of this kind.
func (k Kind) NumFaces() int {
	switch k {
	case Triangle:
		return len(triangleFaces)
	case Tetrahedron:
		return len(tetrahedronFaces)
	}
	return 0
}

// Face returns the corner indices of the i'th face. It panics if i is out of range.
func (k Kind) Face(i int) [3]int {
	switch k {
	case Triangle:
		return triangleFaces[i]
	case Tetrahedron:
		return tetrahedronFaces[i]
	}
	panic("invalid simplex kind")
}

// Faces returns a copy of the fixed face topology of the kind. Faces index
// into the corners of a leaf. A Tetrahedron has one face per omitted corner:
// (0,1,2), (0,1,3), (0,2,3), (1,2,3).
func (k Kind) Faces() [][3]int {
	faces := make([][3]int, k.NumFaces())
	for i := range faces {
		faces[i] = k.Face(i)
	}
	return faces
}

func (k Kind) String() string {
	switch k {
	case Triangle:
		return "triangle"
	case Tetrahedron:
		return "tetrahedron"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind parses a simplex kind. It accepts the kind names and the
// dimensional aliases "2D" and "3D", case insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "triangle", "2d":
		return Triangle, nil
	case "tetrahedron", "3d":
		return Tetrahedron, nil
	}
	return 0, fmt.Errorf("%w: unknown simplex kind %q", ErrInvalidInput, s)
}

// Leaf is a terminal simplex of the subdivision. Only the first
// Kind.Corners() points of V are meaningful, the rest are zero.
type Leaf struct {
	Kind Kind
	V    [4]r3.Vec
}

// Vertices returns the corner points of the leaf in order.
func (l Leaf) Vertices() []r3.Vec {
	v := l.V
	return v[:l.Kind.Corners()]
}

// Faces returns the face topology of the leaf. See Kind.Faces.
func (l Leaf) Faces() [][3]int { return l.Kind.Faces() }

// Triangle returns the vertices of the i'th face of the leaf.
func (l Leaf) Triangle(i int) [3]r3.Vec {
	f := l.Kind.Face(i)
	return [3]r3.Vec{l.V[f[0]], l.V[f[1]], l.V[f[2]]}
}

// Midpoint returns the elementwise arithmetic mean of a and b.
func Midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}

// children subdivides the leaf into its corner anchored children.
// The central triangle (or octahedron) is never returned.
func (l Leaf) children() (c [4]Leaf, n int) {
	v := &l.V
	switch l.Kind {
	case Triangle:
		m01 := Midpoint(v[0], v[1])
		m12 := Midpoint(v[1], v[2])
		m20 := Midpoint(v[2], v[0])
		c[0] = Leaf{Kind: Triangle, V: [4]r3.Vec{v[0], m01, m20}}
		c[1] = Leaf{Kind: Triangle, V: [4]r3.Vec{m01, v[1], m12}}
		c[2] = Leaf{Kind: Triangle, V: [4]r3.Vec{m20, m12, v[2]}}
		return c, 3
	case Tetrahedron:
		m01 := Midpoint(v[0], v[1])
		m02 := Midpoint(v[0], v[2])
		m03 := Midpoint(v[0], v[3])
		m12 := Midpoint(v[1], v[2])
		m13 := Midpoint(v[1], v[3])
		m23 := Midpoint(v[2], v[3])
		c[0] = Leaf{Kind: Tetrahedron, V: [4]r3.Vec{v[0], m01, m02, m03}}
		c[1] = Leaf{Kind: Tetrahedron, V: [4]r3.Vec{m01, v[1], m12, m13}}
		c[2] = Leaf{Kind: Tetrahedron, V: [4]r3.Vec{m02, m12, v[2], m23}}
		c[3] = Leaf{Kind: Tetrahedron, V: [4]r3.Vec{m03, m13, m23, v[3]}}
		return c, 4
	}
	panic("invalid simplex kind")
}
