package render

import (
	"io"

	"github.com/soypat/sierpinski"
	"github.com/soypat/sierpinski/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams the triangles of a model.
type Renderer interface {
	// ReadTriangles writes triangles into dst and returns the amount written.
	// It returns io.EOF once the model has been fully read.
	ReadTriangles(dst []Triangle3) (n int, err error)
}

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle following the right hand rule.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate returns true if two vertices of the triangle are within tol of each other.
func (t Triangle3) Degenerate(tol float64) bool {
	return d3.EqualWithin(t.V[0], t.V[1], tol) ||
		d3.EqualWithin(t.V[1], t.V[2], tol) ||
		d3.EqualWithin(t.V[2], t.V[0], tol)
}

type fractalRenderer struct {
	next      func() (sierpinski.Leaf, bool)
	unwritten triangle3Buffer
}

// NewFractalRenderer returns a Renderer over the faces of every leaf of the
// fractal described by req. Triangles are emitted in leaf order and each
// leaf's faces in topology order. The request is validated before returning.
func NewFractalRenderer(req sierpinski.Request) (Renderer, error) {
	cursor, err := req.Cursor()
	if err != nil {
		return nil, err
	}
	return &fractalRenderer{
		next:      cursor.Next,
		unwritten: triangle3Buffer{buf: make([]Triangle3, 0, 4)},
	}, nil
}

// NewLeafRenderer returns a Renderer over the faces of already generated
// leaves, in the same order as NewFractalRenderer.
func NewLeafRenderer(leaves []sierpinski.Leaf) Renderer {
	i := 0
	return &fractalRenderer{
		next: func() (sierpinski.Leaf, bool) {
			if i >= len(leaves) {
				return sierpinski.Leaf{}, false
			}
			i++
			return leaves[i-1], true
		},
		unwritten: triangle3Buffer{buf: make([]Triangle3, 0, 4)},
	}
}

// ReadTriangles implements Renderer.
func (fr *fractalRenderer) ReadTriangles(dst []Triangle3) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	if fr.unwritten.Len() > 0 {
		n += fr.unwritten.Read(dst)
		if n == len(dst) {
			return n, nil
		}
	}
	var faces [4]Triangle3
	for n < len(dst) {
		leaf, ok := fr.next()
		if !ok {
			break
		}
		nf := leafTriangles(&faces, leaf)
		written := copy(dst[n:], faces[:nf])
		n += written
		// Not enough room in dst for all faces of the leaf.
		fr.unwritten.Write(faces[written:nf])
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func leafTriangles(dst *[4]Triangle3, leaf sierpinski.Leaf) int {
	nf := leaf.Kind.NumFaces()
	for i := 0; i < nf; i++ {
		dst[i] = Triangle3{V: leaf.Triangle(i)}
	}
	return nf
}

// LeafTriangles returns the faces of every leaf as triangles.
func LeafTriangles(leaves []sierpinski.Leaf) []Triangle3 {
	var faces [4]Triangle3
	model := make([]Triangle3, 0, len(leaves))
	for _, leaf := range leaves {
		nf := leafTriangles(&faces, leaf)
		model = append(model, faces[:nf]...)
	}
	return model
}

// Bounds returns the bounding box of the leaves. An empty slice returns an empty box.
func Bounds(leaves []sierpinski.Leaf) d3.Box {
	bb := d3.EmptyBox()
	for _, leaf := range leaves {
		for _, v := range leaf.V[:leaf.Kind.Corners()] {
			bb = bb.Include(v)
		}
	}
	return bb
}
