// Package sierpinski generates the leaf geometry of Sierpinski fractals:
// the triangle gasket and the tetrahedron gasket (tetrix).
//
// Generation is a pure function of its input. Scale is only validated here,
// it is applied once by the caller when computing the initial corners.
package sierpinski

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidInput is returned (wrapped) when generation parameters are rejected.
// No geometry is produced when it is returned.
var ErrInvalidInput = errors.New("invalid input")

// maxPrealloc limits the leaf slice capacity reserved up front.
const maxPrealloc = 1 << 22

// Generate recursively subdivides the simplex defined by corners and returns
// its leaves. The result has exactly kind.Branching()^depth leaves, ordered
// depth first: all leaves of the first child come before the second child's.
// At depth 0 the corners are returned unchanged as a single leaf.
func Generate(kind Kind, corners []r3.Vec, depth int, scale float64) ([]Leaf, error) {
	root, err := newRoot(kind, corners, depth, scale)
	if err != nil {
		return nil, err
	}
	n := LeafCount(kind, depth)
	if n > maxPrealloc {
		n = maxPrealloc
	}
	return appendLeaves(make([]Leaf, 0, n), root, depth), nil
}

func appendLeaves(dst []Leaf, l Leaf, depth int) []Leaf {
	if depth == 0 {
		return append(dst, l)
	}
	children, n := l.children()
	for _, child := range children[:n] {
		dst = appendLeaves(dst, child, depth-1)
	}
	return dst
}

// Walk calls fn for every leaf of the subdivision in the same order as Generate
// without materializing them. If fn returns an error Walk stops and returns it.
func Walk(kind Kind, corners []r3.Vec, depth int, scale float64, fn func(Leaf) error) error {
	root, err := newRoot(kind, corners, depth, scale)
	if err != nil {
		return err
	}
	return walk(root, depth, fn)
}

func walk(l Leaf, depth int, fn func(Leaf) error) error {
	if depth == 0 {
		return fn(l)
	}
	children, n := l.children()
	for _, child := range children[:n] {
		if err := walk(child, depth-1, fn); err != nil {
			return err
		}
	}
	return nil
}

// LeafCount returns the number of leaves generated for kind at depth,
// which is kind.Branching()^depth. It saturates at math.MaxInt and
// returns 0 for negative depth or an invalid kind.
func LeafCount(kind Kind, depth int) int {
	b := kind.Branching()
	if depth < 0 || b == 0 {
		return 0
	}
	n := 1
	for i := 0; i < depth; i++ {
		if n > math.MaxInt/b {
			return math.MaxInt
		}
		n *= b
	}
	return n
}

func newRoot(kind Kind, corners []r3.Vec, depth int, scale float64) (Leaf, error) {
	if err := validate(kind, corners, depth, scale); err != nil {
		return Leaf{}, err
	}
	root := Leaf{Kind: kind}
	copy(root.V[:], corners)
	return root, nil
}

func validate(kind Kind, corners []r3.Vec, depth int, scale float64) error {
	switch {
	case !kind.valid():
		return fmt.Errorf("%w: unknown simplex kind %d", ErrInvalidInput, kind)
	case len(corners) != kind.Corners():
		return fmt.Errorf("%w: %s needs %d corners, got %d", ErrInvalidInput, kind, kind.Corners(), len(corners))
	case depth < 0:
		return fmt.Errorf("%w: negative depth %d", ErrInvalidInput, depth)
	case !(scale > 0) || math.IsInf(scale, 1):
		return fmt.Errorf("%w: scale must be positive and finite, got %g", ErrInvalidInput, scale)
	}
	for i, c := range corners {
		if badVec(c) {
			return fmt.Errorf("%w: corner %d is not finite: %v", ErrInvalidInput, i, c)
		}
	}
	return nil
}

func badVec(v r3.Vec) bool {
	return math.IsNaN(v.X) || math.IsInf(v.X, 0) ||
		math.IsNaN(v.Y) || math.IsInf(v.Y, 0) ||
		math.IsNaN(v.Z) || math.IsInf(v.Z, 0)
}

// Cursor yields the leaves of a subdivision one at a time, in the same
// order as Generate. It keeps an explicit stack instead of recursing
// so it can be suspended between calls. A Cursor is not safe for concurrent use.
type Cursor struct {
	stack     []frame
	remaining int
}

type frame struct {
	leaf  Leaf
	depth int
}

// NewCursor validates the input and returns a Cursor positioned before the first leaf.
func NewCursor(kind Kind, corners []r3.Vec, depth int, scale float64) (*Cursor, error) {
	root, err := newRoot(kind, corners, depth, scale)
	if err != nil {
		return nil, err
	}
	// Each level leaves at most Branching()-1 pending siblings on the stack.
	size := 1 + (kind.Branching()-1)*min(depth, 1<<10)
	stack := make([]frame, 1, size)
	stack[0] = frame{leaf: root, depth: depth}
	return &Cursor{stack: stack, remaining: LeafCount(kind, depth)}, nil
}

// Next returns the next leaf. ok is false once every leaf has been returned.
func (c *Cursor) Next() (l Leaf, ok bool) {
	for len(c.stack) > 0 {
		top := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]
		if top.depth == 0 {
			c.remaining--
			return top.leaf, true
		}
		children, n := top.leaf.children()
		// Push in reverse so the first child is popped first.
		for i := n - 1; i >= 0; i-- {
			c.stack = append(c.stack, frame{leaf: children[i], depth: top.depth - 1})
		}
	}
	return Leaf{}, false
}

// Remaining returns the number of leaves not yet returned by Next.
func (c *Cursor) Remaining() int { return c.remaining }
