package render

import (
	"math"

	"github.com/soypat/sierpinski"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Weld merges leaf corners closer than tol into shared vertices and returns the
// indexed triangle mesh of all leaf faces. Vertices are ordered by first appearance.
// If tol is zero or negative it is inferred as 1/1000th of the shortest leaf edge.
func Weld(leaves []sierpinski.Leaf, tol float64) (vertices []r3.Vec, faces [][3]int) {
	var corners []r3.Vec
	pts := make(weldPoints, 0, 4*len(leaves))
	nfaces := 0
	for _, leaf := range leaves {
		for _, v := range leaf.Vertices() {
			pts = append(pts, weldPoint{v: v, idx: len(corners)})
			corners = append(corners, v)
		}
		nfaces += leaf.Kind.NumFaces()
	}
	if len(corners) == 0 {
		return nil, nil
	}
	if tol <= 0 {
		tol = minEdge(leaves) / 1000
	}
	// kdtree.New reorders pts. idx keeps track of the original corner.
	tree := kdtree.New(pts, false)
	remap := make([]int, len(corners))
	for i := range remap {
		remap[i] = -1
	}
	for i, v := range corners {
		if remap[i] >= 0 {
			continue
		}
		id := len(vertices)
		vertices = append(vertices, v)
		remap[i] = id
		keep := kdtree.NewDistKeeper(tol * tol)
		tree.NearestSet(keep, weldPoint{v: v})
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue // Unfilled sentinel.
			}
			j := c.Comparable.(weldPoint).idx
			if remap[j] < 0 {
				remap[j] = id
			}
		}
	}

	faces = make([][3]int, 0, nfaces)
	base := 0
	for _, leaf := range leaves {
		for i := 0; i < leaf.Kind.NumFaces(); i++ {
			f := leaf.Kind.Face(i)
			faces = append(faces, [3]int{remap[base+f[0]], remap[base+f[1]], remap[base+f[2]]})
		}
		base += leaf.Kind.Corners()
	}
	return vertices, faces
}

func minEdge(leaves []sierpinski.Leaf) float64 {
	min2 := math.MaxFloat64
	for _, leaf := range leaves {
		v := leaf.Vertices()
		for i := range v {
			for j := i + 1; j < len(v); j++ {
				min2 = math.Min(min2, r3.Norm2(r3.Sub(v[i], v[j])))
			}
		}
	}
	return math.Sqrt(min2)
}

type weldPoint struct {
	v   r3.Vec
	idx int
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
func (a weldPoint) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return weldComp(a, b.(weldPoint), int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a weldPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a weldPoint) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.v, b.(weldPoint).v))
}

// c = a.dim - b.dim
func weldComp(a, b weldPoint, dim int) (c float64) {
	switch dim {
	case 0:
		c = a.v.X - b.v.X
	case 1:
		c = a.v.Y - b.v.Y
	case 2:
		c = a.v.Z - b.v.Z
	}
	return c
}

type weldPoints []weldPoint

func (p weldPoints) Index(i int) kdtree.Comparable { return p[i] }

// Len returns the length of the list.
func (p weldPoints) Len() int { return len(p) }

// Pivot partitions the list based on the dimension specified.
func (p weldPoints) Pivot(d kdtree.Dim) int {
	plane := weldPlane{dim: int(d), points: p}
	return kdtree.Partition(plane, kdtree.MedianOfMedians(plane))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (p weldPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

type weldPlane struct {
	dim    int
	points weldPoints
}

func (p weldPlane) Less(i, j int) bool {
	return weldComp(p.points[i], p.points[j], p.dim) < 0
}
func (p weldPlane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}
func (p weldPlane) Len() int {
	return len(p.points)
}
func (p weldPlane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
