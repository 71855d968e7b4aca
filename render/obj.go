package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/soypat/sierpinski"
	"gonum.org/v1/gonum/spatial/r3"
)

// OBJOptions configures Wavefront OBJ output.
type OBJOptions struct {
	// Weld merges coincident leaf corners into a single object with shared
	// vertices. When false every leaf is written as its own object.
	Weld bool
	// Tol is the weld distance. Zero infers it from the shortest edge. See Weld.
	Tol float64
}

// WriteOBJ writes leaves as a Wavefront OBJ model.
func WriteOBJ(w io.Writer, leaves []sierpinski.Leaf, opts OBJOptions) error {
	if len(leaves) == 0 {
		return errors.New("no leaves to write")
	}
	bw := bufio.NewWriter(w)
	if opts.Weld {
		vertices, faces := Weld(leaves, opts.Tol)
		fmt.Fprintf(bw, "o %s\n", objectName(leaves[0].Kind, 0))
		for _, v := range vertices {
			writeOBJVertex(bw, v)
		}
		for _, f := range faces {
			fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
		}
		return bw.Flush()
	}
	base := 1 // OBJ indices start at 1 and are global to the file.
	for i, leaf := range leaves {
		fmt.Fprintf(bw, "o %s\n", objectName(leaf.Kind, i))
		for _, v := range leaf.Vertices() {
			writeOBJVertex(bw, v)
		}
		for j := 0; j < leaf.Kind.NumFaces(); j++ {
			f := leaf.Kind.Face(j)
			fmt.Fprintf(bw, "f %d %d %d\n", base+f[0], base+f[1], base+f[2])
		}
		base += leaf.Kind.Corners()
	}
	return bw.Flush()
}

// CreateOBJ writes leaves to an OBJ file at path. See WriteOBJ.
func CreateOBJ(path string, leaves []sierpinski.Leaf, opts OBJOptions) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err = WriteOBJ(fp, leaves, opts); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return fp.Close()
}

func writeOBJVertex(w *bufio.Writer, v r3.Vec) {
	w.WriteString("v ")
	w.WriteString(strconv.FormatFloat(v.X, 'g', -1, 64))
	w.WriteByte(' ')
	w.WriteString(strconv.FormatFloat(v.Y, 'g', -1, 64))
	w.WriteByte(' ')
	w.WriteString(strconv.FormatFloat(v.Z, 'g', -1, 64))
	w.WriteByte('\n')
}

// objectName names leaf objects the way the modeling host deduplicates names:
// Tetrahedron, Tetrahedron.001, Tetrahedron.002...
func objectName(k sierpinski.Kind, i int) string {
	name := "Triangle"
	if k == sierpinski.Tetrahedron {
		name = "Tetrahedron"
	}
	if i == 0 {
		return name
	}
	return fmt.Sprintf("%s.%03d", name, i)
}
