package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/soypat/sierpinski"
)

func TestWeldVertexCount(t *testing.T) {
	for _, test := range []struct {
		req  sierpinski.Request
		want int
	}{
		// Triangle gasket level n has (3^(n+1)+3)/2 vertices.
		{req: sierpinski.Request{Kind: sierpinski.Triangle, Depth: 0, Scale: 1}, want: 3},
		{req: sierpinski.Request{Kind: sierpinski.Triangle, Depth: 1, Scale: 1}, want: 6},
		{req: sierpinski.Request{Kind: sierpinski.Triangle, Depth: 2, Scale: 1}, want: 15},
		// Tetrix level n has 2*4^n+2 vertices.
		{req: sierpinski.Request{Kind: sierpinski.Tetrahedron, Depth: 0, Scale: 1}, want: 4},
		{req: sierpinski.Request{Kind: sierpinski.Tetrahedron, Depth: 1, Scale: 1}, want: 10},
		{req: sierpinski.Request{Kind: sierpinski.Tetrahedron, Depth: 2, Scale: 1}, want: 34},
		{req: sierpinski.Request{Kind: sierpinski.Tetrahedron, Depth: 4, Scale: 1}, want: 514},
	} {
		leaves := mustLeaves(t, test.req)
		vertices, faces := Weld(leaves, 0)
		if len(vertices) != test.want {
			t.Errorf("%s depth %d: got %d welded vertices. want %d", test.req.Kind, test.req.Depth, len(vertices), test.want)
		}
		if len(faces) != len(leaves)*test.req.Kind.NumFaces() {
			t.Errorf("got %d faces. want %d", len(faces), len(leaves)*test.req.Kind.NumFaces())
		}
		// Faces must reference the same points as the unwelded leaves.
		fi := 0
		for _, leaf := range leaves {
			for i := 0; i < leaf.Kind.NumFaces(); i++ {
				tri := leaf.Triangle(i)
				for k, idx := range faces[fi] {
					if vertices[idx] != tri[k] {
						t.Fatalf("face %d corner %d: welded %v. want %v", fi, k, vertices[idx], tri[k])
					}
				}
				fi++
			}
		}
	}
}

func TestWeldEmpty(t *testing.T) {
	v, f := Weld(nil, 0)
	if v != nil || f != nil {
		t.Error("expected nil output for no leaves")
	}
}

func TestWriteOBJ(t *testing.T) {
	leaves := mustLeaves(t, sierpinski.Request{Kind: sierpinski.Tetrahedron, Depth: 1, Scale: 1})
	var b bytes.Buffer
	err := WriteOBJ(&b, leaves, OBJOptions{})
	if err != nil {
		t.Fatal(err)
	}
	obj := b.String()
	if got := strings.Count(obj, "\no ") + strings.Count(obj[:2], "o "); got != 4 {
		t.Errorf("got %d objects. want 4", got)
	}
	if got := strings.Count(obj, "\nv "); got != 16 {
		t.Errorf("got %d vertices. want 16", got)
	}
	if got := strings.Count(obj, "\nf "); got != 16 {
		t.Errorf("got %d faces. want 16", got)
	}
	if !strings.Contains(obj, "o Tetrahedron.003\n") || !strings.HasPrefix(obj, "o Tetrahedron\n") {
		t.Errorf("unexpected object names:\n%s", obj)
	}
	if !strings.Contains(obj, "f 13 14 15\n") {
		t.Error("last leaf faces not offset by previous vertices")
	}

	b.Reset()
	err = WriteOBJ(&b, leaves, OBJOptions{Weld: true})
	if err != nil {
		t.Fatal(err)
	}
	obj = b.String()
	if got := strings.Count(obj, "\nv "); got != 10 {
		t.Errorf("welded: got %d vertices. want 10", got)
	}
	if got := strings.Count(obj, "o "); got != 1 {
		t.Errorf("welded: got %d objects. want 1", got)
	}
	if err := WriteOBJ(&b, nil, OBJOptions{}); err == nil {
		t.Error("expected error for empty leaves")
	}
}
