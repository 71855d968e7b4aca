package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hschendel/stl"
	"github.com/soypat/sierpinski"
	"github.com/soypat/sierpinski/render"
)

func TestSTLCreateWriteRead(t *testing.T) {
	req := sierpinski.Request{Kind: sierpinski.Tetrahedron, Depth: 4, Scale: 2}
	path := filepath.Join(t.TempDir(), "tetrix.stl")
	r, err := render.NewFractalRenderer(req)
	if err != nil {
		t.Fatal(err)
	}
	err = render.CreateSTL(path, r)
	if err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	r, _ = render.NewFractalRenderer(req)
	model, err := render.RenderAll(r)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatalf("WriteSTL and CreateSTL output length mismatch: %d vs %d", b.Len(), len(bfile))
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
	const wantTriangles = 4 * 256 // 4 faces per leaf, 4^4 leaves.
	if want := 84 + 50*wantTriangles; len(bfile) != want {
		t.Errorf("got STL size %d. want %d", len(bfile), want)
	}

	// Independent STL decoder must agree with us.
	solid, err := stl.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(solid.Triangles) != wantTriangles {
		t.Fatalf("stl package read %d triangles. want %d", len(solid.Triangles), wantTriangles)
	}
	for i, tri := range solid.Triangles {
		for j := range tri.Vertices {
			got := tri.Vertices[j]
			want := model[i].V[j]
			if got[0] != float32(want.X) || got[1] != float32(want.Y) || got[2] != float32(want.Z) {
				t.Fatalf("triangle %d vertex %d: got %v. want %v", i, j, got, want)
			}
		}
	}
}

func TestWriteSTLEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := render.WriteSTL(&b, nil); err == nil {
		t.Error("expected error writing empty model")
	}
}
