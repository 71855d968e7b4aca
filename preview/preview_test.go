package preview_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/sierpinski"
	"github.com/soypat/sierpinski/preview"
	"github.com/soypat/sierpinski/render"
	"gonum.org/v1/plot/cmpimg"
)

func TestSavePNGDeterministic(t *testing.T) {
	leaves, err := sierpinski.Request{Kind: sierpinski.Tetrahedron, Depth: 3, Scale: 1}.Leaves()
	if err != nil {
		t.Fatal(err)
	}
	model := render.LeafTriangles(leaves)
	view := preview.DefaultView
	view.Width, view.Height = 160, 90
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")
	if err := preview.SavePNG(a, model, view); err != nil {
		t.Fatal(err)
	}
	if err := preview.SavePNG(b, model, view); err != nil {
		t.Fatal(err)
	}
	rawA, err := os.ReadFile(a)
	if err != nil {
		t.Fatal(err)
	}
	rawB, err := os.ReadFile(b)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := cmpimg.Equal("png", rawA, rawB)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("identical models rendered different previews")
	}
	img, err := png.Decode(bytes.NewReader(rawA))
	if err != nil {
		t.Fatal(err)
	}
	size := img.Bounds().Size()
	if size.X != view.Width || size.Y != view.Height {
		t.Errorf("got preview size %v. want %dx%d", size, view.Width, view.Height)
	}
	// Model must cover some pixels, background is a flat color.
	bg := img.At(0, 0)
	covered := false
	for x := 0; x < size.X && !covered; x++ {
		for y := 0; y < size.Y; y++ {
			if img.At(x, y) != bg {
				covered = true
				break
			}
		}
	}
	if !covered {
		t.Error("preview contains only background")
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := preview.Render(nil, preview.DefaultView); err == nil {
		t.Error("expected error for empty model")
	}
	model := []render.Triangle3{{}}
	view := preview.DefaultView
	view.Width = 0
	if _, err := preview.Render(model, view); err == nil {
		t.Error("expected error for zero width")
	}
	view = preview.DefaultView
	view.Far = view.Near
	if _, err := preview.Render(model, view); err == nil {
		t.Error("expected error for bad clipping planes")
	}
}
