// Package preview rasterizes triangle models into shaded PNG thumbnails.
package preview

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/sierpinski/internal/d3"
	"github.com/soypat/sierpinski/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera and output image of a preview.
type View struct {
	// what position (point) to look at
	LookAt r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eye       r3.Vec
	Near, Far float64
	// Output image size in pixels.
	Width, Height int
	// Supersampling factor. The image is rendered Supersample times larger and
	// downsampled for antialiasing.
	Supersample int
	// Hex colors such as "#468966".
	Color, Background string
}

// DefaultView is an isometric view of a model fitted to the bi-unit cube with Z up.
var DefaultView = View{
	Up:          r3.Vec{Z: 1},
	Eye:         d3.Elem(2.4),
	Near:        1,
	Far:         10,
	Width:       768,
	Height:      432,
	Supersample: 2,
	Color:       "#468966",
	Background:  "#FFF8E3",
}

// Render rasterizes the model fitted to a bi-unit cube centered at the origin.
func Render(model []render.Triangle3, view View) (image.Image, error) {
	if len(model) == 0 {
		return nil, errors.New("empty triangle slice")
	} else if view.Width <= 0 || view.Height <= 0 {
		return nil, errors.New("preview size must be positive")
	} else if view.Near <= 0 || view.Far <= view.Near {
		return nil, errors.New("invalid near/far clipping planes")
	}
	scale := view.Supersample
	if scale < 1 {
		scale = 1
	}
	const fovy = 30 // vertical field of view in degrees
	var (
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)          // camera position
		center = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z) // view center position
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)             // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()                  // light direction
	)
	mesh := fauxglMesh(model)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	context.ClearColorBufferWith(hexColor(view.Background, "#FFF8E3"))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = hexColor(view.Color, "#468966")
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	img := context.Image()
	if scale > 1 {
		img = resize.Resize(uint(view.Width), uint(view.Height), img, resize.Bilinear)
	}
	return img, nil
}

// SavePNG renders the model and writes it to a PNG file at path.
func SavePNG(path string, model []render.Triangle3, view View) error {
	img, err := Render(model, view)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}

// fauxglMesh converts the model to a fauxgl mesh with flat per-triangle normals.
func fauxglMesh(model []render.Triangle3) *fauxgl.Mesh {
	triangles := make([]*fauxgl.Triangle, len(model))
	for i, t := range model {
		triangles[i] = fauxgl.NewTriangleForPoints(
			fauxgl.V(t.V[0].X, t.V[0].Y, t.V[0].Z),
			fauxgl.V(t.V[1].X, t.V[1].Y, t.V[1].Z),
			fauxgl.V(t.V[2].X, t.V[2].Y, t.V[2].Z),
		)
	}
	return fauxgl.NewTriangleMesh(triangles)
}

func hexColor(s, fallback string) fauxgl.Color {
	if s == "" {
		s = fallback
	}
	return fauxgl.HexColor(s)
}
