package operator

import (
	"fmt"
	"math"

	"github.com/soypat/sierpinski"
	"gonum.org/v1/gonum/spatial/r3"
)

// Keyframe is the object scale at a frame of an animation.
type Keyframe struct {
	Frame int
	Scale r3.Vec
}

// SineScale returns one keyframe per frame in [start, end]. Every keyframe has unit
// scale except along axis (0, 1 or 2 for X, Y, Z) where the scale is sin(frame/period).
func SineScale(start, end int, period float64, axis int) ([]Keyframe, error) {
	if end < start {
		return nil, fmt.Errorf("%w: end frame %d before start frame %d", sierpinski.ErrInvalidInput, end, start)
	} else if !(period > 0) || math.IsInf(period, 0) {
		return nil, fmt.Errorf("%w: bad period %g", sierpinski.ErrInvalidInput, period)
	} else if axis < 0 || axis > 2 {
		return nil, fmt.Errorf("%w: axis %d not in [0, 2]", sierpinski.ErrInvalidInput, axis)
	}
	frames := make([]Keyframe, 0, end-start+1)
	for frame := start; frame <= end; frame++ {
		s := r3.Vec{X: 1, Y: 1, Z: 1}
		f := math.Sin(float64(frame) / period)
		switch axis {
		case 0:
			s.X = f
		case 1:
			s.Y = f
		case 2:
			s.Z = f
		}
		frames = append(frames, Keyframe{Frame: frame, Scale: s})
	}
	return frames, nil
}

// Apply returns a copy of obj with its vertices scaled about the origin.
func (k Keyframe) Apply(obj MeshObject) MeshObject {
	scaled := obj
	scaled.Vertices = make([]r3.Vec, len(obj.Vertices))
	for i, v := range obj.Vertices {
		scaled.Vertices[i] = r3.Vec{X: v.X * k.Scale.X, Y: v.Y * k.Scale.Y, Z: v.Z * k.Scale.Z}
	}
	return scaled
}
