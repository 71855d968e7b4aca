package operator_test

import (
	"math"
	"testing"

	"github.com/soypat/sierpinski"
	"github.com/soypat/sierpinski/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSineScale(t *testing.T) {
	frames, err := operator.SineScale(1, 120, 30, 1)
	require.NoError(t, err)
	require.Len(t, frames, 120)
	assert.Equal(t, 1, frames[0].Frame)
	assert.Equal(t, 120, frames[119].Frame)
	k := frames[29]
	assert.Equal(t, 30, k.Frame)
	assert.Equal(t, r3.Vec{X: 1, Y: math.Sin(1), Z: 1}, k.Scale)

	for _, test := range []struct {
		start, end int
		period     float64
		axis       int
	}{
		{start: 10, end: 1, period: 30, axis: 1},
		{start: 1, end: 10, period: 0, axis: 1},
		{start: 1, end: 10, period: math.NaN(), axis: 1},
		{start: 1, end: 10, period: 30, axis: 3},
	} {
		_, err := operator.SineScale(test.start, test.end, test.period, test.axis)
		assert.ErrorIs(t, err, sierpinski.ErrInvalidInput)
	}
}

func TestKeyframeApply(t *testing.T) {
	obj := operator.MeshObject{
		Name:     "Triangle",
		Vertices: []r3.Vec{{X: 1, Y: 2, Z: 3}, {X: -1, Y: 0, Z: 1}, {X: 0, Y: -2, Z: 0}},
		Faces:    [][3]int{{0, 1, 2}},
	}
	k := operator.Keyframe{Frame: 1, Scale: r3.Vec{X: 1, Y: 0.5, Z: 2}}
	got := k.Apply(obj)
	assert.Equal(t, []r3.Vec{{X: 1, Y: 1, Z: 6}, {X: -1, Y: 0, Z: 2}, {X: 0, Y: -1, Z: 0}}, got.Vertices)
	assert.Equal(t, obj.Faces, got.Faces)
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, obj.Vertices[0], "Apply modified the original object")
}
