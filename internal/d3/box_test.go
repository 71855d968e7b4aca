package d3

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBoxInclude(t *testing.T) {
	b := EmptyBox()
	if !b.Empty() {
		t.Fatal("EmptyBox not empty")
	}
	pts := Set{{X: -1, Y: 2, Z: 0}, {X: 3, Y: -2, Z: 1}, {X: 0, Y: 0, Z: -4}}
	for _, p := range pts {
		b = b.Include(p)
	}
	want := Box{Min: r3.Vec{X: -1, Y: -2, Z: -4}, Max: r3.Vec{X: 3, Y: 2, Z: 1}}
	if !b.Equals(want, 0) {
		t.Errorf("got box %v. want %v", b, want)
	}
	if !b.Equals(pts.Bounds(), 0) {
		t.Errorf("Include and Set.Bounds mismatch: %v vs %v", b, pts.Bounds())
	}
	for _, p := range pts {
		if !b.Contains(p) {
			t.Errorf("box %v does not contain included point %v", b, p)
		}
	}
	if c := b.Center(); !EqualWithin(c, r3.Vec{X: 1, Y: 0, Z: -1.5}, 0) {
		t.Errorf("got center %v", c)
	}
	big := b.ScaleAboutCenter(2)
	if !EqualWithin(big.Size(), r3.Scale(2, b.Size()), 1e-12) {
		t.Errorf("scaled size %v, want twice %v", big.Size(), b.Size())
	}
	if !big.Extend(b).Equals(big, 0) {
		t.Error("extending by contained box changed result")
	}
}
