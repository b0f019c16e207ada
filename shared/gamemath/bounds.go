package gamemath

import "github.com/solarlune/resolv"

// CenterX returns the horizontal center of an object.
func CenterX(o *resolv.Object) float64 {
	return o.X + o.W/2
}

// Bottom returns the y coordinate of an object's feet.
func Bottom(o *resolv.Object) float64 {
	return o.Y + o.H
}

// Overlaps reports whether two objects overlap on both axes. reach grows a
// horizontally so flush contact counts.
func Overlaps(a, b *resolv.Object, reach float64) bool {
	horizontal := a.X+a.W+reach > b.X && a.X-reach < b.X+b.W
	vertical := a.Y+a.H > b.Y && a.Y < b.Y+b.H
	return horizontal && vertical
}

// ResizeHeightAnchored changes an object's height keeping its bottom edge
// fixed.
func ResizeHeightAnchored(o *resolv.Object, height float64) {
	bottom := Bottom(o)
	o.H = height
	o.Y = bottom - height
	o.Update()
}
