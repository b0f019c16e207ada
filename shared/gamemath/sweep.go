package gamemath

import (
	"math"

	"github.com/solarlune/resolv"
)

// sweepEpsilon absorbs float drift when an edge is flush against a solid.
const sweepEpsilon = 0.001

func overlapsX(a, b *resolv.Object) bool {
	return a.X+a.W > b.X && a.X < b.X+b.W
}

func overlapsY(a, b *resolv.Object) bool {
	return a.Y+a.H > b.Y && a.Y < b.Y+b.H
}

// SweepX clips a horizontal move of o by dx against solids. It returns the
// distance o may travel and whether a solid cut the move short.
func SweepX(o *resolv.Object, dx float64, solids []*resolv.Object) (float64, bool) {
	blocked := false
	for _, s := range solids {
		if s == o || !overlapsY(o, s) {
			continue
		}
		switch {
		case dx > 0 && s.X >= o.X+o.W-sweepEpsilon:
			if gap := math.Max(s.X-(o.X+o.W), 0); gap < dx {
				dx, blocked = gap, true
			}
		case dx < 0 && s.X+s.W <= o.X+sweepEpsilon:
			if gap := math.Min(s.X+s.W-o.X, 0); gap > dx {
				dx, blocked = gap, true
			}
		}
	}
	return dx, blocked
}

// SweepY is SweepX for the vertical axis.
func SweepY(o *resolv.Object, dy float64, solids []*resolv.Object) (float64, bool) {
	blocked := false
	for _, s := range solids {
		if s == o || !overlapsX(o, s) {
			continue
		}
		switch {
		case dy > 0 && s.Y >= o.Y+o.H-sweepEpsilon:
			if gap := math.Max(s.Y-(o.Y+o.H), 0); gap < dy {
				dy, blocked = gap, true
			}
		case dy < 0 && s.Y+s.H <= o.Y+sweepEpsilon:
			if gap := math.Min(s.Y+s.H-o.Y, 0); gap > dy {
				dy, blocked = gap, true
			}
		}
	}
	return dy, blocked
}

// Touching reports which sides of o rest within reach of a solid.
func Touching(o *resolv.Object, solids []*resolv.Object, reach float64) (down, left, right bool) {
	for _, s := range solids {
		if s == o {
			continue
		}
		if overlapsX(o, s) && math.Abs(s.Y-(o.Y+o.H)) <= reach {
			down = true
		}
		if overlapsY(o, s) {
			if math.Abs(s.X+s.W-o.X) <= reach {
				left = true
			}
			if math.Abs(s.X-(o.X+o.W)) <= reach {
				right = true
			}
		}
	}
	return down, left, right
}

// Headroom reports whether o could grow to height, keeping its feet fixed,
// without overlapping a solid.
func Headroom(o *resolv.Object, height float64, solids []*resolv.Object) bool {
	top := Bottom(o) - height
	for _, s := range solids {
		if s == o || !overlapsX(o, s) {
			continue
		}
		if s.Y < Bottom(o) && s.Y+s.H > top {
			return false
		}
	}
	return true
}
