package bezier

import (
	"math"
)

// A Segment is a single Bézier curve of arbitrary order, described by its
// ordered control points. A segment of order k holds k+1 points; the curve
// starts at the first point, ends at the last, and is pulled toward the
// interior ones. For u ∈ [0, 1] the curve never leaves the convex hull of
// the control points.
//
// A Segment must hold at least two points (order ≥ 1). Methods may panic on
// shorter slices.
type Segment []Point

// Order returns the order of the segment, one less than its number of
// control points.
func (s Segment) Order() int {
	return len(s) - 1
}

func (s Segment) Start() Point {
	return s[0]
}

func (s Segment) End() Point {
	return s[len(s)-1]
}

// Eval evaluates the curve at parameter u. Generally, u is in the range
// [0, 1]. Evaluation at u=0 returns exactly the first control point and at
// u=1 exactly the last.
func (s Segment) Eval(u float64) Point {
	return evalBernstein(s, u)
}

// Differentiate returns the derivative (hodograph) of the segment, a curve
// of one order lower. The points of the result are derivative vectors rather
// than positions.
func (s Segment) Differentiate() Segment {
	k := float64(len(s) - 1)
	d := make(Segment, len(s)-1)
	for i := range d {
		d[i] = Point(s[i+1].Sub(s[i]).Mul(k))
	}
	return d
}

// Subdivide splits the segment into halves, using de Casteljau's algorithm.
// The halves together trace the same curve as s.
func (s Segment) Subdivide() (Segment, Segment) {
	return s.split(0.5)
}

func (s Segment) split(u float64) (Segment, Segment) {
	left := make(Segment, len(s))
	right := make(Segment, len(s))
	tmp := make(Segment, len(s))
	copy(tmp, s)
	left[0] = tmp[0]
	right[len(s)-1] = tmp[len(s)-1]
	for r := 1; r < len(s); r++ {
		for i := range len(s) - r {
			tmp[i] = tmp[i].Lerp(tmp[i+1], u)
		}
		left[r] = tmp[0]
		right[len(s)-1-r] = tmp[len(s)-1-r]
	}
	return left, right
}

// Subsegment returns the part of the segment between the parameters u0 and
// u1, reparameterized to [0, 1].
func (s Segment) Subsegment(u0, u1 float64) Segment {
	// Control point i of the result is the polar form of the curve evaluated
	// at k−i copies of u0 and i copies of u1. Each de Casteljau pass
	// consumes one argument.
	out := make(Segment, len(s))
	tmp := make(Segment, len(s))
	for i := range out {
		copy(tmp, s)
		for r := len(s) - 1; r > 0; r-- {
			u := u1
			if r > i {
				u = u0
			}
			for j := range r {
				tmp[j] = tmp[j].Lerp(tmp[j+1], u)
			}
		}
		out[i] = tmp[0]
	}
	return out
}

// Arclen returns the arc length of the segment.
//
// The result is accurate to the given accuracy (subject to roundoff errors
// for ridiculously low values). Compute time may vary with accuracy, as the
// segment is subdivided until two quadrature orders agree.
func (s Segment) Arclen(accuracy float64) float64 {
	return s.arclen(accuracy, 0)
}

func (s Segment) arclen(accuracy float64, depth int) float64 {
	d := s.Differentiate()
	speed := func(u float64) float64 {
		return Vec2(d.Eval(u)).Hypot()
	}
	est8 := gaussQuadrature(gaussLegendreCoeffs8[:], speed)
	est16 := gaussQuadrature(gaussLegendreCoeffs16[:], speed)
	if math.Abs(est16-est8) <= accuracy || depth >= 16 {
		return est16
	}
	left, right := s.Subdivide()
	return left.arclen(0.5*accuracy, depth+1) + right.arclen(0.5*accuracy, depth+1)
}

// ControlBox returns the bounding rectangle of the segment's control points.
// By the convex hull property it contains the curve, though it is not
// necessarily the tightest rectangle that does.
func (s Segment) ControlBox() Rect {
	box := NewRectFromPoints(s[0], s[0])
	for _, p := range s[1:] {
		box = box.UnionPoint(p)
	}
	return box
}

// Transform returns the segment with every control point mapped through aff.
// Affine maps commute with Bézier evaluation, so the result traces the
// transformed curve.
func (s Segment) Transform(aff Affine) Segment {
	out := make(Segment, len(s))
	for i, p := range s {
		out[i] = p.Transform(aff)
	}
	return out
}

// IsInf reports whether any control point is infinite.
func (s Segment) IsInf() bool {
	for _, p := range s {
		if p.IsInf() {
			return true
		}
	}
	return false
}

// IsNaN reports whether any control point is NaN.
func (s Segment) IsNaN() bool {
	for _, p := range s {
		if p.IsNaN() {
			return true
		}
	}
	return false
}
