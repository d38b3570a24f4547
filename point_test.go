package bezier

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, 4), Pt(4, 6).Sub(Pt(1, 2)))
	diff(t, Pt(2, 3), Pt(0, 0).Lerp(Pt(4, 6), 0.5))
	diff(t, Pt(1, 1.5), Pt(0, 0).Lerp(Pt(4, 6), 0.25))
	diff(t, Pt(2, 3), Pt(0, 0).Midpoint(Pt(4, 6)))
}

func TestPointSplat(t *testing.T) {
	x, y := Pt(5, -2.5).Splat()
	if x != 5 || y != -2.5 {
		t.Errorf("got (%g, %g), want (5, -2.5)", x, y)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointString(t *testing.T) {
	if s := Pt(0.625, 1.375).String(); s != "(0.625, 1.375)" {
		t.Errorf("got %q", s)
	}
}

func TestPointIsInfIsNaN(t *testing.T) {
	if Pt(0, 0).IsInf() || Pt(0, 0).IsNaN() {
		t.Error("origin reports as non-finite")
	}
	if !Pt(math.Inf(1), 0).IsInf() {
		t.Error("infinite point not reported")
	}
	if !Pt(0, math.NaN()).IsNaN() {
		t.Error("NaN point not reported")
	}
}
