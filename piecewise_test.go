package bezier

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestPiecewiseFromSpline(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(0, 1), Pt(1, 2), Pt(2, 2), Pt(3, 2), Pt(4, 3), Pt(4, 4)}
	s, err := NewSpline(points, 3)
	if err != nil {
		t.Fatal(err)
	}
	p := s.Piecewise()
	if p.Order() != 3 {
		t.Errorf("got order %d, want 3", p.Order())
	}
	diff(t, s.Breakpoints(), p.Breakpoints())

	// Inside the domain both evaluators agree exactly.
	for i := 0; i <= 32; i++ {
		at := 2 * float64(i) / 32
		want, err := s.Eval(at)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, p.Eval(at))
	}
}

func TestPiecewiseExtrapolate(t *testing.T) {
	s, err := NewSpline([]Point{Pt(0, 0), Pt(1, 1)}, 1)
	if err != nil {
		t.Fatal(err)
	}
	p := s.Piecewise()
	if !p.Extrapolate {
		t.Fatal("extrapolation not enabled by default")
	}

	// A single linear piece extends to the whole line.
	diff(t, Pt(2, 2), p.Eval(2))
	diff(t, Pt(-1, -1), p.Eval(-1))

	// Outside the breakpoint range the boundary piece's polynomial
	// continues.
	points := []Point{Pt(0, 0), Pt(0, 1), Pt(1, 2), Pt(2, 2), Pt(3, 2), Pt(4, 3), Pt(4, 4)}
	s, err = NewSpline(points, 3)
	if err != nil {
		t.Fatal(err)
	}
	p = s.Piecewise()
	segments := slices.Collect(s.Segments())
	diff(t, segments[0].Eval(-0.5), p.Eval(-0.5))
	diff(t, segments[1].Eval(2), p.Eval(3))
}

func TestPiecewiseNoExtrapolate(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(0, 1), Pt(1, 2), Pt(2, 2), Pt(3, 2), Pt(4, 3), Pt(4, 4)}
	s, err := NewSpline(points, 3)
	if err != nil {
		t.Fatal(err)
	}
	p := s.Piecewise()
	p.Extrapolate = false

	for _, bad := range []float64{-0.1, 2.1, math.Inf(1), math.NaN()} {
		if pt := p.Eval(bad); !pt.IsNaN() {
			t.Errorf("Eval(%g) = %s, want NaN", bad, pt)
		}
	}
	// The domain itself is unaffected.
	if pt := p.Eval(1); pt != Pt(2, 2) {
		t.Errorf("Eval(1) = %s, want exactly (2, 2)", pt)
	}
}

func TestPiecewiseTies(t *testing.T) {
	// Two constant pieces with a jump at the shared breakpoint make the
	// tie-breaking observable: the breakpoint belongs to the piece ending
	// there.
	coef := [][]Point{{Pt(0, 0), Pt(1, 1)}}
	p, err := NewPiecewise(coef, []float64{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(0, 0), p.Eval(0.5))
	diff(t, Pt(0, 0), p.Eval(1))
	diff(t, Pt(1, 1), p.Eval(1.5))
	diff(t, Pt(1, 1), p.Eval(2))
}

func TestNewPiecewise(t *testing.T) {
	// Two linear pieces: right along y=0, then up along x=1.
	coef := [][]Point{
		{Pt(0, 0), Pt(1, 0)},
		{Pt(1, 0), Pt(1, 1)},
	}
	p, err := NewPiecewise(coef, []float64{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if p.Order() != 1 {
		t.Errorf("got order %d, want 1", p.Order())
	}
	diff(t, Pt(0.5, 0), p.Eval(0.5))
	diff(t, Pt(1, 0), p.Eval(1))
	diff(t, Pt(1, 0.5), p.Eval(1.5))
	diff(t, Pt(1, 2), p.Eval(3))
}

func TestNewPiecewiseErrors(t *testing.T) {
	var cerr *CoefficientError
	_, err := NewPiecewise(nil, []float64{0, 1})
	if !errors.As(err, &cerr) || cerr.Row != -1 {
		t.Errorf("got %v, want a coefficient error for an empty tensor", err)
	}
	_, err = NewPiecewise([][]Point{{}}, []float64{0})
	if !errors.As(err, &cerr) || cerr.Row != -1 {
		t.Errorf("got %v, want a coefficient error for an empty tensor", err)
	}

	ragged := [][]Point{
		{Pt(0, 0), Pt(1, 0)},
		{Pt(1, 0)},
	}
	_, err = NewPiecewise(ragged, []float64{0, 1, 2})
	if !errors.As(err, &cerr) {
		t.Fatalf("got %v, want a coefficient error for a ragged tensor", err)
	}
	if cerr.Row != 1 || cerr.Len != 1 || cerr.Want != 2 {
		t.Errorf("error reports row %d with %d columns, want %d", cerr.Row, cerr.Len, cerr.Want)
	}

	coef := [][]Point{
		{Pt(0, 0), Pt(1, 0)},
		{Pt(1, 0), Pt(1, 1)},
	}
	var berr *BreakpointError
	_, err = NewPiecewise(coef, []float64{0, 1})
	if !errors.As(err, &berr) || berr.Index != -1 {
		t.Errorf("got %v, want a breakpoint error for a short sequence", err)
	}
	_, err = NewPiecewise(coef, []float64{0, 1, 1})
	if !errors.As(err, &berr) || berr.Index != 2 {
		t.Errorf("got %v, want a breakpoint error for a stalled sequence", err)
	}
}

func TestPiecewiseCoefficients(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(0, 1), Pt(1, 2), Pt(2, 2), Pt(3, 2), Pt(4, 3), Pt(4, 4)}
	s, err := NewSpline(points, 3)
	if err != nil {
		t.Fatal(err)
	}
	p := s.Piecewise()

	want := [][]Point{
		{Pt(0, 0), Pt(2, 2)},
		{Pt(0, 1), Pt(3, 2)},
		{Pt(1, 2), Pt(4, 3)},
		{Pt(2, 2), Pt(4, 4)},
	}
	diff(t, want, p.Coefficients())

	// The returned tensor is a copy.
	got := p.Coefficients()
	got[0][0] = Pt(99, 99)
	diff(t, want, p.Coefficients())

	// Rebuilding from the exported form reproduces the evaluator.
	rebuilt, err := NewPiecewise(p.Coefficients(), p.Breakpoints())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i <= 16; i++ {
		at := -1 + 4*float64(i)/16
		diff(t, p.Eval(at), rebuilt.Eval(at))
	}
}
