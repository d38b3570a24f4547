package bezier

import (
	"math"
	"slices"
)

// A Piecewise is a piecewise polynomial in the Bernstein basis, described
// by a coefficient tensor and a breakpoint sequence delimiting the pieces'
// parameter ranges. For a Bézier spline the Bernstein coefficients are the
// control points themselves; [Spline.Piecewise] builds exactly that.
//
// Unlike [Spline.Eval], evaluation has no error path: parameters outside
// the breakpoint range are handled according to Extrapolate.
type Piecewise struct {
	// Extrapolate selects the behavior for parameters outside the
	// breakpoint range: if set, the first or last piece's polynomial is
	// continued past the boundary; if clear, evaluation returns NaN points.
	Extrapolate bool

	cols        [][]Point // cols[j] holds the coefficients of piece j
	breakpoints []float64
}

// NewPiecewise builds a piecewise Bernstein polynomial from a coefficient
// tensor organized with one row per basis index and one column per piece:
// coef[i][j] is the i-th Bernstein coefficient of piece j. The tensor must
// be rectangular with at least one row and one column, and breakpoints must
// be strictly increasing with one more entry than there are columns.
//
// The returned polynomial has Extrapolate set; clear it to map parameters
// outside the breakpoint range to NaN instead.
func NewPiecewise(coef [][]Point, breakpoints []float64) (*Piecewise, error) {
	if len(coef) == 0 || len(coef[0]) == 0 {
		return nil, &CoefficientError{Row: -1}
	}
	for i, row := range coef[1:] {
		if len(row) != len(coef[0]) {
			return nil, &CoefficientError{Row: i + 1, Len: len(row), Want: len(coef[0])}
		}
	}
	if err := validateBreakpoints(breakpoints, len(coef[0])); err != nil {
		return nil, err
	}
	cols := make([][]Point, len(coef[0]))
	for j := range cols {
		col := make([]Point, len(coef))
		for i := range col {
			col[i] = coef[i][j]
		}
		cols[j] = col
	}
	return &Piecewise{Extrapolate: true, cols: cols, breakpoints: slices.Clone(breakpoints)}, nil
}

// Piecewise exports the spline as a piecewise Bernstein polynomial over the
// same breakpoints, with each segment's control points as the coefficients
// of its piece.
//
// The result has Extrapolate set: where [Spline.Eval] reports a domain
// error, the piecewise form continues the boundary segments' polynomials.
func (s *Spline) Piecewise() *Piecewise {
	cols := make([][]Point, len(s.segments))
	for j, seg := range s.segments {
		cols[j] = seg
	}
	return &Piecewise{Extrapolate: true, cols: cols, breakpoints: s.breakpoints}
}

// Order returns the order of the polynomial pieces, one less than the
// number of coefficient rows.
func (p *Piecewise) Order() int {
	return len(p.cols[0]) - 1
}

// Breakpoints returns a copy of the breakpoint sequence.
func (p *Piecewise) Breakpoints() []float64 {
	return slices.Clone(p.breakpoints)
}

// Domain returns the parameter interval delimited by the breakpoints.
func (p *Piecewise) Domain() (float64, float64) {
	return p.breakpoints[0], p.breakpoints[len(p.breakpoints)-1]
}

// Coefficients returns a copy of the coefficient tensor, organized with one
// row per basis index and one column per piece.
func (p *Piecewise) Coefficients() [][]Point {
	rows := make([][]Point, len(p.cols[0]))
	for i := range rows {
		row := make([]Point, len(p.cols))
		for j := range row {
			row[j] = p.cols[j][i]
		}
		rows[i] = row
	}
	return rows
}

// Eval evaluates the piecewise polynomial at t.
//
// Within the breakpoint range the result is the Bernstein sum of the
// containing piece's coefficients, with ties at interior breakpoints
// resolving to the lower-indexed piece. Outside the range the result
// depends on Extrapolate.
func (p *Piecewise) Eval(t float64) Point {
	lo, hi := p.Domain()
	if !p.Extrapolate && !(t >= lo && t <= hi) {
		return Pt(math.NaN(), math.NaN())
	}
	j := segmentIndex(p.breakpoints, t)
	u := (t - p.breakpoints[j]) / (p.breakpoints[j+1] - p.breakpoints[j])
	return evalBernstein(p.cols[j], u)
}
