package bezier

import "fmt"

// A PointCountError reports a control point list that cannot be divided into
// Bézier segments of the requested order.
//
// A composite curve of order k needs m·k+1 control points for some m ≥ 1, so
// that consecutive segments can share their anchor points.
type PointCountError struct {
	Points int // number of control points supplied
	Order  int // requested curve order
}

func (err *PointCountError) Error() string {
	if err.Order < 1 {
		return fmt.Sprintf("bezier: invalid curve order %d", err.Order)
	}
	return fmt.Sprintf("bezier: cannot divide %d control points into order-%d segments with shared anchors", err.Points, err.Order)
}

// A BreakpointError reports a breakpoint sequence that cannot parameterize
// the segments of a spline.
type BreakpointError struct {
	Count    int // number of breakpoints supplied
	Segments int // number of segments to parameterize
	Index    int // index of the first breakpoint that does not increase, or -1
}

func (err *BreakpointError) Error() string {
	if err.Index >= 0 {
		return fmt.Sprintf("bezier: breakpoint %d does not increase", err.Index)
	}
	return fmt.Sprintf("bezier: got %d breakpoints for %d segments, want %d", err.Count, err.Segments, err.Segments+1)
}

// A DomainError reports evaluation of a spline at a parameter outside the
// interval spanned by its breakpoints.
type DomainError struct {
	T   float64 // the offending parameter
	Min float64
	Max float64
}

func (err *DomainError) Error() string {
	return fmt.Sprintf("bezier: parameter %g outside domain [%g, %g]", err.T, err.Min, err.Max)
}

// A CoefficientError reports a coefficient tensor that is empty or ragged.
type CoefficientError struct {
	Row  int // index of the offending row, or -1 if the tensor is empty
	Len  int
	Want int
}

func (err *CoefficientError) Error() string {
	if err.Row < 0 {
		return "bezier: empty coefficient tensor"
	}
	return fmt.Sprintf("bezier: coefficient row %d has length %d, want %d", err.Row, err.Len, err.Want)
}
