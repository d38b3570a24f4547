package bezier

import (
	"errors"
	"iter"
	"math"
	"slices"
	"sort"
)

// SplitControlPoints divides a flat list of control points into Bézier
// segments of order k.
//
// A valid list holds m·k+1 points for some m ≥ 1: segment i covers points
// i·k through i·k+k, so consecutive segments share their anchor point. Each
// returned segment owns a copy of its points. If the list cannot be divided
// this way, SplitControlPoints returns a [*PointCountError].
func SplitControlPoints(points []Point, k int) ([]Segment, error) {
	if k < 1 || len(points) < k+1 || (len(points)-1)%k != 0 {
		return nil, &PointCountError{Points: len(points), Order: k}
	}
	segments := make([]Segment, (len(points)-1)/k)
	for i := range segments {
		seg := make(Segment, k+1)
		copy(seg, points[i*k:i*k+k+1])
		segments[i] = seg
	}
	return segments, nil
}

// A Spline is a composite Bézier curve: segments of a common order joined
// end to end at shared anchor points, with a strictly increasing breakpoint
// sequence assigning each segment its slice of the parameter domain.
// Segment j is traced as the parameter runs from breakpoint j to breakpoint
// j+1.
//
// A Spline is immutable once constructed and may be evaluated from multiple
// goroutines without synchronization.
type Spline struct {
	segments    []Segment
	breakpoints []float64
}

// NewSpline builds a composite curve of order k from a flat list of control
// points, with the default breakpoint sequence 0, 1, …, m parameterizing
// each of the m segments over a unit interval.
func NewSpline(points []Point, k int) (*Spline, error) {
	segments, err := SplitControlPoints(points, k)
	if err != nil {
		return nil, err
	}
	breakpoints := make([]float64, len(segments)+1)
	for i := range breakpoints {
		breakpoints[i] = float64(i)
	}
	return &Spline{segments: segments, breakpoints: breakpoints}, nil
}

// NewSplineWithBreakpoints is like [NewSpline] but parameterizes the
// segments with an explicit breakpoint sequence, which must be strictly
// increasing and hold one more entry than there are segments. Unequal
// breakpoint spacing changes each segment's share of the parameter domain;
// the traced curve is unaffected.
func NewSplineWithBreakpoints(points []Point, k int, breakpoints []float64) (*Spline, error) {
	segments, err := SplitControlPoints(points, k)
	if err != nil {
		return nil, err
	}
	if err := validateBreakpoints(breakpoints, len(segments)); err != nil {
		return nil, err
	}
	return &Spline{segments: segments, breakpoints: slices.Clone(breakpoints)}, nil
}

func validateBreakpoints(breakpoints []float64, segments int) error {
	if len(breakpoints) != segments+1 {
		return &BreakpointError{Count: len(breakpoints), Segments: segments, Index: -1}
	}
	for i := 1; i < len(breakpoints); i++ {
		// A NaN entry fails this comparison and is rejected.
		if !(breakpoints[i] > breakpoints[i-1]) {
			return &BreakpointError{Count: len(breakpoints), Segments: segments, Index: i}
		}
	}
	return nil
}

// Order returns the order of the spline's segments.
func (s *Spline) Order() int {
	return s.segments[0].Order()
}

// Segments returns an iterator over the spline's segments in curve order.
func (s *Spline) Segments() iter.Seq[Segment] {
	return slices.Values(s.segments)
}

// Breakpoints returns a copy of the spline's breakpoint sequence.
func (s *Spline) Breakpoints() []float64 {
	return slices.Clone(s.breakpoints)
}

// Domain returns the parameter interval covered by the spline, from the
// first breakpoint to the last.
func (s *Spline) Domain() (float64, float64) {
	return s.breakpoints[0], s.breakpoints[len(s.breakpoints)-1]
}

// segmentIndex returns the index of the segment whose parameter range
// contains t. A t equal to an interior breakpoint belongs to the segment
// ending there; the final breakpoint belongs to the last segment. For t
// outside the domain, the index of the nearest boundary segment is
// returned.
func segmentIndex(breakpoints []float64, t float64) int {
	j := sort.SearchFloat64s(breakpoints, t) - 1
	return max(0, min(j, len(breakpoints)-2))
}

// Eval evaluates the spline at parameter t.
//
// The parameter must lie within the spline's domain; for other values Eval
// returns a [*DomainError] rather than extrapolating. Use
// [Spline.Piecewise] for an evaluator that continues the boundary segments'
// polynomials past the domain.
func (s *Spline) Eval(t float64) (Point, error) {
	lo, hi := s.Domain()
	// Negated comparison so NaN parameters are out of domain, too.
	if !(t >= lo && t <= hi) {
		return Point{}, &DomainError{T: t, Min: lo, Max: hi}
	}
	return s.eval(t), nil
}

// eval evaluates without the domain check. Out-of-domain parameters land on
// the nearest boundary segment.
func (s *Spline) eval(t float64) Point {
	j := segmentIndex(s.breakpoints, t)
	u := (t - s.breakpoints[j]) / (s.breakpoints[j+1] - s.breakpoints[j])
	return s.segments[j].Eval(u)
}

// EvalAll evaluates the spline at every parameter in ts, returning one
// point per parameter in matching order.
//
// Elements are evaluated independently. An out-of-domain parameter yields
// Pt(NaN, NaN) at its position and contributes a [*DomainError] to the
// joined error; it does not affect any other element.
func (s *Spline) EvalAll(ts []float64) ([]Point, error) {
	lo, hi := s.Domain()
	out := make([]Point, len(ts))
	var errs []error
	for i, t := range ts {
		if !(t >= lo && t <= hi) {
			out[i] = Pt(math.NaN(), math.NaN())
			errs = append(errs, &DomainError{T: t, Min: lo, Max: hi})
			continue
		}
		out[i] = s.eval(t)
	}
	return out, errors.Join(errs...)
}

// Points returns an iterator over n+1 samples of the spline at uniform
// parameter steps across its domain, from the curve's start to its end.
// Connecting consecutive points with lines approximates the curve, with n
// controlling the fidelity.
//
// Points panics if n is not positive.
func (s *Spline) Points(n int) iter.Seq[Point] {
	if n < 1 {
		panic("bezier: sample count must be positive")
	}
	return func(yield func(Point) bool) {
		lo, hi := s.Domain()
		for i := range n + 1 {
			t := lo + (hi-lo)*(float64(i)/float64(n))
			if !yield(s.eval(t)) {
				return
			}
		}
	}
}

// Arclen returns the total arc length of the spline.
//
// The result is accurate to the given accuracy, which is divided evenly
// across the segments.
func (s *Spline) Arclen(accuracy float64) float64 {
	var sum float64
	acc := accuracy / float64(len(s.segments))
	for _, seg := range s.segments {
		sum += seg.Arclen(acc)
	}
	return sum
}

// Transform returns a new spline with every control point mapped through
// aff. The breakpoints are unchanged.
func (s *Spline) Transform(aff Affine) *Spline {
	segments := make([]Segment, len(s.segments))
	for i, seg := range s.segments {
		segments[i] = seg.Transform(aff)
	}
	return &Spline{segments: segments, breakpoints: s.breakpoints}
}
