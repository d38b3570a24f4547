// Package bezier builds and evaluates composite Bézier curves of arbitrary
// order. It was designed for callers that describe a curve as a flat list of
// control points, such as font and geometry tooling, but it is general
// enough to be useful wherever piecewise polynomial curves appear.
//
// # Composite curves
//
// A composite curve joins Bézier segments of a common order k end to end.
// Its natural description is a flat list of m·k+1 control points: segment i
// covers points i·k through i·k+k, so each interior anchor point is shared
// by two neighboring segments, which makes the joined curve continuous by
// construction.
//
// [SplitControlPoints] performs this division and reports lists that cannot
// be divided evenly. [NewSpline] adds the default parameterization, in
// which segment i is traced as the parameter runs from i to i+1;
// [NewSplineWithBreakpoints] accepts an arbitrary strictly increasing
// breakpoint sequence instead, for callers that weight segments unevenly,
// for example by geometric length.
//
// # Evaluation
//
// A [Spline] is evaluated by locating the segment whose breakpoint range
// contains the parameter, mapping the parameter to the segment's local
// [0, 1] range, and summing the segment's control points with Bernstein
// weights (see [Bernstein]). [Spline.Eval] evaluates a single parameter and
// rejects parameters outside the domain; [Spline.EvalAll] evaluates a batch
// element-wise; [Spline.Points] samples the whole curve uniformly for
// consumers that draw it as a polyline.
//
// Splines are immutable after construction, so any number of goroutines may
// evaluate one concurrently without synchronization.
//
// [Piecewise] is the same evaluation machinery exposed at the level of a
// raw Bernstein coefficient tensor and breakpoint sequence. It mirrors the
// piecewise-polynomial facilities of numerical libraries, including their
// habit of extrapolating the boundary pieces' polynomials past the domain,
// which [Spline.Eval] deliberately refuses to do.
//
// # Single segments
//
// [Segment] describes one Bézier curve of any order as its slice of control
// points. Beyond evaluation it supports the classic derived forms: the
// derivative ([Segment.Differentiate]), de Casteljau subdivision
// ([Segment.Subdivide], [Segment.Subsegment]), arc length via
// Legendre-Gauss quadrature ([Segment.Arclen]), and affine images
// ([Segment.Transform]).
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [Legendre-Gauss quadrature]
//   - the piecewise polynomial representation popularized by [scipy.interpolate]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Legendre-Gauss quadrature]: https://pomax.github.io/bezierinfo/legendre-gauss.html
// [scipy.interpolate]: https://docs.scipy.org/doc/scipy/reference/interpolate.html
package bezier
