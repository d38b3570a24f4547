package bezier

import "math"

// binomial returns the binomial coefficient C(n, i).
//
// The coefficient is built multiplicatively from C(n, 0) = 1, which is exact
// in float64 for every order a Bézier curve has in practice.
func binomial(n, i int) float64 {
	if i < 0 || i > n {
		return 0
	}
	if i > n-i {
		i = n - i
	}
	b := 1.0
	for j := 1; j <= i; j++ {
		b *= float64(n-i+j) / float64(j)
	}
	return b
}

// Bernstein evaluates the Bernstein basis polynomial of degree k with index
// i at u:
//
//	C(k,i) · uⁱ · (1−u)ᵏ⁻ⁱ
//
// The k+1 basis polynomials of degree k sum to one for every u (the
// partition of unity), and for u ∈ [0, 1] each is non-negative, which is why
// a Bézier segment is a convex combination of its control points.
func Bernstein(k, i int, u float64) float64 {
	if i < 0 || i > k {
		return 0
	}
	return binomial(k, i) * math.Pow(u, float64(i)) * math.Pow(1-u, float64(k-i))
}

// evalBernstein returns the Bernstein-weighted sum of pts at u. The weights
// of the first and last point degenerate to exactly one at u=0 and u=1
// respectively, so the sum interpolates the endpoints without roundoff.
//
// The sum is a polynomial in u and remains well defined outside [0, 1],
// where it continues the segment's polynomial rather than the curve.
func evalBernstein(pts []Point, u float64) Point {
	k := len(pts) - 1
	mu := 1 - u
	b := 1.0  // C(k, i), updated incrementally
	pu := 1.0 // uⁱ
	var acc Vec2
	for i, p := range pts {
		if i > 0 {
			b *= float64(k-i+1) / float64(i)
			pu *= u
		}
		w := b * pu * math.Pow(mu, float64(k-i))
		acc = acc.Add(Vec2(p).Mul(w))
	}
	return Point(acc)
}
