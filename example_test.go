package bezier_test

import (
	"fmt"

	"honnef.co/go/bezier"
)

func ExampleNewSpline() {
	// Two cubic segments sharing the anchor (2, 2).
	spline, err := bezier.NewSpline([]bezier.Point{
		bezier.Pt(0, 0), bezier.Pt(0, 1), bezier.Pt(1, 2), bezier.Pt(2, 2),
		bezier.Pt(3, 2), bezier.Pt(4, 3), bezier.Pt(4, 4),
	}, 3)
	if err != nil {
		panic(err)
	}
	for _, t := range []float64{0, 0.5, 1, 1.5, 2} {
		pt, err := spline.Eval(t)
		if err != nil {
			panic(err)
		}
		fmt.Printf("t=%g: %s\n", t, pt)
	}
	// Output:
	// t=0: (0, 0)
	// t=0.5: (0.625, 1.375)
	// t=1: (2, 2)
	// t=1.5: (3.375, 2.625)
	// t=2: (4, 4)
}

func ExampleSpline_Points() {
	spline, err := bezier.NewSpline([]bezier.Point{
		bezier.Pt(0, 0), bezier.Pt(0, 1), bezier.Pt(1, 2), bezier.Pt(2, 2),
		bezier.Pt(3, 2), bezier.Pt(4, 3), bezier.Pt(4, 4),
	}, 3)
	if err != nil {
		panic(err)
	}

	// We'll draw the spline as an SVG document. A coarse sample count keeps
	// the example output short; for a smooth rendering we'd use a larger one.
	fmt.Println(`<svg viewBox="0 0 4 4" xmlns="http://www.w3.org/2000/svg">`)

	// The control polygon in gray, behind the curve. Shared anchors appear
	// in consecutive segments, so we skip the first point of every segment
	// but the first.
	fmt.Print(`<polyline points="`)
	first := true
	for seg := range spline.Segments() {
		for i, pt := range seg {
			if i == 0 && !first {
				continue
			}
			if !first {
				fmt.Print(" ")
			}
			first = false
			fmt.Printf("%g,%g", pt.X, pt.Y)
		}
	}
	fmt.Println(`" fill="none" stroke="#CCC" stroke-width="0.05" />`)

	// The curve itself, sampled into a polyline.
	fmt.Print(`<polyline points="`)
	first = true
	for pt := range spline.Points(4) {
		if !first {
			fmt.Print(" ")
		}
		first = false
		fmt.Printf("%g,%g", pt.X, pt.Y)
	}
	fmt.Println(`" fill="none" stroke="black" stroke-width="0.05" />`)

	fmt.Println(`</svg>`)

	// Output:
	// <svg viewBox="0 0 4 4" xmlns="http://www.w3.org/2000/svg">
	// <polyline points="0,0 0,1 1,2 2,2 3,2 4,3 4,4" fill="none" stroke="#CCC" stroke-width="0.05" />
	// <polyline points="0,0 0.625,1.375 2,2 3.375,2.625 4,4" fill="none" stroke="black" stroke-width="0.05" />
	// </svg>
}
