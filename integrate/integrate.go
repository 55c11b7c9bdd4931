// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package integrate approximates definite integrals with the composite
// rectangle (midpoint), trapezoid and Simpson rules, serially or in
// parallel.
//
// Every rule is a weighted sum over evenly spaced nodes. The parallel
// variant splits the nodes into one contiguous chunk per worker with
// [syncx.ParallelFor]; worker w writes only partials[w], and the caller
// adds the partials in worker order after all workers are done. With one
// worker the result is bit-identical to the serial one; with more it may
// differ in the last bits because the sum is regrouped.
//
// Example:
//
//	pi := integrate.Pi(integrate.Simpson, 1000, 4) // ≈ 3.14159265359
package integrate

import "code.hybscloud.com/syncx"

// Func is a real function of one variable.
type Func func(x float64) float64

// Method selects the quadrature rule.
type Method int

const (
	// Rectangle samples f at the midpoint of each interval.
	Rectangle Method = iota
	// Trapezoid averages f at both ends of each interval.
	Trapezoid
	// Simpson fits a parabola through each pair of intervals.
	// An odd interval count is rounded up to the next even number.
	Simpson
)

func (m Method) String() string {
	switch m {
	case Rectangle:
		return "rectangle"
	case Trapezoid:
		return "trapezoid"
	case Simpson:
		return "simpson"
	default:
		return "unknown"
	}
}

// PiIntegrand is 4/(1+x²). Its integral over [0, 1] is π.
func PiIntegrand(x float64) float64 {
	return 4 / (1 + x*x)
}

// Serial integrates f over [a, b] with n intervals on the calling goroutine.
// Panics if n < 1 or m is unknown.
func Serial(m Method, f Func, a, b float64, n int) float64 {
	r := newRule(m, a, b, n)
	return r.sum(f, 0, r.nodes) * r.scale
}

// Parallel integrates f over [a, b] with n intervals on workers goroutines.
// f must be safe for concurrent calls.
// Panics if n < 1, workers < 1 or m is unknown.
func Parallel(m Method, f Func, a, b float64, n, workers int) float64 {
	if workers < 1 {
		panic("integrate: workers must be >= 1")
	}
	r := newRule(m, a, b, n)
	partials := make([]float64, workers)
	syncx.ParallelFor(r.nodes, workers, func(w, lo, hi int) {
		partials[w] = r.sum(f, lo, hi)
	})

	var total float64
	for _, p := range partials {
		total += p
	}
	return total * r.scale
}

// Pi approximates π by integrating [PiIntegrand] over [0, 1].
// workers == 1 runs serially.
func Pi(m Method, n, workers int) float64 {
	if workers == 1 {
		return Serial(m, PiIntegrand, 0, 1, n)
	}
	return Parallel(m, PiIntegrand, 0, 1, n, workers)
}

// rule is a composite quadrature rule laid out as
// scale × Σ weight(i)·f(x(i)) for i in [0, nodes).
type rule struct {
	method Method
	a, h   float64
	n      int // Intervals
	nodes  int
	scale  float64
}

func newRule(m Method, a, b float64, n int) rule {
	if n < 1 {
		panic("integrate: n must be >= 1")
	}
	if m == Simpson && n%2 != 0 {
		n++
	}

	r := rule{method: m, a: a, h: (b - a) / float64(n), n: n}
	switch m {
	case Rectangle:
		r.nodes, r.scale = n, r.h
	case Trapezoid:
		r.nodes, r.scale = n+1, r.h
	case Simpson:
		r.nodes, r.scale = n+1, r.h/3
	default:
		panic("integrate: unknown method")
	}
	return r
}

// sum returns the weighted sum over nodes [lo, hi).
func (r rule) sum(f Func, lo, hi int) float64 {
	var s float64
	for i := lo; i < hi; i++ {
		s += r.weight(i) * f(r.x(i))
	}
	return s
}

func (r rule) x(i int) float64 {
	if r.method == Rectangle {
		return r.a + (float64(i)+0.5)*r.h
	}
	return r.a + float64(i)*r.h
}

func (r rule) weight(i int) float64 {
	switch r.method {
	case Trapezoid:
		if i == 0 || i == r.n {
			return 0.5
		}
	case Simpson:
		switch {
		case i == 0 || i == r.n:
			return 1
		case i%2 == 1:
			return 4
		default:
			return 2
		}
	}
	return 1
}
