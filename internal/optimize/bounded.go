// Package optimize provides a derivative-free bounded scalar minimizer.
package optimize

import (
	"errors"
	"math"
)

// Settings controls the bounded search.
type Settings struct {
	// XTol is the absolute tolerance on the abscissa. Defaults to 1e-5.
	XTol float64
	// MaxEval caps the number of function evaluations. Defaults to 500.
	MaxEval int
}

// Result is the outcome of a bounded minimization.
type Result struct {
	X           float64 // best abscissa found
	F           float64 // f(X)
	Evaluations int
	Converged   bool // false when MaxEval was reached first
}

var ErrBadInterval = errors.New("optimize: lower bound must be below upper bound")

const goldenMean = 0.3819660112501051 // (3 - √5) / 2

// Bounded minimizes f on [lo, hi] with Brent's method: golden-section steps
// safeguarded by parabolic interpolation. f is assumed unimodal on the
// interval; otherwise a local minimum is returned.
//
// The stopping rule is the one used by fminbound: the bracket around the
// best point shrinks to within 2·(√ε·|x| + XTol/3).
func Bounded(f func(float64) float64, lo, hi float64, s Settings) (Result, error) {
	if !(lo < hi) {
		return Result{}, ErrBadInterval
	}
	if s.XTol <= 0 {
		s.XTol = 1e-5
	}
	if s.MaxEval <= 0 {
		s.MaxEval = 500
	}
	sqrtEps := math.Sqrt(2.2e-16)

	a, b := lo, hi
	// x is the best point so far, w the second best, v the previous w.
	x := a + goldenMean*(b-a)
	w, v := x, x
	fx := f(x)
	fw, fv := fx, fx
	evals := 1

	var d, e float64
	xm := 0.5 * (a + b)
	tol1 := sqrtEps*math.Abs(x) + s.XTol/3
	tol2 := 2 * tol1

	for math.Abs(x-xm) > tol2-0.5*(b-a) {
		golden := true
		if math.Abs(e) > tol1 {
			golden = false
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = d

			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-x) && p < q*(b-x) {
				// Parabolic step, kept away from the bounds.
				d = p / q
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = tol1 * sign(xm-x)
				}
			} else {
				golden = true
			}
		}
		if golden {
			if x >= xm {
				e = a - x
			} else {
				e = b - x
			}
			d = goldenMean * e
		}

		u := x + sign(d)*math.Max(math.Abs(d), tol1)
		fu := f(u)
		evals++

		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, fv = w, fw
			w, fw = x, fx
			x, fx = u, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, fv = w, fw
				w, fw = u, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		}

		xm = 0.5 * (a + b)
		tol1 = sqrtEps*math.Abs(x) + s.XTol/3
		tol2 = 2 * tol1

		if evals >= s.MaxEval {
			return Result{X: x, F: fx, Evaluations: evals}, nil
		}
	}

	return Result{X: x, F: fx, Evaluations: evals, Converged: true}, nil
}

// sign returns -1 for negative x and 1 otherwise.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
