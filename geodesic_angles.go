package geod

// Pure Go re-implementation of https://github.com/chrisveness/geodesy, extended
// with the ellipsoidal geodesic engine described by Karney's "Algorithms for
// geodesics" (J Geod 87, 2013), following the structure of GeographicLib.
//
// This file holds the "elementary numerics" building blocks the engine is
// built from: sign-preserving angle normalization, tiny-angle rounding,
// (sin,cos) pair renormalization, and a protected hypotenuse.

import "math"

const (
	// eps2 protects divisions near the poles from underflowing to zero: the
	// square root of the smallest positive normal double.
	eps2 = 0x1p-511 // sqrt(smallest normal double), i.e. sqrt(2^-1022)

	// tol0 is machine epsilon, the base unit the other tolerances scale from.
	tol0 = epsMach

	// tol1 is the Newton iteration's "good enough, stop after one more trip"
	// tolerance.
	tol1 = 200 * tol0

	// tol2 scales the really-short-line threshold (etol2) and, through
	// xthresh, the near-antipodal strip; the Newton exit check uses tol1.
	tol2 = 1.4901161193847656e-08 // sqrt(epsMach)

	// xthresh widens the near-antipodal strip the astroid solve special-cases.
	xthresh = 1000 * tol2

	epsMach = 2.220446049250313e-16 // 2^-52
)

// angNormalize reduces x by multiples of 360 degrees until it lies in
// (-180, 180]. It never panics: non-finite input yields NaN. The elementary
// numerics layer itself never fails per spec.md §7, so callers at the public
// entry points validate finiteness first and report a DomainError.
func angNormalize(x float64) float64 {
	y := math.Mod(x, 360)
	if y <= -180 {
		y += 360
	} else if y > 180 {
		y -= 360
	}
	return y
}

// angRound snaps tiny angles (in degrees) to exactly zero, preserving sign,
// so that downstream meridional/equatorial special-case comparisons can use
// strict equality instead of a tolerance check at every call site.
func angRound(x float64) float64 {
	const z = 1.0 / 16
	if x == 0 {
		return x
	}
	y := math.Abs(x)
	// The compiler isn't allowed to "simplify" z - (z - y).
	y = z - (z - y)
	if x < 0 {
		return -y
	}
	return y
}

// sinCosNorm rescales (s, c) to lie exactly on the unit circle.
func sinCosNorm(s, c float64) (float64, float64) {
	r := math.Hypot(s, c)
	return s / r, c / r
}
