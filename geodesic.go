package geod

// Pure Go re-implementation of https://github.com/chrisveness/geodesy, extended
// with the ellipsoidal geodesic engine described by Karney's "Algorithms for
// geodesics" (J Geod 87, 2013), following the structure of GeographicLib.

import "math"

// Geodesic is an immutable oblate ellipsoid of revolution, together with the
// derived constants the geodesic engine needs. Unlike Ellipsoid (used by the
// Cartesian/Vincenty-era code for simple a/b/f bookkeeping), Geodesic also
// precomputes the ellipsoid-level longitude-correction series tables (§3 of
// spec.md), so it is built once per ellipsoid and shared — by value — across
// every Line/Direct/Inverse call, exactly as spec.md §5 requires.
type Geodesic struct {
	a, f float64
	f1   float64
	e2   float64
	ep2  float64
	n    float64 // third flattening, f/(2-f)
	b    float64
	a3x  [nA3]float64
	c3x  [nC3x]float64
}

// NewGeodesic builds a Geodesic for equatorial radius a (meters, a > 0) and
// inverse flattening r (r <= 0 means a sphere, f = 0).
func NewGeodesic(a, r float64) (Geodesic, error) {
	if !finite(a) || a <= 0 {
		return Geodesic{}, &DomainError{Field: "a", Value: a}
	}
	if !finite(r) {
		return Geodesic{}, &DomainError{Field: "r", Value: r}
	}
	f := 0.0
	if r > 0 {
		f = 1 / r
	}
	f1 := 1 - f
	e2 := f * (2 - f)
	ep2 := e2 / (f1 * f1)
	b := a * f1
	n := f / (2 - f)
	return Geodesic{
		a: a, f: f, f1: f1, e2: e2, ep2: ep2, n: n, b: b,
		a3x: newA3x(n), c3x: newC3x(n),
	}, nil
}

var wgs84Geodesic = mustGeodesic(6378137.0, 298.257223563)

func mustGeodesic(a, r float64) Geodesic {
	g, err := NewGeodesic(a, r)
	if err != nil {
		panic(err)
	}
	return g
}

// WGS84Geodesic returns the shared WGS84 Geodesic, built at package init: the
// single static instance spec.md §5 allows the engine to hold process-wide.
func WGS84Geodesic() Geodesic {
	return wgs84Geodesic
}

// A returns the equatorial radius.
func (g Geodesic) A() float64 { return g.a }

// F returns the flattening.
func (g Geodesic) F() float64 { return g.f }

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
