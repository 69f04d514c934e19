package geod

// Pure Go re-implementation of https://github.com/chrisveness/geodesy, extended
// with the ellipsoidal geodesic engine described by Karney's "Algorithms for
// geodesics" (J Geod 87, 2013), following the structure of GeographicLib.
//
// This file is the series library: fixed-order truncated power series in the
// auxiliary parameter u² = μ·e′² (μ = cos²α₀), used for the distance/arc-length
// scale and its reversion, and in the third flattening n for the spherical/
// ellipsoidal longitude correction. Coefficients below are Karney's published
// 8th-order rational polynomials, adapted from the Go port of
// GeographicLib-1.15 retained elsewhere in this corpus (geo/wgs84), renamed
// to the vocabulary spec.md uses (tauScale/tauCoeff/sigCoeff/dlamScale/
// dlamCoeff) and threaded through the Geodesic ellipsoid value rather than
// package-level globals.
//
import "math"

// seriesOrder is the compile-time series order N (§4.2): 1..8, reference
// quality at 8. Raising or lowering it changes every polynomial below, so it
// is not a runtime knob.
const seriesOrder = 8

const (
	nC1  = seriesOrder
	nC1p = seriesOrder
	nC2  = seriesOrder
	nA3  = seriesOrder
	nC3  = seriesOrder
	nC3x = nC3 * (nC3 - 1) / 2
)

// epsFromU2 reparametrizes u² = μ·e′² into Karney's eps = u²/(2(1+√(1+u²))+u²)
// before evaluating any series. This division-free-looking substitution is
// what keeps the rational polynomials below accurate for very oblate
// ellipsoids; it is an evaluation detail of tauScale/tauCoeff/sigCoeff, not a
// change to the quantity (u²) the rest of the engine passes around.
func epsFromU2(u2 float64) float64 {
	t := math.Sqrt(1 + u2)
	return u2 / (2*(1+t) + u2)
}

// tauScale returns the scalar relating ellipsoidal distance to spherical arc
// length on the auxiliary sphere: s = b·tauScale(u²)·σ (to series order).
func tauScale(u2 float64) float64 {
	return tauScaleEps(epsFromU2(u2))
}

func tauScaleEps(eps float64) float64 {
	eps2 := eps * eps
	t := eps2 * (eps2*(eps2*(25*eps2+64)+256) + 4096) / 16384
	a1m1 := (t + eps) / (1 - eps)
	return 1 + a1m1
}

// tauCoeff fills c[1..nC1] with the coefficients of the sine series mapping
// σ to τ: τ = σ + Σ c[k]·sin(2kσ). c must have length nC1+1; c[0] is unused
// (kept so SinSeries's 1-based indexing lines up with the Clenshaw loop).
func tauCoeff(u2 float64, c []float64) {
	tauCoeffEps(epsFromU2(u2), c)
}

func tauCoeffEps(eps float64, c []float64) {
	eps2 := eps * eps
	d := eps
	c[1] = d * (eps2*(eps2*(19*eps2-64)+384) - 1024) / 2048
	d *= eps
	c[2] = d * (eps2*(eps2*(7*eps2-18)+128) - 256) / 4096
	d *= eps
	c[3] = d * ((72-9*eps2)*eps2 - 128) / 6144
	d *= eps
	c[4] = d * ((96-11*eps2)*eps2 - 160) / 16384
	d *= eps
	c[5] = d * (35*eps2 - 56) / 10240
	d *= eps
	c[6] = d * (9*eps2 - 14) / 4096
	d *= eps
	c[7] = -33 * d / 14336
	d *= eps
	c[8] = -429 * d / 262144
}

// sigCoeff fills d[1..nC1p] with the reversion coefficients mapping τ back to
// σ: σ = τ + Σ d[k]·sin(2kτ). d must have length nC1p+1.
func sigCoeff(u2 float64, d []float64) {
	eps := epsFromU2(u2)
	eps2 := eps * eps
	e := eps
	d[1] = e * (eps2*((9840-4879*eps2)*eps2-20736) + 36864) / 73728
	e *= eps
	d[2] = e * (eps2*((120150-86171*eps2)*eps2-142080) + 115200) / 368640
	e *= eps
	d[3] = e * (eps2*(8703*eps2-7200) + 3712) / 12288
	e *= eps
	d[4] = e * (eps2*(1082857*eps2-688608) + 258720) / 737280
	e *= eps
	d[5] = e * (41604 - 141115*eps2) / 92160
	e *= eps
	d[6] = e * (533134 - 2200311*eps2) / 860160
	e *= eps
	d[7] = 459485 * e / 516096
	e *= eps
	d[8] = 109167851 * e / 82575360
}

// reducedLengthCoeff fills c[1..nC2] with the series used (internally, by
// the Newton derivative in the inverse solver) for the reduced length m12;
// spec.md does not name this series directly but the analytic derivative
// dχ12/dα1 it describes ("a term arising from the integral form") is exactly
// this quantity — see lengths and lambda12 in geodesic_inverse.go.
func reducedLengthCoeff(u2 float64, c []float64) {
	reducedLengthCoeffEps(epsFromU2(u2), c)
}

func reducedLengthCoeffEps(eps float64, c []float64) {
	eps2 := eps * eps
	d := eps
	c[1] = d * (eps2*(eps2*(41*eps2+64)+128) + 1024) / 2048
	d *= eps
	c[2] = d * (eps2*(eps2*(47*eps2+70)+128) + 768) / 4096
	d *= eps
	c[3] = d * (eps2*(69*eps2+120) + 640) / 6144
	d *= eps
	c[4] = d * (eps2*(133*eps2+224) + 1120) / 16384
	d *= eps
	c[5] = d * (105*eps2 + 504) / 10240
	d *= eps
	c[6] = d * (33*eps2 + 154) / 4096
	d *= eps
	c[7] = 429 * d / 14336
	d *= eps
	c[8] = 6435 * d / 262144
}

func reducedLengthScale(u2 float64) float64 {
	return reducedLengthScaleEps(epsFromU2(u2))
}

func reducedLengthScaleEps(eps float64) float64 {
	eps2 := eps * eps
	t := eps2 * (eps2*(eps2*(1225*eps2+1600)+2304) + 4096) / 16384
	return t*(1-eps) - eps
}

// newA3x computes the ellipsoid-level coefficients of dlamScale's series in
// eps, as a polynomial in the third flattening n = f/(2-f). Computed once per
// Geodesic and reused by every GeodesicLine/Inverse call on that ellipsoid.
func newA3x(n float64) [nA3]float64 {
	var x [nA3]float64
	x[0] = 1
	x[1] = (n - 1) / 2
	x[2] = (n*(3*n-1) - 2) / 8
	x[3] = (n*(n*(5*n-1)-3) - 1) / 16
	x[4] = (n*((-5*n-20)*n-4) - 6) / 128
	x[5] = ((-5*n-10)*n - 6) / 256
	x[6] = (-15*n - 20) / 1024
	x[7] = -25.0 / 2048
	return x
}

// newC3x computes the ellipsoid-level coefficients of dlamCoeff's series in
// eps, again as a polynomial in n.
func newC3x(n float64) [nC3x]float64 {
	var x [nC3x]float64
	x[0] = (1 - n) / 4
	x[1] = (1 - n*n) / 8
	x[2] = (n*((-5*n-1)*n+3) + 3) / 64
	x[3] = (n*((2-2*n)*n+2) + 5) / 128
	x[4] = (n*(3*n+11) + 12) / 512
	x[5] = (10*n + 21) / 1024
	x[6] = 243.0 / 16384
	x[7] = ((n-3)*n + 2) / 32
	x[8] = (n*(n*(2*n-3)-2) + 3) / 64
	x[9] = (n*((-6*n-9)*n+2) + 6) / 256
	x[10] = ((1-2*n)*n + 5) / 256
	x[11] = (69*n + 108) / 8192
	x[12] = 187.0 / 16384
	x[13] = (n*((5-n)*n-9) + 5) / 192
	x[14] = (n*(n*(10*n-6)-10) + 9) / 384
	x[15] = ((-77*n-8)*n + 42) / 3072
	x[16] = (12 - n) / 1024
	x[17] = 139.0 / 16384
	x[18] = (n*((20-7*n)*n-28) + 14) / 1024
	x[19] = ((-7*n-40)*n + 28) / 2048
	x[20] = (72 - 43*n) / 8192
	x[21] = 127.0 / 16384
	x[22] = (n*(75*n-90) + 42) / 5120
	x[23] = (9 - 15*n) / 1024
	x[24] = 99.0 / 16384
	x[25] = (44 - 99*n) / 8192
	x[26] = 99.0 / 16384
	x[27] = 429.0 / 114688
	return x
}

// dlamScale evaluates dλScale(f, μ) = -f·A3 given the ellipsoid-level a3x
// table, the flattening f, and μ = cos²α₀ (folded into eps via ep2). The
// sin α₀ factor is not included; callers multiply by it.
func (g *Geodesic) dlamScale(mu float64) float64 {
	k2 := mu * g.ep2
	eps := epsFromU2(k2)
	var v float64
	for i := nA3 - 1; i >= 0; i-- {
		v = eps*v + g.a3x[i]
	}
	return -g.f * v
}

// dlamCoeff fills e[1..nC3-1] with the longitude-correction sine series
// coefficients for the given μ = cos²α₀.
func (g *Geodesic) dlamCoeff(mu float64, e []float64) {
	k2 := mu * g.ep2
	eps := epsFromU2(k2)
	j, k := nC3x, nC3-1
	for ; k > 0; k-- {
		var t float64
		for i := nC3 - k; i > 0; i-- {
			j--
			t = eps*t + g.c3x[j]
		}
		e[k] = t
	}
	mult := 1.0
	for k := 1; k < nC3; k++ {
		mult *= eps
		e[k] *= mult
	}
}

// SinSeries evaluates Σ_{k=1..n} c[k]·sin(2kx) from sin x, cos x via Clenshaw
// summation (spec.md §4.2). c is 1-indexed (c[0] unused) so callers can pass
// the coefficient slices filled by tauCoeff/sigCoeff/dlamCoeff directly.
func SinSeries(sinx, cosx float64, c []float64, n int) float64 {
	cp := n + 1
	ar := 2 * (cosx - sinx) * (cosx + sinx) // 2*cos(2x)
	var y0, y1 float64
	if n&1 != 0 {
		cp--
		y0 = c[cp]
	}
	for n /= 2; n > 0; n-- {
		cp--
		y1 = ar*y0 - y1 + c[cp]
		cp--
		y0 = ar*y1 - y0 + c[cp]
	}
	return 2 * sinx * cosx * y0
}
