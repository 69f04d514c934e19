package geod

// Pure Go re-implementation of https://github.com/chrisveness/geodesy, extended
// with the ellipsoidal geodesic engine described by Karney's "Algorithms for
// geodesics" (J Geod 87, 2013), following the structure of GeographicLib.

import (
	"math"
	"sync"

	"github.com/starboard-nz/units"
)

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

/**
 * Distances & bearings between points, and destination points given start points & initial bearings,
 * calculated on an ellipsoidal earth model using Karney's algorithms for geodesics, as implemented by
 * GeographicLib. Supersedes the older Vincenty formulae: Karney's Newton iteration converges for every
 * pair of points, including near-antipodal ones where Vincenty's fixed-point iteration can fail.
 *
 * From: C F F Karney, "Algorithms for geodesics", J Geod 87, 2013. doi.org/10.1007/s00190-012-0578-z
 */

// LatLonEllipsoidalKarney represents a point used for calculations using Karney's geodesic algorithms,
// on an ellipsoidal Earth model.
type LatLonEllipsoidalKarney struct {
	ll        LatLon
	ellipsoid Ellipsoid
}

// KarneyModel returns a `EarthModel` that wraps geodesy calculations using Karney's geodesic algorithms
// on an ellipsoidal Earth model
func KarneyModel(ll LatLon, modelArgs ...interface{}) EarthModel {
	ellipsoid := WGS84()
	if len(modelArgs) != 0 {
		if len(modelArgs) > 1 {
			panic("Invalid number of arguments in call to KarneyModel()")
		}
		switch v := modelArgs[0].(type) {
		case Ellipsoid:
			ellipsoid = v
		case func() Ellipsoid:
			ellipsoid = v()
		default:
			panic("Invalid argument type in call to KarneyModel()")
		}
	}
	return LatLonEllipsoidalKarney{ll: ll, ellipsoid: ellipsoid}
}

// LatLon converts LatLonEllipsoidalKarney to LatLon
func (llk LatLonEllipsoidalKarney) LatLon() LatLon {
	return llk.ll
}

// NewLatLonEllipsodialKarney creates a new LatLonEllipsoidalKarney struct
func NewLatLonEllipsodialKarney(latitude, longitude float64, ellipsoid Ellipsoid) LatLonEllipsoidalKarney {
	return LatLonEllipsoidalKarney{
		ll: LatLon{
			Latitude:  Wrap90(Degrees(latitude)),
			Longitude: Wrap180(Degrees(longitude)),
		},
		ellipsoid: ellipsoid,
	}
}

// geodesic builds the Karney Geodesic engine for llk's ellipsoid. WGS84 reuses
// the package's shared instance built at package init; any other ellipsoid pays
// the one-time series-coefficient setup cost per call (cheap relative to a
// single Inverse solve's Newton iteration).
func (llk LatLonEllipsoidalKarney) geodesic() Geodesic {
	if llk.ellipsoid == WGS84() {
		return WGS84Geodesic()
	}
	g, err := NewGeodesic(llk.ellipsoid.a, llk.ellipsoid.a/(llk.ellipsoid.a-llk.ellipsoid.b))
	if err != nil {
		// llk.ellipsoid was built through WGS84()/Ellipsoid{...} literals
		// elsewhere in this package, which always yield a > 0 and finite f.
		panic(err)
	}
	return g
}

// KarneyDirect - Karney direct calculation - calculates the destination point and final bearing given the
// starting point, distance and initial bearing.
//
// Arguments
//
// distance - Distance along bearing in metres
// initialBearing - Initial bearing in degrees from North
//
// Returns (destination, finalBearing)
func (llk LatLonEllipsoidalKarney) KarneyDirect(distance float64, initialBearing Degrees) (LatLon, Degrees) {
	lat2, lon2, azi2, err := llk.geodesic().Direct(
		float64(llk.ll.Latitude), float64(llk.ll.Longitude), float64(initialBearing), distance)
	if err != nil {
		return LatLon{Latitude: Degrees(math.NaN()), Longitude: Degrees(math.NaN())}, Degrees(math.NaN())
	}

	destinationPoint := LatLon{Latitude: Wrap90(Degrees(lat2)), Longitude: Wrap180(Degrees(lon2))}
	finalBearing := Wrap360(Degrees(azi2))

	return destinationPoint, finalBearing
}

// KarneyInverse - Karney inverse calculation. Calculates the distance, initial and final bearing going
// from point `llk` to `dest`, using Karney's geodesic algorithms.
//
// Arguments:
//
// dest - destination point
//
// Returns (distance from `llk` to `dest`, initial bearing in degrees from North, final bearing in degrees from North)
func (llk LatLonEllipsoidalKarney) KarneyInverse(dest LatLon) (units.Distance, Degrees, Degrees) {
	if llk.ll.Equals(dest) {
		return units.Metre(math.NaN()), Degrees(math.NaN()), Degrees(math.NaN())
	}

	s12, azi1, azi2, err := llk.geodesic().Inverse(
		float64(llk.ll.Latitude), float64(llk.ll.Longitude), float64(dest.Latitude), float64(dest.Longitude))
	if err != nil {
		return units.Metre(math.NaN()), Degrees(math.NaN()), Degrees(math.NaN())
	}

	initialBearing := Wrap360(Degrees(azi1))
	finalBearing := Wrap360(Degrees(azi2))

	return units.Metre(s12), initialBearing, finalBearing
}

// DistanceTo returns the distance along the surface of the earth from `llk` to `dest` using Karney's inverse solution
//
// Argument:
//
// dest  - destination point
//
// Returns the `Distance` between this point and destination point in DistanceUnits
//
// Examples:
// p1 := geod.NewLatLonEllipsodialKarney(52.205, 0.119, geod.WGS84())
// p2 := geod.LatLon{48.857, 2.351}
// d := p1.DistanceTo(p2).Metres()             // 404.6×10³ m
// d2, _, _ := p1.KarneyInverse(p2)            // same distance, as units.Distance
func (llk LatLonEllipsoidalKarney) DistanceTo(dest LatLon) DistanceUnits {
	dist, _, _ := llk.KarneyInverse(dest)
	return DistanceUnits(dist.Metre())
}

// InitialBearingTo returns the initial bearing (forward azimuth) to travel along a geodesic from `llk` to `dest`
// using Karney's inverse solution
//
// Arguments:
//
// dest - destination point
//
// Returns the initial bearing in degrees from North (0°..360°) or NaN if failed to converge
//
// Example:
// p1 := geod.NewLatLonEllipsodialKarney(50.06632, -5.71475, geod.WGS84())
// p2 := geod.LatLon{58.64402, -3.07009}
// b1 := p1.InitialBearingTo(p2)    // 9.1419°
func (llk LatLonEllipsoidalKarney) InitialBearingTo(dest LatLon) Degrees {
	_, initialBearing, _ := llk.KarneyInverse(dest)
	return initialBearing
}

// FinalBearingOn returns the final bearing (reverse azimuth) having travelled along a geodesic from `llk` to `dest`
// using Karney's inverse solution
//
// Arguments:
//
// dest - destination point
//
// Returns the final bearing in degrees from North (0°..360°) or NaN if failed to converge
//
// Example:
// p1 := geod.NewLatLonEllipsodialKarney(50.06632, -5.71475, geod.WGS84())
// p2 := geod.LatLon{58.64402, -3.07009}
// b1 := p1.FinalBearingOn(p2)    // 11.2972°
func (llk LatLonEllipsoidalKarney) FinalBearingOn(dest LatLon) Degrees {
	_, _, finalBearing := llk.KarneyInverse(dest)
	return finalBearing
}

// MidPointTo returns the midpoint between `llk` and `dest`.
//
// Argument:
//
// dest  - destination point
//
// Returns the middle point
//
// Example:
// p1 := geod.NewLatLonEllipsodialKarney(52.205, 0.119, geod.WGS84())
// p2 := geod.LatLon{48.857, 2.351}
// pMid := p1.MidPointTo(p2)
func (llk LatLonEllipsoidalKarney) MidPointTo(dest LatLon) LatLon {
	distance, initialBearing, _ := llk.KarneyInverse(dest)
	point, _ := llk.KarneyDirect(float64(distance.Metre()/2), initialBearing)
	return point
}

// IntermediatePointsTo returns the points at the given fractions between `llk` and `dest`.
//
// Arguments:
//
// dest  - destination point
// fraction - Slice of fractions between the two points (0 = `llk`, 1 = `dest`)
//
// Returns an intermediate point for each fraction
//
// Example:
// p1 := geod.NewLatLonEllipsodialKarney(52.205, 0.119, geod.WGS84())
// p2 := geod.LatLon{48.857, 2.351}
// pInt := p1.IntermediatePointsTo(p2, []float64{0.25, 0.5, 0.75})
func (llk LatLonEllipsoidalKarney) IntermediatePointsTo(dest LatLon, fractions []float64) []LatLon {
	waitGroup := &sync.WaitGroup{}

	distance, initialBearing, _ := llk.KarneyInverse(dest)

	points := make([]LatLon, len(fractions))
	for i, fraction := range fractions {
		waitGroup.Add(1)
		go func(i int, fraction float64) {
			points[i], _ = llk.KarneyDirect(float64(distance.Metre())*fraction, initialBearing)
			waitGroup.Done()
		}(i, fraction)
	}

	// wait for all goroutines to finish
	waitGroup.Wait()

	return points
}

// IntermediatePointTo returns the points at the given fraction between `llk` and `dest`.
//
// Arguments:
//
// dest  - destination point
// fraction - Fractions between the two points (0 = `llk`, 1 = `dest`)
//
// Returns the intermediate point.
//
// Example:
// p1 := geod.NewLatLonEllipsodialKarney(52.205, 0.119, geod.WGS84())
// p2 := geod.LatLon{48.857, 2.351}
// pInt := p1.IntermediatePointTo(p2, 0.25)
func (llk LatLonEllipsoidalKarney) IntermediatePointTo(dest LatLon, fraction float64) LatLon {
	distance, initialBearing, _ := llk.KarneyInverse(dest)

	point, _ := llk.KarneyDirect(float64(distance.Metre())*fraction, initialBearing)
	return point
}

// DestinationPoint returns the destination point having travelled the given `distance` along a geodesic given by
// `initialBearing` from `llk`, using Karney's direct solution
//
// Arguments:
//
// distance - Distance travelled along the geodesic in metres
// initialBearing - Initial bearing in degrees from North
//
// Returns the destination point
//
// Example
// p1 := geod.NewLatLonEllipsodialKarney(-37.95103, 144.42487, geod.WGS84())
// p2 := p1.DestinationPoint(54972.271, geod.Degrees(306.86816))    // 37.6528°S, 143.9265°E
func (llk LatLonEllipsoidalKarney) DestinationPoint(distance float64, bearing Degrees) LatLon {
	point, _ := llk.KarneyDirect(distance, bearing)
	return point
}
