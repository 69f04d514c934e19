package geod

// Pure Go re-implementation of https://github.com/chrisveness/geodesy

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

/**
 * Library of geodesy functions for operations on a spherical earth model.
 *
 * Includes distances, bearings, destinations, etc, for great circle paths,
 * and other related functions.
 *
 * All calculations are done using simple spherical trigonometric formulae.
 */

import (
	"math"
	"sync"
)

// LatLonSpherical represents a point used for calculations using a spherical Earth model, along great circles
type LatLonSpherical struct {
	ll LatLon
}

// SphericalModel returns a `EarthModel` that wraps geodesy calculations using spherical Earth model along great circles
func SphericalModel(ll LatLon, modelArgs ...interface{}) EarthModel {
	if len(modelArgs) != 0 {
		panic("Invalid number of arguments in call to SphericalModel()")
	}
	return LatLonSpherical{ll: ll}
}

// LatLon converts LatLonSpherical to LatLon
func (lls LatLonSpherical) LatLon() LatLon {
	return lls.ll
}

var earthRadius float64 = 6371000 // metres

// SetEarthRadius can be used to [globally] change the value of Earth's radius (in metres) used
// for spherical Earth calculations (includes rhumb). Default is 6371000m
func SetEarthRadius(r float64) {
	if math.IsNaN(r) {
		panic("Invalid Earth radius specified: NaN")
	}
	if r <= 0 {
		panic("Invalid Earth radius specified, must be positive")
	}
	earthRadius = r
}

// NewLatLonSpherical creates a new LatLonSpherical struct
func NewLatLonSpherical(latitude, longitude float64) LatLonSpherical {
	return LatLonSpherical{
		ll: LatLon{
			Latitude:  Wrap90(Degrees(latitude)),
			Longitude: Wrap180(Degrees(longitude)),
		},
	}
}

// ParseLatLonSpherical parses a latitude/longitude point from a variety of formats
// See ParseLatLon for details.
func ParseLatLonSpherical(args ...interface{}) (LatLonSpherical, error) {
	ll, err := ParseLatLon(args)
	if err != nil {
		return LatLonSpherical{}, err
	}
	return LatLonSpherical{ll: ll}, nil
}

// DistanceTo returns the distance along the surface of the earth from `lls` to `dest`.
//
// Uses haversine formula: a = sin²(Δphi/2) + cos phi1·cos phi2 · sin²(Δlambda/2); d = 2·R·atan2(√a, √(1-a)).
// Use SetEarthRadius() to change the default value.
//
// Argument:
//
// dest  - destination point
//
// Returns the `Distance` between this point and destination point in DistanceUnits
//
// Examples:
// p1 := geod.NewLatLonSpherical(52.205, 0.119)
// p2 := geod.LatLon{48.857, 2.351}
// d := p1.DistanceTo(p2).Metres()       // 404.3x10^3 m
// geod.SetEarthRadius(3959)              // radius in miles
// m := p1.DistanceTo(p2).Metres()        // 251.2 (miles, the unit of the radius)
func (lls LatLonSpherical) DistanceTo(dest LatLon) DistanceUnits {
	// see mathforum.org/library/drmath/view/51879.html for derivation

	r := earthRadius
	phi1 := lls.ll.Latitude.Radians()
	phi2 := dest.Latitude.Radians()
	dphi := phi2 - phi1
	dlam := (dest.Longitude - lls.ll.Longitude).Radians()

	a := math.Sin(dphi/2)*math.Sin(dphi/2) + math.Cos(phi1)*math.Cos(phi2)*math.Sin(dlam/2)*math.Sin(dlam/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	d := r * c

	return DistanceUnits(d)
}

// InitialBearingTo returns the initial bearing from `lls` to `dest`.
//
// Argument:
//
// dest  - destination point
//
// Returns the initial bearing in `Degrees` from North (0°..360°)
//
// Example:
// p1 := geod.NewLatLonSpherical(52.205, 0.119)
// p2 := geod.LatLon{48.857, 2.351}
// b1 := p1.InitialBearingTo(p2)    // 156.2°
func (lls LatLonSpherical) InitialBearingTo(dest LatLon) Degrees {
	if lls.ll.Equals(dest) {
		return Degrees(math.NaN())
	}

	// see mathforum.org/library/drmath/view/55417.html for derivation

	phi1 := lls.ll.Latitude.Radians()
	phi2 := dest.Latitude.Radians()
	dlam := (dest.Longitude - lls.ll.Longitude).Radians()

	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dlam)
	y := math.Sin(dlam) * math.Cos(phi2)
	theta := math.Atan2(y, x)

	bearing := DegreesFromRadians(theta)

	return Wrap360(bearing)
}

// FinalBearingOn returns the final bearing arriving at `dest` from `lls`; the final bearing will
// differ from the initial bearing by varying degrees according to distance and latitude.
//
// Argument:
//
// dest  - destination point
//
// Returns the final bearing in `Degrees` from North (0°..360°)
//
// Example:
// p1 := geod.NewLatLonSpherical(52.205, 0.119)
// p2 := geod.LatLon{48.857, 2.351}
// b1 := p1.FinalBearingOn(p2)    // 157.9°
func (lls LatLonSpherical) FinalBearingOn(dest LatLon) Degrees {
	// get initial bearing from destination point to this point & reverse it by adding 180 degrees
	bearing := LatLonSpherical{ll: dest}.InitialBearingTo(lls.ll) + 180

	return Wrap360(bearing)
}

// MidPointTo returns the midpoint between `lls` and `dest`
//
// Argument:
//
// dest  - destination point
//
// Returns the middle point
//
// Example:
// p1 := geod.NewLatLonSpherical(52.205, 0.119)
// p2 := geod.LatLon{48.857, 2.351}
// pMid := p1.MidPointTo(p2)    // 50.5363°N, 001.2746°E
func (lls LatLonSpherical) MidPointTo(dest LatLon) LatLon {
	// midpoint is sum of vectors to two points: mathforum.org/library/drmath/view/51822.html

	phi1 := lls.ll.Latitude.Radians()
	lam1 := lls.ll.Longitude.Radians()
	phi2 := dest.Latitude.Radians()
	dlam := (dest.Longitude - lls.ll.Longitude).Radians()

	// get cartesian coordinates for the two points
	a := Cartesian{X: math.Cos(phi1), Y: 0, Z: math.Sin(phi1)} // place point A on prime meridian y=0
	b := Cartesian{X: math.Cos(phi2) * math.Cos(dlam), Y: math.Cos(phi2) * math.Sin(dlam), Z: math.Sin(phi2)}

	// vector to midpoint is sum of vectors to two points (no need to normalise)
	c := Cartesian{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}

	phiM := math.Atan2(c.Z, math.Sqrt(c.X*c.X+c.Y*c.Y))
	lamM := lam1 + math.Atan2(c.Y, c.X)

	lat := DegreesFromRadians(phiM)
	lon := DegreesFromRadians(lamM)

	return LatLon{Latitude: Wrap90(lat), Longitude: Wrap180(lon)}
}

// IntermediatePointTo returns the point at the given fraction between `lls` and `dest`.
//
// Arguments:
//
// dest  - destination point
// fraction - Fraction between the two points (0 = `lls`, 1 = `dest`)
//
// Returns the intermediate point.
//
// Example:
// p1 := geod.NewLatLonSpherical(52.205, 0.119)
// p2 := geod.LatLon{48.857, 2.351}
// pInt := p1.IntermediatePointTo(p2, 0.25)    // 51.3721°N, 000.7073°E
func (lls LatLonSpherical) IntermediatePointTo(dest LatLon, fraction float64) LatLon {
	if lls.ll.Equals(dest) {
		return lls.ll
	}

	phi1 := lls.ll.Latitude.Radians()
	lam1 := lls.ll.Longitude.Radians()
	phi2 := dest.Latitude.Radians()
	lam2 := dest.Longitude.Radians()

	// distance between points
	dphi := phi2 - phi1
	dlam := lam2 - lam1
	a := math.Sin(dphi/2)*math.Sin(dphi/2) + math.Cos(phi1)*math.Cos(phi2)*math.Sin(dlam/2)*math.Sin(dlam/2)
	delta := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	A := math.Sin((1-fraction)*delta) / math.Sin(delta)
	B := math.Sin(fraction*delta) / math.Sin(delta)

	x := A*math.Cos(phi1)*math.Cos(lam1) + B*math.Cos(phi2)*math.Cos(lam2)
	y := A*math.Cos(phi1)*math.Sin(lam1) + B*math.Cos(phi2)*math.Sin(lam2)
	z := A*math.Sin(phi1) + B*math.Sin(phi2)

	phi3 := math.Atan2(z, math.Sqrt(x*x+y*y))
	lam3 := math.Atan2(y, x)

	lat := DegreesFromRadians(phi3)
	lon := DegreesFromRadians(lam3)

	return LatLon{Latitude: Wrap90(lat), Longitude: Wrap180(lon)}
}

// IntermediatePointsTo returns the points at the given fractions between `lls` and `dest`.
//
// Arguments:
//
// dest  - destination point
// fraction - Slice of fractions between the two points (0 = `lls`, 1 = `dest`)
//
// Returns an intermediate point for each fraction
//
// Example:
// p1 := geod.NewLatLonSpherical(52.205, 0.119)
// p2 := geod.LatLon{48.857, 2.351}
// pInt := p1.IntermediatePointsTo(p2, []float64{0.25, 0.5, 0.75})
func (lls LatLonSpherical) IntermediatePointsTo(dest LatLon, fractions []float64) []LatLon {
	waitGroup := &sync.WaitGroup{}

	points := make([]LatLon, len(fractions))
	for i, fraction := range fractions {
		waitGroup.Add(1)
		go func(i int, fraction float64) {
			points[i] = lls.IntermediatePointTo(dest, fraction)
			waitGroup.Done()
		}(i, fraction)
	}

	// wait for all goroutines to finish
	waitGroup.Wait()

	return points
}

// DestinationPoint returns the destination point from `lls` having travelled the given distance on the
// given initial bearing (bearing normally varies around path followed).
//
// Arguments:
//
// distance - Distance travelled in metres
// bearing - Initial bearing in `Degrees` from North
//
// Returns the destination point.
//
// Example:
// p1 := geod.NewLatLonSpherical(51.47788, -0.00147)
// p2 := p1.DestinationPoint(7794, geod.Degrees(300.7)) // 51.5136°N, 000.0983°W
func (lls LatLonSpherical) DestinationPoint(distance float64, bearing Degrees) LatLon {
	// see mathforum.org/library/drmath/view/52049.html for derivation

	delta := distance / earthRadius // angular distance in radians
	theta := bearing.Radians()

	phi1 := lls.ll.Latitude.Radians()
	lam1 := lls.ll.Longitude.Radians()

	sinPhi2 := math.Sin(phi1)*math.Cos(delta) + math.Cos(phi1)*math.Sin(delta)*math.Cos(theta)
	phi2 := math.Asin(sinPhi2)
	y := math.Sin(theta) * math.Sin(delta) * math.Cos(phi1)
	x := math.Cos(delta) - math.Sin(phi1)*sinPhi2
	lam2 := lam1 + math.Atan2(y, x)

	lat := DegreesFromRadians(phi2)
	lon := DegreesFromRadians(lam2)

	return LatLon{Latitude: Wrap90(lat), Longitude: Wrap180(lon)}
}

// Intersection returns the point of intersection of two paths defined by point and bearing.
//
// Arguments:
//
// bearing1 - Initial bearing in `Degrees` from North from `lls`
// lls2 - Second point
// bearing2 - Initial bearing in `Degrees` from North from `lls2`
//
// Returns the point of intersection of the 2 paths.
// If the intersection point cannot be calculated (e.g. infinite intersections) the returned point
// has NaN as Latitude and Longitude.
//
// Example:
// p1 := geod.NewLatLonSpherical(51.8853, 0.2545)
// brng1 := geod.Degrees(108.547)
// p2 := geod.LatLon{49.0034, 2.5735}
// brng2 := geod.Degrees(32.435)
// pInt := p1.Intersection(brng1, p2, brng2) // 50.9078°N, 004.5084°E
func (lls LatLonSpherical) Intersection(bearing1 Degrees, ll2 LatLon, bearing2 Degrees) LatLon {
	const pi = math.Pi
	eps := math.Nextafter(1, 2) - 1

	// see www.edwilliams.org/avform.htm#Intersection

	phi1 := lls.ll.Latitude.Radians()
	lam1 := lls.ll.Longitude.Radians()
	phi2 := ll2.Latitude.Radians()
	lam2 := ll2.Longitude.Radians()
	theta13 := bearing1.Radians()
	theta23 := bearing2.Radians()
	dphi := phi2 - phi1
	dlam := lam2 - lam1

	// angular distance p1-p2
	delta12 := 2 * math.Asin(math.Sqrt(math.Sin(dphi/2)*math.Sin(dphi/2)+
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dlam/2)*math.Sin(dlam/2)))
	if math.Abs(delta12) < eps {
		return lls.ll // coincident points
	}

	// initial/final bearings between points
	cosThetaA := (math.Sin(phi2) - math.Sin(phi1)*math.Cos(delta12)) / (math.Sin(delta12) * math.Cos(phi1))
	cosThetaB := (math.Sin(phi1) - math.Sin(phi2)*math.Cos(delta12)) / (math.Sin(delta12) * math.Cos(phi2))
	thetaA := math.Acos(math.Min(math.Max(cosThetaA, -1), 1)) // protect against rounding errors
	thetaB := math.Acos(math.Min(math.Max(cosThetaB, -1), 1)) // protect against rounding errors

	theta12 := thetaA
	if math.Sin(lam2-lam1) <= 0 {
		theta12 = 2*pi - thetaA
	}
	theta21 := thetaB
	if math.Sin(lam2-lam1) > 0 {
		theta21 = 2*pi - thetaB
	}

	alpha1 := theta13 - theta12 // angle 2-1-3
	alpha2 := theta21 - theta23 // angle 1-2-3

	if math.Sin(alpha1) == 0 && math.Sin(alpha2) == 0 {
		return LatLon{Latitude: Degrees(math.NaN()), Longitude: Degrees(math.NaN())} // infinite intersections
	}
	if math.Sin(alpha1)*math.Sin(alpha2) < 0 {
		return LatLon{Latitude: Degrees(math.NaN()), Longitude: Degrees(math.NaN())} // ambiguous intersection (antipodal?)
	}

	cosAlpha3 := -math.Cos(alpha1)*math.Cos(alpha2) + math.Sin(alpha1)*math.Sin(alpha2)*math.Cos(delta12)

	delta13 := math.Atan2(math.Sin(delta12)*math.Sin(alpha1)*math.Sin(alpha2), math.Cos(alpha2)+math.Cos(alpha1)*cosAlpha3)

	phi3 := math.Asin(math.Min(math.Max(math.Sin(phi1)*math.Cos(delta13)+math.Cos(phi1)*math.Sin(delta13)*math.Cos(theta13), -1), 1))

	dlam13 := math.Atan2(math.Sin(theta13)*math.Sin(delta13)*math.Cos(phi1), math.Cos(delta13)-math.Sin(phi1)*math.Sin(phi3))
	lam3 := lam1 + dlam13

	lat := DegreesFromRadians(phi3)
	lon := DegreesFromRadians(lam3)

	return LatLon{Latitude: Wrap90(lat), Longitude: Wrap180(lon)}
}
