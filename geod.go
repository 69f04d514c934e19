package geod

// Pure Go re-implementation of https://github.com/chrisveness/geodesy

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

// EarthModel defines the Earth model used for calculations.
// Currently defined models:
//    geod.SphericalModel  - spherical Earth, along great circles
//    geod.RhumbModel      - spherical Earth, along rhumb lines
//    geod.PlanarModel     - flat-earth approximation, for testing/comparison
//    geod.KarneyModel     - ellipsoidal Earth, Karney's geodesic algorithms
type EarthModel interface {
	DistanceTo(ll LatLon) DistanceUnits
	InitialBearingTo(ll LatLon) Degrees
	FinalBearingOn(ll LatLon) Degrees
	DestinationPoint(distance float64, bearing Degrees) LatLon
	MidPointTo(ll LatLon) LatLon
	IntermediatePointTo(ll LatLon, fraction float64) LatLon
	LatLon() LatLon
}

// ModelFunc is the shape shared by every Earth-model constructor in this
// package (SphericalModel, RhumbModel, PlanarModel, KarneyModel): it anchors
// an EarthModel at ll, with modelArgs carrying model-specific configuration
// (e.g. an alternate Ellipsoid for KarneyModel).
type ModelFunc func(ll LatLon, modelArgs ...interface{}) EarthModel

// MidPoint returns the point halfway between `start` and `end` using the given `model`.
func MidPoint(start, end LatLon, model ModelFunc) LatLon {
	p1 := model(start)
	return p1.MidPointTo(end)
}

// Distance returns the distance in `DistanceUnits` between points `start` and `end` using the given `model`.
func Distance(start, end LatLon, model ModelFunc) DistanceUnits {
	p1 := model(start)
	return p1.DistanceTo(end)
}

// InitialBearing returns the initial bearing going from `start` to `end` using the given `model`.
func InitialBearing(start, end LatLon, model ModelFunc) Degrees {
	p1 := model(start)
	return p1.InitialBearingTo(end)
}

// FinalBearing returns the final bearing going from `start` to `end` using the given `model`.
func FinalBearing(start, end LatLon, model ModelFunc) Degrees {
	p1 := model(start)
	return p1.FinalBearingOn(end)
}

// DestinationPoint returns the destination point going from `start` having travelled `distance` on the given initial bearing,
// using the given `model`.
func DestinationPoint(start LatLon, distance float64, bearing Degrees, model ModelFunc) LatLon {
	p1 := model(start)
	return p1.DestinationPoint(distance, bearing)
}

// IntermediatePoint returns the point at the given fraction between `start` and `end`.
func IntermediatePoint(start, end LatLon, fraction float64, model ModelFunc) LatLon {
	p1 := model(start)
	return p1.IntermediatePointTo(end, fraction)
}
