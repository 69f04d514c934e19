package geod

// Pure Go re-implementation of https://github.com/chrisveness/geodesy, extended
// with the ellipsoidal geodesic engine described by Karney's "Algorithms for
// geodesics" (J Geod 87, 2013), following the structure of GeographicLib.

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

import "fmt"

// DomainError is returned when an input to the geodesic engine is outside
// its domain: non-finite, a latitude with |lat| > 90, or a non-positive
// equatorial radius.
type DomainError struct {
	Field string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("geod: invalid %s: %v", e.Field, e.Value)
}

// ConvergenceError is returned when the inverse solver's damped Newton
// iteration exhausts its iteration budget without reaching tolerance. It
// carries the original inputs verbatim so the failure can be reproduced.
type ConvergenceError struct {
	Lat1, Lon1, Lat2, Lon2 float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("geod: inverse solve did not converge for (%v,%v)-(%v,%v)",
		e.Lat1, e.Lon1, e.Lat2, e.Lon2)
}
