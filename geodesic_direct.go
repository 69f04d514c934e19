package geod

/**
 * Copyright (c) 2020, Xerra Earth Observation Institute
 * All rights reserved. Use is subject to License terms.
 * See LICENSE in the root directory of this source tree.
 */

// Direct solves the direct geodesic problem: given a start point, initial
// azimuth, and signed distance s12, returns the end point and the azimuth on
// arrival (spec.md §4.4). It is a thin driver over Line/Position — the whole
// direct solver is exactly one auxiliary-sphere line evaluated once.
func (g Geodesic) Direct(lat1, lon1, azi1, s12 float64) (lat2, lon2, azi2 float64, err error) {
	if !finite(s12) {
		return 0, 0, 0, &DomainError{Field: "s12", Value: s12}
	}
	line, err := g.Line(lat1, lon1, azi1)
	if err != nil {
		return 0, 0, 0, err
	}
	lat2, lon2, azi2 = line.Position(s12)
	return lat2, lon2, azi2, nil
}
