package utils

import (
	"math"

	"github.com/starboard-nz/orb"
)

// Area returns the planar (shoelace-formula) area enclosed by the ring, in the
// same square units as its point coordinates. It does not account for the
// curvature of the earth; no geodesic area function is provided.
func Area(r orb.Ring) float64 {
	if len(r) < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < len(r); i++ {
		j := (i + 1) % len(r)
		sum += r[i][0]*r[j][1] - r[j][0]*r[i][1]
	}

	return math.Abs(sum) / 2
}

// Distance returns the planar (Euclidean) distance between p1 and p2, in the
// same units as their coordinates. It does not account for the curvature of
// the earth - for geodesic distance use geod.Distance with a suitable
// EarthModel instead.
func Distance(p1, p2 orb.Point) float64 {
	dx := p1[0] - p2[0]
	dy := p1[1] - p2[1]

	return math.Sqrt(dx*dx + dy*dy)
}
