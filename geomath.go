package zoiflow

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Tolerance is the maximum distance (in coordinates units) between a position and
// a segment for the position to be considered lying on that segment.
var Tolerance = 1e-10

// paramTolerance is used to snap segment parameters to segment endpoints
const paramTolerance = 1e-12

// segmentIntersection returns intersection point of segments [p1, p2] and [p3, p4]
//
// Parallel (and collinear) segments have no intersection.
// If intersection is close to an endpoint, the endpoint itself is returned: segment [p1, p2] takes precedence.
//
// Note: explicit float64 conversions prevent fused multiply-add, so results are the same on every platform
func segmentIntersection(p1, p2, p3, p4 orb.Point) (orb.Point, bool) {
	x1, y1 := p1[0], p1[1]
	x2, y2 := p2[0], p2[1]
	x3, y3 := p3[0], p3[1]
	x4, y4 := p4[0], p4[1]

	denom := float64((y4-y3)*(x2-x1)) - float64((x4-x3)*(y2-y1))
	if denom == 0 {
		return orb.Point{}, false
	}
	numeA := float64((x4-x3)*(y1-y3)) - float64((y4-y3)*(x1-x3))
	numeB := float64((x2-x1)*(y1-y3)) - float64((y2-y1)*(x1-x3))
	uA := numeA / denom
	uB := numeB / denom
	if uA < -paramTolerance || uA > 1+paramTolerance || uB < -paramTolerance || uB > 1+paramTolerance {
		return orb.Point{}, false
	}

	switch {
	case math.Abs(uA) <= paramTolerance:
		return p1, true
	case math.Abs(uA-1) <= paramTolerance:
		return p2, true
	case math.Abs(uB) <= paramTolerance:
		return p3, true
	case math.Abs(uB-1) <= paramTolerance:
		return p4, true
	}
	return orb.Point{
		x1 + float64(uA*(x2-x1)),
		y1 + float64(uA*(y2-y1)),
	}, true
}

// pointOnSegment tells if pt lies on segment [a, b] (endpoints included), up to Tolerance
func pointOnSegment(pt, a, b orb.Point) bool {
	dxc := pt[0] - a[0]
	dyc := pt[1] - a[1]
	dxl := b[0] - a[0]
	dyl := b[1] - a[1]

	lenSq := float64(dxl*dxl) + float64(dyl*dyl)
	if lenSq == 0 {
		return planar.Distance(pt, a) <= Tolerance
	}
	length := math.Sqrt(lenSq)
	cross := float64(dxc*dyl) - float64(dyc*dxl)
	if math.Abs(cross) > Tolerance*length {
		return false
	}
	dot := float64(dxc*dxl) + float64(dyc*dyl)
	return dot >= -Tolerance*length && dot <= lenSq+Tolerance*length
}

// lengthAlong returns length of the line from its first point to pt,
// pt being located on the segment starting at line[idx]
func lengthAlong(line orb.LineString, idx int, pt orb.Point) float64 {
	total := 0.0
	for i := 1; i <= idx && i < len(line); i++ {
		total += planar.Distance(line[i-1], line[i])
	}
	return total + planar.Distance(line[idx], pt)
}

// containsPoint tells if positions contain given one (exact equality)
func containsPoint(pts []orb.Point, pt orb.Point) bool {
	for _, p := range pts {
		if p.Equal(pt) {
			return true
		}
	}
	return false
}
