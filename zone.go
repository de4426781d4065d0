package zoiflow

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// Zone is a zone of interest: simple polygon without holes.
//
// Zone is immutable once constructed. Boundaries and vertices are evaluated once.
type Zone struct {
	polygon    orb.Polygon
	boundaries []orb.LineString
	vertices   []orb.Point
}

// NewZone returns zone of interest for given ring
//
// Ring is closed if it is not. At least three distinct vertices are required
func NewZone(ring orb.Ring) (*Zone, error) {
	if len(ring) == 0 {
		return nil, errors.Wrap(ErrInvalidZone, "Empty ring")
	}
	for _, pt := range ring {
		if math.IsNaN(pt[0]) || math.IsNaN(pt[1]) || math.IsInf(pt[0], 0) || math.IsInf(pt[1], 0) {
			return nil, errors.Wrapf(ErrInvalidZone, "Non-finite coordinates %v", pt)
		}
	}
	closed := make(orb.Ring, len(ring), len(ring)+1)
	copy(closed, ring)
	if !closed.Closed() {
		closed = append(closed, closed[0])
	}
	if len(closed) < 4 {
		return nil, errors.Wrapf(ErrInvalidZone, "Ring must have at least 3 vertices (got %d)", len(closed)-1)
	}
	distinct := make([]orb.Point, 0, len(closed)-1)
	for _, pt := range closed[:len(closed)-1] {
		if !containsPoint(distinct, pt) {
			distinct = append(distinct, pt)
		}
	}
	if len(distinct) < 3 {
		return nil, errors.Wrapf(ErrInvalidZone, "Ring must have at least 3 distinct vertices (got %d)", len(distinct))
	}
	zone := &Zone{
		polygon:    orb.Polygon{closed},
		boundaries: make([]orb.LineString, 0, len(closed)-1),
		vertices:   make([]orb.Point, 0, len(closed)-1),
	}
	for i := 0; i < len(closed)-1; i++ {
		zone.boundaries = append(zone.boundaries, orb.LineString{closed[i], closed[i+1]})
		zone.vertices = append(zone.vertices, closed[i])
	}
	return zone, nil
}

// NewZoneFromBound returns rectangular zone for given bound
func NewZoneFromBound(bound orb.Bound) (*Zone, error) {
	return NewZone(bound.ToRing())
}

// Polygon returns copy of zone polygon
func (zone *Zone) Polygon() orb.Polygon {
	return zone.polygon.Clone()
}

// Ring returns copy of zone outer ring (closed)
func (zone *Zone) Ring() orb.Ring {
	return zone.polygon[0].Clone()
}

// Boundaries returns zone edges as two-points lines. Closing vertex is not duplicated
func (zone *Zone) Boundaries() []orb.LineString {
	return zone.boundaries
}

// Vertices returns distinct vertices of zone
func (zone *Zone) Vertices() []orb.Point {
	return zone.vertices
}

// Bound returns bounding box of zone
func (zone *Zone) Bound() orb.Bound {
	return zone.polygon.Bound()
}

// Area returns planar area of zone (in squared coordinates units)
func (zone *Zone) Area() float64 {
	return planar.Area(zone.polygon)
}

// IsOnBoundary tells if position lies on one of zone edges (vertices included)
func (zone *Zone) IsOnBoundary(pt orb.Point) bool {
	for _, boundary := range zone.boundaries {
		if pointOnSegment(pt, boundary[0], boundary[1]) {
			return true
		}
	}
	return false
}

// IsVertex tells if position is equal to one of zone vertices
func (zone *Zone) IsVertex(pt orb.Point) bool {
	for _, vertex := range zone.vertices {
		if vertex.Equal(pt) {
			return true
		}
	}
	return false
}

// Contains tells if position is inside zone or on its boundaries.
//
// Point-in-polygon test alone may reject some positions lying on edges
// (intersections evaluated with floating point), so boundaries are checked first.
func (zone *Zone) Contains(pt orb.Point) bool {
	return zone.IsOnBoundary(pt) || planar.PolygonContains(zone.polygon, pt)
}
