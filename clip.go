package zoiflow

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Clip truncates trajectories regarding zone of interest.
//
// Every part of a trajectory lying inside the zone becomes a tagged fragment of the returned (root) node.
// Trajectories leaving and re-entering the zone are split into several fragments.
func Clip(zone *Zone, trajectories []orb.LineString) (*Node, error) {
	paths := make([]orb.LineString, 0, len(trajectories))
	for i, trajectory := range trajectories {
		if len(trajectory) < 2 {
			return nil, errors.Wrapf(ErrInvalidTrajectory, "Trajectory #%d has %d position(s)", i, len(trajectory))
		}
		clipped, err := clipTrajectory(zone, trajectory)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't clip trajectory #%d", i)
		}
		paths = append(paths, clipped...)
	}
	fragments := make([]Fragment, 0, len(paths))
	for _, path := range paths {
		fragment, err := TagFragment(path, zone)
		if err != nil {
			return nil, errors.Wrap(err, "Can't tag fragment")
		}
		fragments = append(fragments, fragment)
	}
	return &Node{
		zone:      zone,
		fragments: fragments,
	}, nil
}

// clipTrajectory returns parts of the trajectory included in the zone
func clipTrajectory(zone *Zone, trajectory orb.LineString) ([]orb.LineString, error) {
	inside := make([]bool, len(trajectory))
	for i, pt := range trajectory {
		inside[i] = zone.Contains(pt)
	}
	lastIdx := len(trajectory) - 1

	paths := []orb.LineString{}
	current := orb.LineString{}
	for i, pt := range trajectory {
		switch {
		case inside[i]:
			if i == lastIdx || inside[i+1] {
				current = append(current, pt)
				continue
			}
			// Next position is outside: close current path
			exitPosition, err := IntersectionPosition(zone, pt, trajectory[i+1])
			if err != nil {
				return nil, errors.Wrapf(err, "Can't find exit position after position #%d", i)
			}
			current = append(current, pt, exitPosition)
			paths = append(paths, current)
			current = orb.LineString{}
		case i == lastIdx:
			continue
		case inside[i+1]:
			// Trajectory (re-)enters the zone
			entrancePosition, err := IntersectionPosition(zone, trajectory[i+1], pt)
			if err != nil {
				return nil, errors.Wrapf(err, "Can't find entrance position after position #%d", i)
			}
			current = append(current, entrancePosition)
		default:
			// Both positions are outside, but segment may pass through the zone
			crossings := PolygonIntersections(pt, trajectory[i+1], zone)
			if len(crossings) != 2 {
				continue
			}
			distance1 := lengthAlong(trajectory, i, crossings[0])
			distance2 := lengthAlong(trajectory, i, crossings[1])
			if distance1 < distance2 {
				paths = append(paths, orb.LineString{crossings[0], crossings[1]})
			} else {
				paths = append(paths, orb.LineString{crossings[1], crossings[0]})
			}
		}
	}
	if len(current) != 0 {
		paths = append(paths, current)
	}
	return paths, nil
}

// TagFragment marks the path with entrance/exit flags regarding zone of interest.
//
// All path positions must be included in the zone. Returned fragment owns a copy of the path
func TagFragment(path orb.LineString, zone *Zone) (Fragment, error) {
	if len(path) == 0 {
		return Fragment{}, errors.Wrap(ErrInvalidTrajectory, "Empty path")
	}
	for i, pt := range path {
		if !zone.Contains(pt) {
			return Fragment{}, errors.Wrapf(ErrOutOfZoneFragment, "All fragment positions must be included in the zone of interest (position #%d is not)", i)
		}
	}
	return Fragment{
		Path:            path.Clone(),
		HasZoneEntrance: zone.IsOnBoundary(path[0]),
		HasZoneExit:     zone.IsOnBoundary(path[len(path)-1]),
	}, nil
}

// IntersectionPosition returns the position where segment [insidePosition, outsidePosition] crosses zone boundaries.
//
// Exactly one of the positions must be included in the zone. The zone must be "simple" regarding the segment:
// after removing positions which are segment endpoints themselves, exactly one intersection must remain
func IntersectionPosition(zone *Zone, insidePosition, outsidePosition orb.Point) (orb.Point, error) {
	insideIn := zone.Contains(insidePosition)
	outsideIn := zone.Contains(outsidePosition)
	if insideIn && outsideIn {
		return orb.Point{}, errors.Wrap(ErrInvalidPositionPair, "Both positions must not be located inside the zone of interest")
	}
	if !insideIn && !outsideIn {
		return orb.Point{}, errors.Wrap(ErrInvalidPositionPair, "Both positions must not be located outside the zone of interest")
	}

	crossings := PolygonIntersections(insidePosition, outsidePosition, zone)
	// Endpoints lying on boundaries are not real crossings
	if len(crossings) > 1 {
		if zone.IsOnBoundary(outsidePosition) {
			crossings = removePoint(crossings, outsidePosition)
		}
		if zone.IsOnBoundary(insidePosition) {
			crossings = removePoint(crossings, insidePosition)
		}
	}
	if len(crossings) != 1 {
		return orb.Point{}, errors.Wrapf(ErrAmbiguousIntersection, "Segment between input positions must intersect zone of interest only once (%d intersections found)", len(crossings))
	}
	return crossings[0], nil
}

// PolygonIntersections returns intersections between segment [firstPosition, secondPosition] and zone edges.
//
// Duplicates (e.g. segment crossing a vertex shared by two edges) are collapsed
func PolygonIntersections(firstPosition, secondPosition orb.Point, zone *Zone) []orb.Point {
	found := make([]orb.Point, 0, 2)
	for _, boundary := range zone.Boundaries() {
		if pt, ok := segmentIntersection(firstPosition, secondPosition, boundary[0], boundary[1]); ok {
			found = append(found, pt)
		}
	}
	crossings := make([]orb.Point, 0, len(found))
	for i, pt := range found {
		if !containsPoint(found[i+1:], pt) {
			crossings = append(crossings, pt)
		}
	}
	return crossings
}

// removePoint removes first occurrence of pt. Input slice is not modified
func removePoint(pts []orb.Point, pt orb.Point) []orb.Point {
	for i := range pts {
		if pts[i].Equal(pt) {
			result := make([]orb.Point, 0, len(pts)-1)
			result = append(result, pts[:i]...)
			return append(result, pts[i+1:]...)
		}
	}
	return pts
}
