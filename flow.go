package zoiflow

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// BoundaryLocation is the consolidated entrance and exit locations of a zone boundary feature.
// Nil means there is no entrance (exit) through the feature
type BoundaryLocation struct {
	Entrance *orb.Point
	Exit     *orb.Point
}

// AveragePath is a representative segment of fragments having same entrance and exit locations
type AveragePath struct {
	Path   orb.LineString
	Weight int
}

// StrokeWidth returns line width used for drawing average path
func (averagePath AveragePath) StrokeWidth() int {
	return averagePath.Weight * 5
}

// LocateEntrancesExits maps every zone boundary feature (vertex or edge) which is used by fragments
// to its entrance and exit locations.
//
// Vertex location is the vertex itself. Edge location is the centroid of fragment endpoints located on that edge
// (endpoints equal to vertices are not counted for edges)
func LocateEntrancesExits(node *Node) map[BoundaryID]*BoundaryLocation {
	locations := make(map[BoundaryID]*BoundaryLocation)
	zone := node.zone

	for _, vertex := range zone.vertices {
		isEntrance, isExit := false, false
		for _, fragment := range node.fragments {
			if fragment.HasZoneEntrance && fragment.First().Equal(vertex) {
				isEntrance = true
			}
			if fragment.HasZoneExit && fragment.Last().Equal(vertex) {
				isExit = true
			}
		}
		if !isEntrance && !isExit {
			continue
		}
		location := &BoundaryLocation{}
		if isEntrance {
			entrance := vertex
			location.Entrance = &entrance
		}
		if isExit {
			exit := vertex
			location.Exit = &exit
		}
		locations[vertexID(vertex)] = location
	}

	for _, boundary := range zone.boundaries {
		entrances := orb.MultiPoint{}
		exits := orb.MultiPoint{}
		for _, fragment := range node.fragments {
			first, last := fragment.First(), fragment.Last()
			if fragment.HasZoneEntrance && pointOnSegment(first, boundary[0], boundary[1]) && !zone.IsVertex(first) {
				entrances = append(entrances, first)
			}
			if fragment.HasZoneExit && pointOnSegment(last, boundary[0], boundary[1]) && !zone.IsVertex(last) {
				exits = append(exits, last)
			}
		}
		if len(entrances) == 0 && len(exits) == 0 {
			continue
		}
		location := &BoundaryLocation{}
		if len(entrances) != 0 {
			entrance, _ := planar.CentroidArea(entrances)
			location.Entrance = &entrance
		}
		if len(exits) != 0 {
			exit, _ := planar.CentroidArea(exits)
			location.Exit = &exit
		}
		locations[edgeID(boundary)] = location
	}
	return locations
}

// ExtractAveragePaths returns average paths of node: each one is made of two positions, entrance location and exit location.
//
// Fragments sharing entrance and exit boundary features are merged into one path whose weight is the number of such fragments.
// Fragments having only an entrance (or an exit) produce a path to (from) their own last (first) position; those are never merged.
// Fragments fully included in zone produce nothing
func ExtractAveragePaths(node *Node) ([]AveragePath, error) {
	if len(node.fragments) == 0 {
		return nil, errors.Wrap(ErrEmptyFragmentSet, "Can't extract average paths from a node having no fragments")
	}
	locations := LocateEntrancesExits(node)
	averagePaths := []AveragePath{}

	for _, fragment := range node.fragments {
		first, last := fragment.First(), fragment.Last()
		startID, hasStart := node.zone.boundaryID(first)
		exitID, hasExit := node.zone.boundaryID(last)

		switch {
		case fragment.HasZoneEntrance && fragment.HasZoneExit && hasExit:
			entrance, ok := entranceLocation(locations, startID, hasStart)
			if !ok {
				continue
			}
			exit, ok := exitLocation(locations, exitID, hasExit)
			if !ok {
				continue
			}
			candidate := orb.LineString{entrance, exit}
			merged := false
			for i := range averagePaths {
				if orb.Equal(averagePaths[i].Path, candidate) {
					averagePaths[i].Weight++
					merged = true
					break
				}
			}
			if !merged {
				averagePaths = append(averagePaths, AveragePath{Path: candidate, Weight: 1})
			}
		case fragment.HasZoneEntrance && !fragment.HasZoneExit:
			entrance, ok := entranceLocation(locations, startID, hasStart)
			if !ok {
				continue
			}
			averagePaths = append(averagePaths, AveragePath{Path: orb.LineString{entrance, last}, Weight: 1})
		case !fragment.HasZoneEntrance && fragment.HasZoneExit:
			exit, ok := exitLocation(locations, exitID, hasExit)
			if !ok {
				continue
			}
			averagePaths = append(averagePaths, AveragePath{Path: orb.LineString{first, exit}, Weight: 1})
		}
	}
	return averagePaths, nil
}

func entranceLocation(locations map[BoundaryID]*BoundaryLocation, id BoundaryID, resolved bool) (orb.Point, bool) {
	if !resolved {
		return orb.Point{}, false
	}
	location, ok := locations[id]
	if !ok || location.Entrance == nil {
		return orb.Point{}, false
	}
	return *location.Entrance, true
}

func exitLocation(locations map[BoundaryID]*BoundaryLocation, id BoundaryID, resolved bool) (orb.Point, bool) {
	if !resolved {
		return orb.Point{}, false
	}
	location, ok := locations[id]
	if !ok || location.Exit == nil {
		return orb.Point{}, false
	}
	return *location.Exit, true
}
