package zoiflow

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// BoundaryID identifies a zone boundary feature: either a vertex or an edge.
//
// Identifier is built from exact coordinates of the feature, so two distinct features never share the same one
type BoundaryID string

const (
	vertexPrefix = "vertex"
	edgePrefix   = "edge"
)

// vertexID returns identifier of vertex, e.g. 'vertex(3.1 50.6)'
func vertexID(vertex orb.Point) BoundaryID {
	var sb strings.Builder
	sb.WriteString(vertexPrefix)
	sb.WriteString("(")
	writePoint(&sb, vertex)
	sb.WriteString(")")
	return BoundaryID(sb.String())
}

// edgeID returns identifier of edge, e.g. 'edge(3.1 50.6,3.2 50.6)'
func edgeID(edge orb.LineString) BoundaryID {
	var sb strings.Builder
	sb.WriteString(edgePrefix)
	sb.WriteString("(")
	for i, pt := range edge {
		if i > 0 {
			sb.WriteString(",")
		}
		writePoint(&sb, pt)
	}
	sb.WriteString(")")
	return BoundaryID(sb.String())
}

// IsVertex tells if identifier refers to a zone vertex
func (id BoundaryID) IsVertex() bool {
	return strings.HasPrefix(string(id), vertexPrefix)
}

func writePoint(sb *strings.Builder, pt orb.Point) {
	sb.WriteString(strconv.FormatFloat(pt[0], 'g', -1, 64))
	sb.WriteString(" ")
	sb.WriteString(strconv.FormatFloat(pt[1], 'g', -1, 64))
}

// boundaryID resolves boundary feature for position located on zone boundaries.
// Vertices take precedence over edges; first matching edge is used otherwise
func (zone *Zone) boundaryID(pt orb.Point) (BoundaryID, bool) {
	for _, vertex := range zone.vertices {
		if vertex.Equal(pt) {
			return vertexID(vertex), true
		}
	}
	for _, boundary := range zone.boundaries {
		if pointOnSegment(pt, boundary[0], boundary[1]) {
			return edgeID(boundary), true
		}
	}
	return "", false
}
