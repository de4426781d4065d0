package zoiflow

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// PrepareWKTLinestring returns WKT representation of LineString
func PrepareWKTLinestring(pts orb.LineString) string {
	return wkt.MarshalString(pts)
}

// PrepareWKTPoint returns WKT representation of Point
func PrepareWKTPoint(pt orb.Point) string {
	return wkt.MarshalString(pt)
}

// PrepareWKTPolygon returns WKT representation of zone
func PrepareWKTPolygon(zone *Zone) string {
	return wkt.MarshalString(zone.polygon)
}
