package zoiflow

import (
	"os"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	geojson "github.com/paulmach/go.geojson"
)

// Dataset is input of clustering: zone of interest and raw trajectories
type Dataset struct {
	Zone         *Zone
	Trajectories []orb.LineString
}

// ImportFromGeoJSONFile reads dataset from file containing GeoJSON feature collection
func ImportFromGeoJSONFile(fileName string) (*Dataset, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	return ParseGeoJSON(data)
}

// ParseGeoJSON extracts dataset from GeoJSON feature collection.
//
// First Polygon feature is the zone of interest (holes are ignored). LineString features are trajectories,
// MultiLineString features are treated as several trajectories. Point features are skipped
func ParseGeoJSON(data []byte) (*Dataset, error) {
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse feature collection")
	}
	dataset := &Dataset{
		Trajectories: []orb.LineString{},
	}
	for i, feature := range collection.Features {
		geometry := feature.Geometry
		if geometry == nil {
			continue
		}
		switch {
		case geometry.IsPolygon():
			if dataset.Zone != nil {
				continue
			}
			if len(geometry.Polygon) == 0 {
				return nil, errors.Wrapf(ErrInvalidZone, "Polygon feature #%d has no rings", i)
			}
			zone, err := NewZone(orb.Ring(coordinatesToPoints(geometry.Polygon[0])))
			if err != nil {
				return nil, errors.Wrapf(err, "Can't prepare zone from feature #%d", i)
			}
			dataset.Zone = zone
		case geometry.IsLineString():
			dataset.Trajectories = append(dataset.Trajectories, orb.LineString(coordinatesToPoints(geometry.LineString)))
		case geometry.IsMultiLineString():
			for _, line := range geometry.MultiLineString {
				dataset.Trajectories = append(dataset.Trajectories, orb.LineString(coordinatesToPoints(line)))
			}
		case geometry.IsPoint(), geometry.IsMultiPoint():
			continue
		default:
			return nil, errors.Wrapf(ErrUnsupportedGeometry, "Feature #%d has geometry of type '%s'", i, geometry.Type)
		}
	}
	if dataset.Zone == nil {
		return nil, errors.Wrap(ErrInvalidZone, "Feature collection must contain a Polygon feature")
	}
	return dataset, nil
}

func coordinatesToPoints(coordinates [][]float64) []orb.Point {
	pts := make([]orb.Point, 0, len(coordinates))
	for _, c := range coordinates {
		if len(c) < 2 {
			continue
		}
		pts = append(pts, orb.Point{c[0], c[1]})
	}
	return pts
}
