package zoiflow

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	geojson "github.com/paulmach/go.geojson"
)

const averagePathStroke = "#ff5555"

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(pts orb.LineString) (string, error) {
	b, err := geojson.NewLineStringGeometry(pointsToCoordinates(pts)).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can't convert geometry to GeoJSON format")
	}
	return string(b), nil
}

// PrepareGeoJSONPolygon returns GeoJSON representation of zone
func PrepareGeoJSONPolygon(zone *Zone) (string, error) {
	b, err := geojson.NewPolygonGeometry([][][]float64{pointsToCoordinates(zone.polygon[0])}).MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can't convert geometry to GeoJSON format")
	}
	return string(b), nil
}

// ToFeatureCollection returns zone of node followed by its fragments
func (node *Node) ToFeatureCollection() *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()
	collection.AddFeature(zoneFeature(node.zone))
	for _, fragment := range node.fragments {
		collection.AddFeature(fragmentFeature(fragment))
	}
	return collection
}

// ToFeatureCollection gathers results of every leaf: zone (optional), average paths and raw fragments (optional)
func (tree *Tree) ToFeatureCollection(includeRawFragments, includeZones bool) (*geojson.FeatureCollection, error) {
	collection := geojson.NewFeatureCollection()
	for _, leaf := range tree.Leaves() {
		if includeZones {
			collection.AddFeature(zoneFeature(leaf.zone))
		}
		if len(leaf.fragments) == 0 {
			continue
		}
		averagePaths, err := ExtractAveragePaths(leaf)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't extract average paths for leaf at level %d", leaf.Level())
		}
		for _, averagePath := range averagePaths {
			collection.AddFeature(averagePathFeature(averagePath))
		}
		if includeRawFragments {
			for _, fragment := range leaf.fragments {
				collection.AddFeature(fragmentFeature(fragment))
			}
		}
	}
	return collection, nil
}

func zoneFeature(zone *Zone) *geojson.Feature {
	return geojson.NewPolygonFeature([][][]float64{pointsToCoordinates(zone.polygon[0])})
}

func fragmentFeature(fragment Fragment) *geojson.Feature {
	feature := geojson.NewLineStringFeature(pointsToCoordinates(fragment.Path))
	feature.SetProperty("hasZoneEntrance", fragment.HasZoneEntrance)
	feature.SetProperty("hasZoneExit", fragment.HasZoneExit)
	return feature
}

func averagePathFeature(averagePath AveragePath) *geojson.Feature {
	feature := geojson.NewLineStringFeature(pointsToCoordinates(averagePath.Path))
	feature.SetProperty("weight", averagePath.Weight)
	feature.SetProperty("stroke-width", averagePath.StrokeWidth())
	feature.SetProperty("stroke", averagePathStroke)
	return feature
}

func pointsToCoordinates(pts []orb.Point) [][]float64 {
	coordinates := make([][]float64, len(pts))
	for i := range pts {
		coordinates[i] = []float64{pts[i][0], pts[i][1]}
	}
	return coordinates
}
