package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LdDl/zoiflow"
	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// seriesFilename returns filename for given depth, e.g. 'flows.geojson' -> 'flows_depth2.geojson'
func seriesFilename(out string, depth int) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_depth%d%s", strings.TrimSuffix(out, ext), depth, ext)
}

// exportGeoJSON writes feature collection of tree leaves
func exportGeoJSON(tree *zoiflow.Tree, fname string, exportCfg ExportConfig) error {
	collection, err := tree.ToFeatureCollection(exportCfg.Fragments, exportCfg.Zones)
	if err != nil {
		return errors.Wrap(err, "Can't prepare feature collection")
	}
	b, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return errors.Wrap(err, "Can't marshal feature collection")
	}
	err = os.WriteFile(fname, b, 0644)
	if err != nil {
		return errors.Wrapf(err, "Can't write file '%s'", fname)
	}
	return nil
}

// exportCSV writes average paths of tree leaves. Zones and raw fragments (if needed) are written to
// separate files: 'flows.csv' -> 'flows_zones.csv', 'flows_fragments.csv'
func exportCSV(tree *zoiflow.Tree, fname string, geomFormat string, exportCfg ExportConfig) error {
	base := strings.TrimSuffix(fname, filepath.Ext(fname))
	leaves := tree.Leaves()

	// 		leaf_id - int, index of leaf in depth-first order
	// 		weight - int, number of fragments merged into the path
	// 		stroke_width - int, weight*5
	//      geom - geometry (WKT or GeoJSON representation)
	err := writeCSV(fname, []string{"leaf_id", "weight", "stroke_width", "geom"}, func(writer *csv.Writer) error {
		for leafID, leaf := range leaves {
			if len(leaf.Fragments()) == 0 {
				continue
			}
			averagePaths, err := zoiflow.ExtractAveragePaths(leaf)
			if err != nil {
				return errors.Wrapf(err, "Can't extract average paths for leaf #%d", leafID)
			}
			for _, averagePath := range averagePaths {
				geomStr, err := lineGeometry(averagePath.Path, geomFormat)
				if err != nil {
					return err
				}
				err = writer.Write([]string{
					fmt.Sprintf("%d", leafID),
					fmt.Sprintf("%d", averagePath.Weight),
					fmt.Sprintf("%d", averagePath.StrokeWidth()),
					geomStr,
				})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if exportCfg.Zones {
		// 		leaf_id - int, index of leaf in depth-first order
		// 		level - int, number of splits between leaf and root
		//      geom - geometry (WKT or GeoJSON representation)
		err = writeCSV(base+"_zones.csv", []string{"leaf_id", "level", "geom"}, func(writer *csv.Writer) error {
			for leafID, leaf := range leaves {
				geomStr, err := zoneGeometry(leaf.Zone(), geomFormat)
				if err != nil {
					return err
				}
				err = writer.Write([]string{
					fmt.Sprintf("%d", leafID),
					fmt.Sprintf("%d", leaf.Level()),
					geomStr,
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	if exportCfg.Fragments {
		// 		leaf_id - int, index of leaf in depth-first order
		// 		has_zone_entrance - bool, if fragment starts on leaf zone boundaries
		// 		has_zone_exit - bool, if fragment ends on leaf zone boundaries
		//      geom - geometry (WKT or GeoJSON representation)
		err = writeCSV(base+"_fragments.csv", []string{"leaf_id", "has_zone_entrance", "has_zone_exit", "geom"}, func(writer *csv.Writer) error {
			for leafID, leaf := range leaves {
				for _, fragment := range leaf.Fragments() {
					geomStr, err := lineGeometry(fragment.Path, geomFormat)
					if err != nil {
						return err
					}
					err = writer.Write([]string{
						fmt.Sprintf("%d", leafID),
						fmt.Sprintf("%t", fragment.HasZoneEntrance),
						fmt.Sprintf("%t", fragment.HasZoneExit),
						geomStr,
					})
					if err != nil {
						return err
					}
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(fname string, header []string, writeRows func(writer *csv.Writer) error) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrapf(err, "Can't create file '%s'", fname)
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	writer.Comma = ';'
	err = writer.Write(header)
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	err = writeRows(writer)
	if err != nil {
		return errors.Wrapf(err, "Can't write rows to '%s'", fname)
	}
	writer.Flush()
	return writer.Error()
}

func lineGeometry(path orb.LineString, geomFormat string) (string, error) {
	if geomFormat == "geojson" {
		return zoiflow.PrepareGeoJSONLinestring(path)
	}
	return zoiflow.PrepareWKTLinestring(path), nil
}

func zoneGeometry(zone *zoiflow.Zone, geomFormat string) (string, error) {
	if geomFormat == "geojson" {
		return zoiflow.PrepareGeoJSONPolygon(zone)
	}
	return zoiflow.PrepareWKTPolygon(zone), nil
}
