package zoiflow

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

func almostEqual(a, b orb.Point) bool {
	return math.Abs(a[0]-b[0]) < 1e-9 && math.Abs(a[1]-b[1]) < 1e-9
}

func almostEqualLines(a, b orb.LineString) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !almostEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// flowTrajectories cross rectangularRing in several ways:
// two from west to east, one from west ending inside, one from inside to south,
// one fully inside and one entering through south-west vertex
var flowTrajectories = []orb.LineString{
	{{1.95, 51.03}, {2.15, 51.03}},
	{{1.95, 51.05}, {2.15, 51.05}},
	{{1.95, 51.07}, {2.05, 51.07}},
	{{2.05, 51.02}, {2.05, 50.95}},
	{{2.02, 51.02}, {2.04, 51.04}},
	{{1.95, 50.95}, {2.05, 51.05}},
}

func TestLocateEntrancesExits(t *testing.T) {
	zone := mustZone(t, rectangularRing)
	node, err := Clip(zone, flowTrajectories)
	if err != nil {
		t.Fatal(err)
	}
	locations := LocateEntrancesExits(node)
	if len(locations) != 4 {
		t.Fatalf("Number of boundary features must be 4, but got %d", len(locations))
	}

	westEdge := edgeID(orb.LineString{{2, 51}, {2, 51.1}})
	eastEdge := edgeID(orb.LineString{{2.1, 51.1}, {2.1, 51}})
	southEdge := edgeID(orb.LineString{{2.1, 51}, {2, 51}})
	southWestVertex := vertexID(orb.Point{2, 51})

	cases := []struct {
		id       BoundaryID
		entrance *orb.Point
		exit     *orb.Point
	}{
		{westEdge, &orb.Point{2, 51.05}, nil},
		{eastEdge, nil, &orb.Point{2.1, 51.04}},
		{southEdge, nil, &orb.Point{2.05, 51}},
		{southWestVertex, &orb.Point{2, 51}, nil},
	}
	for _, c := range cases {
		location, ok := locations[c.id]
		if !ok {
			t.Errorf("Boundary feature '%s' must be located", c.id)
			continue
		}
		if (c.entrance == nil) != (location.Entrance == nil) || (c.entrance != nil && !almostEqual(*c.entrance, *location.Entrance)) {
			t.Errorf("Boundary feature '%s': entrance must be %v, but got %v", c.id, c.entrance, location.Entrance)
		}
		if (c.exit == nil) != (location.Exit == nil) || (c.exit != nil && !almostEqual(*c.exit, *location.Exit)) {
			t.Errorf("Boundary feature '%s': exit must be %v, but got %v", c.id, c.exit, location.Exit)
		}
	}
	if !southWestVertex.IsVertex() || westEdge.IsVertex() {
		t.Errorf("Boundary identifiers must tell vertices from edges")
	}
}

func TestLocateEntrancesExitsSinglePath(t *testing.T) {
	zone := mustZone(t, rectangularRing)
	node, err := Clip(zone, []orb.LineString{{{1.95, 51.03}, {2.15, 51.06}}})
	if err != nil {
		t.Fatal(err)
	}
	fragment := node.Fragments()[0]
	locations := LocateEntrancesExits(node)
	entrances, exits := 0, 0
	for _, location := range locations {
		if location.Entrance != nil {
			entrances++
			if !location.Entrance.Equal(fragment.First()) {
				t.Errorf("Entrance must be %v, but got %v", fragment.First(), *location.Entrance)
			}
		}
		if location.Exit != nil {
			exits++
			if !location.Exit.Equal(fragment.Last()) {
				t.Errorf("Exit must be %v, but got %v", fragment.Last(), *location.Exit)
			}
		}
	}
	if entrances != 1 || exits != 1 {
		t.Errorf("There must be exactly one entrance and one exit, but got %d and %d", entrances, exits)
	}
}

func TestExtractAveragePaths(t *testing.T) {
	zone := mustZone(t, rectangularRing)
	node, err := Clip(zone, flowTrajectories)
	if err != nil {
		t.Fatal(err)
	}
	averagePaths, err := ExtractAveragePaths(node)
	if err != nil {
		t.Fatal(err)
	}
	expected := []AveragePath{
		{orb.LineString{{2, 51.05}, {2.1, 51.04}}, 2},
		{orb.LineString{{2, 51.05}, {2.05, 51.07}}, 1},
		{orb.LineString{{2.05, 51.02}, {2.05, 51}}, 1},
		{orb.LineString{{2, 51}, {2.05, 51.05}}, 1},
	}
	if len(averagePaths) != len(expected) {
		t.Fatalf("Number of average paths must be %d, but got %d", len(expected), len(averagePaths))
	}
	for i := range expected {
		if !almostEqualLines(averagePaths[i].Path, expected[i].Path) {
			t.Errorf("Average path #%d must be %v, but got %v", i, expected[i].Path, averagePaths[i].Path)
		}
		if averagePaths[i].Weight != expected[i].Weight {
			t.Errorf("Average path #%d weight must be %d, but got %d", i, expected[i].Weight, averagePaths[i].Weight)
		}
		if averagePaths[i].StrokeWidth() != expected[i].Weight*5 {
			t.Errorf("Average path #%d stroke width must be %d, but got %d", i, expected[i].Weight*5, averagePaths[i].StrokeWidth())
		}
	}
}

func TestExtractAveragePathsSingleEndedNotMerged(t *testing.T) {
	zone := mustZone(t, rectangularRing)
	// Both end at the same position
	node, err := Clip(zone, []orb.LineString{
		{{1.95, 51.05}, {2.05, 51.05}},
		{{1.95, 51.05}, {2.05, 51.05}},
	})
	if err != nil {
		t.Fatal(err)
	}
	averagePaths, err := ExtractAveragePaths(node)
	if err != nil {
		t.Fatal(err)
	}
	if len(averagePaths) != 2 {
		t.Fatalf("Number of average paths must be 2, but got %d", len(averagePaths))
	}
	for i, averagePath := range averagePaths {
		if averagePath.Weight != 1 {
			t.Errorf("Average path #%d weight must be 1, but got %d", i, averagePath.Weight)
		}
	}
}

func TestExtractAveragePathsVertexToVertex(t *testing.T) {
	zone := mustZone(t, rectangularRing)
	node, err := Clip(zone, []orb.LineString{
		{{1.95, 50.95}, {2.15, 51.15}},
		{{1.95, 50.95}, {2.15, 51.15}},
		{{1.95, 50.95}, {2.15, 51.15}},
	})
	if err != nil {
		t.Fatal(err)
	}
	averagePaths, err := ExtractAveragePaths(node)
	if err != nil {
		t.Fatal(err)
	}
	if len(averagePaths) != 1 {
		t.Fatalf("Number of average paths must be 1, but got %d", len(averagePaths))
	}
	if !orb.Equal(averagePaths[0].Path, orb.LineString{{2, 51}, {2.1, 51.1}}) {
		t.Errorf("Average path must go from vertex to vertex, but got %v", averagePaths[0].Path)
	}
	if averagePaths[0].Weight != 3 {
		t.Errorf("Average path weight must be 3, but got %d", averagePaths[0].Weight)
	}
}

func TestExtractAveragePathsEmpty(t *testing.T) {
	zone := mustZone(t, rectangularRing)
	node, err := Clip(zone, []orb.LineString{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = ExtractAveragePaths(node)
	if !errors.Is(err, ErrEmptyFragmentSet) {
		t.Errorf("Error must be '%v', but got '%v'", ErrEmptyFragmentSet, err)
	}

	tree, err := NewTree(node, 1)
	if err != nil {
		t.Fatal(err)
	}
	averagePaths, err := tree.AveragePaths()
	if err != nil {
		t.Errorf("Leaves without fragments must be skipped, but got error: %s", err)
	}
	if len(averagePaths) != 0 {
		t.Errorf("There must be no average paths, but got %d", len(averagePaths))
	}
}
