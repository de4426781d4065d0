package zoiflow

import (
	"testing"

	"github.com/paulmach/orb"
)

var (
	rectangularRing = orb.Ring{
		{2, 51}, {2, 51.1}, {2.1, 51.1}, {2.1, 51}, {2, 51},
	}
	smallRectangularRing = orb.Ring{
		{2.3894834518432617, 51.050297564097896},
		{2.398538589477539, 51.050297564097896},
		{2.398538589477539, 51.05304926006922},
		{2.3894834518432617, 51.05304926006922},
		{2.3894834518432617, 51.050297564097896},
	}
	citadelRing = orb.Ring{
		{3.0382776260375977, 50.63713226428859},
		{3.0512380599975586, 50.63713226428859},
		{3.0512380599975586, 50.64535143619798},
		{3.0382776260375977, 50.64535143619798},
		{3.0382776260375977, 50.63713226428859},
	}
	trainStationRing = orb.Ring{
		{3.0747824907302856, 50.636226613117884},
		{3.0714213475584984, 50.63705826480064},
		{3.0711933597922325, 50.63669230585008},
		{3.0699333921074863, 50.63684073114853},
		{3.069768100976944, 50.63629189543649},
		{3.070012852549553, 50.63624426274391},
		{3.069882094860077, 50.63603842091022},
		{3.070376291871071, 50.63580706041783},
		{3.0705187842249866, 50.635932947885806},
		{3.071005269885063, 50.63581067543427},
		{3.0710652843117714, 50.63579408888593},
		{3.0711615085601807, 50.635771122886226},
		{3.071237951517105, 50.63575262248941},
		{3.071337193250656, 50.63571923669744},
		{3.0717482417821884, 50.635517220252865},
		{3.0717878043651576, 50.63554933029314},
		{3.071741200983524, 50.63557421024302},
		{3.0717673525214195, 50.63561546414803},
		{3.0722974240779877, 50.63548255839665},
		{3.072312176227569, 50.635503398043326},
		{3.0749065428972244, 50.63486034183318},
		{3.0749454349279404, 50.6349475292026},
		{3.075130842626095, 50.634989421612815},
		{3.0751472711563106, 50.635019192846116},
		{3.076160810887813, 50.63491286692632},
		{3.076162151992321, 50.63492541339737},
		{3.0763016268610954, 50.635057470118376},
		{3.076338842511177, 50.635094471451936},
		{3.0748136714100833, 50.63568925325895},
		{3.074832782149315, 50.63571625961928},
		{3.0748508870601654, 50.63577920351701},
		{3.074893467128277, 50.63582364696162},
		{3.074736893177032, 50.636155801901054},
		{3.0747824907302856, 50.636226613117884},
	}
)

// crossingTrajectories are a west-to-east line and a north-to-south line crossing rectangularRing
var crossingTrajectories = []orb.LineString{
	{{1.95, 51.02}, {2.15, 51.02}},
	{{2.03, 51.09}, {2.03, 50.95}},
}

func mustZone(t *testing.T, ring orb.Ring) *Zone {
	t.Helper()
	zone, err := NewZone(ring)
	if err != nil {
		t.Fatalf("Can't prepare zone: %s", err)
	}
	return zone
}
