package zoiflow

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Fragment is a part of a trajectory fully included in a zone of interest.
//
// HasZoneEntrance tells if the first position lies on the zone boundaries;
// HasZoneExit tells the same for the last position.
type Fragment struct {
	Path            orb.LineString
	HasZoneEntrance bool
	HasZoneExit     bool
}

// First returns first position of fragment
func (fragment Fragment) First() orb.Point {
	return fragment.Path[0]
}

// Last returns last position of fragment
func (fragment Fragment) Last() orb.Point {
	return fragment.Path[len(fragment.Path)-1]
}

// String returns pretty printed value for Fragment
func (fragment Fragment) String() string {
	return fmt.Sprintf("%s | entrance: %t | exit: %t", PrepareWKTLinestring(fragment.Path), fragment.HasZoneEntrance, fragment.HasZoneExit)
}
