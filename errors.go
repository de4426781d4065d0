package zoiflow

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidDepth is returned when a tree is requested with a negative depth
	ErrInvalidDepth = errors.New("invalid tree depth")
	// ErrOutOfZoneFragment is returned when a fragment has a position outside of its zone
	ErrOutOfZoneFragment = errors.New("fragment is out of zone")
	// ErrAmbiguousIntersection is returned when a segment crosses zone boundaries zero or several times
	ErrAmbiguousIntersection = errors.New("ambiguous zone intersection")
	// ErrInvalidPositionPair is returned when both positions are on the same side of zone boundaries
	ErrInvalidPositionPair = errors.New("invalid position pair")
	// ErrEmptyFragmentSet is returned when average paths are requested for a node without fragments
	ErrEmptyFragmentSet = errors.New("empty fragment set")
	// ErrInvalidZone is returned for rings which can't describe a zone of interest
	ErrInvalidZone = errors.New("invalid zone of interest")
	// ErrInvalidTrajectory is returned for trajectories having less than two positions
	ErrInvalidTrajectory = errors.New("invalid trajectory")
	// ErrUnsupportedGeometry is returned by loaders for geometries they can't handle
	ErrUnsupportedGeometry = errors.New("unsupported geometry")
)
