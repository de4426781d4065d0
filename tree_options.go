package zoiflow

import (
	"github.com/rs/zerolog"
)

// WithLogger sets logger for tree building events. Events are emitted on debug level
func WithLogger(logger zerolog.Logger) func(*Tree) {
	return func(tree *Tree) {
		tree.logger = logger
	}
}

// WithParallelSplit enables concurrent clipping of the four quadrants of each split node.
// Children order and fragments order are the same as for sequential build
func WithParallelSplit(parallel bool) func(*Tree) {
	return func(tree *Tree) {
		tree.parallel = parallel
	}
}
