// Package distribution turns an optimized timeline and a pool of generated
// content assets into a concrete posting schedule. Copy is drawn from pools
// keyed by content type; images are handed out use-once-then-cycle so no
// image repeats before every image has appeared. The planner proposes the
// schedule first and the deterministic matcher backs it up.
package distribution
