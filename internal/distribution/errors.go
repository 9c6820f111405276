package distribution

import "errors"

// Request validation sentinels. Unmatched slots are never an error; they
// are reported in the response body.
var (
	ErrEmptyTimeline = errors.New("optimized timeline is empty")
	ErrNoCopies      = errors.New("no generated copies to distribute")
)
