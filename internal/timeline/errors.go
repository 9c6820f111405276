package timeline

import "errors"

// Sentinel errors for timeline request validation. These are the only
// errors that propagate to callers; planner failures are absorbed into the
// fallback path and surface as an execution_status marker instead.
var (
	ErrInvalidWindow    = errors.New("campaign window is invalid or inverted")
	ErrEmptyInventory   = errors.New("content inventory is empty")
	ErrEmptySegments    = errors.New("audience segments are empty")
	ErrInvalidFrequency = errors.New("posting frequency bounds are invalid")
)

// Planner-output rejection reasons. Never returned to callers; they trigger
// the fallback path and are logged.
var (
	ErrEmptyPlan     = errors.New("planner returned an empty timeline")
	ErrMalformedPlan = errors.New("planner returned a malformed timeline slot")
)
