package outreach

import "errors"

// Request validation sentinels. Coverage shortfalls (more leads than the
// window can absorb) are never errors; they show up in the summary's
// coverage percentage.
var (
	ErrNoLeads            = errors.New("no discovered leads to schedule")
	ErrInvalidCallsPerDay = errors.New("calls per day must be positive")
	ErrInvalidWindow      = errors.New("campaign window is invalid or inverted")
)

// Planner-output rejection reasons. Logged, never returned to callers.
var (
	ErrEmptyPlan     = errors.New("planner returned an empty call schedule")
	ErrMalformedPlan = errors.New("planner returned a malformed call item")
)
