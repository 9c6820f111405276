package planner

import "encoding/json"

// Result is the outcome of one planner invocation: either parsed JSON data
// or a failure reason. A failed Result never carries data, and callers must
// check Ok before reading Data.
type Result struct {
	data   json.RawMessage
	reason string
	ok     bool
}

// Success wraps parsed planner data.
func Success(data json.RawMessage) Result {
	return Result{data: data, ok: true}
}

// Failure records why the planner output was unusable.
func Failure(reason string) Result {
	return Result{reason: reason}
}

// Ok reports whether the invocation produced usable data.
func (r Result) Ok() bool { return r.ok }

// Data returns the parsed JSON payload. Nil unless Ok.
func (r Result) Data() json.RawMessage { return r.data }

// Reason returns the failure reason. Empty when Ok.
func (r Result) Reason() string { return r.reason }
