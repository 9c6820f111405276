// Package timeline optimizes campaign posting timelines. A run tries the
// LLM planner first and recovers onto a deterministic, evenly spaced
// distribution when the planner fails or returns unusable output. The
// fallback is conservative: weekly posting caps protect audiences from
// fatigue regardless of how aggressive the requested frequency is.
package timeline
