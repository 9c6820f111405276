// Package planner calls the LLM through AWS Bedrock to produce campaign
// schedules. Planner output is advisory: every consumer treats a planner
// error as a signal to switch to its deterministic fallback, so nothing in
// this package panics or retries aggressively. Responses are cached by
// prompt hash to keep repeated runs cheap.
package planner
