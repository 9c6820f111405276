package domain

import (
	"encoding/json"
	"time"
)

// RunType distinguishes the scheduling pipelines in the audit log.
type RunType string

const (
	RunTimeline     RunType = "timeline"
	RunDistribution RunType = "distribution"
	RunOutreach     RunType = "outreach"
)

// ScheduleRun is one audited scheduling run: the request that came in, the
// response that went out, and how the run completed.
type ScheduleRun struct {
	RunID           string          `json:"run_id"`
	RunType         RunType         `json:"run_type"`
	ExecutionStatus ExecutionStatus `json:"execution_status"`
	Request         json.RawMessage `json:"request"`
	Response        json.RawMessage `json:"response"`
	CreatedAt       time.Time       `json:"created_at"`
}
