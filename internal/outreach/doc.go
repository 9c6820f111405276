// Package outreach schedules sales calls for discovered leads. Leads are
// filtered by qualification score, ranked by priority industry segment,
// and distributed across the campaign window up to a daily call budget.
// The planner proposes the schedule first; the deterministic scheduler
// backs it up.
package outreach
