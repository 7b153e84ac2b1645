package staffing

import (
	"github.com/salonops/salon-scheduler/internal/schedule"
)

// ProposedAssignment is one entry of the replacement set submitted for a
// staff member. Interval is parsed upstream from the HH:MM strings.
type ProposedAssignment struct {
	WorkstationID uint
	StartTime     string
	EndTime       string
	Interval      schedule.Interval
	Days          []string
	Notes         string
}

// ConflictWarning describes one soft conflict, keyed by the index of the
// proposed assignment that caused it. It is caller-resolvable, not an error.
type ConflictWarning struct {
	Index         int    `json:"index"`
	WorkstationID uint   `json:"workstation_id"`
	WithUserName  string `json:"with_user_name"`
	WithRange     string `json:"with_range"`
	Message       string `json:"message"`
}

// SyncResult reports either the collected conflicts (nothing persisted) or
// the installed assignment set.
type SyncResult struct {
	Conflicts []ConflictWarning
	Installed []AssignmentView
}

type AssignmentView struct {
	ID            uint     `json:"id"`
	WorkstationID uint     `json:"workstation_id"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	Days          []string `json:"days,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}
