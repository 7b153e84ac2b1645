package schedule

// Candidate is a proposed workstation reservation under conflict check.
type Candidate struct {
	WorkstationID uint
	UserID        uint
	Interval      Interval
	Days          []string
}

// Existing is a persisted assignment on the same workstation.
type Existing struct {
	UserID   uint
	UserName string
	Interval Interval
	Days     []string
}

// ConflictResult reports the first overlapping assignment found, if any.
type ConflictResult struct {
	Conflict     bool
	WithUserID   uint
	WithUserName string
	WithInterval Interval
}

// CheckAssignment tests a candidate against a workstation's existing
// assignments. Rows belonging to the candidate's own user are ignored: a
// staff member rearranging their own hours never conflicts with themselves.
// Pure over its inputs; the caller fetches (and locks) the existing rows.
func CheckAssignment(candidate Candidate, existing []Existing) ConflictResult {
	for _, ex := range existing {
		if ex.UserID == candidate.UserID {
			continue
		}
		if !daysIntersect(candidate.Days, ex.Days) {
			continue
		}
		if Overlaps(candidate.Interval, ex.Interval) {
			return ConflictResult{
				Conflict:     true,
				WithUserID:   ex.UserID,
				WithUserName: ex.UserName,
				WithInterval: ex.Interval,
			}
		}
	}

	return ConflictResult{}
}

// daysIntersect treats an empty day set as "every day".
func daysIntersect(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return true
	}
	for _, da := range a {
		for _, db := range b {
			if da == db {
				return true
			}
		}
	}
	return false
}
