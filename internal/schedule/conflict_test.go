package schedule

import "testing"

func TestCheckAssignmentReportsFirstConflict(t *testing.T) {
	candidate := Candidate{
		WorkstationID: 1,
		UserID:        10,
		Interval:      mustInterval(t, "09:00", "12:00"),
	}

	existing := []Existing{
		{UserID: 20, UserName: "Tina", Interval: mustInterval(t, "11:00", "13:00")},
		{UserID: 30, UserName: "Marco", Interval: mustInterval(t, "11:30", "14:00")},
	}

	res := CheckAssignment(candidate, existing)
	if !res.Conflict {
		t.Fatal("expected conflict")
	}
	if res.WithUserID != 20 || res.WithUserName != "Tina" {
		t.Fatalf("reported wrong assignment: %+v", res)
	}
	if res.WithInterval.String() != "11:00-13:00" {
		t.Fatalf("reported wrong interval: %v", res.WithInterval)
	}
}

func TestCheckAssignmentTouchingBoundaries(t *testing.T) {
	candidate := Candidate{
		UserID:   10,
		Interval: mustInterval(t, "09:00", "11:00"),
	}
	existing := []Existing{
		{UserID: 20, UserName: "Tina", Interval: mustInterval(t, "11:00", "13:00")},
	}

	if res := CheckAssignment(candidate, existing); res.Conflict {
		t.Fatalf("touching intervals must not conflict: %+v", res)
	}
}

func TestCheckAssignmentExcludesSelf(t *testing.T) {
	// Staff member moving their own 09:00-12:00 slot to 09:30-12:30.
	candidate := Candidate{
		UserID:   10,
		Interval: mustInterval(t, "09:30", "12:30"),
	}
	existing := []Existing{
		{UserID: 10, UserName: "Sam", Interval: mustInterval(t, "09:00", "12:00")},
	}

	if res := CheckAssignment(candidate, existing); res.Conflict {
		t.Fatalf("own assignment must be excluded: %+v", res)
	}
}

func TestCheckAssignmentDisjointDays(t *testing.T) {
	candidate := Candidate{
		UserID:   10,
		Interval: mustInterval(t, "09:00", "12:00"),
		Days:     []string{"1", "3"},
	}
	existing := []Existing{
		{UserID: 20, UserName: "Tina", Interval: mustInterval(t, "09:00", "12:00"), Days: []string{"2", "4"}},
	}

	if res := CheckAssignment(candidate, existing); res.Conflict {
		t.Fatalf("day-disjoint assignments must not conflict: %+v", res)
	}

	// Shared weekday brings the overlap back.
	existing[0].Days = []string{"3"}
	if res := CheckAssignment(candidate, existing); !res.Conflict {
		t.Fatal("expected conflict on shared weekday")
	}
}

func TestCheckAssignmentEmptyDaysMeansEveryDay(t *testing.T) {
	candidate := Candidate{
		UserID:   10,
		Interval: mustInterval(t, "09:00", "12:00"),
	}
	existing := []Existing{
		{UserID: 20, UserName: "Tina", Interval: mustInterval(t, "10:00", "11:00"), Days: []string{"5"}},
	}

	if res := CheckAssignment(candidate, existing); !res.Conflict {
		t.Fatal("empty day set must intersect every day set")
	}
}

func TestCheckAssignmentNoConflict(t *testing.T) {
	candidate := Candidate{
		UserID:   10,
		Interval: mustInterval(t, "08:00", "09:00"),
	}
	existing := []Existing{
		{UserID: 20, Interval: mustInterval(t, "09:00", "10:00")},
		{UserID: 30, Interval: mustInterval(t, "13:00", "15:00")},
	}

	if res := CheckAssignment(candidate, existing); res.Conflict {
		t.Fatalf("unexpected conflict: %+v", res)
	}
}
