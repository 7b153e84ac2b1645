package appointment

import (
	"testing"
	"time"

	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/models"
)

func TestCanTransitionAllowedChain(t *testing.T) {
	chain := []Status{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted}

	for i := 0; i < len(chain)-1; i++ {
		if err := CanTransition(chain[i], chain[i+1]); err != nil {
			t.Fatalf("%s -> %s should be allowed: %v", chain[i], chain[i+1], err)
		}
	}
}

func TestCanTransitionRejectsSkippingStates(t *testing.T) {
	if err := CanTransition(StatusPending, StatusCompleted); !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("pending -> completed must be invalid_transition, got %v", err)
	}
	if err := CanTransition(StatusPending, StatusInProgress); !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("pending -> in_progress must be invalid_transition, got %v", err)
	}
}

func TestTerminalStatesHaveNoExit(t *testing.T) {
	terminals := []Status{
		StatusCompleted,
		StatusCancelledByCustomer,
		StatusCancelledByEstablishment,
		StatusNoShow,
	}

	all := []Status{
		StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelledByCustomer, StatusCancelledByEstablishment, StatusNoShow,
	}

	for _, term := range terminals {
		if !IsTerminal(term) {
			t.Errorf("%s should be terminal", term)
		}
		for _, to := range all {
			if err := CanTransition(term, to); err == nil {
				t.Errorf("%s -> %s should be rejected", term, to)
			}
		}
	}
}

func TestCanTransitionRejectsUnknownStatus(t *testing.T) {
	if err := CanTransition(StatusPending, Status("archived")); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("unknown target must be invalid_status, got %v", err)
	}
}

func TestTransitionStampsTimes(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusInProgress)}
	if err := Transition(ap, StatusCompleted, now); err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
		t.Fatal("completed_at not stamped")
	}
	if ap.CancelledAt != nil {
		t.Fatal("cancelled_at must stay nil on completion")
	}

	ap = &models.Appointment{Status: string(StatusConfirmed)}
	if err := Transition(ap, StatusCancelledByCustomer, now); err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatal("cancelled_at not stamped")
	}
}

func TestScheduleEnd(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	end := ScheduleEnd(start, 45)
	if want := start.Add(45 * time.Minute); !end.Equal(want) {
		t.Fatalf("ScheduleEnd = %v, want %v", end, want)
	}
}
