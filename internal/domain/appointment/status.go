package appointment

import "github.com/salonops/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending                  Status = "pending"
	StatusConfirmed                Status = "confirmed"
	StatusInProgress               Status = "in_progress"
	StatusCompleted                Status = "completed"
	StatusCancelledByCustomer      Status = "cancelled_by_customer"
	StatusCancelledByEstablishment Status = "cancelled_by_establishment"
	StatusNoShow                   Status = "no_show"
)

// transitions is the closed transition table. Terminal states have no entry.
var transitions = map[Status][]Status{
	StatusPending: {
		StatusConfirmed,
		StatusCancelledByEstablishment,
	},
	StatusConfirmed: {
		StatusInProgress,
		StatusCancelledByEstablishment,
		StatusCancelledByCustomer,
	},
	StatusInProgress: {
		StatusCompleted,
		StatusNoShow,
	},
}

func Valid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelledByCustomer, StatusCancelledByEstablishment, StatusNoShow:
		return true
	}
	return false
}

func IsTerminal(s Status) bool {
	_, ok := transitions[s]
	return Valid(s) && !ok
}

// CanTransition validates a status change against the transition table.
func CanTransition(from, to Status) error {
	if !Valid(to) {
		return httperr.ErrBusiness("invalid_status")
	}

	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}

	return httperr.ErrBusiness("invalid_transition")
}

// InitialStatus for establishment-initiated bookings: the customer still
// has to accept.
func InitialStatus() Status {
	return StatusPending
}
