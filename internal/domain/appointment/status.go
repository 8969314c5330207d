package appointment

import "github.com/BruksfildServices01/venue-site/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanTransition allows pending -> approved and pending -> rejected only.
// Setting the current status again is a no-op and always allowed.
func CanTransition(current, next Status) error {
	if current == next {
		return nil
	}
	if current != StatusPending {
		return httperr.ErrBusinessMsg("invalid_state", "Appointment has already been "+string(current))
	}
	if next != StatusApproved && next != StatusRejected {
		return httperr.ErrBusinessMsg("invalid_state", "Appointment can only be approved or rejected")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
