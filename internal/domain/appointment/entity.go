package appointment

import (
	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// SetStatus applies a status change to ap. Unknown values are left for
// struct validation to report so the caller sees the field message.
func SetStatus(ap *models.Appointment, next Status) error {
	if !next.IsValid() {
		ap.Status = string(next)
		return nil
	}
	if err := CanTransition(Status(ap.Status), next); err != nil {
		return err
	}
	ap.Status = string(next)
	return nil
}

// Review is the explicit approve/reject action.
func Review(ap *models.Appointment, decision Status) error {
	if decision != StatusApproved && decision != StatusRejected {
		return httperr.ErrBusinessMsg("invalid_decision", "Decision must be approved or rejected")
	}
	return SetStatus(ap, decision)
}
