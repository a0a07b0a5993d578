package workorder

import "github.com/BLEINATS/estetica-auto-api/internal/httperr"

// ===============================
// Work Order Status
// ===============================

type Status string

const (
	StatusOpen      Status = "open"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ===============================
// Validations
// ===============================

func CanCancel(current Status) error {
	if current != StatusOpen {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusOpen {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusOpen
}
