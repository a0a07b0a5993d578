package workorder

import (
	"time"

	"github.com/BLEINATS/estetica-auto-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(wo *models.WorkOrder, now time.Time) error {
	if err := CanCancel(Status(wo.Status)); err != nil {
		return err
	}

	wo.Status = string(StatusCancelled)
	wo.CancelledAt = &now
	return nil
}

func Complete(wo *models.WorkOrder, now time.Time) error {
	if err := CanComplete(Status(wo.Status)); err != nil {
		return err
	}

	wo.Status = string(StatusCompleted)
	wo.CompletedAt = &now
	return nil
}
