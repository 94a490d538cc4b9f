package disposition

import (
	"context"

	"emergency-room/internal/models"
)

// CapacityTracker gates hospitalization on each department's remaining beds.
// Beds are consumed, never released.
type CapacityTracker struct {
	db BedStore
}

func NewCapacityTracker(db BedStore) *CapacityTracker {
	return &CapacityTracker{db: db}
}

// TryReserve takes one bed in the department if any is left.
func (c *CapacityTracker) TryReserve(ctx context.Context, department string) (bool, error) {
	return c.db.ReserveBed(ctx, department)
}

// Allocate gives an admitted patient a bed in department when one is left
// and reports the status the patient ends up in. The status guard, the bed
// and the status change are one store operation, so a failed or concurrent
// call never leaves a bed taken by a patient who is not hospitalized.
func (c *CapacityTracker) Allocate(ctx context.Context, fiscalCode, department string) (models.PatientStatus, error) {
	return c.db.DisposePatient(ctx, fiscalCode, department)
}

func (c *CapacityTracker) Remaining(ctx context.Context, department string) (int, error) {
	d, err := c.db.Department(ctx, department)
	if err != nil {
		return 0, err
	}
	return d.Remaining, nil
}
