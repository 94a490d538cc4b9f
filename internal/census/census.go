package census

import (
	"context"
	"errors"
	"time"

	"emergency-room/internal/models"
)

// DataStore defines the read-only registry view used for counting
type DataStore interface {
	Patients(ctx context.Context) []*models.Patient
	Occupants(ctx context.Context, department string) ([]string, error)
	Assignment(ctx context.Context, fiscalCode string) (*models.Assignment, error)
	Professional(ctx context.Context, id string) (*models.Professional, error)
}

// Census answers head-count questions over the registry.
type Census struct {
	db DataStore
}

func New(db DataStore) *Census {
	return &Census{db: db}
}

// Admitted counts patients still waiting for a disposition.
func (c *Census) Admitted(ctx context.Context) int {
	return c.countStatus(ctx, models.StatusAdmitted)
}

// AdmittedOn counts patients admitted on the calendar day of date, whatever
// their current status.
func (c *Census) AdmittedOn(ctx context.Context, date time.Time) int {
	n := 0
	for _, p := range c.db.Patients(ctx) {
		if models.SameDay(p.AdmittedAt, date) {
			n++
		}
	}
	return n
}

func (c *Census) Discharged(ctx context.Context) int {
	return c.countStatus(ctx, models.StatusDischarged)
}

func (c *Census) HospitalizedIn(ctx context.Context, department string) (int, error) {
	occupants, err := c.db.Occupants(ctx, department)
	if err != nil {
		return 0, err
	}
	return len(occupants), nil
}

// DischargedBySpecialization counts discharged patients whose current
// professional has the given specialization.
func (c *Census) DischargedBySpecialization(ctx context.Context, specialization string) (int, error) {
	n := 0
	for _, p := range c.db.Patients(ctx) {
		if p.Status != models.StatusDischarged {
			continue
		}
		a, err := c.db.Assignment(ctx, p.FiscalCode)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return 0, err
		}
		pro, err := c.db.Professional(ctx, a.ProfessionalID)
		if err != nil {
			return 0, err
		}
		if pro.Specialization == specialization {
			n++
		}
	}
	return n, nil
}

func (c *Census) countStatus(ctx context.Context, status models.PatientStatus) int {
	n := 0
	for _, p := range c.db.Patients(ctx) {
		if p.Status == status {
			n++
		}
	}
	return n
}
