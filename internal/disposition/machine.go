package disposition

import (
	"context"
	"errors"
	"fmt"

	"emergency-room/internal/models"
)

// Machine drives a patient from ADMITTED to HOSPITALIZED or DISCHARGED.
type Machine struct {
	db   DataStore
	beds *CapacityTracker
}

func NewMachine(db DataStore) *Machine {
	return &Machine{
		db:   db,
		beds: NewCapacityTracker(db),
	}
}

func (m *Machine) Capacity() *CapacityTracker {
	return m.beds
}

// DischargeOrHospitalize hospitalizes the patient in department when a bed
// is available and discharges them otherwise. Patients already in a terminal
// state are rejected with ErrInvalidState before any bed is taken.
func (m *Machine) DischargeOrHospitalize(ctx context.Context, fiscalCode, department string) (models.PatientStatus, error) {
	status, err := m.beds.Allocate(ctx, fiscalCode, department)
	if errors.Is(err, models.ErrInvalidState) {
		return status, fmt.Errorf("dispose of patient already %s: %w", status, err)
	}
	if err != nil {
		return "", err
	}
	return status, nil
}

// VerifyHospitalized reports whether the patient currently holds a bed.
func (m *Machine) VerifyHospitalized(ctx context.Context, fiscalCode string) (bool, error) {
	patient, err := m.db.Patient(ctx, fiscalCode)
	if err != nil {
		return false, err
	}
	return patient.Status == models.StatusHospitalized, nil
}
