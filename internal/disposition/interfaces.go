package disposition

import (
	"context"
	"emergency-room/internal/models"
)

// BedStore defines the department operations the capacity tracker needs
type BedStore interface {
	Department(ctx context.Context, name string) (*models.Department, error)
	ReserveBed(ctx context.Context, name string) (bool, error)
	DisposePatient(ctx context.Context, fiscalCode, department string) (models.PatientStatus, error)
}

// DataStore defines the registry operations the state machine needs
type DataStore interface {
	BedStore
	Patient(ctx context.Context, fiscalCode string) (*models.Patient, error)
}
