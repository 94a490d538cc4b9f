package assignment

import (
	"context"
	"emergency-room/internal/models"
)

// ProfessionalStore defines the lookups the matcher needs
type ProfessionalStore interface {
	ProfessionalsBySpecialization(ctx context.Context, specialization string) ([]*models.Professional, error)
}

// DataStore defines the interface for the ledger's registry operations
type DataStore interface {
	ProfessionalStore
	Patient(ctx context.Context, fiscalCode string) (*models.Patient, error)
	SetAssignment(ctx context.Context, assignment *models.Assignment) error
	Assignment(ctx context.Context, fiscalCode string) (*models.Assignment, error)
}

// HistoryRecorder receives every binding the engine writes
type HistoryRecorder interface {
	Record(ctx context.Context, assignment *models.Assignment) error
}
