package assignment

import (
	"context"
	"emergency-room/internal/models"
)

type MockDataStore struct {
	ProfessionalsBySpecializationFunc func(ctx context.Context, specialization string) ([]*models.Professional, error)
	PatientFunc                       func(ctx context.Context, fiscalCode string) (*models.Patient, error)
	SetAssignmentFunc                 func(ctx context.Context, assignment *models.Assignment) error
	AssignmentFunc                    func(ctx context.Context, fiscalCode string) (*models.Assignment, error)
}

func (m *MockDataStore) ProfessionalsBySpecialization(ctx context.Context, specialization string) ([]*models.Professional, error) {
	return m.ProfessionalsBySpecializationFunc(ctx, specialization)
}

func (m *MockDataStore) Patient(ctx context.Context, fiscalCode string) (*models.Patient, error) {
	return m.PatientFunc(ctx, fiscalCode)
}

func (m *MockDataStore) SetAssignment(ctx context.Context, assignment *models.Assignment) error {
	return m.SetAssignmentFunc(ctx, assignment)
}

func (m *MockDataStore) Assignment(ctx context.Context, fiscalCode string) (*models.Assignment, error) {
	if m.AssignmentFunc != nil {
		return m.AssignmentFunc(ctx, fiscalCode)
	}
	return nil, models.NotFound("assignment", fiscalCode)
}

type MockHistoryRecorder struct {
	RecordFunc func(ctx context.Context, assignment *models.Assignment) error
}

func (m *MockHistoryRecorder) Record(ctx context.Context, assignment *models.Assignment) error {
	return m.RecordFunc(ctx, assignment)
}
