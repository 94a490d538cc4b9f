package assignment

import (
	"context"
	"errors"
	"testing"
	"time"

	"emergency-room/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Helper for boilerplate setup. bindings collects what the engine writes.
func setupEngine(t testing.TB, professionals []*models.Professional, patients []*models.Patient) (*Engine, map[string]*models.Assignment) {
	bySpec := make(map[string][]*models.Professional)
	for _, p := range professionals {
		bySpec[p.Specialization] = append(bySpec[p.Specialization], p)
	}
	patientMap := make(map[string]*models.Patient)
	for _, p := range patients {
		patientMap[p.FiscalCode] = p
	}
	bindings := make(map[string]*models.Assignment)

	mockDB := &MockDataStore{
		ProfessionalsBySpecializationFunc: func(ctx context.Context, specialization string) ([]*models.Professional, error) {
			if pros, ok := bySpec[specialization]; ok {
				return pros, nil
			}
			return nil, models.NotFound("specialization", specialization)
		},
		PatientFunc: func(ctx context.Context, fiscalCode string) (*models.Patient, error) {
			if p, ok := patientMap[fiscalCode]; ok {
				return p, nil
			}
			return nil, models.NotFound("patient", fiscalCode)
		},
		SetAssignmentFunc: func(ctx context.Context, a *models.Assignment) error {
			bindings[a.FiscalCode] = a
			return nil
		},
		AssignmentFunc: func(ctx context.Context, fiscalCode string) (*models.Assignment, error) {
			if a, ok := bindings[fiscalCode]; ok {
				return a, nil
			}
			return nil, models.NotFound("assignment", fiscalCode)
		},
	}

	return NewEngine(mockDB, nil), bindings
}

func TestAssign_PicksSmallestIDAmongOverlapping(t *testing.T) {
	d2 := models.NewProfessional("D2", "Bea", "Verdi", "Cardiology", date("2024-01-10"), date("2024-02-28"))
	d1 := models.NewProfessional("D1", "Ada", "Rossi", "Cardiology", date("2024-01-01"), date("2024-01-31"))
	patient := models.NewPatient("P1", "Mario", "Bianchi", date("1980-01-01"), "chest pain", date("2024-01-15").Add(8*time.Hour))

	engine, bindings := setupEngine(t, []*models.Professional{d2, d1}, []*models.Patient{patient})

	for i := 0; i < 5; i++ {
		assignment, err := engine.Assign(context.Background(), "P1", "Cardiology")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if assignment.ProfessionalID != "D1" {
			t.Errorf("Run %d: expected D1, got %s", i, assignment.ProfessionalID)
		}
	}
	if bindings["P1"].ProfessionalID != "D1" {
		t.Errorf("Expected binding to D1, got %s", bindings["P1"].ProfessionalID)
	}
}

func TestAssign_ReassignmentOverwrites(t *testing.T) {
	cardio := models.NewProfessional("C1", "Ada", "Rossi", "Cardiology", date("2024-01-01"), date("2024-01-31"))
	neuro := models.NewProfessional("N1", "Bea", "Verdi", "Neurology", date("2024-01-01"), date("2024-01-31"))
	patient := models.NewPatient("P1", "Mario", "Bianchi", date("1980-01-01"), "headache", date("2024-01-15"))

	engine, bindings := setupEngine(t, []*models.Professional{cardio, neuro}, []*models.Patient{patient})

	if _, err := engine.Assign(context.Background(), "P1", "Cardiology"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := engine.Assign(context.Background(), "P1", "Neurology"); err != nil {
		t.Fatalf("Expected no error on reassignment, got %v", err)
	}

	if len(bindings) != 1 {
		t.Errorf("Expected one binding, got %d", len(bindings))
	}
	current, err := engine.Current(context.Background(), "P1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if current.ProfessionalID != "N1" {
		t.Errorf("Expected N1, got %s", current.ProfessionalID)
	}
}

func TestAssign_UnknownSpecialization(t *testing.T) {
	patient := models.NewPatient("P1", "Mario", "Bianchi", date("1980-01-01"), "rash", date("2024-01-15"))
	engine, bindings := setupEngine(t, nil, []*models.Patient{patient})

	_, err := engine.Assign(context.Background(), "P1", "Dermatology")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if len(bindings) != 0 {
		t.Error("Expected no binding to be written")
	}
}

func TestAssign_UnknownPatient(t *testing.T) {
	pro := models.NewProfessional("D1", "Ada", "Rossi", "Cardiology", date("2024-01-01"), date("2024-01-31"))
	engine, _ := setupEngine(t, []*models.Professional{pro}, nil)

	_, err := engine.Assign(context.Background(), "ghost", "Cardiology")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestAssign_PermissiveOverlap(t *testing.T) {
	// Window ends before admission, but its start precedes it.
	past := models.NewProfessional("D1", "Ada", "Rossi", "Cardiology", date("2023-01-01"), date("2023-01-31"))
	patient := models.NewPatient("P1", "Mario", "Bianchi", date("1980-01-01"), "chest pain", date("2024-06-01"))
	engine, _ := setupEngine(t, []*models.Professional{past}, []*models.Patient{patient})

	assignment, err := engine.Assign(context.Background(), "P1", "Cardiology")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if assignment.ProfessionalID != "D1" {
		t.Errorf("Expected D1, got %s", assignment.ProfessionalID)
	}
}

func TestAssign_RecordsHistory(t *testing.T) {
	pro := models.NewProfessional("D1", "Ada", "Rossi", "Cardiology", date("2024-01-01"), date("2024-01-31"))
	patient := models.NewPatient("P1", "Mario", "Bianchi", date("1980-01-01"), "chest pain", date("2024-01-15"))
	engine, _ := setupEngine(t, []*models.Professional{pro}, []*models.Patient{patient})

	fixed := date("2024-01-15").Add(9 * time.Hour)
	engine.now = func() time.Time { return fixed }

	var recorded []*models.Assignment
	engine.history = &MockHistoryRecorder{
		RecordFunc: func(ctx context.Context, a *models.Assignment) error {
			recorded = append(recorded, a)
			return nil
		},
	}

	if _, err := engine.Assign(context.Background(), "P1", "Cardiology"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(recorded) != 1 {
		t.Fatalf("Expected 1 history entry, got %d", len(recorded))
	}
	if !recorded[0].AssignedAt.Equal(fixed) {
		t.Errorf("Expected AssignedAt %v, got %v", fixed, recorded[0].AssignedAt)
	}
}

func TestAssign_HistoryFailure(t *testing.T) {
	pro := models.NewProfessional("D1", "Ada", "Rossi", "Cardiology", date("2024-01-01"), date("2024-01-31"))
	patient := models.NewPatient("P1", "Mario", "Bianchi", date("1980-01-01"), "chest pain", date("2024-01-15"))
	engine, _ := setupEngine(t, []*models.Professional{pro}, []*models.Patient{patient})

	boom := errors.New("log full")
	engine.history = &MockHistoryRecorder{
		RecordFunc: func(ctx context.Context, a *models.Assignment) error { return boom },
	}

	_, err := engine.Assign(context.Background(), "P1", "Cardiology")
	if !errors.Is(err, boom) {
		t.Fatalf("Expected history error, got %v", err)
	}
}

func TestCurrent_NoBinding(t *testing.T) {
	patient := models.NewPatient("P1", "Mario", "Bianchi", date("1980-01-01"), "x", date("2024-01-15"))
	engine, _ := setupEngine(t, nil, []*models.Patient{patient})

	_, err := engine.Current(context.Background(), "P1")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}
