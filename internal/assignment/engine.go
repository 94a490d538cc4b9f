package assignment

import (
	"context"
	"fmt"
	"time"

	"emergency-room/internal/models"
)

// Engine is the assignment ledger: it keeps at most one active professional
// per patient.
type Engine struct {
	db      DataStore
	matcher *Matcher
	history HistoryRecorder
	now     func() time.Time
}

// NewEngine builds an engine over db. history may be nil.
func NewEngine(db DataStore, history HistoryRecorder) *Engine {
	return &Engine{
		db:      db,
		matcher: NewMatcher(db),
		history: history,
		now:     time.Now,
	}
}

func (e *Engine) Matcher() *Matcher {
	return e.matcher
}

// Assign binds the patient to the lowest-ID professional of the given
// specialization eligible on the admission date. An existing binding is
// replaced.
func (e *Engine) Assign(ctx context.Context, fiscalCode, specialization string) (*models.Assignment, error) {
	patient, err := e.db.Patient(ctx, fiscalCode)
	if err != nil {
		return nil, err
	}

	eligible, err := e.matcher.FindAt(ctx, specialization, patient.AdmittedAt)
	if err != nil {
		return nil, fmt.Errorf("assign patient %s: %w", fiscalCode, err)
	}

	assignment := &models.Assignment{
		FiscalCode:     patient.FiscalCode,
		ProfessionalID: eligible[0],
		AssignedAt:     e.now(),
	}
	if err := e.db.SetAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	if e.history != nil {
		if err := e.history.Record(ctx, assignment); err != nil {
			return nil, fmt.Errorf("record assignment for %s: %w", fiscalCode, err)
		}
	}

	return assignment, nil
}

// Current returns the patient's active binding.
func (e *Engine) Current(ctx context.Context, fiscalCode string) (*models.Assignment, error) {
	if _, err := e.db.Patient(ctx, fiscalCode); err != nil {
		return nil, err
	}
	return e.db.Assignment(ctx, fiscalCode)
}
