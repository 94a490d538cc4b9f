package app

import (
	"context"
	"time"

	"emergency-room/internal/assignment"
	"emergency-room/internal/audit"
	"emergency-room/internal/census"
	"emergency-room/internal/disposition"
	"emergency-room/internal/models"
	"emergency-room/internal/store"

	"go.uber.org/zap"
)

// App owns the registry and every component built over it.
type App struct {
	logger  *zap.Logger
	store   *store.MemoryStore
	engine  *assignment.Engine
	machine *disposition.Machine
	census  *census.Census
	history *audit.Log
}

func New(logger *zap.Logger, s *store.MemoryStore) *App {
	history := audit.NewLog()
	return &App{
		logger:  logger,
		store:   s,
		engine:  assignment.NewEngine(s, history),
		machine: disposition.NewMachine(s),
		census:  census.New(s),
		history: history,
	}
}

func (a *App) Store() *store.MemoryStore { return a.store }
func (a *App) Engine() *assignment.Engine { return a.engine }
func (a *App) Machine() *disposition.Machine { return a.machine }
func (a *App) Census() *census.Census { return a.census }

func (a *App) RegisterProfessional(ctx context.Context, p *models.Professional) error {
	if err := a.store.AddProfessional(ctx, p); err != nil {
		return err
	}
	a.logger.Debug("Professional registered",
		zap.String("professional_id", p.ID),
		zap.String("specialization", p.Specialization),
	)
	return nil
}

func (a *App) RegisterDepartment(ctx context.Context, name string, capacity int) error {
	if err := a.store.AddDepartment(ctx, models.NewDepartment(name, capacity)); err != nil {
		return err
	}
	d, err := a.store.Department(ctx, name)
	if err != nil {
		return err
	}
	a.logger.Debug("Department registered",
		zap.String("department", name),
		zap.Int("capacity", d.Capacity),
		zap.Int("remaining", d.Remaining),
	)
	return nil
}

func (a *App) AdmitPatient(ctx context.Context, p *models.Patient) (*models.Patient, error) {
	if err := a.store.AddPatient(ctx, p); err != nil {
		return nil, err
	}
	a.logger.Info("Patient admitted",
		zap.String("fiscal_code", p.FiscalCode),
		zap.String("reason", p.Reason),
		zap.Time("admitted_at", p.AdmittedAt),
	)
	return a.store.Patient(ctx, p.FiscalCode)
}

// ProfessionalsInService lists professionals of the specialization whose
// availability covers the whole window.
func (a *App) ProfessionalsInService(ctx context.Context, specialization string, w models.Window) ([]string, error) {
	return a.engine.Matcher().FindInWindow(ctx, specialization, w)
}

func (a *App) AssignPatient(ctx context.Context, fiscalCode, specialization string) (string, error) {
	assigned, err := a.engine.Assign(ctx, fiscalCode, specialization)
	if err != nil {
		a.logger.Warn("Assignment failed",
			zap.String("fiscal_code", fiscalCode),
			zap.String("specialization", specialization),
			zap.Error(err),
		)
		return "", err
	}
	a.logger.Info("Patient assigned",
		zap.String("fiscal_code", fiscalCode),
		zap.String("professional_id", assigned.ProfessionalID),
		zap.String("specialization", specialization),
	)
	return assigned.ProfessionalID, nil
}

func (a *App) AssignmentHistory(ctx context.Context, fiscalCode string) []audit.Entry {
	return a.history.History(ctx, fiscalCode)
}

func (a *App) DischargeOrHospitalize(ctx context.Context, fiscalCode, department string) (models.PatientStatus, error) {
	status, err := a.machine.DischargeOrHospitalize(ctx, fiscalCode, department)
	if err != nil {
		a.logger.Warn("Disposition rejected",
			zap.String("fiscal_code", fiscalCode),
			zap.String("department", department),
			zap.Error(err),
		)
		return status, err
	}
	a.logger.Info("Patient disposed",
		zap.String("fiscal_code", fiscalCode),
		zap.String("department", department),
		zap.String("status", string(status)),
	)
	return status, nil
}

func (a *App) VerifyHospitalized(ctx context.Context, fiscalCode string) (bool, error) {
	return a.machine.VerifyHospitalized(ctx, fiscalCode)
}

func (a *App) SaveReport(ctx context.Context, professionalID, fiscalCode string, date time.Time, description string) (*models.Report, error) {
	r, err := a.store.SaveReport(ctx, professionalID, fiscalCode, date, description)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Report saved",
		zap.Int64("report_id", r.ID),
		zap.String("professional_id", professionalID),
		zap.String("fiscal_code", fiscalCode),
	)
	return r, nil
}
