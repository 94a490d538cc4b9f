package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"emergency-room/internal/models"
)

// MemoryStore is the registry of professionals, departments, patients,
// assignment bindings, department occupancy and reports. Reads return copies;
// all mutation goes through its methods.
type MemoryStore struct {
	mu sync.RWMutex

	professionals map[string]*models.Professional
	departments   map[string]*models.Department
	patients      map[string]*models.Patient
	assignments   map[string]*models.Assignment
	occupancy     map[string]map[string]struct{}

	reports      []*models.Report
	nextReportID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		professionals: make(map[string]*models.Professional),
		departments:   make(map[string]*models.Department),
		patients:      make(map[string]*models.Patient),
		assignments:   make(map[string]*models.Assignment),
		occupancy:     make(map[string]map[string]struct{}),
		nextReportID:  1,
	}
}

// Professionals

func (s *MemoryStore) AddProfessional(ctx context.Context, p *models.Professional) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.professionals[p.ID] = &cp
	return nil
}

func (s *MemoryStore) Professional(ctx context.Context, id string) (*models.Professional, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.professionals[id]
	if !ok {
		return nil, models.NotFound("professional", id)
	}
	cp := *p
	return &cp, nil
}

// ProfessionalsBySpecialization returns the professionals sharing the tag,
// ordered by ID.
func (s *MemoryStore) ProfessionalsBySpecialization(ctx context.Context, specialization string) ([]*models.Professional, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*models.Professional
	for _, p := range s.professionals {
		if p.Specialization == specialization {
			cp := *p
			result = append(result, &cp)
		}
	}
	if len(result) == 0 {
		return nil, models.NotFound("specialization", specialization)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Departments

// AddDepartment registers a department. Registering a name that already
// exists keeps its capacity and remaining beds untouched.
func (s *MemoryStore) AddDepartment(ctx context.Context, d *models.Department) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.departments[d.Name]; ok {
		return nil
	}
	cp := *d
	s.departments[d.Name] = &cp
	return nil
}

func (s *MemoryStore) Department(ctx context.Context, name string) (*models.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.departments[name]
	if !ok {
		return nil, models.NotFound("department", name)
	}
	cp := *d
	return &cp, nil
}

// Departments lists registered department names in order.
func (s *MemoryStore) Departments(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.departments) == 0 {
		return nil, models.NotFound("department", "*")
	}
	names := make([]string, 0, len(s.departments))
	for name := range s.departments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ReserveBed checks and decrements the remaining capacity under one lock.
func (s *MemoryStore) ReserveBed(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.departments[name]
	if !ok {
		return false, models.NotFound("department", name)
	}
	return d.Reserve(), nil
}

func (s *MemoryStore) AddOccupant(ctx context.Context, department, fiscalCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.departments[department]; !ok {
		return models.NotFound("department", department)
	}
	members, ok := s.occupancy[department]
	if !ok {
		members = make(map[string]struct{})
		s.occupancy[department] = members
	}
	members[fiscalCode] = struct{}{}
	return nil
}

func (s *MemoryStore) Occupants(ctx context.Context, department string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.departments[department]; !ok {
		return nil, models.NotFound("department", department)
	}
	codes := make([]string, 0, len(s.occupancy[department]))
	for code := range s.occupancy[department] {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// Patients

// AddPatient stores or updates a patient record. An existing patient keeps
// its stored status, so a repeated admission cannot undo a disposition.
func (s *MemoryStore) AddPatient(ctx context.Context, p *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	if existing, ok := s.patients[p.FiscalCode]; ok {
		cp.Status = existing.Status
	}
	s.patients[p.FiscalCode] = &cp
	return nil
}

func (s *MemoryStore) Patient(ctx context.Context, fiscalCode string) (*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.patients[fiscalCode]
	if !ok {
		return nil, models.NotFound("patient", fiscalCode)
	}
	cp := *p
	return &cp, nil
}

// DisposePatient moves an ADMITTED patient to HOSPITALIZED, taking a bed and
// recording the occupancy, or to DISCHARGED when the department is full. The
// status check, reservation and status change happen under one lock. A
// patient in any other state gets ErrInvalidState with its current status.
func (s *MemoryStore) DisposePatient(ctx context.Context, fiscalCode, department string) (models.PatientStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.patients[fiscalCode]
	if !ok {
		return "", models.NotFound("patient", fiscalCode)
	}
	d, ok := s.departments[department]
	if !ok {
		return "", models.NotFound("department", department)
	}
	if p.Status != models.StatusAdmitted {
		return p.Status, models.InvalidState("patient", fiscalCode)
	}

	if !d.Reserve() {
		p.Status = models.StatusDischarged
		return p.Status, nil
	}
	p.Status = models.StatusHospitalized
	members, ok := s.occupancy[department]
	if !ok {
		members = make(map[string]struct{})
		s.occupancy[department] = members
	}
	members[fiscalCode] = struct{}{}
	return p.Status, nil
}

func (s *MemoryStore) SetPatientStatus(ctx context.Context, fiscalCode string, status models.PatientStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.patients[fiscalCode]
	if !ok {
		return models.NotFound("patient", fiscalCode)
	}
	p.Status = status
	return nil
}

// Patients returns every patient ordered by fiscal code.
func (s *MemoryStore) Patients(ctx context.Context) []*models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*models.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		cp := *p
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].FiscalCode < result[j].FiscalCode
	})
	return result
}

// FindPatients matches identifier against fiscal codes and surnames.
func (s *MemoryStore) FindPatients(ctx context.Context, identifier string) ([]*models.Patient, error) {
	var result []*models.Patient
	for _, p := range s.Patients(ctx) {
		if p.FiscalCode == identifier || p.Surname == identifier {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return nil, models.NotFound("patient", identifier)
	}
	return result, nil
}

// PatientsAdmittedOn returns the fiscal codes of patients admitted on the
// calendar day of date, ordered by surname and name.
func (s *MemoryStore) PatientsAdmittedOn(ctx context.Context, date time.Time) []string {
	var matched []*models.Patient
	for _, p := range s.Patients(ctx) {
		if models.SameDay(p.AdmittedAt, date) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Surname != matched[j].Surname {
			return matched[i].Surname < matched[j].Surname
		}
		return matched[i].Name < matched[j].Name
	})
	codes := make([]string, 0, len(matched))
	for _, p := range matched {
		codes = append(codes, p.FiscalCode)
	}
	return codes
}

// Assignments

// SetAssignment replaces the patient's current binding.
func (s *MemoryStore) SetAssignment(ctx context.Context, a *models.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.patients[a.FiscalCode]; !ok {
		return models.NotFound("patient", a.FiscalCode)
	}
	cp := *a
	s.assignments[a.FiscalCode] = &cp
	return nil
}

func (s *MemoryStore) Assignment(ctx context.Context, fiscalCode string) (*models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assignments[fiscalCode]
	if !ok {
		return nil, models.NotFound("assignment", fiscalCode)
	}
	cp := *a
	return &cp, nil
}

// Reports

// SaveReport appends a report. Only the professional must be registered.
func (s *MemoryStore) SaveReport(ctx context.Context, professionalID, fiscalCode string, date time.Time, description string) (*models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.professionals[professionalID]; !ok {
		return nil, models.NotFound("professional", professionalID)
	}
	r := &models.Report{
		ID:             s.nextReportID,
		ProfessionalID: professionalID,
		FiscalCode:     fiscalCode,
		Date:           models.DateOf(date),
		Description:    description,
	}
	s.nextReportID++
	s.reports = append(s.reports, r)
	cp := *r
	return &cp, nil
}

func (s *MemoryStore) Reports(ctx context.Context) []*models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*models.Report, len(s.reports))
	for i, r := range s.reports {
		cp := *r
		result[i] = &cp
	}
	return result
}
