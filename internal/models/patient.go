package models

import "time"

type PatientStatus string

const (
	StatusAdmitted     PatientStatus = "ADMITTED"
	StatusHospitalized PatientStatus = "HOSPITALIZED"
	StatusDischarged   PatientStatus = "DISCHARGED"
)

// Terminal reports whether no further transition is allowed.
func (s PatientStatus) Terminal() bool {
	return s == StatusHospitalized || s == StatusDischarged
}

type Patient struct {
	FiscalCode  string        `json:"fiscal_code"`
	Name        string        `json:"name"`
	Surname     string        `json:"surname"`
	DateOfBirth time.Time     `json:"date_of_birth"`
	Reason      string        `json:"reason"`
	AdmittedAt  time.Time     `json:"admitted_at"`
	Status      PatientStatus `json:"status"`
}

func NewPatient(fiscalCode, name, surname string, dateOfBirth time.Time, reason string, admittedAt time.Time) *Patient {
	return &Patient{
		FiscalCode:  fiscalCode,
		Name:        name,
		Surname:     surname,
		DateOfBirth: DateOf(dateOfBirth),
		Reason:      reason,
		AdmittedAt:  admittedAt,
		Status:      StatusAdmitted,
	}
}

func (p *Patient) AdmissionDate() time.Time {
	return DateOf(p.AdmittedAt)
}
