package models

import "time"

// Assignment is the current patient to professional binding.
type Assignment struct {
	FiscalCode     string    `json:"fiscal_code"`
	ProfessionalID string    `json:"professional_id"`
	AssignedAt     time.Time `json:"assigned_at"`
}
