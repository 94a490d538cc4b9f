package models

import "time"

type Report struct {
	ID             int64     `json:"id"`
	ProfessionalID string    `json:"professional_id"`
	FiscalCode     string    `json:"fiscal_code"`
	Date           time.Time `json:"date"`
	Description    string    `json:"description"`
}
