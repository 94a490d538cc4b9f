// Package audit keeps the append-only history of patient assignments. The
// assignment ledger only holds the current binding; every binding it writes
// is also recorded here.
package audit

import (
	"context"
	"sync"
	"time"

	"emergency-room/internal/models"

	"github.com/google/uuid"
)

type Entry struct {
	ID             string    `json:"id"`
	FiscalCode     string    `json:"fiscal_code"`
	ProfessionalID string    `json:"professional_id"`
	RecordedAt     time.Time `json:"recorded_at"`
}

type Log struct {
	mu      sync.RWMutex
	entries []Entry
	newID   func() string
}

func NewLog() *Log {
	return &Log{newID: uuid.NewString}
}

// Record appends the binding; it never rewrites earlier entries.
func (l *Log) Record(ctx context.Context, a *models.Assignment) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{
		ID:             l.newID(),
		FiscalCode:     a.FiscalCode,
		ProfessionalID: a.ProfessionalID,
		RecordedAt:     a.AssignedAt,
	})
	return nil
}

// History returns the patient's entries, oldest first.
func (l *Log) History(ctx context.Context, fiscalCode string) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var result []Entry
	for _, e := range l.entries {
		if e.FiscalCode == fiscalCode {
			result = append(result, e)
		}
	}
	return result
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
