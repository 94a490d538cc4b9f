package assignment

import (
	"context"
	"fmt"
	"sort"
	"time"

	"emergency-room/internal/models"
)

// Matcher selects eligible professionals for a specialization.
type Matcher struct {
	db ProfessionalStore
}

func NewMatcher(db ProfessionalStore) *Matcher {
	return &Matcher{db: db}
}

// FindInWindow returns the professionals whose availability fully contains w,
// in the store's iteration order.
func (m *Matcher) FindInWindow(ctx context.Context, specialization string, w models.Window) ([]string, error) {
	pros, err := m.db.ProfessionalsBySpecialization(ctx, specialization)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, p := range pros {
		if p.Covers(w) {
			ids = append(ids, p.ID)
		}
	}
	if len(ids) == 0 {
		return nil, models.NotFound("professional in service",
			fmt.Sprintf("%s %s..%s", specialization, w.Start.Format(time.DateOnly), w.End.Format(time.DateOnly)))
	}
	return ids, nil
}

// FindAt returns the professionals eligible for a patient admitted at the
// given instant, sorted by ID so the first entry is the deterministic pick.
func (m *Matcher) FindAt(ctx context.Context, specialization string, at time.Time) ([]string, error) {
	pros, err := m.db.ProfessionalsBySpecialization(ctx, specialization)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, p := range pros {
		if p.OnServiceAround(at) {
			ids = append(ids, p.ID)
		}
	}
	if len(ids) == 0 {
		return nil, models.NotFound("professional in service",
			fmt.Sprintf("%s %s", specialization, at.Format(time.DateOnly)))
	}
	sort.Strings(ids)
	return ids, nil
}
