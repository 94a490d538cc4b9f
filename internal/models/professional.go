package models

import "time"

const DefaultWorkingHours = "24/7"

type Professional struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Specialization string    `json:"specialization"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	WorkingHours   string    `json:"working_hours"`
}

// NewProfessional normalizes the availability bounds to calendar dates.
func NewProfessional(id, name, surname, specialization string, start, end time.Time) *Professional {
	return &Professional{
		ID:             id,
		Name:           name,
		Surname:        surname,
		Specialization: specialization,
		Start:          DateOf(start),
		End:            DateOf(end),
		WorkingHours:   DefaultWorkingHours,
	}
}

// Covers reports whether the availability window fully contains the
// calendar dates of w.
func (p *Professional) Covers(w Window) bool {
	return !p.Start.After(DateOf(w.Start)) && !p.End.Before(DateOf(w.End))
}

// OnServiceAround is the admission-time eligibility check. It is an OR of the
// two bounds, so any professional whose window starts before the date or ends
// after it qualifies.
func (p *Professional) OnServiceAround(date time.Time) bool {
	d := DateOf(date)
	return !p.Start.After(d) || !p.End.Before(d)
}
