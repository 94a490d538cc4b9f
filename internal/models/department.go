package models

type Department struct {
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
}

func NewDepartment(name string, capacity int) *Department {
	if capacity < 0 {
		capacity = 0
	}
	return &Department{Name: name, Capacity: capacity, Remaining: capacity}
}

// Reserve takes one bed if any is left.
func (d *Department) Reserve() bool {
	if d.Remaining <= 0 {
		return false
	}
	d.Remaining--
	return true
}
