package models

// College represents an educational institution
type College struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`

	// Students enrolled at this college, populated on demand
	Students []Student `json:"students,omitempty"`
}
