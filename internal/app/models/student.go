package models

// Student represents a student enrolled at a college
type Student struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	CollegeID int64    `json:"college_id"`
	College   *College `json:"college,omitempty"`
}
