package apperrors

import "errors"

// College errors
var (
	ErrCollegeNotFound = errors.New("college not found")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)
