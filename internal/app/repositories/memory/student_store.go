package memory

import (
	"context"
	"sync"

	"collegegraph/internal/app/models"
	"collegegraph/internal/pkg/apperrors"
)

// StudentStore is an in-memory implementation of repositories.StudentStore
type StudentStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Student
}

// NewStudentStore creates an empty in-memory student store
func NewStudentStore() *StudentStore {
	return &StudentStore{
		nextID: 1,
		rows:   make(map[int64]models.Student),
	}
}

// Create stores a new student and assigns a fresh id
func (s *StudentStore) Create(_ context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	student.ID = s.nextID
	s.nextID++
	s.rows[student.ID] = models.Student{
		ID:        student.ID,
		Name:      student.Name,
		Age:       student.Age,
		CollegeID: student.CollegeID,
	}
	return nil
}

// GetByID returns a copy of the stored student
func (s *StudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return &row, nil
}

// GetAll returns copies of all stored students
func (s *StudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var students []*models.Student
	for _, row := range s.rows {
		student := row
		students = append(students, &student)
	}
	return students, nil
}

// CountByCollegeID counts students referencing the given college
func (s *StudentStore) CountByCollegeID(_ context.Context, collegeID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, row := range s.rows {
		if row.CollegeID == collegeID {
			count++
		}
	}
	return count, nil
}

// Update overwrites name and age of an existing student; the college
// reference is left untouched
func (s *StudentStore) Update(_ context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[student.ID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	row.Name = student.Name
	row.Age = student.Age
	s.rows[student.ID] = row
	return nil
}

// Delete removes a student, reporting whether it existed
func (s *StudentStore) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}
