package services

import (
	"context"
	"errors"
	"fmt"

	"collegegraph/internal/app/models"
	"collegegraph/internal/app/repositories"
	"collegegraph/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	// CreateStudent fails with ErrCollegeNotFound when the referenced
	// college does not exist.
	CreateStudent(ctx context.Context, name string, age int, collegeID int64) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, name string, age int) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) (bool, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo repositories.StudentStore
	collegeRepo repositories.CollegeStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentStore, collegeRepo repositories.CollegeStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		collegeRepo: collegeRepo,
	}
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// CreateStudent creates a new student after checking the referenced college
// exists. No student row is written when the check fails.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, name string, age int, collegeID int64) (*models.Student, error) {
	if _, err := s.collegeRepo.GetByID(ctx, collegeID); err != nil {
		if errors.Is(err, apperrors.ErrCollegeNotFound) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error checking college: %w", err)
	}

	student := &models.Student{
		Name:      name,
		Age:       age,
		CollegeID: collegeID,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// UpdateStudent overwrites name and age of an existing student. The college
// reference is not editable and is not re-validated here.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, name string, age int) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	student.Name = name
	student.Age = age

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent removes a student by id, reporting whether it existed
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error deleting student: %w", err)
	}
	return deleted, nil
}
