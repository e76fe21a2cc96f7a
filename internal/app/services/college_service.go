package services

import (
	"context"
	"fmt"

	"collegegraph/internal/app/models"
	"collegegraph/internal/app/repositories"
	"collegegraph/internal/pkg/logger"
)

// CollegeService defines the interface for college-related operations
type CollegeService interface {
	GetAllColleges(ctx context.Context) ([]*models.College, error)
	CreateCollege(ctx context.Context, name, location string) (*models.College, error)
	UpdateCollege(ctx context.Context, id int64, name, location string) (*models.College, error)
	// DeleteCollege reports whether the college existed; absence is a
	// normal outcome, never an error.
	DeleteCollege(ctx context.Context, id int64) (bool, error)
}

// collegeServiceImpl implements the CollegeService interface
type collegeServiceImpl struct {
	collegeRepo repositories.CollegeStore
	studentRepo repositories.StudentStore
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeRepo repositories.CollegeStore, studentRepo repositories.StudentStore) CollegeService {
	return &collegeServiceImpl{
		collegeRepo: collegeRepo,
		studentRepo: studentRepo,
	}
}

// GetAllColleges retrieves all colleges. An empty store yields an empty
// result, never an error.
func (s *collegeServiceImpl) GetAllColleges(ctx context.Context) ([]*models.College, error) {
	colleges, err := s.collegeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving colleges: %w", err)
	}
	return colleges, nil
}

// CreateCollege creates a new college and returns it with its assigned id
func (s *collegeServiceImpl) CreateCollege(ctx context.Context, name, location string) (*models.College, error) {
	college := &models.College{
		Name:     name,
		Location: location,
	}

	if err := s.collegeRepo.Create(ctx, college); err != nil {
		return nil, err
	}
	return college, nil
}

// UpdateCollege overwrites name and location of an existing college.
// Fails with ErrCollegeNotFound when the id is absent.
func (s *collegeServiceImpl) UpdateCollege(ctx context.Context, id int64, name, location string) (*models.College, error) {
	college := &models.College{
		ID:       id,
		Name:     name,
		Location: location,
	}

	if err := s.collegeRepo.Update(ctx, college); err != nil {
		return nil, err
	}
	return college, nil
}

// DeleteCollege removes a college by id. Students referencing the removed
// college are left in place; the dangling references are logged but not
// cleaned up.
func (s *collegeServiceImpl) DeleteCollege(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.collegeRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error deleting college: %w", err)
	}

	if deleted {
		orphaned, countErr := s.studentRepo.CountByCollegeID(ctx, id)
		if countErr != nil {
			logger.Warn().Err(countErr).Int64("collegeId", id).Msg("Could not count students of deleted college")
		} else if orphaned > 0 {
			logger.Warn().Int64("collegeId", id).Int64("students", orphaned).Msg("Deleted college still referenced by students")
		}
	}

	return deleted, nil
}
