// Package memory provides mutex-guarded in-memory implementations of the
// storage contracts. They back the service and resolver tests so the suite
// runs without a live Postgres.
package memory

import (
	"context"
	"sync"

	"collegegraph/internal/app/models"
	"collegegraph/internal/pkg/apperrors"
)

// CollegeStore is an in-memory implementation of repositories.CollegeStore
type CollegeStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.College
}

// NewCollegeStore creates an empty in-memory college store
func NewCollegeStore() *CollegeStore {
	return &CollegeStore{
		nextID: 1,
		rows:   make(map[int64]models.College),
	}
}

// Create stores a new college and assigns a fresh id
func (s *CollegeStore) Create(_ context.Context, college *models.College) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	college.ID = s.nextID
	s.nextID++
	s.rows[college.ID] = models.College{
		ID:       college.ID,
		Name:     college.Name,
		Location: college.Location,
	}
	return nil
}

// GetByID returns a copy of the stored college
func (s *CollegeStore) GetByID(_ context.Context, id int64) (*models.College, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, apperrors.ErrCollegeNotFound
	}
	return &row, nil
}

// GetAll returns copies of all stored colleges
func (s *CollegeStore) GetAll(_ context.Context) ([]*models.College, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var colleges []*models.College
	for _, row := range s.rows {
		college := row
		colleges = append(colleges, &college)
	}
	return colleges, nil
}

// Update overwrites name and location of an existing college
func (s *CollegeStore) Update(_ context.Context, college *models.College) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[college.ID]
	if !ok {
		return apperrors.ErrCollegeNotFound
	}
	row.Name = college.Name
	row.Location = college.Location
	s.rows[college.ID] = row
	return nil
}

// Delete removes a college, reporting whether it existed
func (s *CollegeStore) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}
