package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"collegegraph/internal/app/models"
)

// CollegeStore is the storage contract for colleges. Services depend on this
// interface; the pgx repositories implement it against Postgres and the
// memory package implements it for tests.
type CollegeStore interface {
	Create(ctx context.Context, college *models.College) error
	GetByID(ctx context.Context, id int64) (*models.College, error)
	GetAll(ctx context.Context) ([]*models.College, error)
	Update(ctx context.Context, college *models.College) error
	// Delete reports whether a row was removed; a missing id is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}

// StudentStore is the storage contract for students.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	// CountByCollegeID counts students referencing the given college.
	CountByCollegeID(ctx context.Context, collegeID int64) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository *CollegeRepository
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CollegeRepository: NewCollegeRepository(db),
		StudentRepository: NewStudentRepository(db),
	}
}
