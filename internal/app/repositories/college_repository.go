package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"collegegraph/internal/app/models"
	"collegegraph/internal/pkg/apperrors"
	"collegegraph/internal/pkg/dberrors"
)

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
	}
}

// Create inserts a new college and assigns its generated id
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	query := `
		INSERT INTO colleges (name, location)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, college.Name, college.Location).Scan(&college.ID)
	if err != nil {
		return fmt.Errorf("error creating college: %w", err)
	}

	return nil
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	query := `
		SELECT id, name, location
		FROM colleges
		WHERE id = $1
	`

	var college models.College
	err := r.db.QueryRow(ctx, query, id).Scan(
		&college.ID,
		&college.Name,
		&college.Location,
	)

	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}

	return &college, nil
}

// GetAll retrieves all colleges
func (r *CollegeRepository) GetAll(ctx context.Context) ([]*models.College, error) {
	query := `
		SELECT id, name, location
		FROM colleges
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colleges []*models.College
	for rows.Next() {
		var college models.College
		if err := rows.Scan(
			&college.ID,
			&college.Name,
			&college.Location,
		); err != nil {
			return nil, err
		}
		colleges = append(colleges, &college)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return colleges, nil
}

// Update overwrites a college's name and location
func (r *CollegeRepository) Update(ctx context.Context, college *models.College) error {
	query := `
		UPDATE colleges
		SET name = $1, location = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, college.Name, college.Location, college.ID)
	if err != nil {
		return fmt.Errorf("error updating college: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}

// Delete removes a college by ID. It reports whether a row was deleted;
// a missing id is a normal outcome, not an error.
func (r *CollegeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM colleges
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("error deleting college: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}
