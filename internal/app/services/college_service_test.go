package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegegraph/internal/app/repositories/memory"
	"collegegraph/internal/pkg/apperrors"
)

func newCollegeService(t *testing.T) (CollegeService, *memory.CollegeStore, *memory.StudentStore) {
	t.Helper()
	colleges := memory.NewCollegeStore()
	students := memory.NewStudentStore()
	return NewCollegeService(colleges, students), colleges, students
}

func TestCreateCollegeAssignsFreshID(t *testing.T) {
	svc, _, _ := newCollegeService(t)
	ctx := context.Background()

	first, err := svc.CreateCollege(ctx, "Stanford", "California")
	require.NoError(t, err)
	second, err := svc.CreateCollege(ctx, "MIT", "Massachusetts")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	colleges, err := svc.GetAllColleges(ctx)
	require.NoError(t, err)
	require.Len(t, colleges, 2)

	names := []string{colleges[0].Name, colleges[1].Name}
	assert.ElementsMatch(t, []string{"Stanford", "MIT"}, names)
}

func TestGetAllCollegesEmptyStore(t *testing.T) {
	svc, _, _ := newCollegeService(t)

	colleges, err := svc.GetAllColleges(context.Background())
	require.NoError(t, err)
	assert.Empty(t, colleges)
}

func TestUpdateCollegeOverwritesFields(t *testing.T) {
	svc, _, _ := newCollegeService(t)
	ctx := context.Background()

	created, err := svc.CreateCollege(ctx, "Stanford", "California")
	require.NoError(t, err)

	updated, err := svc.UpdateCollege(ctx, created.ID, "Stanford University", "Palo Alto")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Stanford University", updated.Name)
	assert.Equal(t, "Palo Alto", updated.Location)

	colleges, err := svc.GetAllColleges(ctx)
	require.NoError(t, err)
	require.Len(t, colleges, 1)
	assert.Equal(t, "Stanford University", colleges[0].Name)
}

func TestUpdateCollegeNotFound(t *testing.T) {
	svc, _, _ := newCollegeService(t)
	ctx := context.Background()

	_, err := svc.UpdateCollege(ctx, 42, "Nowhere", "Nowhere")
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)

	// A failed update must not create anything
	colleges, err := svc.GetAllColleges(ctx)
	require.NoError(t, err)
	assert.Empty(t, colleges)
}

func TestDeleteCollegeReportsAbsenceAsFalse(t *testing.T) {
	svc, _, _ := newCollegeService(t)
	ctx := context.Background()

	deleted, err := svc.DeleteCollege(ctx, 7)
	require.NoError(t, err)
	assert.False(t, deleted)

	created, err := svc.CreateCollege(ctx, "Stanford", "California")
	require.NoError(t, err)

	deleted, err = svc.DeleteCollege(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete of the same id finds nothing
	deleted, err = svc.DeleteCollege(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteCollegeLeavesStudentsInPlace(t *testing.T) {
	svc, colleges, students := newCollegeService(t)
	ctx := context.Background()

	created, err := svc.CreateCollege(ctx, "Stanford", "California")
	require.NoError(t, err)

	studentSvc := NewStudentService(students, colleges)
	_, err = studentSvc.CreateStudent(ctx, "Alice", 21, created.ID)
	require.NoError(t, err)

	deleted, err := svc.DeleteCollege(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// The student row survives with a dangling college reference
	remaining, err := studentSvc.GetAllStudents(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, created.ID, remaining[0].CollegeID)
}
