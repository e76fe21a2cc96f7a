package graph

import (
	"context"

	"collegegraph/internal/app/models"
	"collegegraph/internal/app/services"
)

// College is the public view of a college row
type College struct {
	ID       int32
	Name     string
	Location string
}

// Student is the public view of a student row
type Student struct {
	ID        int32
	Name      string
	Age       int32
	CollegeID int32
}

// Resolver is the root resolver implementing every query and mutation of
// the schema on top of the application services.
type Resolver struct {
	colleges services.CollegeService
	students services.StudentService
}

// NewResolver creates the root resolver
func NewResolver(svcs *services.Services) *Resolver {
	return &Resolver{
		colleges: svcs.CollegeService,
		students: svcs.StudentService,
	}
}

// Colleges resolves the colleges query
func (r *Resolver) Colleges(ctx context.Context) ([]College, error) {
	colleges, err := r.colleges.GetAllColleges(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]College, 0, len(colleges))
	for _, college := range colleges {
		views = append(views, toCollegeView(college))
	}
	return views, nil
}

// Students resolves the students query
func (r *Resolver) Students(ctx context.Context) ([]Student, error) {
	students, err := r.students.GetAllStudents(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]Student, 0, len(students))
	for _, student := range students {
		views = append(views, toStudentView(student))
	}
	return views, nil
}

// CreateCollege resolves the createCollege mutation
func (r *Resolver) CreateCollege(ctx context.Context, args struct {
	Name     string
	Location string
}) (College, error) {
	college, err := r.colleges.CreateCollege(ctx, args.Name, args.Location)
	if err != nil {
		return College{}, err
	}
	return toCollegeView(college), nil
}

// UpdateCollege resolves the updateCollege mutation
func (r *Resolver) UpdateCollege(ctx context.Context, args struct {
	ID       int32
	Name     string
	Location string
}) (College, error) {
	college, err := r.colleges.UpdateCollege(ctx, int64(args.ID), args.Name, args.Location)
	if err != nil {
		return College{}, err
	}
	return toCollegeView(college), nil
}

// DeleteCollege resolves the deleteCollege mutation. Absence of the id is
// reported as false, not as an error.
func (r *Resolver) DeleteCollege(ctx context.Context, args struct {
	ID int32
}) (bool, error) {
	return r.colleges.DeleteCollege(ctx, int64(args.ID))
}

// CreateStudent resolves the createStudent mutation
func (r *Resolver) CreateStudent(ctx context.Context, args struct {
	Name      string
	Age       int32
	CollegeID int32
}) (Student, error) {
	student, err := r.students.CreateStudent(ctx, args.Name, int(args.Age), int64(args.CollegeID))
	if err != nil {
		return Student{}, err
	}
	return toStudentView(student), nil
}

// UpdateStudent resolves the updateStudent mutation
func (r *Resolver) UpdateStudent(ctx context.Context, args struct {
	ID   int32
	Name string
	Age  int32
}) (Student, error) {
	student, err := r.students.UpdateStudent(ctx, int64(args.ID), args.Name, int(args.Age))
	if err != nil {
		return Student{}, err
	}
	return toStudentView(student), nil
}

// DeleteStudent resolves the deleteStudent mutation
func (r *Resolver) DeleteStudent(ctx context.Context, args struct {
	ID int32
}) (bool, error) {
	return r.students.DeleteStudent(ctx, int64(args.ID))
}

func toCollegeView(college *models.College) College {
	return College{
		ID:       int32(college.ID),
		Name:     college.Name,
		Location: college.Location,
	}
}

func toStudentView(student *models.Student) Student {
	return Student{
		ID:        int32(student.ID),
		Name:      student.Name,
		Age:       int32(student.Age),
		CollegeID: int32(student.CollegeID),
	}
}
