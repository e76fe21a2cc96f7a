package graph

import (
	"context"
	"encoding/json"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegegraph/internal/app/repositories/memory"
	"collegegraph/internal/app/services"
)

func newTestSchema(t *testing.T) *graphql.Schema {
	t.Helper()
	colleges := memory.NewCollegeStore()
	students := memory.NewStudentStore()
	svcs := &services.Services{
		CollegeService: services.NewCollegeService(colleges, students),
		StudentService: services.NewStudentService(students, colleges),
	}
	return MustParseSchema(NewResolver(svcs))
}

// exec runs a GraphQL document and decodes the data payload into out,
// requiring a clean errors list.
func exec(t *testing.T, schema *graphql.Schema, query string, out interface{}) {
	t.Helper()
	resp := schema.Exec(context.Background(), query, "", nil)
	require.Empty(t, resp.Errors, "unexpected GraphQL errors: %v", resp.Errors)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func TestSchemaParses(t *testing.T) {
	// MustParseSchema panics on any resolver/schema mismatch
	newTestSchema(t)
}

func TestCollegesQueryEmpty(t *testing.T) {
	schema := newTestSchema(t)

	var data struct {
		Colleges []struct {
			ID int32 `json:"id"`
		} `json:"colleges"`
	}
	exec(t, schema, `{ colleges { id } }`, &data)
	assert.Empty(t, data.Colleges)
}

func TestStudentsQueryEmpty(t *testing.T) {
	schema := newTestSchema(t)

	var data struct {
		Students []struct {
			ID int32 `json:"id"`
		} `json:"students"`
	}
	exec(t, schema, `{ students { id } }`, &data)
	assert.Empty(t, data.Students)
}

func TestCreateCollegeMutation(t *testing.T) {
	schema := newTestSchema(t)

	var created struct {
		CreateCollege struct {
			ID       int32  `json:"id"`
			Name     string `json:"name"`
			Location string `json:"location"`
		} `json:"createCollege"`
	}
	exec(t, schema, `mutation {
		createCollege(name: "Stanford", location: "California") { id name location }
	}`, &created)

	assert.Equal(t, int32(1), created.CreateCollege.ID)
	assert.Equal(t, "Stanford", created.CreateCollege.Name)
	assert.Equal(t, "California", created.CreateCollege.Location)

	var listed struct {
		Colleges []struct {
			ID       int32  `json:"id"`
			Name     string `json:"name"`
			Location string `json:"location"`
		} `json:"colleges"`
	}
	exec(t, schema, `{ colleges { id name location } }`, &listed)
	require.Len(t, listed.Colleges, 1)
	assert.Equal(t, "Stanford", listed.Colleges[0].Name)
}

func TestUpdateCollegeNotFoundSurfacesAsError(t *testing.T) {
	schema := newTestSchema(t)

	resp := schema.Exec(context.Background(), `mutation {
		updateCollege(id: 99, name: "X", location: "Y") { id }
	}`, "", nil)

	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0].Message, "college not found")
}

func TestCreateStudentUnknownCollegeSurfacesAsError(t *testing.T) {
	schema := newTestSchema(t)

	resp := schema.Exec(context.Background(), `mutation {
		createStudent(name: "Alice", age: 21, collegeId: 99) { id }
	}`, "", nil)

	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0].Message, "college not found")

	var data struct {
		Students []struct {
			ID int32 `json:"id"`
		} `json:"students"`
	}
	exec(t, schema, `{ students { id } }`, &data)
	assert.Empty(t, data.Students)
}

func TestDeleteCollegeReturnsFalseNotError(t *testing.T) {
	schema := newTestSchema(t)

	var data struct {
		DeleteCollege bool `json:"deleteCollege"`
	}
	exec(t, schema, `mutation { deleteCollege(id: 12) }`, &data)
	assert.False(t, data.DeleteCollege)
}

func TestCollegeStudentLifecycle(t *testing.T) {
	schema := newTestSchema(t)

	var college struct {
		CreateCollege struct {
			ID int32 `json:"id"`
		} `json:"createCollege"`
	}
	exec(t, schema, `mutation {
		createCollege(name: "Stanford", location: "California") { id }
	}`, &college)
	require.Equal(t, int32(1), college.CreateCollege.ID)

	var student struct {
		CreateStudent struct {
			ID        int32  `json:"id"`
			Name      string `json:"name"`
			Age       int32  `json:"age"`
			CollegeID int32  `json:"collegeId"`
		} `json:"createStudent"`
	}
	exec(t, schema, `mutation {
		createStudent(name: "Alice", age: 21, collegeId: 1) { id name age collegeId }
	}`, &student)
	assert.Equal(t, int32(1), student.CreateStudent.ID)
	assert.Equal(t, "Alice", student.CreateStudent.Name)
	assert.Equal(t, int32(21), student.CreateStudent.Age)
	assert.Equal(t, int32(1), student.CreateStudent.CollegeID)

	var listed struct {
		Students []struct {
			ID        int32  `json:"id"`
			Name      string `json:"name"`
			Age       int32  `json:"age"`
			CollegeID int32  `json:"collegeId"`
		} `json:"students"`
	}
	exec(t, schema, `{ students { id name age collegeId } }`, &listed)
	require.Len(t, listed.Students, 1)
	assert.Equal(t, "Alice", listed.Students[0].Name)

	var updated struct {
		UpdateStudent struct {
			ID        int32  `json:"id"`
			Name      string `json:"name"`
			Age       int32  `json:"age"`
			CollegeID int32  `json:"collegeId"`
		} `json:"updateStudent"`
	}
	exec(t, schema, `mutation {
		updateStudent(id: 1, name: "Jorge", age: 23) { id name age collegeId }
	}`, &updated)
	assert.Equal(t, "Jorge", updated.UpdateStudent.Name)
	assert.Equal(t, int32(23), updated.UpdateStudent.Age)
	assert.Equal(t, int32(1), updated.UpdateStudent.CollegeID)

	var deleted struct {
		DeleteStudent bool `json:"deleteStudent"`
	}
	exec(t, schema, `mutation { deleteStudent(id: 1) }`, &deleted)
	assert.True(t, deleted.DeleteStudent)

	// Deleting the same student again reports absence
	var deletedAgain struct {
		DeleteStudent bool `json:"deleteStudent"`
	}
	exec(t, schema, `mutation { deleteStudent(id: 1) }`, &deletedAgain)
	assert.False(t, deletedAgain.DeleteStudent)
}

func TestUpdateCollegeMutation(t *testing.T) {
	schema := newTestSchema(t)

	var college struct {
		CreateCollege struct {
			ID int32 `json:"id"`
		} `json:"createCollege"`
	}
	exec(t, schema, `mutation {
		createCollege(name: "Stanford", location: "California") { id }
	}`, &college)

	var updated struct {
		UpdateCollege struct {
			ID       int32  `json:"id"`
			Name     string `json:"name"`
			Location string `json:"location"`
		} `json:"updateCollege"`
	}
	exec(t, schema, `mutation {
		updateCollege(id: 1, name: "Stanford University", location: "Palo Alto") { id name location }
	}`, &updated)

	assert.Equal(t, int32(1), updated.UpdateCollege.ID)
	assert.Equal(t, "Stanford University", updated.UpdateCollege.Name)
	assert.Equal(t, "Palo Alto", updated.UpdateCollege.Location)
}
