package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collegegraph/internal/app/repositories/memory"
	"collegegraph/internal/app/services"
	"collegegraph/internal/graph"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	colleges := memory.NewCollegeStore()
	students := memory.NewStudentStore()
	svcs := &services.Services{
		CollegeService: services.NewCollegeService(colleges, students),
		StudentService: services.NewStudentService(students, colleges),
	}
	schema := graph.MustParseSchema(graph.NewResolver(svcs))

	router := gin.New()
	SetupRouter(router, schema)
	return router
}

func TestLivenessRoute(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "hello world !"}`, w.Body.String())
}

func TestGraphQLEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{"query": "{ colleges { id name location } }"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Colleges []interface{} `json:"colleges"`
		} `json:"data"`
		Errors []interface{} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Errors)
	assert.Empty(t, resp.Data.Colleges)
}

func TestGraphQLMutationOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	body := `{"query": "mutation { createCollege(name: \"Stanford\", location: \"California\") { id name location } }"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			CreateCollege struct {
				ID       int32  `json:"id"`
				Name     string `json:"name"`
				Location string `json:"location"`
			} `json:"createCollege"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int32(1), resp.Data.CreateCollege.ID)
	assert.Equal(t, "Stanford", resp.Data.CreateCollege.Name)
	assert.Equal(t, "California", resp.Data.CreateCollege.Location)
}
