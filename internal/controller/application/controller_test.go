package application

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"OpenHire-backend/internal/auth"
	"OpenHire-backend/internal/database"
	"OpenHire-backend/internal/middleware"
	"OpenHire-backend/internal/model"
	"OpenHire-backend/internal/testutil"
)

var testDB *database.DB
var testTeardown func(context.Context, ...testcontainers.TerminateOption) error

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	var err error
	testTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}

	m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if testTeardown != nil {
		_ = testTeardown(ctx)
	}
}

func newRouter() *gin.Engine {
	ac := NewController(testDB)

	r := gin.Default()
	protected := r.Group("", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleSeeker))
	protected.POST("/jobs/:id/apply", ac.ApplyToJob)
	protected.POST("/jobs/:id/save", ac.SaveJob)
	protected.DELETE("/jobs/:id/save", ac.UnsaveJob)
	protected.GET("/applications", ac.ListMyApplications)

	return r
}

func seekerToken(t *testing.T, user model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, user.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

func jobApplicationCount(t *testing.T, jobID interface{}) int {
	t.Helper()
	var job model.Job
	require.NoError(t, testDB.Where("id = ?", jobID).First(&job).Error)
	return job.ApplicationCount
}

func TestApplyToJob(t *testing.T) {
	r := newRouter()
	token := seekerToken(t, database.TestUserSeeker1)

	before := jobApplicationCount(t, database.TestJobUrgent.ID)

	endpoint := fmt.Sprintf("/jobs/%s/apply", database.TestJobUrgent.ID)
	rec, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	assert.Equal(t, model.ApplicationStatusPending, resp["status"])

	// Counter bump and application row commit together
	assert.Equal(t, before+1, jobApplicationCount(t, database.TestJobUrgent.ID))
}

func TestApplyToJob_DuplicateRejected(t *testing.T) {
	r := newRouter()
	token := seekerToken(t, database.TestUserSeeker2)

	endpoint := fmt.Sprintf("/jobs/%s/apply", database.TestJobFeatured.ID)
	rec, _ := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	before := jobApplicationCount(t, database.TestJobFeatured.ID)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, resp["error"], "Already applied")

	// Rejected duplicate must not bump the counter
	assert.Equal(t, before, jobApplicationCount(t, database.TestJobFeatured.ID))
}

func TestApplyToJob_UnknownJob(t *testing.T) {
	r := newRouter()
	token := seekerToken(t, database.TestUserSeeker1)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/jobs/1c7e9b14-0000-4000-8000-000000000000/apply", http.MethodPost)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/jobs/garbage/apply", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMyApplications(t *testing.T) {
	r := newRouter()
	token := seekerToken(t, database.TestUserSeeker1)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/applications", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	var applications []model.Application
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &applications))
	require.NotEmpty(t, applications)
	for _, a := range applications {
		assert.Equal(t, database.TestUserSeeker1.ID, a.SeekerID)
	}
}

func TestSaveAndUnsaveJob(t *testing.T) {
	r := newRouter()
	token := seekerToken(t, database.TestUserSeeker1)

	endpoint := fmt.Sprintf("/jobs/%s/save", database.TestJobPlain.ID)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	rec, resp := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, resp["error"], "already saved")

	rec, _ = testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApplyToJob_EmployerForbidden(t *testing.T) {
	r := newRouter()

	employerToken, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Username, database.TestSeedPassword)
	require.NoError(t, err)

	endpoint := fmt.Sprintf("/jobs/%s/apply", database.TestJobUrgent.ID)
	rec, _ := testutil.MakeJSONRequest(nil, employerToken, r, endpoint, http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
