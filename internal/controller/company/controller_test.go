package company

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"OpenHire-backend/internal/auth"
	"OpenHire-backend/internal/database"
	"OpenHire-backend/internal/middleware"
	"OpenHire-backend/internal/model"
	"OpenHire-backend/internal/testutil"
	"OpenHire-backend/internal/utilities"
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
	cc := NewController(testDB)

	r := gin.Default()
	r.GET("/companies/:company_id", cc.GetCompanyByID)
	r.PATCH("/companies/:company_id/verify",
		middleware.RequireAuth(testDB),
		middleware.CheckRole(model.RoleAdmin),
		cc.VerifyCompany)

	return r
}

// adminToken seeds an admin account on first use and logs it in.
func adminToken(t *testing.T) string {
	t.Helper()

	var admin model.User
	err := testDB.Where("role = ?", model.RoleAdmin).First(&admin).Error
	if err != nil {
		hashed, hashErr := utilities.HashPassword(database.TestSeedPassword)
		require.NoError(t, hashErr)
		admin = model.User{
			ID:       uuid.New(),
			Username: "admin_verify",
			Password: hashed,
			Role:     model.RoleAdmin,
		}
		require.NoError(t, testDB.Create(&admin).Error)
	}

	token, err := auth.GetAccessToken(t, testDB, admin.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

func TestGetCompanyByID(t *testing.T) {
	r := newRouter()

	endpoint := fmt.Sprintf("/companies/%s", database.TestCompany1.ID)
	rec, resp := testutil.MakeJSONRequest(nil, "", r, endpoint, http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, database.TestCompany1.Name, resp["name"])
	assert.Equal(t, true, resp["is_verified"])
}

func TestGetCompanyByID_NotFound(t *testing.T) {
	r := newRouter()

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/companies/2f6a1c90-0000-4000-8000-000000000000", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/companies/not-a-uuid", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyCompany(t *testing.T) {
	r := newRouter()
	token := adminToken(t)

	endpoint := fmt.Sprintf("/companies/%s/verify", database.TestCompany2.ID)
	rec, _ := testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var company model.Company
	require.NoError(t, testDB.Where("id = ?", database.TestCompany2.ID).First(&company).Error)
	assert.True(t, company.IsVerified)
	assert.Equal(t, model.StatusVerified, company.VerificationStatus)
}

func TestVerifyCompany_NonAdminForbidden(t *testing.T) {
	r := newRouter()

	employerToken, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Username, database.TestSeedPassword)
	require.NoError(t, err)

	endpoint := fmt.Sprintf("/companies/%s/verify", database.TestCompany2.ID)
	rec, _ := testutil.MakeJSONRequest(nil, employerToken, r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
