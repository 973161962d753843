package middleware

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

func protectedRouter(roles ...string) *gin.Engine {
	r := gin.Default()
	handlers := []gin.HandlerFunc{RequireAuth(testDB)}
	if len(roles) > 0 {
		handlers = append(handlers, CheckRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		user, err := utilities.ExtractUser(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := protectedRouter()

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/protected", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, resp["error"])
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	r := protectedRouter()

	rec, _ := testutil.MakeJSONRequest(nil, "not-a-jwt", r, "/protected", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_UnknownUser(t *testing.T) {
	r := protectedRouter()

	// Token signed correctly but for a user that does not exist
	token, err := auth.GenerateStandardToken(uuid.New())
	require.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, resp["error"], "not exist")
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r := protectedRouter()

	token, err := auth.GetAccessToken(t, testDB, database.TestUserSeeker1.Username, database.TestSeedPassword)
	require.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	assert.Equal(t, database.TestUserSeeker1.Username, resp["username"])
}

func TestCheckRole_Allows(t *testing.T) {
	r := protectedRouter(model.RoleSeeker)

	token, err := auth.GetAccessToken(t, testDB, database.TestUserSeeker1.Username, database.TestSeedPassword)
	require.NoError(t, err)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckRole_Forbids(t *testing.T) {
	r := protectedRouter(model.RoleAdmin)

	token, err := auth.GetAccessToken(t, testDB, database.TestUserSeeker1.Username, database.TestSeedPassword)
	require.NoError(t, err)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, "/protected", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, resp["error"], "permission")
}

func TestRateLimiter(t *testing.T) {
	r := gin.Default()
	r.Use(RateLimiterMiddleware(2))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/ping", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/ping", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp := testutil.MakeJSONRequest(nil, "", r, "/ping", http.MethodGet)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, resp["error"], "Too many requests")
}

func TestSizeLimit(t *testing.T) {
	r := gin.Default()
	r.POST("/upload", SizeLimit(64), func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	rec, _ := testutil.MakeJSONRequest(gin.H{"note": "tiny"}, "", r, "/upload", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)

	big := make([]byte, 256)
	for i := range big {
		big[i] = 'a'
	}
	rec, _ = testutil.MakeJSONRequest(gin.H{"note": string(big)}, "", r, "/upload", http.MethodPost)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
