package category

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

	"OpenHire-backend/internal/database"
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

func TestListCategories(t *testing.T) {
	cc := NewController(testDB)
	r := gin.Default()
	r.GET("/categories", cc.ListCategories)

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/categories", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	var categories []model.JobCategory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 2)

	// Ordered by name
	assert.Equal(t, database.TestCategoryArt.Name, categories[0].Name)
	assert.Equal(t, database.TestCategoryTech.Name, categories[1].Name)
	assert.Equal(t, database.TestCategoryTech.Slug, categories[1].Slug)
}
