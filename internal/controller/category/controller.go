// Package category provides HTTP handlers for job category lookups.
package category

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"OpenHire-backend/internal/database"
	"OpenHire-backend/internal/model"
	"OpenHire-backend/internal/utilities"
)

// Controller handles category endpoints
type Controller struct {
	DB *database.DB
}

// NewController creates a new instance of Controller
func NewController(db *database.DB) *Controller {
	return &Controller{
		DB: db,
	}
}

// ListCategories returns every category, ordered by name.
// @Summary List job categories
// @Tags Categories
// @Produce json
// @Success 200 {array} model.JobCategory "All categories"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /categories [get]
func (cc *Controller) ListCategories(c *gin.Context) {
	var categories []model.JobCategory
	if err := cc.DB.Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch categories: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, categories)
}
