// Package company provides HTTP handlers for company profile operations.
package company

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"OpenHire-backend/internal/database"
	"OpenHire-backend/internal/model"
	"OpenHire-backend/internal/utilities"
)

// Controller handles company endpoints
type Controller struct {
	DB *database.DB
}

// NewController creates a new instance of Controller
func NewController(db *database.DB) *Controller {
	return &Controller{
		DB: db,
	}
}

// GetCompanyByID returns one company profile.
// @Summary Get company by ID
// @Tags Companies
// @Produce json
// @Param company_id path string true "Company UUID"
// @Success 200 {object} model.Company "The company profile"
// @Failure 400 {object} utilities.ErrorResponse "Invalid company id"
// @Failure 404 {object} utilities.ErrorResponse "Company not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /companies/{company_id} [get]
func (cc *Controller) GetCompanyByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("company_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid company id"})
		return
	}

	company := model.Company{}
	if err := cc.DB.Where("id = ?", id).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve company: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, company)
}

// VerifyCompany marks a company as verified. Admin only.
// @Summary Verify a company profile
// @Tags Companies
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param company_id path string true "Company UUID"
// @Success 200 {object} model.Company "The verified company"
// @Failure 400 {object} utilities.ErrorResponse "Invalid company id"
// @Failure 403 {object} utilities.ErrorResponse "Not an admin"
// @Failure 404 {object} utilities.ErrorResponse "Company not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /companies/{company_id}/verify [patch]
func (cc *Controller) VerifyCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("company_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid company id"})
		return
	}

	company := model.Company{}
	if err := cc.DB.Where("id = ?", id).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve company: %s", err.Error()),
		})
		return
	}

	if err := cc.DB.Model(&company).Updates(map[string]interface{}{
		"is_verified":         true,
		"verification_status": model.StatusVerified,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to verify company: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, company)
}
