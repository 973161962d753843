// Package application provides HTTP handlers for seeker actions on
// listings: applying and bookmarking.
package application

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

// Controller handles application and saved-job endpoints
type Controller struct {
	DB *database.DB
}

// NewController creates a new instance of Controller
func NewController(db *database.DB) *Controller {
	return &Controller{
		DB: db,
	}
}

// loadActiveJob finds the listing a seeker action targets. Only live
// listings accept applications or bookmarks.
func (ac *Controller) loadActiveJob(c *gin.Context) (model.Job, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid job id"})
		return model.Job{}, false
	}

	job := model.Job{}
	if err := ac.DB.Where("id = ? AND status = ?", id, model.JobStatusActive).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return model.Job{}, false
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return model.Job{}, false
	}
	return job, true
}

// ApplyToJob records an application and bumps the listing's application
// counter with a store-level atomic increment.
// @Summary Apply to a job listing
// @Tags Applications
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Job UUID"
// @Success 201 {object} model.Application "Application recorded"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 409 {object} utilities.ErrorResponse "Already applied"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/apply [post]
func (ac *Controller) ApplyToJob(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	job, ok := ac.loadActiveJob(c)
	if !ok {
		return
	}

	var existing model.Application
	err = ac.DB.Where("job_id = ? AND seeker_id = ?", job.ID, user.ID).First(&existing).Error
	switch {
	case err == nil:
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "Already applied to this job"})
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Do nothing
	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to check existing application: %s", err.Error()),
		})
		return
	}

	application := model.Application{
		JobID:    job.ID,
		SeekerID: user.ID,
		Status:   model.ApplicationStatusPending,
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&application).Error; err != nil {
			return err
		}
		return tx.Model(&model.Job{}).
			Where("id = ?", job.ID).
			UpdateColumn("application_count", gorm.Expr("application_count + ?", 1)).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, application)
}

// ListMyApplications returns the caller's applications, newest first.
// @Summary List the caller's applications
// @Tags Applications
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Application "Applications of the caller"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications [get]
func (ac *Controller) ListMyApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var applications []model.Application
	if err := ac.DB.
		Where("seeker_id = ?", user.ID).
		Order("applied_at DESC").
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to fetch applications: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, applications)
}

// SaveJob bookmarks a listing for the caller.
// @Summary Save a job listing
// @Tags Applications
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Job UUID"
// @Success 201 {object} model.SavedJob "Listing saved"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 409 {object} utilities.ErrorResponse "Already saved"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/save [post]
func (ac *Controller) SaveJob(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	job, ok := ac.loadActiveJob(c)
	if !ok {
		return
	}

	var existing model.SavedJob
	err = ac.DB.Where("job_id = ? AND seeker_id = ?", job.ID, user.ID).First(&existing).Error
	switch {
	case err == nil:
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "Job already saved"})
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Do nothing
	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to check saved job: %s", err.Error()),
		})
		return
	}

	saved := model.SavedJob{
		JobID:    job.ID,
		SeekerID: user.ID,
	}
	if err := ac.DB.Create(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to save job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// UnsaveJob removes a bookmark.
// @Summary Remove a saved job listing
// @Tags Applications
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Job UUID"
// @Success 200 {object} utilities.MessageResponse "Bookmark removed"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Bookmark not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/save [delete]
func (ac *Controller) UnsaveJob(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid job id"})
		return
	}

	result := ac.DB.Where("job_id = ? AND seeker_id = ?", id, user.ID).Delete(&model.SavedJob{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to remove saved job: %s", result.Error.Error()),
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Saved job not found"})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Saved job removed"})
}
