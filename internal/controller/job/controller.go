// Package job provides HTTP handlers for job listing operations.
package job

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"OpenHire-backend/internal/database"
	"OpenHire-backend/internal/model"
	"OpenHire-backend/internal/search"
	"OpenHire-backend/internal/utilities"
)

// Controller handles job listing endpoints
type Controller struct {
	DB *database.DB
}

// NewController creates a new instance of Controller
func NewController(db *database.DB) *Controller {
	return &Controller{
		DB: db,
	}
}

// SearchJobs runs a filtered, paginated search over live listings.
// @Summary Search live job listings
// @Description All parameters are optional; absence means no constraint. employmentType and isRemote are accepted as aliases of positionType and remotePolicy.
// @Tags Jobs
// @Produce json
// @Param query query string false "Substring match against title, description, and company name, case insensitive"
// @Param location query string false "Substring match against city, province, and country, case insensitive"
// @Param positionType query string false "Exact position type"
// @Param remotePolicy query string false "Exact remote policy (on-site, hybrid, remote)"
// @Param experienceLevel query string false "Exact experience level"
// @Param categoryId query string false "Category UUID"
// @Param salaryMin query number false "Listings must offer salary_min at or above this"
// @Param salaryMax query number false "Listings must offer salary_max at or below this"
// @Param page query integer false "1-based page, default 1"
// @Param limit query integer false "Page size, default 10, max 100"
// @Success 200 {object} map[string]interface{} "success, data, pagination"
// @Failure 400 {object} map[string]interface{} "Malformed filter value"
// @Failure 500 {object} map[string]interface{} "Search failed"
// @Router /jobs/search [get]
func (jc *Controller) SearchJobs(c *gin.Context) {
	filters, err := search.FromValues(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	condition, args := search.Compile(search.Build(filters, time.Now()))

	// Count and page run against the same compiled predicate
	query := func() *gorm.DB {
		q := jc.DB.Model(&model.Job{})
		if search.NeedsCompanyJoin(filters) {
			q = q.Joins("JOIN companies ON companies.id = jobs.company_id")
		}
		return q.Where(condition, args...)
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		log.Printf("job search count failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to search jobs"})
		return
	}

	var jobs []model.Job
	if err := query().
		Preload("Company").
		Preload("Category").
		Order(search.OrderBy).
		Offset(filters.Offset()).
		Limit(filters.Limit).
		Find(&jobs).Error; err != nil {
		log.Printf("job search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to search jobs"})
		return
	}

	data := make([]model.JobResponse, 0, len(jobs))
	for i := range jobs {
		data = append(data, jobs[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       data,
		"pagination": search.Paginate(filters.Page, filters.Limit, total),
	})
}

// GetJobByID fetches a single listing and bumps its view counter.
// The bump is a store-level atomic increment performed only after the read
// succeeded, so concurrent viewers each count once and a missing job
// mutates nothing.
// @Summary Get job listing by ID
// @Description Fetching a listing increments its view count by one
// @Tags Jobs
// @Produce json
// @Param id path string true "Job UUID"
// @Success 200 {object} model.JobResponse "The listing, including the incremented view count"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (jc *Controller) GetJobByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid job id"})
		return
	}

	job := model.Job{}
	if err := jc.DB.
		Preload("Company").
		Preload("Category").
		Where("id = ?", id).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	if err := jc.DB.Model(&model.Job{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to record job view: %s", err.Error()),
		})
		return
	}

	resp := job.ToResponse()
	resp.ViewCount = job.ViewCount + 1
	resp.CompanyDescription = job.Company.Description
	resp.CompanyWebsite = job.Company.Website

	c.JSON(http.StatusOK, resp)
}

// CreateJob handles the creation of a new listing by an employer.
// @Summary Create job listing based on given json structure
// @Description Only employer accounts linked to a company have access to this endpoint
// @Tags Jobs
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Job body model.EditableJobInfo true "Input listing information"
// @Success 201 {object} model.JobResponse "Successfully created listing"
// @Failure 400 {object} utilities.ErrorResponse "Invalid listing struct or violated invariant"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [post]
func (jc *Controller) CreateJob(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var employer model.Employer
	if err := jc.DB.Where("user_id = ?", user.ID).First(&employer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "Only employer accounts can create job listings"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve employer information: %s", err.Error()),
		})
		return
	}
	if employer.CompanyID == nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Employer profile is not linked to a company",
		})
		return
	}

	job := model.Job{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&job.EditableJobInfo); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	if job.Status == "" {
		job.Status = model.JobStatusActive
	}
	if err := job.EditableJobInfo.Validate(time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	job.CompanyID = *employer.CompanyID
	job.EmployerID = user.ID
	if err := jc.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create job listing: ", err),
		})
		return
	}

	if err := jc.DB.Preload("Company").Preload("Category").First(&job, "id = ?", job.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve created listing: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, job.ToResponse())
}

// EditJob applies a merge-patch to a listing: only supplied fields change.
// @Summary Edit job listing based on given json structure
// @Description Only the employer that owns the listing or admin have access to this endpoint; omitted fields are left untouched
// @Tags Jobs
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Job UUID"
// @Param Job body model.JobPatch true "Fields to change"
// @Success 200 {object} model.JobResponse "Successfully updated listing"
// @Failure 400 {object} utilities.ErrorResponse "Invalid patch or violated invariant"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not have permission to edit"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [patch]
func (jc *Controller) EditJob(c *gin.Context) {
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

	job := model.Job{}
	if err := jc.DB.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	if job.EmployerID != user.ID && user.Role != model.RoleAdmin {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to edit this job listing",
		})
		return
	}

	patch := model.JobPatch{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse request body: %s", err.Error()),
		})
		return
	}

	if err := patch.Validate(&job); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	if updates := patch.Updates(); len(updates) > 0 {
		if err := jc.DB.Model(&job).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to update job listing: %s", err.Error()),
			})
			return
		}
	}

	if err := jc.DB.Preload("Company").Preload("Category").First(&job, "id = ?", job.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve updated listing: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, job.ToResponse())
}

// DeleteJob removes a listing and, through the cascade constraints, its
// applications and saved-job records.
// @Summary Delete given job listing ID
// @Description Only the employer that owns the listing or admin have access to this endpoint
// @Tags Jobs
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Job UUID"
// @Success 200 {object} utilities.MessageResponse "Successfully deleted listing"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not have permission to delete this listing"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [delete]
func (jc *Controller) DeleteJob(c *gin.Context) {
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

	job := model.Job{}
	if err := jc.DB.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	if job.EmployerID != user.ID && user.Role != model.RoleAdmin {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to delete this job listing",
		})
		return
	}

	if err := jc.DB.Delete(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to delete job listing: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job deleted successfully"})
}
