package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	// JobStatusDraft is a listing not yet visible to seekers
	JobStatusDraft = "draft"
	// JobStatusActive is a live listing
	JobStatusActive = "active"
	// JobStatusExpired is a listing past its expiry timestamp
	JobStatusExpired = "expired"
	// JobStatusClosed is a listing taken down by its employer
	JobStatusClosed = "closed"
)

var (
	// ErrSalaryRange means salary_min is greater than salary_max
	ErrSalaryRange = errors.New("salary_min must not exceed salary_max")
	// ErrExpiryBeforePosting means expires_at is not after the posting time
	ErrExpiryBeforePosting = errors.New("expires_at must be after the posting time")
)

// EditableJobInfo is the part of a job listing an employer can change
type EditableJobInfo struct {
	Title                 string         `gorm:"type:text;not null" json:"title"`
	Description           string         `gorm:"type:text" json:"description"`
	PositionType          string         `gorm:"type:text;index" json:"position_type"`
	RemotePolicy          string         `gorm:"type:text;index" json:"remote_policy"`
	SalaryMin             *float64       `json:"salary_min"`
	SalaryMax             *float64       `json:"salary_max"`
	SalaryCurrency        string         `gorm:"type:text" json:"currency"`
	City                  string         `gorm:"type:text" json:"city"`
	Province              string         `gorm:"type:text" json:"province"`
	Country               string         `gorm:"type:text" json:"country"`
	ExperienceLevel       string         `gorm:"type:text;index" json:"experience_level"`
	EducationRequirements string         `gorm:"type:text" json:"education_requirements"`
	RequiredSkills        pq.StringArray `gorm:"type:text[]" json:"required_skills"`
	PreferredSkills       pq.StringArray `gorm:"type:text[]" json:"preferred_skills"`
	RequiredDocuments     pq.StringArray `gorm:"type:text[]" json:"required_documents"`
	ExpiresAt             *time.Time     `gorm:"type:timestamp" json:"expires_at,omitempty"`
	IsFeatured            bool           `gorm:"type:boolean;default:false" json:"is_featured"`
	IsUrgent              bool           `gorm:"type:boolean;default:false" json:"is_urgent"`
	Status                string         `gorm:"type:text;default:'active';index" json:"status"`
	CategoryID            *uuid.UUID     `gorm:"type:uuid;index" json:"category_id"`
}

// Validate checks the listing invariants against the given posting time.
func (e *EditableJobInfo) Validate(postedAt time.Time) error {
	if e.SalaryMin != nil && e.SalaryMax != nil && *e.SalaryMin > *e.SalaryMax {
		return ErrSalaryRange
	}
	if e.ExpiresAt != nil && !e.ExpiresAt.After(postedAt) {
		return ErrExpiryBeforePosting
	}
	return nil
}

// Job is gorm model for a job listing
type Job struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"company_id"`
	Company    Company   `gorm:"foreignKey:CompanyID;references:ID" json:"-"`
	EmployerID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"employer_id"`
	Employer   Employer  `gorm:"foreignKey:EmployerID;references:UserID" json:"-"`
	EditableJobInfo
	Category         *JobCategory `gorm:"foreignKey:CategoryID;references:ID" json:"-"`
	PostedAt         time.Time    `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;<-:create;index" json:"posted_at"`
	UpdatedAt        time.Time    `gorm:"type:timestamp" json:"updated_at"`
	ViewCount        int          `gorm:"default:0" json:"view_count"`
	ApplicationCount int          `gorm:"default:0" json:"application_count"`

	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	SavedBy      []SavedJob    `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}

// DisplayLocation builds the human readable location line shown on cards.
// Falls back through province and country, then to "Remote".
func (j *Job) DisplayLocation() string {
	switch {
	case j.City != "" && j.Province != "":
		return j.City + ", " + j.Province
	case j.City != "":
		return j.City
	case j.Province != "":
		return j.Province
	case j.Country != "":
		return j.Country
	default:
		return "Remote"
	}
}

// JobResponse is the flattened view-model returned to clients
type JobResponse struct {
	ID                    uuid.UUID    `json:"id"`
	Title                 string       `json:"title"`
	Company               CompanyRef   `json:"company"`
	Category              *CategoryRef `json:"category"`
	Location              string       `json:"location"`
	SalaryMin             *float64     `json:"salary_min"`
	SalaryMax             *float64     `json:"salary_max"`
	Currency              string       `json:"currency"`
	PositionType          string       `json:"position_type"`
	RemotePolicy          string       `json:"remote_policy"`
	Description           string       `json:"description"`
	ExperienceLevel       string       `json:"experience_level"`
	EducationRequirements string       `json:"education_requirements,omitempty"`
	RequiredSkills        []string     `json:"required_skills"`
	PreferredSkills       []string     `json:"preferred_skills"`
	RequiredDocuments     []string     `json:"required_documents"`
	IsFeatured            bool         `json:"is_featured"`
	IsUrgent              bool         `json:"is_urgent"`
	PostedAt              time.Time    `json:"posted_at"`
	ExpiresAt             *time.Time   `json:"expires_at,omitempty"`
	ApplicationCount      int          `json:"application_count"`
	ViewCount             int          `json:"view_count"`

	// Only populated on the detail endpoint
	CompanyDescription string `json:"company_description,omitempty"`
	CompanyWebsite     string `json:"company_website,omitempty"`
}

// ToResponse flattens a job with its preloaded company and category
func (j *Job) ToResponse() JobResponse {
	resp := JobResponse{
		ID:                    j.ID,
		Title:                 j.Title,
		Company:               j.Company.Ref(),
		Location:              j.DisplayLocation(),
		SalaryMin:             j.SalaryMin,
		SalaryMax:             j.SalaryMax,
		Currency:              j.SalaryCurrency,
		PositionType:          j.PositionType,
		RemotePolicy:          j.RemotePolicy,
		Description:           j.Description,
		ExperienceLevel:       j.ExperienceLevel,
		EducationRequirements: j.EducationRequirements,
		RequiredSkills:        j.RequiredSkills,
		PreferredSkills:       j.PreferredSkills,
		RequiredDocuments:     j.RequiredDocuments,
		IsFeatured:            j.IsFeatured,
		IsUrgent:              j.IsUrgent,
		PostedAt:              j.PostedAt,
		ExpiresAt:             j.ExpiresAt,
		ApplicationCount:      j.ApplicationCount,
		ViewCount:             j.ViewCount,
	}
	if resp.RequiredSkills == nil {
		resp.RequiredSkills = []string{}
	}
	if resp.PreferredSkills == nil {
		resp.PreferredSkills = []string{}
	}
	if resp.RequiredDocuments == nil {
		resp.RequiredDocuments = []string{}
	}
	if j.Category != nil {
		ref := j.Category.Ref()
		resp.Category = &ref
	}
	return resp
}

// JobPatch carries a merge-patch edit: nil fields are left untouched.
type JobPatch struct {
	Title                 *string    `json:"title"`
	Description           *string    `json:"description"`
	PositionType          *string    `json:"position_type"`
	RemotePolicy          *string    `json:"remote_policy"`
	SalaryMin             *float64   `json:"salary_min"`
	SalaryMax             *float64   `json:"salary_max"`
	SalaryCurrency        *string    `json:"currency"`
	City                  *string    `json:"city"`
	Province              *string    `json:"province"`
	Country               *string    `json:"country"`
	ExperienceLevel       *string    `json:"experience_level"`
	EducationRequirements *string    `json:"education_requirements"`
	RequiredSkills        *[]string  `json:"required_skills"`
	PreferredSkills       *[]string  `json:"preferred_skills"`
	RequiredDocuments     *[]string  `json:"required_documents"`
	ExpiresAt             *time.Time `json:"expires_at"`
	IsFeatured            *bool      `json:"is_featured"`
	IsUrgent              *bool      `json:"is_urgent"`
	Status                *string    `json:"status"`
	CategoryID            *uuid.UUID `json:"category_id"`
}

// Updates builds the column map for gorm Updates. Only supplied fields
// appear, so omitted fields are never overwritten.
func (p *JobPatch) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.PositionType != nil {
		updates["position_type"] = *p.PositionType
	}
	if p.RemotePolicy != nil {
		updates["remote_policy"] = *p.RemotePolicy
	}
	if p.SalaryMin != nil {
		updates["salary_min"] = *p.SalaryMin
	}
	if p.SalaryMax != nil {
		updates["salary_max"] = *p.SalaryMax
	}
	if p.SalaryCurrency != nil {
		updates["salary_currency"] = *p.SalaryCurrency
	}
	if p.City != nil {
		updates["city"] = *p.City
	}
	if p.Province != nil {
		updates["province"] = *p.Province
	}
	if p.Country != nil {
		updates["country"] = *p.Country
	}
	if p.ExperienceLevel != nil {
		updates["experience_level"] = *p.ExperienceLevel
	}
	if p.EducationRequirements != nil {
		updates["education_requirements"] = *p.EducationRequirements
	}
	if p.RequiredSkills != nil {
		updates["required_skills"] = pq.StringArray(*p.RequiredSkills)
	}
	if p.PreferredSkills != nil {
		updates["preferred_skills"] = pq.StringArray(*p.PreferredSkills)
	}
	if p.RequiredDocuments != nil {
		updates["required_documents"] = pq.StringArray(*p.RequiredDocuments)
	}
	if p.ExpiresAt != nil {
		updates["expires_at"] = *p.ExpiresAt
	}
	if p.IsFeatured != nil {
		updates["is_featured"] = *p.IsFeatured
	}
	if p.IsUrgent != nil {
		updates["is_urgent"] = *p.IsUrgent
	}
	if p.Status != nil {
		updates["status"] = *p.Status
	}
	if p.CategoryID != nil {
		updates["category_id"] = *p.CategoryID
	}
	return updates
}

// Validate checks the listing invariants as they would be after the patch
// is merged onto the existing job.
func (p *JobPatch) Validate(job *Job) error {
	salaryMin := job.SalaryMin
	if p.SalaryMin != nil {
		salaryMin = p.SalaryMin
	}
	salaryMax := job.SalaryMax
	if p.SalaryMax != nil {
		salaryMax = p.SalaryMax
	}
	if salaryMin != nil && salaryMax != nil && *salaryMin > *salaryMax {
		return ErrSalaryRange
	}
	if p.ExpiresAt != nil && !p.ExpiresAt.After(job.PostedAt) {
		return ErrExpiryBeforePosting
	}
	return nil
}
