package model

import (
	"github.com/google/uuid"
)

var (
	// StatusPending means the company has not been reviewed yet
	StatusPending = "pending"
	// StatusVerified means the company passed review
	StatusVerified = "verified"
	// StatusRejected means the company failed review
	StatusRejected = "rejected"
)

// EditableCompanyInfo is the part of a company profile the owner can change
type EditableCompanyInfo struct {
	Description   string `gorm:"type:text" json:"description"`
	LogoURL       string `gorm:"type:text" json:"logo_url"`
	Website       string `gorm:"type:text" json:"website"`
	Industry      string `gorm:"type:text" json:"industry"`
	EmployeeCount *int   `json:"employee_count"`
	FoundedYear   *int   `json:"founded_year"`
	City          string `gorm:"type:text" json:"city"`
	Province      string `gorm:"type:text" json:"province"`
	Country       string `gorm:"type:text" json:"country"`
}

// Company is gorm model for an organization that owns job listings
type Company struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"type:text;unique;not null" json:"name"`
	EditableCompanyInfo
	IsVerified         bool   `gorm:"type:boolean;default:false" json:"is_verified"`
	VerificationStatus string `gorm:"type:text;default:'pending'" json:"verification_status"`
}

// CompanyRef is the flattened company block embedded in job view-models
type CompanyRef struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Logo       string    `json:"logo"`
	IsVerified bool      `json:"is_verified"`
}

// Ref flattens a company into the shape job listings embed
func (c *Company) Ref() CompanyRef {
	return CompanyRef{
		ID:         c.ID,
		Name:       c.Name,
		Logo:       c.LogoURL,
		IsVerified: c.IsVerified,
	}
}
