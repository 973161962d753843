package model

import (
	"github.com/google/uuid"
)

// Employer is the profile attached to an account with RoleEmployer.
// It links the account to the company whose jobs it manages.
type Employer struct {
	UserID    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	User      User       `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	FullName  string     `gorm:"type:text" json:"full_name"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	Company   *Company   `gorm:"foreignKey:CompanyID;references:ID" json:"company,omitempty"`
}
