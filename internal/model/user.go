// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// RoleAdmin can manage every resource
	RoleAdmin = "admin"
	// RoleSeeker is a job seeker account
	RoleSeeker = "seeker"
	// RoleEmployer is an employer account that can post jobs
	RoleEmployer = "employer"
)

// User is the account record every role shares
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Username  string    `gorm:"type:text;unique;not null" json:"username"`
	Email     *string   `gorm:"type:text" json:"email"`
	Password  string    `gorm:"type:text" json:"-"`
	Role      string    `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
