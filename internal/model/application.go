package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// ApplicationStatusPending indicates that the application is pending review
	ApplicationStatusPending = "pending"
	// ApplicationStatusReviewed indicates that the employer has seen the application
	ApplicationStatusReviewed = "reviewed"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "rejected"
	// ApplicationStatusAccepted indicates that the application has been accepted
	ApplicationStatusAccepted = "accepted"
)

// Application represents a job application record
type Application struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AppliedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"applied_at"`
	Status    string    `gorm:"type:text;default:'pending'" json:"status"`

	// JobID references Job.ID; removing the job removes its applications
	JobID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_seeker" json:"job_id"`
	Job   Job       `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	// SeekerID references User.ID
	SeekerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_seeker" json:"seeker_id"`
	Seeker   User      `gorm:"foreignKey:SeekerID;references:ID" json:"-"`
}
