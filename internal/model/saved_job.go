package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedJob is a seeker's bookmark on a listing
type SavedJob struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SavedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"saved_at"`

	JobID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_saved_jobs_job_seeker" json:"job_id"`
	Job   Job       `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	SeekerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_saved_jobs_job_seeker" json:"seeker_id"`
	Seeker   User      `gorm:"foreignKey:SeekerID;references:ID" json:"-"`
}
