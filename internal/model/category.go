package model

import (
	"github.com/google/uuid"
)

// JobCategory is gorm model for the fixed set of listing categories
type JobCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"type:text;unique;not null" json:"name"`
	Slug        string    `gorm:"type:text;unique;not null" json:"slug"`
	Icon        string    `gorm:"type:text" json:"icon"`
	Color       string    `gorm:"type:text" json:"color"`
	Description string    `gorm:"type:text" json:"description"`
}

// CategoryRef is the flattened category block embedded in job view-models
type CategoryRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Icon  string    `json:"icon"`
	Color string    `json:"color"`
}

// Ref flattens a category into the shape job listings embed
func (c *JobCategory) Ref() CategoryRef {
	return CategoryRef{
		ID:    c.ID,
		Name:  c.Name,
		Icon:  c.Icon,
		Color: c.Color,
	}
}
