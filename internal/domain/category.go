package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryKindArea     = "area"
	CategoryKindLevel    = "level"
	CategoryKindModality = "modality"
)

// Category is reference vocabulary for classifying questions and content.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description,omitempty"`
	Kind        string    `gorm:"not null;default:area;column:kind" json:"kind"`
	Active      bool      `gorm:"not null;default:true;column:active" json:"active"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Category) TableName() string { return "categories" }
