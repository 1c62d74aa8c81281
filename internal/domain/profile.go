package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is the per-user personalization record the recommendation pipeline
// reads. It is owned by user management; the pipeline never writes it.
type Profile struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;column:user_id" json:"user_id"`

	// UserType drives the wording of the fallback recommendation
	// (e.g. "student", "professional", "jobseeker").
	UserType         string                      `gorm:"not null;column:user_type" json:"user_type"`
	InterestAreas    datatypes.JSONSlice[string] `gorm:"column:interest_areas" json:"interest_areas"`
	EducationLevel   string                      `gorm:"column:education_level" json:"education_level"`
	EmploymentStatus string                      `gorm:"column:employment_status" json:"employment_status,omitempty"`
	Goals            datatypes.JSONSlice[string] `gorm:"column:goals" json:"goals,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

// HasInterests reports whether the profile can seed category derivation.
func (p *Profile) HasInterests() bool {
	if p == nil {
		return false
	}
	for _, a := range p.InterestAreas {
		if a != "" {
			return true
		}
	}
	return false
}
