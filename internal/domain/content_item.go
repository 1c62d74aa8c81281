package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	ContentTypeCourse        = "course"
	ContentTypeWorkshop      = "workshop"
	ContentTypeMaster        = "master"
	ContentTypeCertification = "certification"

	ModalityInPerson = "in_person"
	ModalityOnline   = "online"
	ModalityHybrid   = "hybrid"

	LevelBasic        = "basic"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"

	ContentStatusActive   = "active"
	ContentStatusInactive = "inactive"
	ContentStatusDraft    = "draft"
)

// ContentItem is a read-only projection of a stored activity. Lifecycle is
// owned by content management; the pipeline only retrieves.
type ContentItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null;column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	ContentType string    `gorm:"not null;column:content_type" json:"content_type"`
	Modality    string    `gorm:"not null;column:modality" json:"modality"`
	Level       string    `gorm:"column:level" json:"level,omitempty"`
	Topic       string    `gorm:"column:topic" json:"topic,omitempty"`
	Location    string    `gorm:"column:location" json:"location,omitempty"`

	StartsAt      string   `gorm:"column:starts_at" json:"starts_at,omitempty"`
	StartsTime    string   `gorm:"column:starts_time" json:"starts_time,omitempty"`
	Seats         int      `gorm:"column:seats" json:"seats,omitempty"`
	DurationHours int      `gorm:"column:duration_hours" json:"duration_hours,omitempty"`
	Rating        *float64 `gorm:"column:rating" json:"rating,omitempty"`
	Price         *float64 `gorm:"column:price" json:"price,omitempty"`
	Status        string   `gorm:"not null;default:active;column:status" json:"status"`

	// Categories is stored delimited as ",a,b," so membership checks can
	// match ",name," exactly ("Sports" must not match "eSports").
	Categories string `gorm:"column:categories" json:"-"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ContentItem) TableName() string { return "content" }

// CategoryList splits the delimited categories column into names.
func (c *ContentItem) CategoryList() []string {
	out := []string{}
	for _, part := range strings.Split(c.Categories, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinCategories builds the delimited representation stored in the
// categories column.
func JoinCategories(names []string) string {
	clean := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			clean = append(clean, n)
		}
	}
	if len(clean) == 0 {
		return ""
	}
	return "," + strings.Join(clean, ",") + ","
}
