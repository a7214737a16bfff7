package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CategoryModel: top taxonomy node ("Greenhouse Gas Emissions", ...).
// The media URL points at the playable game file in object storage; only the
// reference is stored here.
type CategoryModel struct {
	CategoryID          uuid.UUID      `gorm:"column:category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"category_id"`
	CategoryName        string         `gorm:"column:category_name;size:255;uniqueIndex;not null" json:"category_name" validate:"required,max=255"`
	CategoryDescription string         `gorm:"column:category_description;type:text" json:"category_description"`
	CategoryGradeMin    *int           `gorm:"column:category_grade_min" json:"category_grade_min,omitempty"`
	CategoryGradeMax    *int           `gorm:"column:category_grade_max" json:"category_grade_max,omitempty"`
	CategoryStreams     pq.StringArray `gorm:"column:category_streams;type:text[]" json:"category_streams,omitempty"`
	CategoryMediaURL    string         `gorm:"column:category_media_url;size:512" json:"category_media_url"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
