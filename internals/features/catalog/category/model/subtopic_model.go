package model

import (
	"time"

	"github.com/google/uuid"
)

// SubTopicModel: finest-grained taxonomy node; always belongs to exactly one
// category.
type SubTopicModel struct {
	SubTopicID          uuid.UUID `gorm:"column:subtopic_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subtopic_id"`
	SubTopicCategoryID  uuid.UUID `gorm:"column:subtopic_category_id;type:uuid;not null;index" json:"subtopic_category_id"`
	SubTopicName        string    `gorm:"column:subtopic_name;size:255;not null" json:"subtopic_name" validate:"required,max=255"`
	SubTopicDescription string    `gorm:"column:subtopic_description;type:text" json:"subtopic_description"`

	Category *CategoryModel `gorm:"foreignKey:SubTopicCategoryID" json:"category,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SubTopicModel) TableName() string {
	return "subtopics"
}
