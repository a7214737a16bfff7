package model

import (
	"time"

	"github.com/google/uuid"
)

type BadgeModel struct {
	BadgeID             uuid.UUID `gorm:"column:badge_id;type:uuid;default:gen_random_uuid();primaryKey" json:"badge_id"`
	BadgeName           string    `gorm:"column:badge_name;size:255;not null" json:"badge_name" validate:"required,max=255"`
	BadgeDescription    string    `gorm:"column:badge_description;type:text;not null" json:"badge_description"`
	BadgeUnlockCriteria string    `gorm:"column:badge_unlock_criteria;type:text;not null" json:"badge_unlock_criteria"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (BadgeModel) TableName() string { return "badges" }

// UserBadgeModel: a badge grant. The composite unique index keeps a user
// from holding the same badge twice.
type UserBadgeModel struct {
	UserBadgeID        uuid.UUID `gorm:"column:user_badge_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_badge_id"`
	UserBadgeUserID    uuid.UUID `gorm:"column:user_badge_user_id;type:uuid;not null;uniqueIndex:uq_user_badges_user_badge,priority:1" json:"user_badge_user_id"`
	UserBadgeBadgeID   uuid.UUID `gorm:"column:user_badge_badge_id;type:uuid;not null;uniqueIndex:uq_user_badges_user_badge,priority:2" json:"user_badge_badge_id"`
	UserBadgeAwardedAt time.Time `gorm:"column:user_badge_awarded_at;autoCreateTime" json:"user_badge_awarded_at"`

	Badge *BadgeModel `gorm:"foreignKey:UserBadgeBadgeID" json:"badge,omitempty"`
}

func (UserBadgeModel) TableName() string { return "user_badges" }
