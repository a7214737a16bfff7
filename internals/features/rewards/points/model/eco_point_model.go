// file: internals/features/rewards/points/model/eco_point_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// EcoPointModel: one reward grant. Totals are never stored anywhere;
// summation over this table is the only source of truth.
//
// Guards:
//   - eco_point_submission_id carries a unique index → at most one award per
//     approved submission.
//   - a partial unique index on (user, date(awarded_at)) WHERE is_daily
//     (created in databases.Migrate) → at most one daily-login award per
//     user per calendar day, even under concurrent requests.
type EcoPointModel struct {
	EcoPointID           uuid.UUID  `gorm:"column:eco_point_id;type:uuid;default:gen_random_uuid();primaryKey" json:"eco_point_id"`
	EcoPointUserID       uuid.UUID  `gorm:"column:eco_point_user_id;type:uuid;not null;index" json:"eco_point_user_id"`
	EcoPointSubmissionID *uuid.UUID `gorm:"column:eco_point_submission_id;type:uuid;uniqueIndex" json:"eco_point_submission_id,omitempty"`
	EcoPointPoints       int        `gorm:"column:eco_point_points;not null" json:"eco_point_points"`
	EcoPointIsDaily      bool       `gorm:"column:eco_point_is_daily;not null;default:false" json:"eco_point_is_daily"`
	EcoPointAwardedAt    time.Time  `gorm:"column:eco_point_awarded_at;autoCreateTime" json:"eco_point_awarded_at"`
}

func (EcoPointModel) TableName() string { return "eco_points" }
