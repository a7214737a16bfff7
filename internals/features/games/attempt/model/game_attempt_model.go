package model

import (
	"time"

	"github.com/google/uuid"
)

// GameAttemptModel: append-only play log. No uniqueness — repeat attempts
// are allowed by design.
type GameAttemptModel struct {
	GameAttemptID        uuid.UUID `gorm:"column:game_attempt_id;type:uuid;default:gen_random_uuid();primaryKey" json:"game_attempt_id"`
	GameAttemptUserID    uuid.UUID `gorm:"column:game_attempt_user_id;type:uuid;not null;index:idx_game_attempts_user_date,priority:1" json:"game_attempt_user_id"`
	GameAttemptGameID    uuid.UUID `gorm:"column:game_attempt_game_id;type:uuid;not null;index" json:"game_attempt_game_id"`
	GameAttemptScore     int       `gorm:"column:game_attempt_score;not null" json:"game_attempt_score"`
	GameAttemptAccuracy  *float64  `gorm:"column:game_attempt_accuracy" json:"game_attempt_accuracy,omitempty"`
	GameAttemptTimeTaken *int      `gorm:"column:game_attempt_time_taken" json:"game_attempt_time_taken,omitempty"` // seconds
	GameAttemptProgress  *float64  `gorm:"column:game_attempt_progress" json:"game_attempt_progress,omitempty"`     // percentage
	GameAttemptDate      time.Time `gorm:"column:game_attempt_date;autoCreateTime;index:idx_game_attempts_user_date,priority:2,sort:desc" json:"game_attempt_date"`
}

func (GameAttemptModel) TableName() string { return "game_attempts" }
