// file: internals/features/games/attempt/dto/attempt_dto.go
package dto

import (
	"github.com/google/uuid"

	"ecolearn_backend/internals/features/games/attempt/model"
)

type CreateAttemptRequest struct {
	GameID    uuid.UUID `json:"game_id" validate:"required"`
	Score     int       `json:"score" validate:"min=0"`
	Accuracy  *float64  `json:"accuracy,omitempty" validate:"omitempty,min=0,max=100"`
	TimeTaken *int      `json:"time_taken,omitempty" validate:"omitempty,min=0"`
	Progress  *float64  `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
}

func (r *CreateAttemptRequest) ToModel(userID uuid.UUID) *model.GameAttemptModel {
	return &model.GameAttemptModel{
		GameAttemptUserID:    userID,
		GameAttemptGameID:    r.GameID,
		GameAttemptScore:     r.Score,
		GameAttemptAccuracy:  r.Accuracy,
		GameAttemptTimeTaken: r.TimeTaken,
		GameAttemptProgress:  r.Progress,
	}
}

// AttemptStats aggregates a user's history for one game.
type AttemptStats struct {
	Attempts  int64    `gorm:"column:attempts" json:"attempts"`
	BestScore *int     `gorm:"column:best_score" json:"best_score,omitempty"`
	AvgScore  *float64 `gorm:"column:avg_score" json:"avg_score,omitempty"`
}
