package model

import (
	"time"

	"github.com/google/uuid"
)

// PuzzleModel: puzzle content under a subtopic. Media is an object-storage
// URL (image or file); the bytes live with the storage collaborator.
type PuzzleModel struct {
	PuzzleID          uuid.UUID  `gorm:"column:puzzle_id;type:uuid;default:gen_random_uuid();primaryKey" json:"puzzle_id"`
	PuzzleSubTopicID  uuid.UUID  `gorm:"column:puzzle_subtopic_id;type:uuid;not null;index" json:"puzzle_subtopic_id"`
	PuzzleTitle       string     `gorm:"column:puzzle_title;size:255;not null" json:"puzzle_title" validate:"required,max=255"`
	PuzzleDescription string     `gorm:"column:puzzle_description;type:text" json:"puzzle_description"`
	PuzzleDifficulty  Difficulty `gorm:"column:puzzle_difficulty;type:varchar(10);not null;default:'easy'" json:"puzzle_difficulty"`
	PuzzleMediaURL    string     `gorm:"column:puzzle_media_url;size:512" json:"puzzle_media_url"`

	Options []PuzzleOptionModel `gorm:"foreignKey:PuzzleOptionPuzzleID" json:"options,omitempty"`

	PuzzleCreatedAt time.Time `gorm:"column:puzzle_created_at;autoCreateTime" json:"puzzle_created_at"`
	PuzzleUpdatedAt time.Time `gorm:"column:puzzle_updated_at;autoUpdateTime" json:"puzzle_updated_at"`
}

func (PuzzleModel) TableName() string { return "puzzles" }

func (m *PuzzleModel) HasCorrectOption() bool {
	for _, op := range m.Options {
		if op.PuzzleOptionIsCorrect {
			return true
		}
	}
	return false
}
