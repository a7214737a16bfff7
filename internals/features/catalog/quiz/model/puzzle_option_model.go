package model

import (
	"github.com/google/uuid"
)

type PuzzleOptionModel struct {
	PuzzleOptionID        uuid.UUID `gorm:"column:puzzle_option_id;type:uuid;default:gen_random_uuid();primaryKey" json:"puzzle_option_id"`
	PuzzleOptionPuzzleID  uuid.UUID `gorm:"column:puzzle_option_puzzle_id;type:uuid;not null;index" json:"puzzle_option_puzzle_id"`
	PuzzleOptionText      string    `gorm:"column:puzzle_option_text;size:500;not null" json:"puzzle_option_text" validate:"required,max=500"`
	PuzzleOptionIsCorrect bool      `gorm:"column:puzzle_option_is_correct;not null;default:false" json:"puzzle_option_is_correct"`
}

func (PuzzleOptionModel) TableName() string { return "puzzle_options" }
