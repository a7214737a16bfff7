package model

import (
	"github.com/google/uuid"
)

type QuizOptionModel struct {
	QuizOptionID         uuid.UUID `gorm:"column:quiz_option_id;type:uuid;default:gen_random_uuid();primaryKey" json:"quiz_option_id"`
	QuizOptionQuestionID uuid.UUID `gorm:"column:quiz_option_question_id;type:uuid;not null;index" json:"quiz_option_question_id"`
	QuizOptionText       string    `gorm:"column:quiz_option_text;size:500;not null" json:"quiz_option_text" validate:"required,max=500"`
	QuizOptionIsCorrect  bool      `gorm:"column:quiz_option_is_correct;not null;default:false" json:"quiz_option_is_correct"`
}

func (QuizOptionModel) TableName() string { return "quiz_options" }
