// file: internals/features/catalog/quiz/model/quiz_question_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   ENUM-like: difficulty ('easy','medium','hard')
============================================================================= */

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

func (d *Difficulty) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = ""
		return nil
	case string:
		*d = Difficulty(v)
	case []byte:
		*d = Difficulty(string(v))
	default:
		return fmt.Errorf("unsupported type for Difficulty: %T", value)
	}
	if !d.Valid() {
		return fmt.Errorf("invalid Difficulty: %q", *d)
	}
	return nil
}

func (d Difficulty) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	if !d.Valid() {
		return nil, fmt.Errorf("invalid Difficulty: %q", d)
	}
	return string(d), nil
}

/* =============================================================================
   MODEL: quiz_questions
============================================================================= */

type QuizQuestionModel struct {
	QuizQuestionID         uuid.UUID  `gorm:"column:quiz_question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"quiz_question_id"`
	QuizQuestionSubTopicID uuid.UUID  `gorm:"column:quiz_question_subtopic_id;type:uuid;not null;index" json:"quiz_question_subtopic_id"`
	QuizQuestionText       string     `gorm:"column:quiz_question_text;type:text;not null" json:"quiz_question_text" validate:"required"`
	QuizQuestionDifficulty Difficulty `gorm:"column:quiz_question_difficulty;type:varchar(10);not null;default:'easy'" json:"quiz_question_difficulty"`

	Options []QuizOptionModel `gorm:"foreignKey:QuizOptionQuestionID" json:"options,omitempty"`

	QuizQuestionCreatedAt time.Time `gorm:"column:quiz_question_created_at;autoCreateTime" json:"quiz_question_created_at"`
	QuizQuestionUpdatedAt time.Time `gorm:"column:quiz_question_updated_at;autoUpdateTime" json:"quiz_question_updated_at"`
}

func (QuizQuestionModel) TableName() string { return "quiz_questions" }

// HasCorrectOption reports whether at least one loaded option is correct.
func (m *QuizQuestionModel) HasCorrectOption() bool {
	for _, op := range m.Options {
		if op.QuizOptionIsCorrect {
			return true
		}
	}
	return false
}
