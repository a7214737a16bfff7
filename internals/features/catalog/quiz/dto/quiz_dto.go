// file: internals/features/catalog/quiz/dto/quiz_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"ecolearn_backend/internals/features/catalog/quiz/model"
	helper "ecolearn_backend/internals/helpers"
)

/* =============================================================================
   OPTION INPUT (shared by quiz and puzzle creates)
============================================================================= */

type OptionInput struct {
	Text      string `json:"text" validate:"required,max=500"`
	IsCorrect bool   `json:"is_correct"`
}

// validateOptions enforces the answerable-content rule: at least two options
// and at least one marked correct.
func validateOptions(options []OptionInput) error {
	if len(options) < 2 {
		return helper.NewValidationError("options", "at least two options are required")
	}
	for _, op := range options {
		if op.IsCorrect {
			return nil
		}
	}
	return helper.NewValidationError("options", "at least one option must be correct")
}

/* =============================================================================
   QUIZ QUESTION
============================================================================= */

type CreateQuizQuestionRequest struct {
	SubTopicID uuid.UUID     `json:"subtopic_id" validate:"required"`
	Text       string        `json:"text" validate:"required"`
	Difficulty string        `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	Options    []OptionInput `json:"options" validate:"required,dive"`
}

func (r *CreateQuizQuestionRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
	for i := range r.Options {
		r.Options[i].Text = strings.TrimSpace(r.Options[i].Text)
	}
}

func (r *CreateQuizQuestionRequest) Validate() error {
	return validateOptions(r.Options)
}

func (r *CreateQuizQuestionRequest) ToModel() *model.QuizQuestionModel {
	q := &model.QuizQuestionModel{
		QuizQuestionSubTopicID: r.SubTopicID,
		QuizQuestionText:       r.Text,
		QuizQuestionDifficulty: model.DifficultyEasy,
	}
	if d := model.Difficulty(r.Difficulty); d.Valid() {
		q.QuizQuestionDifficulty = d
	}
	for _, op := range r.Options {
		q.Options = append(q.Options, model.QuizOptionModel{
			QuizOptionText:      op.Text,
			QuizOptionIsCorrect: op.IsCorrect,
		})
	}
	return q
}

type UpdateQuizQuestionRequest struct {
	Text       *string       `json:"text,omitempty"`
	Difficulty *string       `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	Options    []OptionInput `json:"options,omitempty" validate:"omitempty,dive"`
}

// Validate only checks options when they are being replaced.
func (r *UpdateQuizQuestionRequest) Validate() error {
	if r.Options == nil {
		return nil
	}
	return validateOptions(r.Options)
}

func (r *UpdateQuizQuestionRequest) ApplyToModel(q *model.QuizQuestionModel) {
	if r.Text != nil {
		q.QuizQuestionText = strings.TrimSpace(*r.Text)
	}
	if r.Difficulty != nil {
		if d := model.Difficulty(*r.Difficulty); d.Valid() {
			q.QuizQuestionDifficulty = d
		}
	}
}

// ReplacementOptions builds the new option rows when the update carries them.
func (r *UpdateQuizQuestionRequest) ReplacementOptions(questionID uuid.UUID) []model.QuizOptionModel {
	if r.Options == nil {
		return nil
	}
	out := make([]model.QuizOptionModel, 0, len(r.Options))
	for _, op := range r.Options {
		out = append(out, model.QuizOptionModel{
			QuizOptionQuestionID: questionID,
			QuizOptionText:       strings.TrimSpace(op.Text),
			QuizOptionIsCorrect:  op.IsCorrect,
		})
	}
	return out
}

/* =============================================================================
   PUZZLE
============================================================================= */

type CreatePuzzleRequest struct {
	SubTopicID  uuid.UUID     `json:"subtopic_id" validate:"required"`
	Title       string        `json:"title" validate:"required,max=255"`
	Description string        `json:"description,omitempty"`
	Difficulty  string        `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	MediaURL    string        `json:"media_url,omitempty" validate:"omitempty,max=512"`
	Options     []OptionInput `json:"options" validate:"required,dive"`
}

func (r *CreatePuzzleRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	for i := range r.Options {
		r.Options[i].Text = strings.TrimSpace(r.Options[i].Text)
	}
}

func (r *CreatePuzzleRequest) Validate() error {
	return validateOptions(r.Options)
}

func (r *CreatePuzzleRequest) ToModel() *model.PuzzleModel {
	p := &model.PuzzleModel{
		PuzzleSubTopicID:  r.SubTopicID,
		PuzzleTitle:       r.Title,
		PuzzleDescription: r.Description,
		PuzzleDifficulty:  model.DifficultyEasy,
		PuzzleMediaURL:    r.MediaURL,
	}
	if d := model.Difficulty(r.Difficulty); d.Valid() {
		p.PuzzleDifficulty = d
	}
	for _, op := range r.Options {
		p.Options = append(p.Options, model.PuzzleOptionModel{
			PuzzleOptionText:      op.Text,
			PuzzleOptionIsCorrect: op.IsCorrect,
		})
	}
	return p
}

type UpdatePuzzleRequest struct {
	Title       *string       `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string       `json:"description,omitempty"`
	Difficulty  *string       `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	MediaURL    *string       `json:"media_url,omitempty" validate:"omitempty,max=512"`
	Options     []OptionInput `json:"options,omitempty" validate:"omitempty,dive"`
}

func (r *UpdatePuzzleRequest) Validate() error {
	if r.Options == nil {
		return nil
	}
	return validateOptions(r.Options)
}

func (r *UpdatePuzzleRequest) ApplyToModel(p *model.PuzzleModel) {
	if r.Title != nil {
		p.PuzzleTitle = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		p.PuzzleDescription = *r.Description
	}
	if r.Difficulty != nil {
		if d := model.Difficulty(*r.Difficulty); d.Valid() {
			p.PuzzleDifficulty = d
		}
	}
	if r.MediaURL != nil {
		p.PuzzleMediaURL = *r.MediaURL
	}
}

func (r *UpdatePuzzleRequest) ReplacementOptions(puzzleID uuid.UUID) []model.PuzzleOptionModel {
	if r.Options == nil {
		return nil
	}
	out := make([]model.PuzzleOptionModel, 0, len(r.Options))
	for _, op := range r.Options {
		out = append(out, model.PuzzleOptionModel{
			PuzzleOptionPuzzleID:  puzzleID,
			PuzzleOptionText:      strings.TrimSpace(op.Text),
			PuzzleOptionIsCorrect: op.IsCorrect,
		})
	}
	return out
}
