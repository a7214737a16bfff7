package dto

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "ecolearn_backend/internals/helpers"
)

func TestCreateQuizQuestionRequiresTwoOptions(t *testing.T) {
	req := CreateQuizQuestionRequest{
		SubTopicID: uuid.New(),
		Text:       "Which gas drives the greenhouse effect?",
		Options: []OptionInput{
			{Text: "CO2", IsCorrect: true},
		},
	}

	err := req.Validate()

	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, helper.CodeValidation, appErr.Code)
}

func TestCreateQuizQuestionRequiresCorrectOption(t *testing.T) {
	req := CreateQuizQuestionRequest{
		SubTopicID: uuid.New(),
		Text:       "Which gas drives the greenhouse effect?",
		Options: []OptionInput{
			{Text: "Oxygen"},
			{Text: "Nitrogen"},
		},
	}

	err := req.Validate()

	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, helper.CodeValidation, appErr.Code)
}

func TestCreateQuizQuestionToModelDefaultsDifficulty(t *testing.T) {
	req := CreateQuizQuestionRequest{
		SubTopicID: uuid.New(),
		Text:       "  Which gas drives the greenhouse effect?  ",
		Options: []OptionInput{
			{Text: "CO2", IsCorrect: true},
			{Text: "Oxygen"},
		},
	}
	req.Normalize()
	require.NoError(t, req.Validate())

	q := req.ToModel()

	assert.Equal(t, "Which gas drives the greenhouse effect?", q.QuizQuestionText)
	assert.Equal(t, "easy", string(q.QuizQuestionDifficulty))
	require.Len(t, q.Options, 2)
	assert.True(t, q.Options[0].QuizOptionIsCorrect)
}

func TestUpdateQuizQuestionSkipsOptionCheckWhenAbsent(t *testing.T) {
	text := "Updated prompt"
	req := UpdateQuizQuestionRequest{Text: &text}

	assert.NoError(t, req.Validate())
	assert.Nil(t, req.ReplacementOptions(uuid.New()))
}

func TestUpdatePuzzleReplacementOptionsCarryPuzzleID(t *testing.T) {
	req := UpdatePuzzleRequest{
		Options: []OptionInput{
			{Text: " Sort into bins ", IsCorrect: true},
			{Text: "Burn it all"},
		},
	}
	require.NoError(t, req.Validate())

	puzzleID := uuid.New()
	opts := req.ReplacementOptions(puzzleID)

	require.Len(t, opts, 2)
	assert.Equal(t, puzzleID, opts[0].PuzzleOptionPuzzleID)
	assert.Equal(t, "Sort into bins", opts[0].PuzzleOptionText)
}
