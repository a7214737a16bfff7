// file: internals/features/catalog/quiz/controller/quiz_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecolearn_backend/internals/features/catalog/quiz/dto"
	"ecolearn_backend/internals/features/catalog/quiz/model"
	helper "ecolearn_backend/internals/helpers"
)

type QuizController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{DB: db, Validate: validator.New()}
}

/* =============================================================================
   QUIZ QUESTIONS
============================================================================= */

// GET /api/subtopics/:id/quiz-questions
func (qc *QuizController) ListBySubTopic(c *fiber.Ctx) error {
	subtopicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subtopic id")
	}
	var rows []model.QuizQuestionModel
	if err := qc.DB.
		Preload("Options").
		Where("quiz_question_subtopic_id = ?", subtopicID).
		Order("quiz_question_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list quiz questions")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/quiz-questions/:id
func (qc *QuizController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	var question model.QuizQuestionModel
	if err := qc.DB.
		Preload("Options").
		First(&question, "quiz_question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz question not found")
	}
	return helper.JsonOK(c, "ok", question)
}

// POST /api/quiz-questions
func (qc *QuizController) Create(c *fiber.Ctx) error {
	var req dto.CreateQuizQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := qc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return helper.JsonAppError(c, err)
	}

	question := req.ToModel()
	if err := qc.DB.Create(question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create quiz question")
	}
	return helper.JsonCreated(c, "Quiz question created", question)
}

// PUT /api/quiz-questions/:id — options, when present, replace the full set.
func (qc *QuizController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	var req dto.UpdateQuizQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := qc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return helper.JsonAppError(c, err)
	}

	var question model.QuizQuestionModel
	if err := qc.DB.First(&question, "quiz_question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz question not found")
	}

	err = qc.DB.Transaction(func(tx *gorm.DB) error {
		req.ApplyToModel(&question)
		if err := tx.Save(&question).Error; err != nil {
			return err
		}
		if replacement := req.ReplacementOptions(question.QuizQuestionID); replacement != nil {
			if err := tx.Delete(&model.QuizOptionModel{}, "quiz_option_question_id = ?", question.QuizQuestionID).Error; err != nil {
				return err
			}
			if err := tx.Create(&replacement).Error; err != nil {
				return err
			}
			question.Options = replacement
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update quiz question")
	}
	return helper.JsonUpdated(c, "Quiz question updated", question)
}

// DELETE /api/quiz-questions/:id
func (qc *QuizController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	err = qc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.QuizOptionModel{}, "quiz_option_question_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.QuizQuestionModel{}, "quiz_question_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.NewNotFoundError("quiz question")
		}
		return nil
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Quiz question deleted", nil)
}
