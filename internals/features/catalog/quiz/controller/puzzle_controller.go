// file: internals/features/catalog/quiz/controller/puzzle_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecolearn_backend/internals/features/catalog/quiz/dto"
	"ecolearn_backend/internals/features/catalog/quiz/model"
	helper "ecolearn_backend/internals/helpers"
	ossHelper "ecolearn_backend/internals/helpers/oss"
)

type PuzzleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPuzzleController(db *gorm.DB) *PuzzleController {
	return &PuzzleController{DB: db, Validate: validator.New()}
}

// GET /api/subtopics/:id/puzzles
func (pc *PuzzleController) ListBySubTopic(c *fiber.Ctx) error {
	subtopicID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subtopic id")
	}
	var rows []model.PuzzleModel
	if err := pc.DB.
		Preload("Options").
		Where("puzzle_subtopic_id = ?", subtopicID).
		Order("puzzle_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list puzzles")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/puzzles/:id
func (pc *PuzzleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid puzzle id")
	}
	var puzzle model.PuzzleModel
	if err := pc.DB.
		Preload("Options").
		First(&puzzle, "puzzle_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Puzzle not found")
	}
	return helper.JsonOK(c, "ok", puzzle)
}

// POST /api/puzzles
func (pc *PuzzleController) Create(c *fiber.Ctx) error {
	var req dto.CreatePuzzleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := pc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return helper.JsonAppError(c, err)
	}

	puzzle := req.ToModel()
	if err := pc.DB.Create(puzzle).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create puzzle")
	}
	return helper.JsonCreated(c, "Puzzle created", puzzle)
}

// PUT /api/puzzles/:id
func (pc *PuzzleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid puzzle id")
	}
	var req dto.UpdatePuzzleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := pc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return helper.JsonAppError(c, err)
	}

	var puzzle model.PuzzleModel
	if err := pc.DB.First(&puzzle, "puzzle_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Puzzle not found")
	}

	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		req.ApplyToModel(&puzzle)
		if err := tx.Save(&puzzle).Error; err != nil {
			return err
		}
		if replacement := req.ReplacementOptions(puzzle.PuzzleID); replacement != nil {
			if err := tx.Delete(&model.PuzzleOptionModel{}, "puzzle_option_puzzle_id = ?", puzzle.PuzzleID).Error; err != nil {
				return err
			}
			if err := tx.Create(&replacement).Error; err != nil {
				return err
			}
			puzzle.Options = replacement
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update puzzle")
	}
	return helper.JsonUpdated(c, "Puzzle updated", puzzle)
}

// DELETE /api/puzzles/:id
func (pc *PuzzleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid puzzle id")
	}
	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PuzzleOptionModel{}, "puzzle_option_puzzle_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.PuzzleModel{}, "puzzle_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.NewNotFoundError("puzzle")
		}
		return nil
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Puzzle deleted", nil)
}

// POST /api/puzzles/:id/media
func (pc *PuzzleController) UploadMedia(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid puzzle id")
	}
	var puzzle model.PuzzleModel
	if err := pc.DB.First(&puzzle, "puzzle_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Puzzle not found")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}
	svc, err := ossHelper.NewOSSServiceFromEnv("puzzles")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Object storage is not configured")
	}
	url, err := svc.UploadAsWebP(c.Context(), fh, puzzle.PuzzleID.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Upload failed")
	}

	if err := pc.DB.Model(&puzzle).
		Update("puzzle_media_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save media URL")
	}
	return helper.JsonUpdated(c, "Media uploaded", fiber.Map{"media_url": url})
}
