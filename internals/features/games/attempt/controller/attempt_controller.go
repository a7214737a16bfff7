// file: internals/features/games/attempt/controller/attempt_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecolearn_backend/internals/features/games/attempt/dto"
	"ecolearn_backend/internals/features/games/attempt/model"
	gameModel "ecolearn_backend/internals/features/games/game/model"
	helper "ecolearn_backend/internals/helpers"
)

type AttemptController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttemptController(db *gorm.DB) *AttemptController {
	return &AttemptController{DB: db, Validate: validator.New()}
}

// POST /api/attempts — append-only; repeat plays always add a new row.
func (ac *AttemptController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var game gameModel.GameModel
	if err := ac.DB.First(&game, "game_id = ?", req.GameID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Game not found")
	}
	if game.GameType == gameModel.GameTypeRealWorldTask {
		return helper.JsonAppError(c, helper.NewValidationError("game_id", "real-world tasks are completed via submissions, not attempts"))
	}

	attempt := req.ToModel(userID)
	if err := ac.DB.Create(attempt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attempt")
	}
	return helper.JsonCreated(c, "Attempt recorded", attempt)
}

// GET /api/attempts?game_id=&page=&per_page= — the caller's own history,
// newest first.
func (ac *AttemptController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ac.DB.Model(&model.GameAttemptModel{}).
		Where("game_attempt_user_id = ?", userID)
	if gameStr := c.Query("game_id"); gameStr != "" {
		gameID, err := uuid.Parse(gameStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid game_id filter")
		}
		q = q.Where("game_attempt_game_id = ?", gameID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attempts")
	}
	var rows []model.GameAttemptModel
	if err := q.Order("game_attempt_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list attempts")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/games/:id/attempts/stats — the caller's aggregate for one game.
func (ac *AttemptController) StatsForGame(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	gameID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid game id")
	}

	var stats dto.AttemptStats
	err = ac.DB.Model(&model.GameAttemptModel{}).
		Select("COUNT(*) AS attempts, MAX(game_attempt_score) AS best_score, AVG(game_attempt_score) AS avg_score").
		Where("game_attempt_user_id = ? AND game_attempt_game_id = ?", userID, gameID).
		Scan(&stats).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate attempts")
	}
	return helper.JsonOK(c, "ok", stats)
}
