// file: internals/features/games/game/controller/game_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecolearn_backend/internals/features/games/game/dto"
	"ecolearn_backend/internals/features/games/game/model"
	helper "ecolearn_backend/internals/helpers"
)

type GameController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGameController(db *gorm.DB) *GameController {
	return &GameController{DB: db, Validate: validator.New()}
}

/* =============================================================================
   GAMES
============================================================================= */

// GET /api/games?type=&grade=&difficulty=&topic_id=&page=&per_page=
func (gc *GameController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := gc.DB.Model(&model.GameModel{}).Preload("Topic")
	if typ := model.GameType(strings.TrimSpace(c.Query("type"))); typ.Valid() {
		q = q.Where("game_type = ?", typ)
	}
	if gradeStr := strings.TrimSpace(c.Query("grade")); gradeStr != "" {
		grade, err := strconv.Atoi(gradeStr)
		if err != nil || grade < 1 || grade > 12 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grade filter")
		}
		q = q.Where("(game_grade_min IS NULL OR game_grade_min <= ?)", grade).
			Where("(game_grade_max IS NULL OR game_grade_max >= ?)", grade)
	}
	if d := model.GameDifficulty(strings.TrimSpace(c.Query("difficulty"))); d.Valid() {
		q = q.Where("game_difficulty = ?", d)
	}
	if topicStr := strings.TrimSpace(c.Query("topic_id")); topicStr != "" {
		topicID, err := uuid.Parse(topicStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid topic_id filter")
		}
		q = q.Where("game_topic_id = ?", topicID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count games")
	}
	var rows []model.GameModel
	if err := q.Order("game_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list games")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/games/:id
func (gc *GameController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid game id")
	}
	var game model.GameModel
	if err := gc.DB.Preload("Topic").First(&game, "game_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Game not found")
	}
	return helper.JsonOK(c, "ok", game)
}

// POST /api/games
func (gc *GameController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := gc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.GradeMin != nil && req.GradeMax != nil && *req.GradeMin > *req.GradeMax {
		return helper.JsonAppError(c, helper.NewValidationError("grade_min", "grade_min must not exceed grade_max"))
	}

	game := req.ToModel(userID)
	if err := gc.DB.Create(game).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create game")
	}
	return helper.JsonCreated(c, "Game created", game)
}

// PUT /api/games/:id
func (gc *GameController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid game id")
	}
	var req dto.UpdateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := gc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var game model.GameModel
	if err := gc.DB.First(&game, "game_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Game not found")
	}
	req.ApplyToModel(&game)
	if game.GameGradeMin != nil && game.GameGradeMax != nil && *game.GameGradeMin > *game.GameGradeMax {
		return helper.JsonAppError(c, helper.NewValidationError("grade_min", "grade_min must not exceed grade_max"))
	}
	if err := gc.DB.Save(&game).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update game")
	}
	return helper.JsonUpdated(c, "Game updated", game)
}

// DELETE /api/games/:id
func (gc *GameController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid game id")
	}
	res := gc.DB.Delete(&model.GameModel{}, "game_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete game")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Game not found")
	}
	return helper.JsonDeleted(c, "Game deleted", nil)
}

/* =============================================================================
   TOPICS
============================================================================= */

// GET /api/game-topics
func (gc *GameController) ListTopics(c *fiber.Ctx) error {
	var rows []model.GameTopicModel
	if err := gc.DB.Order("game_topic_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list topics")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/game-topics
func (gc *GameController) CreateTopic(c *fiber.Ctx) error {
	var req dto.CreateGameTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := gc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	topic := model.GameTopicModel{GameTopicName: req.Name}
	if err := gc.DB.Create(&topic).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Topic already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create topic")
	}
	return helper.JsonCreated(c, "Topic created", topic)
}
