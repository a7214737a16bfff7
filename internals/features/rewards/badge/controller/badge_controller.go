// file: internals/features/rewards/badge/controller/badge_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecolearn_backend/internals/features/rewards/badge/dto"
	"ecolearn_backend/internals/features/rewards/badge/model"
	"ecolearn_backend/internals/features/rewards/badge/service"
	helper "ecolearn_backend/internals/helpers"
)

type BadgeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBadgeController(db *gorm.DB) *BadgeController {
	return &BadgeController{DB: db, Validate: validator.New()}
}

// GET /api/badges
func (bc *BadgeController) List(c *fiber.Ctx) error {
	var rows []model.BadgeModel
	if err := bc.DB.Order("badge_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list badges")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/badges
func (bc *BadgeController) Create(c *fiber.Ctx) error {
	var req dto.CreateBadgeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := bc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	badge := req.ToModel()
	if err := bc.DB.Create(badge).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create badge")
	}
	return helper.JsonCreated(c, "Badge created", badge)
}

// POST /api/badges/award
func (bc *BadgeController) Award(c *fiber.Ctx) error {
	var req dto.AwardBadgeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := bc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	grant, err := service.AwardBadge(c.Context(), bc.DB, req.UserID, req.BadgeID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Badge awarded", grant)
}

// GET /api/badges/mine
func (bc *BadgeController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	rows, err := service.ListUserBadges(c.Context(), bc.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list badges")
	}
	return helper.JsonOK(c, "ok", rows)
}
