// file: internals/features/rewards/points/controller/point_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecolearn_backend/internals/configs"
	"ecolearn_backend/internals/features/rewards/points/repository"
	"ecolearn_backend/internals/features/rewards/points/service"
	userModel "ecolearn_backend/internals/features/users/user/model"
	helper "ecolearn_backend/internals/helpers"
)

type PointController struct {
	DB      *gorm.DB
	Service *service.EcoPointService
}

func NewPointController(db *gorm.DB) *PointController {
	return &PointController{
		DB: db,
		Service: service.NewEcoPointService(repository.NewEcoPointRepository(db)).
			WithDailyPoints(configs.DailyLoginPoints),
	}
}

// GET /api/points/total — the caller's summed total.
func (pc *PointController) MyTotal(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	total, err := pc.Service.TotalPoints(c.Context(), userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sum points")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"total_points": total})
}

// GET /api/points/history?limit= — the caller's recent grants.
func (pc *PointController) MyHistory(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	limit := c.QueryInt("limit", 20)
	rows, err := pc.Service.RecentAwards(c.Context(), userID, limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list point history")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/leaderboard?institution_id=&limit=
//
// Students may omit institution_id; it defaults to their own institution.
func (pc *PointController) Leaderboard(c *fiber.Ctx) error {
	institutionID, err := pc.resolveInstitutionID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	limit := c.QueryInt("limit", 10)

	rows, err := pc.Service.Leaderboard(c.Context(), institutionID, limit)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"institution_id": institutionID,
		"entries":        rows,
	})
}

func (pc *PointController) resolveInstitutionID(c *fiber.Ctx) (uuid.UUID, error) {
	if raw := c.Query("institution_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, helper.NewValidationError("institution_id", "invalid uuid")
		}
		return id, nil
	}

	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return uuid.Nil, helper.NewValidationError("institution_id", "institution_id is required")
	}
	var profile userModel.StudentProfileModel
	if err := pc.DB.
		Select("student_profile_institution_id").
		First(&profile, "student_profile_user_id = ?", userID).Error; err != nil {
		return uuid.Nil, helper.NewValidationError("institution_id", "institution_id is required for non-student accounts")
	}
	return profile.StudentProfileInstitutionID, nil
}
