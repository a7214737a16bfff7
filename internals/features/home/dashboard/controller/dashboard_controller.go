// file: internals/features/home/dashboard/controller/dashboard_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecolearn_backend/internals/configs"
	categoryModel "ecolearn_backend/internals/features/catalog/category/model"
	attemptModel "ecolearn_backend/internals/features/games/attempt/model"
	submissionModel "ecolearn_backend/internals/features/games/submission/model"
	badgeService "ecolearn_backend/internals/features/rewards/badge/service"
	pointRepo "ecolearn_backend/internals/features/rewards/points/repository"
	pointService "ecolearn_backend/internals/features/rewards/points/service"
	userModel "ecolearn_backend/internals/features/users/user/model"
	helper "ecolearn_backend/internals/helpers"
)

type DashboardController struct {
	DB     *gorm.DB
	Points *pointService.EcoPointService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		DB: db,
		Points: pointService.NewEcoPointService(pointRepo.NewEcoPointRepository(db)).
			WithDailyPoints(configs.DailyLoginPoints),
	}
}

// GET /api/dashboard
//
// One composed payload for the landing screen: totals, recent grants,
// badges, recent attempts, and (for students) the institution leaderboard
// and visible categories.
func (dc *DashboardController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	out := fiber.Map{}

	// Opening the dashboard counts as the day's visit. Best-effort: a grant
	// failure must never block the page.
	if award, err := dc.Points.GrantDailyLogin(c.Context(), userID, time.Now().UTC()); err != nil {
		log.Printf("[dashboard] daily reward grant failed for %s: %v", userID, err)
	} else if award != nil {
		out["daily_reward"] = award.EcoPointPoints
	}

	total, err := dc.Points.TotalPoints(c.Context(), userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sum points")
	}
	out["total_points"] = total

	if recent, err := dc.Points.RecentAwards(c.Context(), userID, 5); err == nil {
		out["recent_awards"] = recent
	} else {
		log.Printf("[dashboard] recent awards failed: %v", err)
	}

	if badges, err := badgeService.ListUserBadges(c.Context(), dc.DB, userID); err == nil {
		out["badges"] = badges
	} else {
		log.Printf("[dashboard] badges failed: %v", err)
	}

	var attempts []attemptModel.GameAttemptModel
	if err := dc.DB.WithContext(c.Context()).
		Where("game_attempt_user_id = ?", userID).
		Order("game_attempt_date DESC").
		Limit(5).
		Find(&attempts).Error; err == nil {
		out["recent_attempts"] = attempts
	}

	var submissions []submissionModel.TaskSubmissionModel
	if err := dc.DB.WithContext(c.Context()).
		Where("task_submission_user_id = ?", userID).
		Order("task_submission_submitted_at DESC").
		Limit(5).
		Find(&submissions).Error; err == nil {
		out["recent_submissions"] = submissions
	}

	// Student extras: leaderboard of their institution and a catalog slice
	// scoped to their grade/stream.
	var profile userModel.StudentProfileModel
	if err := dc.DB.WithContext(c.Context()).
		First(&profile, "student_profile_user_id = ?", userID).Error; err == nil {
		if board, err := dc.Points.Leaderboard(c.Context(), profile.StudentProfileInstitutionID, 10); err == nil {
			out["leaderboard"] = board
		}

		catQ := dc.DB.WithContext(c.Context()).Model(&categoryModel.CategoryModel{})
		if profile.StudentProfileGrade != nil {
			catQ = catQ.Where("(category_grade_min IS NULL OR category_grade_min <= ?)", *profile.StudentProfileGrade).
				Where("(category_grade_max IS NULL OR category_grade_max >= ?)", *profile.StudentProfileGrade)
		}
		if profile.StudentProfileStream != "" {
			catQ = catQ.Where("(category_streams IS NULL OR cardinality(category_streams) = 0 OR ? = ANY(category_streams))", profile.StudentProfileStream)
		}
		var categories []categoryModel.CategoryModel
		if err := catQ.Order("category_name ASC").Limit(12).Find(&categories).Error; err == nil {
			out["categories"] = categories
		}

		// ?category_id= expands one category into its subtopics.
		if raw := c.Query("category_id"); raw != "" {
			if catID, err := uuid.Parse(raw); err == nil {
				var subtopics []categoryModel.SubTopicModel
				if err := dc.DB.WithContext(c.Context()).
					Where("subtopic_category_id = ?", catID).
					Order("subtopic_name ASC").
					Find(&subtopics).Error; err == nil {
					out["subtopics"] = subtopics
				}
			}
		}
	}

	return helper.JsonOK(c, "ok", out)
}
