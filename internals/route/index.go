// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryRoute "ecolearn_backend/internals/features/catalog/category/route"
	quizRoute "ecolearn_backend/internals/features/catalog/quiz/route"
	gameRoute "ecolearn_backend/internals/features/games/game/route"
	dashboardRoute "ecolearn_backend/internals/features/home/dashboard/route"
	rewardRoute "ecolearn_backend/internals/features/rewards/points/route"
	authRoute "ecolearn_backend/internals/features/users/auth/route"
	userRoute "ecolearn_backend/internals/features/users/user/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] Setting up CategoryRoutes...")
	categoryRoute.CategoryRoutes(app, db)

	log.Println("[INFO] Setting up QuizRoutes...")
	quizRoute.QuizRoutes(app, db)

	log.Println("[INFO] Setting up GameRoutes...")
	gameRoute.GameRoutes(app, db)

	log.Println("[INFO] Setting up RewardRoutes...")
	rewardRoute.RewardRoutes(app, db)

	log.Println("[INFO] Setting up DashboardRoutes...")
	dashboardRoute.DashboardRoutes(app, db)

	// Uptime probe for the deployment platform.
	app.Get("/api/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
