// file: internals/features/rewards/points/route/point_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecolearn_backend/internals/constants"
	badgeController "ecolearn_backend/internals/features/rewards/badge/controller"
	pointController "ecolearn_backend/internals/features/rewards/points/controller"
	authMiddleware "ecolearn_backend/internals/middlewares/auth"
)

func RewardRoutes(app *fiber.App, db *gorm.DB) {
	points := pointController.NewPointController(db)
	badges := badgeController.NewBadgeController(db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	api.Get("/points/total", points.MyTotal)
	api.Get("/points/history", points.MyHistory)
	api.Get("/leaderboard", points.Leaderboard)

	api.Get("/badges", badges.List)
	api.Get("/badges/mine", badges.ListMine)

	manage := api.Group("", authMiddleware.OnlyRolesSlice(
		constants.RoleErrorVerifier("badge management"),
		constants.VerifierRoles,
	))
	manage.Post("/badges", badges.Create)
	manage.Post("/badges/award", badges.Award)
}
