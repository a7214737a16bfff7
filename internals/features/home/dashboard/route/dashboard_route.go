// file: internals/features/home/dashboard/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "ecolearn_backend/internals/features/home/dashboard/controller"
	authMiddleware "ecolearn_backend/internals/middlewares/auth"
)

func DashboardRoutes(app *fiber.App, db *gorm.DB) {
	dashboardController := controller.NewDashboardController(db)

	app.Get("/api/dashboard", authMiddleware.AuthMiddleware(db), dashboardController.Get)
}
