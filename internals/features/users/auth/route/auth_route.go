// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "ecolearn_backend/internals/features/users/auth/controller"
	rateLimiter "ecolearn_backend/internals/middlewares"
	authMiddleware "ecolearn_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth. Login and register carry their own tighter
// rate limits on top of the global one.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/refresh-token", authController.RefreshToken)
	baseAuth.Post("/logout", authController.Logout)

	protectedAuth := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	protectedAuth.Get("/me", authController.Me)
	protectedAuth.Post("/change-password", authController.ChangePassword)
}
