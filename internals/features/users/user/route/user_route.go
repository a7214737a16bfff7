// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "ecolearn_backend/internals/features/users/user/controller"
	authMiddleware "ecolearn_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controller.NewUserController(db)

	// Institutions are public: the signup form needs them pre-auth.
	api := app.Group("/api")
	api.Get("/institutions", userController.ListInstitutions)
	api.Get("/institutions/:id", userController.GetInstitution)

	users := app.Group("/api/users", authMiddleware.AuthMiddleware(db))
	users.Get("/profile", userController.GetProfile)
	users.Put("/profile", userController.UpdateProfile)
	users.Put("/profile/student", userController.UpdateStudentProfile)
	users.Put("/profile/teacher", userController.UpdateTeacherProfile)
	users.Put("/profile/organization", userController.UpdateOrganization)
	users.Delete("/account", userController.DeleteAccount)
}
