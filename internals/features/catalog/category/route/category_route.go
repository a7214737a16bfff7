// file: internals/features/catalog/category/route/category_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecolearn_backend/internals/constants"
	controller "ecolearn_backend/internals/features/catalog/category/controller"
	authMiddleware "ecolearn_backend/internals/middlewares/auth"
)

func CategoryRoutes(app *fiber.App, db *gorm.DB) {
	categoryController := controller.NewCategoryController(db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	// Reads: any authenticated role.
	api.Get("/categories", categoryController.List)
	api.Get("/categories/:id", categoryController.GetByID)
	api.Get("/categories/:id/subtopics", categoryController.ListSubTopics)

	// Writes: teachers and organizations manage the catalog.
	manage := api.Group("", authMiddleware.OnlyRolesSlice(
		constants.RoleErrorVerifier("the content catalog"),
		constants.VerifierRoles,
	))
	manage.Post("/categories", categoryController.Create)
	manage.Put("/categories/:id", categoryController.Update)
	manage.Delete("/categories/:id", categoryController.Delete)
	manage.Post("/categories/:id/media", categoryController.UploadMedia)
	manage.Post("/subtopics", categoryController.CreateSubTopic)
	manage.Put("/subtopics/:id", categoryController.UpdateSubTopic)
	manage.Delete("/subtopics/:id", categoryController.DeleteSubTopic)
}
