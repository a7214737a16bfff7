// file: internals/features/catalog/quiz/route/quiz_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecolearn_backend/internals/constants"
	controller "ecolearn_backend/internals/features/catalog/quiz/controller"
	authMiddleware "ecolearn_backend/internals/middlewares/auth"
)

func QuizRoutes(app *fiber.App, db *gorm.DB) {
	quizController := controller.NewQuizController(db)
	puzzleController := controller.NewPuzzleController(db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	api.Get("/subtopics/:id/quiz-questions", quizController.ListBySubTopic)
	api.Get("/quiz-questions/:id", quizController.GetByID)
	api.Get("/subtopics/:id/puzzles", puzzleController.ListBySubTopic)
	api.Get("/puzzles/:id", puzzleController.GetByID)

	manage := api.Group("", authMiddleware.OnlyRolesSlice(
		constants.RoleErrorVerifier("quiz and puzzle management"),
		constants.VerifierRoles,
	))
	manage.Post("/quiz-questions", quizController.Create)
	manage.Put("/quiz-questions/:id", quizController.Update)
	manage.Delete("/quiz-questions/:id", quizController.Delete)
	manage.Post("/puzzles", puzzleController.Create)
	manage.Put("/puzzles/:id", puzzleController.Update)
	manage.Delete("/puzzles/:id", puzzleController.Delete)
	manage.Post("/puzzles/:id/media", puzzleController.UploadMedia)
}
