// file: internals/features/games/game/route/game_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecolearn_backend/internals/constants"
	attemptController "ecolearn_backend/internals/features/games/attempt/controller"
	gameController "ecolearn_backend/internals/features/games/game/controller"
	submissionController "ecolearn_backend/internals/features/games/submission/controller"
	authMiddleware "ecolearn_backend/internals/middlewares/auth"
)

func GameRoutes(app *fiber.App, db *gorm.DB) {
	games := gameController.NewGameController(db)
	attempts := attemptController.NewAttemptController(db)
	submissions := submissionController.NewSubmissionController(db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	// Games & topics
	api.Get("/games", games.List)
	api.Get("/games/:id", games.GetByID)
	api.Get("/game-topics", games.ListTopics)

	manage := api.Group("", authMiddleware.OnlyRolesSlice(
		constants.RoleErrorVerifier("game management"),
		constants.VerifierRoles,
	))
	manage.Post("/games", games.Create)
	manage.Put("/games/:id", games.Update)
	manage.Delete("/games/:id", games.Delete)
	manage.Post("/game-topics", games.CreateTopic)

	// Attempts: students play.
	student := api.Group("", authMiddleware.OnlyRolesSlice(
		constants.RoleErrorStudent("game attempts"),
		constants.StudentRoles,
	))
	student.Post("/attempts", attempts.Create)
	student.Post("/submissions", submissions.Create)

	api.Get("/attempts", attempts.ListMine)
	api.Get("/games/:id/attempts/stats", attempts.StatsForGame)

	// Submissions: pending queue and verification are for verifier roles.
	verify := api.Group("", authMiddleware.OnlyRolesSlice(
		constants.RoleErrorVerifier("task verification"),
		constants.VerifierRoles,
	))
	verify.Get("/submissions/pending", submissions.ListPending)
	verify.Post("/submissions/:id/verify", submissions.Verify)

	api.Get("/submissions", submissions.ListMine)
	api.Get("/submissions/:id", submissions.GetByID)
}
