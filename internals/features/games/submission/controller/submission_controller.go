// file: internals/features/games/submission/controller/submission_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	gameModel "ecolearn_backend/internals/features/games/game/model"
	"ecolearn_backend/internals/features/games/submission/dto"
	"ecolearn_backend/internals/features/games/submission/repository"
	"ecolearn_backend/internals/features/games/submission/service"
	helper "ecolearn_backend/internals/helpers"
)

type SubmissionController struct {
	DB       *gorm.DB
	Service  *service.VerificationService
	Validate *validator.Validate
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{
		DB:       db,
		Service:  service.NewVerificationService(repository.NewTaskSubmissionRepository(db)),
		Validate: validator.New(),
	}
}

// POST /api/submissions — a student submits proof of a real-world task.
func (sc *SubmissionController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := sc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.GameID != nil {
		var game gameModel.GameModel
		if err := sc.DB.First(&game, "game_id = ?", req.GameID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Game not found")
		}
		if game.GameType != gameModel.GameTypeRealWorldTask {
			return helper.JsonAppError(c, helper.NewValidationError("game_id", "only real-world task games accept proof submissions"))
		}
	}

	sub, err := sc.Service.Submit(c.Context(), userID, req.GameID, req.Proof)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Submission received", sub)
}

// GET /api/submissions — the caller's own submissions.
func (sc *SubmissionController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	rows, total, err := sc.Service.ListMine(c.Context(), userID, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list submissions")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/submissions/pending — the verifier queue, oldest first.
func (sc *SubmissionController) ListPending(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	rows, total, err := sc.Service.ListPending(c.Context(), paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list pending submissions")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/submissions/:id
func (sc *SubmissionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}
	sub, err := sc.Service.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", sub)
}

// POST /api/submissions/:id/verify — approve (grants the reward) or reject.
func (sc *SubmissionController) Verify(c *fiber.Ctx) error {
	verifierID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	var req dto.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := sc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return helper.JsonAppError(c, err)
	}

	if req.Action == "approve" {
		sub, award, err := sc.Service.Approve(c.Context(), id, verifierID, req.Points)
		if err != nil {
			return helper.JsonAppError(c, err)
		}
		return helper.JsonUpdated(c, "Submission approved", fiber.Map{
			"submission": sub,
			"award":      award,
		})
	}

	sub, err := sc.Service.Reject(c.Context(), id, verifierID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonUpdated(c, "Submission rejected", sub)
}
