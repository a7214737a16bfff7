// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecolearn_backend/internals/features/users/user/dto"
	"ecolearn_backend/internals/features/users/user/model"
	"ecolearn_backend/internals/features/users/user/service"
	helper "ecolearn_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

/* =============================================================================
   PROFILE
============================================================================= */

// GET /api/users/profile
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	resp, err := service.LoadProfile(c.Context(), uc.DB, userID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", resp)
}

// PUT /api/users/profile
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	req.ApplyToModel(&user)
	if err := uc.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.JsonUpdated(c, "Profile updated", dto.NewProfileResponse(&user))
}

// PUT /api/users/profile/student
func (uc *UserController) UpdateStudentProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpdateStudentProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var profile model.StudentProfileModel
	if err := uc.DB.First(&profile, "student_profile_user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
	}
	req.ApplyToModel(&profile)
	if err := uc.DB.Save(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student profile")
	}
	return helper.JsonUpdated(c, "Student profile updated", profile)
}

// PUT /api/users/profile/teacher
func (uc *UserController) UpdateTeacherProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpdateTeacherProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var profile model.TeacherProfileModel
	if err := uc.DB.First(&profile, "teacher_profile_user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher profile not found")
	}
	req.ApplyToModel(&profile)
	if err := uc.DB.Save(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update teacher profile")
	}
	return helper.JsonUpdated(c, "Teacher profile updated", profile)
}

// PUT /api/users/profile/organization
func (uc *UserController) UpdateOrganization(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.UpdateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := uc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var org model.OrganizationModel
	if err := uc.DB.First(&org, "organization_user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Organization not found")
	}
	req.ApplyToModel(&org)
	if err := uc.DB.Save(&org).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update organization")
	}
	return helper.JsonUpdated(c, "Organization updated", org)
}

// DELETE /api/users/account
func (uc *UserController) DeleteAccount(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if err := service.DeleteAccount(c.Context(), uc.DB, userID); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonDeleted(c, "Account deleted", nil)
}

/* =============================================================================
   INSTITUTIONS
============================================================================= */

// GET /api/institutions?search=&type=&page=&per_page=
func (uc *UserController) ListInstitutions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := uc.DB.Model(&model.InstitutionModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("institution_name ILIKE ?", "%"+search+"%")
	}
	if typ := model.InstitutionType(strings.TrimSpace(c.Query("type"))); typ.Valid() {
		q = q.Where("institution_type = ?", typ)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count institutions")
	}
	var rows []model.InstitutionModel
	if err := q.Order("institution_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list institutions")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/institutions/:id
func (uc *UserController) GetInstitution(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid institution id")
	}
	var inst model.InstitutionModel
	if err := uc.DB.First(&inst, "institution_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Institution not found")
	}
	return helper.JsonOK(c, "ok", inst)
}
