// file: internals/features/catalog/category/controller/category_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecolearn_backend/internals/features/catalog/category/dto"
	"ecolearn_backend/internals/features/catalog/category/model"
	helper "ecolearn_backend/internals/helpers"
	ossHelper "ecolearn_backend/internals/helpers/oss"
)

type CategoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db, Validate: validator.New()}
}

/* =============================================================================
   CATEGORY CRUD
============================================================================= */

// GET /api/categories?grade=&stream=&page=&per_page=
//
// grade/stream narrow the catalog to what the student's profile may see: a
// category matches when its grade window covers the grade and its stream
// list is empty or contains the stream.
func (cc *CategoryController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := cc.DB.Model(&model.CategoryModel{})
	if gradeStr := strings.TrimSpace(c.Query("grade")); gradeStr != "" {
		grade, err := strconv.Atoi(gradeStr)
		if err != nil || grade < 1 || grade > 12 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid grade filter")
		}
		q = q.Where("(category_grade_min IS NULL OR category_grade_min <= ?)", grade).
			Where("(category_grade_max IS NULL OR category_grade_max >= ?)", grade)
	}
	if stream := strings.TrimSpace(c.Query("stream")); stream != "" {
		q = q.Where("(category_streams IS NULL OR cardinality(category_streams) = 0 OR ? = ANY(category_streams))", stream)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count categories")
	}
	var rows []model.CategoryModel
	if err := q.Order("category_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list categories")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/categories/:id
func (cc *CategoryController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category id")
	}
	var cat model.CategoryModel
	if err := cc.DB.First(&cat, "category_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}
	return helper.JsonOK(c, "ok", cat)
}

// POST /api/categories
func (cc *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.GradeMin != nil && req.GradeMax != nil && *req.GradeMin > *req.GradeMax {
		return helper.JsonAppError(c, helper.NewValidationError("grade_min", "grade_min must not exceed grade_max"))
	}

	cat := req.ToModel()
	if err := cc.DB.Create(cat).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Category name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create category")
	}
	return helper.JsonCreated(c, "Category created", cat)
}

// PUT /api/categories/:id
func (cc *CategoryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category id")
	}
	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var cat model.CategoryModel
	if err := cc.DB.First(&cat, "category_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}
	req.ApplyToModel(&cat)
	if cat.CategoryGradeMin != nil && cat.CategoryGradeMax != nil && *cat.CategoryGradeMin > *cat.CategoryGradeMax {
		return helper.JsonAppError(c, helper.NewValidationError("grade_min", "grade_min must not exceed grade_max"))
	}
	if err := cc.DB.Save(&cat).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Category name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update category")
	}
	return helper.JsonUpdated(c, "Category updated", cat)
}

// DELETE /api/categories/:id (blocked while subtopics reference it)
func (cc *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category id")
	}
	var count int64
	if err := cc.DB.Model(&model.SubTopicModel{}).
		Where("subtopic_category_id = ?", id).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check subtopics")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Category still has subtopics")
	}
	res := cc.DB.Delete(&model.CategoryModel{}, "category_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete category")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}
	return helper.JsonDeleted(c, "Category deleted", nil)
}

// POST /api/categories/:id/media — multipart upload, stored as webp in OSS.
func (cc *CategoryController) UploadMedia(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category id")
	}
	var cat model.CategoryModel
	if err := cc.DB.First(&cat, "category_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}
	svc, err := ossHelper.NewOSSServiceFromEnv("categories")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Object storage is not configured")
	}
	url, err := svc.UploadAsWebP(c.Context(), fh, cat.CategoryID.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Upload failed")
	}

	if err := cc.DB.Model(&cat).
		Update("category_media_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save media URL")
	}
	return helper.JsonUpdated(c, "Media uploaded", fiber.Map{"media_url": url})
}

/* =============================================================================
   SUBTOPIC CRUD
============================================================================= */

// GET /api/categories/:id/subtopics
func (cc *CategoryController) ListSubTopics(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category id")
	}
	var rows []model.SubTopicModel
	if err := cc.DB.
		Where("subtopic_category_id = ?", categoryID).
		Order("subtopic_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list subtopics")
	}
	return helper.JsonOK(c, "ok", rows)
}

// POST /api/subtopics
func (cc *CategoryController) CreateSubTopic(c *fiber.Ctx) error {
	var req dto.CreateSubTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var exists int64
	if err := cc.DB.Model(&model.CategoryModel{}).
		Where("category_id = ?", req.CategoryID).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check category")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}

	sub := req.ToModel()
	if err := cc.DB.Create(sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subtopic")
	}
	return helper.JsonCreated(c, "Subtopic created", sub)
}

// PUT /api/subtopics/:id
func (cc *CategoryController) UpdateSubTopic(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subtopic id")
	}
	var req dto.UpdateSubTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var sub model.SubTopicModel
	if err := cc.DB.First(&sub, "subtopic_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subtopic not found")
	}
	req.ApplyToModel(&sub)
	if err := cc.DB.Save(&sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subtopic")
	}
	return helper.JsonUpdated(c, "Subtopic updated", sub)
}

// DELETE /api/subtopics/:id
func (cc *CategoryController) DeleteSubTopic(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subtopic id")
	}
	res := cc.DB.Delete(&model.SubTopicModel{}, "subtopic_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subtopic")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subtopic not found")
	}
	return helper.JsonDeleted(c, "Subtopic deleted", nil)
}
