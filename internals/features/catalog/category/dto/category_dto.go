// file: internals/features/catalog/category/dto/category_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ecolearn_backend/internals/features/catalog/category/model"
)

/* =============================================================================
   CATEGORY
============================================================================= */

type CreateCategoryRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description,omitempty"`
	GradeMin    *int     `json:"grade_min,omitempty" validate:"omitempty,min=1,max=12"`
	GradeMax    *int     `json:"grade_max,omitempty" validate:"omitempty,min=1,max=12"`
	Streams     []string `json:"streams,omitempty" validate:"omitempty,dive,max=100"`
	MediaURL    string   `json:"media_url,omitempty" validate:"omitempty,max=512"`
}

func (r *CreateCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	for i := range r.Streams {
		r.Streams[i] = strings.TrimSpace(r.Streams[i])
	}
}

func (r *CreateCategoryRequest) ToModel() *model.CategoryModel {
	return &model.CategoryModel{
		CategoryName:        r.Name,
		CategoryDescription: r.Description,
		CategoryGradeMin:    r.GradeMin,
		CategoryGradeMax:    r.GradeMax,
		CategoryStreams:     pq.StringArray(r.Streams),
		CategoryMediaURL:    r.MediaURL,
	}
}

type UpdateCategoryRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string   `json:"description,omitempty"`
	GradeMin    *int      `json:"grade_min,omitempty" validate:"omitempty,min=1,max=12"`
	GradeMax    *int      `json:"grade_max,omitempty" validate:"omitempty,min=1,max=12"`
	Streams     *[]string `json:"streams,omitempty"`
	MediaURL    *string   `json:"media_url,omitempty" validate:"omitempty,max=512"`
}

func (r *UpdateCategoryRequest) ApplyToModel(m *model.CategoryModel) {
	if r.Name != nil {
		m.CategoryName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m.CategoryDescription = *r.Description
	}
	if r.GradeMin != nil {
		m.CategoryGradeMin = r.GradeMin
	}
	if r.GradeMax != nil {
		m.CategoryGradeMax = r.GradeMax
	}
	if r.Streams != nil {
		m.CategoryStreams = pq.StringArray(*r.Streams)
	}
	if r.MediaURL != nil {
		m.CategoryMediaURL = *r.MediaURL
	}
}

/* =============================================================================
   SUBTOPIC
============================================================================= */

type CreateSubTopicRequest struct {
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=255"`
	Description string    `json:"description,omitempty"`
}

func (r *CreateSubTopicRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateSubTopicRequest) ToModel() *model.SubTopicModel {
	return &model.SubTopicModel{
		SubTopicCategoryID:  r.CategoryID,
		SubTopicName:        r.Name,
		SubTopicDescription: r.Description,
	}
}

type UpdateSubTopicRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateSubTopicRequest) ApplyToModel(m *model.SubTopicModel) {
	if r.Name != nil {
		m.SubTopicName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m.SubTopicDescription = *r.Description
	}
}
