// file: internals/features/games/game/dto/game_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ecolearn_backend/internals/features/games/game/model"
)

type CreateGameRequest struct {
	Title       string         `json:"title" validate:"required,max=255"`
	Description string         `json:"description" validate:"required"`
	Type        string         `json:"type" validate:"required,oneof=quiz puzzle mini_game real_world_task"`
	GradeMin    *int           `json:"grade_min,omitempty" validate:"omitempty,min=1,max=12"`
	GradeMax    *int           `json:"grade_max,omitempty" validate:"omitempty,min=1,max=12"`
	Difficulty  string         `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	TopicID     *uuid.UUID     `json:"topic_id,omitempty"`
	Config      datatypes.JSON `json:"config,omitempty"`
}

func (r *CreateGameRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
}

func (r *CreateGameRequest) ToModel(createdBy uuid.UUID) *model.GameModel {
	g := &model.GameModel{
		GameTitle:       r.Title,
		GameDescription: r.Description,
		GameType:        model.GameType(r.Type),
		GameGradeMin:    r.GradeMin,
		GameGradeMax:    r.GradeMax,
		GameTopicID:     r.TopicID,
		GameCreatedBy:   &createdBy,
		GameConfig:      r.Config,
	}
	if d := model.GameDifficulty(r.Difficulty); d.Valid() {
		g.GameDifficulty = d
	}
	return g
}

type UpdateGameRequest struct {
	Title       *string        `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string        `json:"description,omitempty"`
	GradeMin    *int           `json:"grade_min,omitempty" validate:"omitempty,min=1,max=12"`
	GradeMax    *int           `json:"grade_max,omitempty" validate:"omitempty,min=1,max=12"`
	Difficulty  *string        `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	TopicID     *uuid.UUID     `json:"topic_id,omitempty"`
	Config      datatypes.JSON `json:"config,omitempty"`
}

func (r *UpdateGameRequest) ApplyToModel(g *model.GameModel) {
	if r.Title != nil {
		g.GameTitle = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		g.GameDescription = *r.Description
	}
	if r.GradeMin != nil {
		g.GameGradeMin = r.GradeMin
	}
	if r.GradeMax != nil {
		g.GameGradeMax = r.GradeMax
	}
	if r.Difficulty != nil {
		if d := model.GameDifficulty(strings.ToLower(*r.Difficulty)); d.Valid() {
			g.GameDifficulty = d
		}
	}
	if r.TopicID != nil {
		g.GameTopicID = r.TopicID
	}
	if r.Config != nil {
		g.GameConfig = r.Config
	}
}

type CreateGameTopicRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (r *CreateGameTopicRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}
