// file: internals/features/rewards/badge/dto/badge_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"ecolearn_backend/internals/features/rewards/badge/model"
)

type CreateBadgeRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Description    string `json:"description" validate:"required"`
	UnlockCriteria string `json:"unlock_criteria" validate:"required"`
}

func (r *CreateBadgeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *CreateBadgeRequest) ToModel() *model.BadgeModel {
	return &model.BadgeModel{
		BadgeName:           r.Name,
		BadgeDescription:    r.Description,
		BadgeUnlockCriteria: r.UnlockCriteria,
	}
}

type AwardBadgeRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	BadgeID uuid.UUID `json:"badge_id" validate:"required"`
}
