// file: internals/features/games/submission/dto/submission_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	helper "ecolearn_backend/internals/helpers"
)

type CreateSubmissionRequest struct {
	GameID *uuid.UUID `json:"game_id,omitempty"`
	Proof  string     `json:"proof" validate:"required"` // URL or free-text description
}

func (r *CreateSubmissionRequest) Normalize() {
	r.Proof = strings.TrimSpace(r.Proof)
}

// VerifyRequest carries the terminal decision. Points apply to approvals
// only; zero means the default task reward.
type VerifyRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Points int    `json:"points,omitempty" validate:"omitempty,min=1,max=1000"`
}

func (r *VerifyRequest) Normalize() {
	r.Action = strings.ToLower(strings.TrimSpace(r.Action))
}

func (r *VerifyRequest) Validate() error {
	if r.Action == "reject" && r.Points != 0 {
		return helper.NewValidationError("points", "points cannot be set on a rejection")
	}
	return nil
}
