// file: internals/features/games/submission/model/task_submission_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   ENUM-like: submission status ('pending','approved','rejected')
============================================================================= */

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) String() string { return string(s) }

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionPending, SubmissionApproved, SubmissionRejected:
		return true
	default:
		return false
	}
}

// Terminal states accept no further transitions.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionApproved || s == SubmissionRejected
}

func (s *SubmissionStatus) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*s = ""
		return nil
	case string:
		*s = SubmissionStatus(v)
	case []byte:
		*s = SubmissionStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for SubmissionStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid SubmissionStatus: %q", *s)
	}
	return nil
}

func (s SubmissionStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid SubmissionStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: task_submissions
============================================================================= */

// TaskSubmissionModel: proof of a real-world task. Status only moves
// pending→approved or pending→rejected, by a user distinct from the
// submitter.
type TaskSubmissionModel struct {
	TaskSubmissionID          uuid.UUID        `gorm:"column:task_submission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"task_submission_id"`
	TaskSubmissionUserID      uuid.UUID        `gorm:"column:task_submission_user_id;type:uuid;not null;index" json:"task_submission_user_id"`
	TaskSubmissionGameID      *uuid.UUID       `gorm:"column:task_submission_game_id;type:uuid;index" json:"task_submission_game_id,omitempty"`
	TaskSubmissionProof       string           `gorm:"column:task_submission_proof;type:text;not null" json:"task_submission_proof" validate:"required"` // proof URL or description
	TaskSubmissionStatus      SubmissionStatus `gorm:"column:task_submission_status;type:varchar(20);not null;default:'pending';index" json:"task_submission_status"`
	TaskSubmissionVerifiedBy  *uuid.UUID       `gorm:"column:task_submission_verified_by;type:uuid" json:"task_submission_verified_by,omitempty"`
	TaskSubmissionVerifiedAt  *time.Time       `gorm:"column:task_submission_verified_at" json:"task_submission_verified_at,omitempty"`
	TaskSubmissionSubmittedAt time.Time        `gorm:"column:task_submission_submitted_at;autoCreateTime" json:"task_submission_submitted_at"`
}

func (TaskSubmissionModel) TableName() string { return "task_submissions" }
