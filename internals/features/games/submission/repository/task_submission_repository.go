// file: internals/features/games/submission/repository/task_submission_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "ecolearn_backend/internals/helpers"

	"ecolearn_backend/internals/features/games/submission/model"
	pointModel "ecolearn_backend/internals/features/rewards/points/model"
)

/* =============================================================================
   INTERFACE
============================================================================= */

// TaskSubmissionRepository persists proof submissions and executes the two
// terminal transitions. ApproveAndAward couples the status flip with the
// reward insert in one transaction so a crash can never approve without
// paying (or pay without approving).
type TaskSubmissionRepository interface {
	Create(ctx context.Context, sub *model.TaskSubmissionModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TaskSubmissionModel, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.TaskSubmissionModel, int64, error)
	ListByStatus(ctx context.Context, status model.SubmissionStatus, limit, offset int) ([]model.TaskSubmissionModel, int64, error)

	// ApproveAndAward flips pending→approved and inserts the reward row
	// atomically. A lost race on the status flip returns
	// helper.ErrInvalidTransition; a second award for the same submission
	// returns helper.ErrDuplicateAward.
	ApproveAndAward(ctx context.Context, submissionID, verifierID uuid.UUID, at time.Time, points int) (*model.TaskSubmissionModel, *pointModel.EcoPointModel, error)

	// Reject flips pending→rejected. No reward is created.
	Reject(ctx context.Context, submissionID, verifierID uuid.UUID, at time.Time) (*model.TaskSubmissionModel, error)
}

/* =============================================================================
   GORM IMPLEMENTATION
============================================================================= */

type taskSubmissionRepository struct {
	db *gorm.DB
}

func NewTaskSubmissionRepository(db *gorm.DB) TaskSubmissionRepository {
	return &taskSubmissionRepository{db: db}
}

func (r *taskSubmissionRepository) Create(ctx context.Context, sub *model.TaskSubmissionModel) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *taskSubmissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TaskSubmissionModel, error) {
	var sub model.TaskSubmissionModel
	err := r.db.WithContext(ctx).
		First(&sub, "task_submission_id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFoundError("task submission")
		}
		return nil, err
	}
	return &sub, nil
}

func (r *taskSubmissionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.TaskSubmissionModel, int64, error) {
	var (
		rows  []model.TaskSubmissionModel
		total int64
	)
	q := r.db.WithContext(ctx).
		Model(&model.TaskSubmissionModel{}).
		Where("task_submission_user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("task_submission_submitted_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	return rows, total, err
}

func (r *taskSubmissionRepository) ListByStatus(ctx context.Context, status model.SubmissionStatus, limit, offset int) ([]model.TaskSubmissionModel, int64, error) {
	var (
		rows  []model.TaskSubmissionModel
		total int64
	)
	q := r.db.WithContext(ctx).
		Model(&model.TaskSubmissionModel{}).
		Where("task_submission_status = ?", status)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("task_submission_submitted_at ASC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	return rows, total, err
}

func (r *taskSubmissionRepository) ApproveAndAward(ctx context.Context, submissionID, verifierID uuid.UUID, at time.Time, points int) (*model.TaskSubmissionModel, *pointModel.EcoPointModel, error) {
	var (
		sub   model.TaskSubmissionModel
		award *pointModel.EcoPointModel
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.TaskSubmissionModel{}).
			Where("task_submission_id = ? AND task_submission_status = ?", submissionID, model.SubmissionPending).
			Updates(map[string]any{
				"task_submission_status":      model.SubmissionApproved,
				"task_submission_verified_by": verifierID,
				"task_submission_verified_at": at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Either missing or already terminal; the service distinguishes
			// the two via FindByID before retrying.
			return helper.ErrInvalidTransition
		}

		if err := tx.First(&sub, "task_submission_id = ?", submissionID).Error; err != nil {
			return err
		}

		award = &pointModel.EcoPointModel{
			EcoPointUserID:       sub.TaskSubmissionUserID,
			EcoPointSubmissionID: &submissionID,
			EcoPointPoints:       points,
			EcoPointAwardedAt:    at,
		}
		if err := tx.Create(award).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.ErrDuplicateAward
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &sub, award, nil
}

func (r *taskSubmissionRepository) Reject(ctx context.Context, submissionID, verifierID uuid.UUID, at time.Time) (*model.TaskSubmissionModel, error) {
	var sub model.TaskSubmissionModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.TaskSubmissionModel{}).
			Where("task_submission_id = ? AND task_submission_status = ?", submissionID, model.SubmissionPending).
			Updates(map[string]any{
				"task_submission_status":      model.SubmissionRejected,
				"task_submission_verified_by": verifierID,
				"task_submission_verified_at": at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.ErrInvalidTransition
		}
		return tx.First(&sub, "task_submission_id = ?", submissionID).Error
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
