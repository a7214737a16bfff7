// file: internals/features/games/submission/service/verification_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	helper "ecolearn_backend/internals/helpers"

	"ecolearn_backend/internals/features/games/submission/model"
	"ecolearn_backend/internals/features/games/submission/repository"
	pointModel "ecolearn_backend/internals/features/rewards/points/model"
)

const defaultTaskPoints = 10

// VerificationService enforces the submission state machine:
//
//	pending → approved (distinct verifier, reward granted)
//	pending → rejected (distinct verifier, no reward)
//
// Terminal states never transition again.
type VerificationService struct {
	repo repository.TaskSubmissionRepository
}

func NewVerificationService(repo repository.TaskSubmissionRepository) *VerificationService {
	return &VerificationService{repo: repo}
}

// Submit records a new proof submission in pending state.
func (s *VerificationService) Submit(ctx context.Context, userID uuid.UUID, gameID *uuid.UUID, proof string) (*model.TaskSubmissionModel, error) {
	if userID == uuid.Nil {
		return nil, helper.NewValidationError("user_id", "user id is required")
	}
	if proof == "" {
		return nil, helper.NewValidationError("proof", "proof is required")
	}
	sub := &model.TaskSubmissionModel{
		TaskSubmissionUserID: userID,
		TaskSubmissionGameID: gameID,
		TaskSubmissionProof:  proof,
		TaskSubmissionStatus: model.SubmissionPending,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Approve moves a pending submission to approved and grants its reward.
// points <= 0 falls back to the default task reward.
func (s *VerificationService) Approve(ctx context.Context, submissionID, verifierID uuid.UUID, points int) (*model.TaskSubmissionModel, *pointModel.EcoPointModel, error) {
	sub, err := s.guardTransition(ctx, submissionID, verifierID)
	if err != nil {
		return nil, nil, err
	}
	if points <= 0 {
		points = defaultTaskPoints
	}
	return s.repo.ApproveAndAward(ctx, sub.TaskSubmissionID, verifierID, time.Now(), points)
}

// Reject moves a pending submission to rejected. Nothing is granted.
func (s *VerificationService) Reject(ctx context.Context, submissionID, verifierID uuid.UUID) (*model.TaskSubmissionModel, error) {
	sub, err := s.guardTransition(ctx, submissionID, verifierID)
	if err != nil {
		return nil, err
	}
	return s.repo.Reject(ctx, sub.TaskSubmissionID, verifierID, time.Now())
}

// guardTransition loads the submission and applies the rules common to both
// terminal transitions. The repository re-checks pending state inside its
// transaction, so a race here only changes which error surfaces.
func (s *VerificationService) guardTransition(ctx context.Context, submissionID, verifierID uuid.UUID) (*model.TaskSubmissionModel, error) {
	if submissionID == uuid.Nil {
		return nil, helper.NewValidationError("submission_id", "submission id is required")
	}
	if verifierID == uuid.Nil {
		return nil, helper.NewValidationError("verified_by", "verifier id is required")
	}
	sub, err := s.repo.FindByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub.TaskSubmissionStatus.IsTerminal() {
		return nil, helper.ErrInvalidTransition
	}
	if sub.TaskSubmissionUserID == verifierID {
		return nil, helper.NewValidationError("verified_by", "submitter cannot verify their own submission")
	}
	return sub, nil
}

/* =============================================================================
   READS
============================================================================= */

func (s *VerificationService) GetByID(ctx context.Context, id uuid.UUID) (*model.TaskSubmissionModel, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VerificationService) ListMine(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.TaskSubmissionModel, int64, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

// ListPending feeds the verifier queue, oldest first.
func (s *VerificationService) ListPending(ctx context.Context, limit, offset int) ([]model.TaskSubmissionModel, int64, error) {
	return s.repo.ListByStatus(ctx, model.SubmissionPending, limit, offset)
}
