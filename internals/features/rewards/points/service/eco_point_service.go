// file: internals/features/rewards/points/service/eco_point_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	helper "ecolearn_backend/internals/helpers"

	"ecolearn_backend/internals/features/rewards/points/model"
	"ecolearn_backend/internals/features/rewards/points/repository"
)

const (
	defaultDailyPoints     = 1
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

// EcoPointService owns the reward rules: one daily-login grant per user per
// calendar day, one grant per approved submission, totals by summation only.
type EcoPointService struct {
	repo        repository.EcoPointRepository
	dailyPoints int
}

func NewEcoPointService(repo repository.EcoPointRepository) *EcoPointService {
	return &EcoPointService{repo: repo, dailyPoints: defaultDailyPoints}
}

// WithDailyPoints overrides the daily-login grant value (env-driven).
func (s *EcoPointService) WithDailyPoints(points int) *EcoPointService {
	if points > 0 {
		s.dailyPoints = points
	}
	return s
}

/* =============================================================================
   GRANTS
============================================================================= */

// GrantDailyLogin awards the daily-login point for the given moment. The
// call is idempotent: a second grant on the same calendar day returns
// (nil, nil) instead of an error, so callers can fire it on every login.
func (s *EcoPointService) GrantDailyLogin(ctx context.Context, userID uuid.UUID, at time.Time) (*model.EcoPointModel, error) {
	if userID == uuid.Nil {
		return nil, helper.NewValidationError("user_id", "user id is required")
	}
	if at.IsZero() {
		at = time.Now()
	}

	award := &model.EcoPointModel{
		EcoPointUserID:    userID,
		EcoPointPoints:    s.dailyPoints,
		EcoPointIsDaily:   true,
		EcoPointAwardedAt: at,
	}
	created, err := s.repo.CreateDailyAward(ctx, award)
	if err != nil {
		return nil, err
	}
	if !created {
		// Already granted today (possibly by a concurrent login).
		return nil, nil
	}
	return award, nil
}

// GrantTaskVerification awards points for an approved task submission.
// A second grant for the same submission fails with helper.ErrDuplicateAward.
func (s *EcoPointService) GrantTaskVerification(ctx context.Context, userID, submissionID uuid.UUID, points int) (*model.EcoPointModel, error) {
	if userID == uuid.Nil {
		return nil, helper.NewValidationError("user_id", "user id is required")
	}
	if submissionID == uuid.Nil {
		return nil, helper.NewValidationError("submission_id", "submission id is required")
	}
	if points <= 0 {
		return nil, helper.NewValidationError("points", "points must be positive")
	}

	award := &model.EcoPointModel{
		EcoPointUserID:       userID,
		EcoPointSubmissionID: &submissionID,
		EcoPointPoints:       points,
	}
	if err := s.repo.CreateTaskAward(ctx, award); err != nil {
		return nil, err
	}
	return award, nil
}

/* =============================================================================
   READS
============================================================================= */

// TotalPoints sums the user's grant rows. No cached counter exists anywhere.
func (s *EcoPointService) TotalPoints(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.SumPointsByUser(ctx, userID)
}

// RecentAwards returns the newest grants for the user's activity feed.
func (s *EcoPointService) RecentAwards(ctx context.Context, userID uuid.UUID, limit int) ([]model.EcoPointModel, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

// Leaderboard ranks students of one institution by summed points. Ties are
// broken by username ascending so the ordering is stable.
func (s *EcoPointService) Leaderboard(ctx context.Context, institutionID uuid.UUID, limit int) ([]model.LeaderboardEntry, error) {
	if institutionID == uuid.Nil {
		return nil, helper.NewValidationError("institution_id", "institution id is required")
	}
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	if limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}
	return s.repo.LeaderboardByInstitution(ctx, institutionID, limit)
}
