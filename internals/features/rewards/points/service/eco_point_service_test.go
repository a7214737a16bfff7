package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "ecolearn_backend/internals/helpers"

	"ecolearn_backend/internals/features/rewards/points/model"
)

/* =============================================================================
   MOCK REPOSITORY
============================================================================= */

type mockEcoPointRepository struct {
	createDailyAwardFn func(ctx context.Context, award *model.EcoPointModel) (bool, error)
	createTaskAwardFn  func(ctx context.Context, award *model.EcoPointModel) error
	sumPointsByUserFn  func(ctx context.Context, userID uuid.UUID) (int64, error)
	listByUserFn       func(ctx context.Context, userID uuid.UUID, limit int) ([]model.EcoPointModel, error)
	leaderboardFn      func(ctx context.Context, institutionID uuid.UUID, limit int) ([]model.LeaderboardEntry, error)
}

func (m *mockEcoPointRepository) CreateDailyAward(ctx context.Context, award *model.EcoPointModel) (bool, error) {
	return m.createDailyAwardFn(ctx, award)
}

func (m *mockEcoPointRepository) CreateTaskAward(ctx context.Context, award *model.EcoPointModel) error {
	return m.createTaskAwardFn(ctx, award)
}

func (m *mockEcoPointRepository) SumPointsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return m.sumPointsByUserFn(ctx, userID)
}

func (m *mockEcoPointRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.EcoPointModel, error) {
	return m.listByUserFn(ctx, userID, limit)
}

func (m *mockEcoPointRepository) LeaderboardByInstitution(ctx context.Context, institutionID uuid.UUID, limit int) ([]model.LeaderboardEntry, error) {
	return m.leaderboardFn(ctx, institutionID, limit)
}

/* =============================================================================
   DAILY LOGIN GRANT
============================================================================= */

func TestGrantDailyLogin_FirstLoginOfDay(t *testing.T) {
	userID := uuid.New()
	repo := &mockEcoPointRepository{
		createDailyAwardFn: func(_ context.Context, award *model.EcoPointModel) (bool, error) {
			assert.Equal(t, userID, award.EcoPointUserID)
			assert.True(t, award.EcoPointIsDaily)
			assert.Nil(t, award.EcoPointSubmissionID)
			assert.Equal(t, 1, award.EcoPointPoints)
			return true, nil
		},
	}
	svc := NewEcoPointService(repo)

	award, err := svc.GrantDailyLogin(context.Background(), userID, time.Now())
	require.NoError(t, err)
	require.NotNil(t, award)
	assert.Equal(t, 1, award.EcoPointPoints)
}

func TestGrantDailyLogin_SecondLoginSameDayIsIdempotent(t *testing.T) {
	repo := &mockEcoPointRepository{
		createDailyAwardFn: func(_ context.Context, _ *model.EcoPointModel) (bool, error) {
			return false, nil // unique index swallowed the insert
		},
	}
	svc := NewEcoPointService(repo)

	award, err := svc.GrantDailyLogin(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, award, "repeat daily grant must be a silent no-op")
}

func TestGrantDailyLogin_RejectsNilUser(t *testing.T) {
	svc := NewEcoPointService(&mockEcoPointRepository{})

	_, err := svc.GrantDailyLogin(context.Background(), uuid.Nil, time.Now())
	require.Error(t, err)

	var appErr *helper.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, helper.CodeValidation, appErr.Code)
}

func TestGrantDailyLogin_ConfiguredPoints(t *testing.T) {
	var got int
	repo := &mockEcoPointRepository{
		createDailyAwardFn: func(_ context.Context, award *model.EcoPointModel) (bool, error) {
			got = award.EcoPointPoints
			return true, nil
		},
	}
	svc := NewEcoPointService(repo).WithDailyPoints(5)

	_, err := svc.GrantDailyLogin(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

/* =============================================================================
   TASK VERIFICATION GRANT
============================================================================= */

func TestGrantTaskVerification_CreatesAwardBoundToSubmission(t *testing.T) {
	userID := uuid.New()
	submissionID := uuid.New()
	repo := &mockEcoPointRepository{
		createTaskAwardFn: func(_ context.Context, award *model.EcoPointModel) error {
			require.NotNil(t, award.EcoPointSubmissionID)
			assert.Equal(t, submissionID, *award.EcoPointSubmissionID)
			assert.False(t, award.EcoPointIsDaily)
			return nil
		},
	}
	svc := NewEcoPointService(repo)

	award, err := svc.GrantTaskVerification(context.Background(), userID, submissionID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, award.EcoPointPoints)
}

func TestGrantTaskVerification_DuplicateSubmissionFails(t *testing.T) {
	repo := &mockEcoPointRepository{
		createTaskAwardFn: func(_ context.Context, _ *model.EcoPointModel) error {
			return helper.ErrDuplicateAward
		},
	}
	svc := NewEcoPointService(repo)

	_, err := svc.GrantTaskVerification(context.Background(), uuid.New(), uuid.New(), 10)
	assert.ErrorIs(t, err, helper.ErrDuplicateAward)
}

func TestGrantTaskVerification_RejectsNonPositivePoints(t *testing.T) {
	svc := NewEcoPointService(&mockEcoPointRepository{})

	for _, points := range []int{0, -3} {
		_, err := svc.GrantTaskVerification(context.Background(), uuid.New(), uuid.New(), points)
		assert.Error(t, err, "points=%d must be rejected", points)
	}
}

/* =============================================================================
   TOTALS & LEADERBOARD
============================================================================= */

func TestTotalPoints_SumsRows(t *testing.T) {
	repo := &mockEcoPointRepository{
		sumPointsByUserFn: func(_ context.Context, _ uuid.UUID) (int64, error) {
			return 42, nil
		},
	}
	svc := NewEcoPointService(repo)

	total, err := svc.TotalPoints(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
}

func TestLeaderboard_DefaultsAndCapsLimit(t *testing.T) {
	var gotLimit int
	repo := &mockEcoPointRepository{
		leaderboardFn: func(_ context.Context, _ uuid.UUID, limit int) ([]model.LeaderboardEntry, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := NewEcoPointService(repo)

	_, err := svc.Leaderboard(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.Equal(t, 10, gotLimit)

	_, err = svc.Leaderboard(context.Background(), uuid.New(), 5000)
	require.NoError(t, err)
	assert.Equal(t, 100, gotLimit)
}

func TestLeaderboard_RejectsNilInstitution(t *testing.T) {
	svc := NewEcoPointService(&mockEcoPointRepository{})

	_, err := svc.Leaderboard(context.Background(), uuid.Nil, 10)
	assert.Error(t, err)
}

func TestLeaderboard_PassesThroughOrderedRows(t *testing.T) {
	rows := []model.LeaderboardEntry{
		{UserName: "asha", TotalPoints: 30},
		{UserName: "meera", TotalPoints: 30},
		{UserName: "ravi", TotalPoints: 12},
	}
	repo := &mockEcoPointRepository{
		leaderboardFn: func(_ context.Context, _ uuid.UUID, _ int) ([]model.LeaderboardEntry, error) {
			return rows, nil
		},
	}
	svc := NewEcoPointService(repo)

	got, err := svc.Leaderboard(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
