package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "ecolearn_backend/internals/helpers"

	"ecolearn_backend/internals/features/games/submission/model"
	pointModel "ecolearn_backend/internals/features/rewards/points/model"
)

/* =============================================================================
   MOCK REPOSITORY
============================================================================= */

type mockSubmissionRepository struct {
	createFn          func(ctx context.Context, sub *model.TaskSubmissionModel) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*model.TaskSubmissionModel, error)
	listByUserFn      func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.TaskSubmissionModel, int64, error)
	listByStatusFn    func(ctx context.Context, status model.SubmissionStatus, limit, offset int) ([]model.TaskSubmissionModel, int64, error)
	approveAndAwardFn func(ctx context.Context, submissionID, verifierID uuid.UUID, at time.Time, points int) (*model.TaskSubmissionModel, *pointModel.EcoPointModel, error)
	rejectFn          func(ctx context.Context, submissionID, verifierID uuid.UUID, at time.Time) (*model.TaskSubmissionModel, error)
}

func (m *mockSubmissionRepository) Create(ctx context.Context, sub *model.TaskSubmissionModel) error {
	return m.createFn(ctx, sub)
}

func (m *mockSubmissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TaskSubmissionModel, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockSubmissionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.TaskSubmissionModel, int64, error) {
	return m.listByUserFn(ctx, userID, limit, offset)
}

func (m *mockSubmissionRepository) ListByStatus(ctx context.Context, status model.SubmissionStatus, limit, offset int) ([]model.TaskSubmissionModel, int64, error) {
	return m.listByStatusFn(ctx, status, limit, offset)
}

func (m *mockSubmissionRepository) ApproveAndAward(ctx context.Context, submissionID, verifierID uuid.UUID, at time.Time, points int) (*model.TaskSubmissionModel, *pointModel.EcoPointModel, error) {
	return m.approveAndAwardFn(ctx, submissionID, verifierID, at, points)
}

func (m *mockSubmissionRepository) Reject(ctx context.Context, submissionID, verifierID uuid.UUID, at time.Time) (*model.TaskSubmissionModel, error) {
	return m.rejectFn(ctx, submissionID, verifierID, at)
}

func pendingSubmission(userID uuid.UUID) *model.TaskSubmissionModel {
	return &model.TaskSubmissionModel{
		TaskSubmissionID:     uuid.New(),
		TaskSubmissionUserID: userID,
		TaskSubmissionProof:  "https://example.com/proof.jpg",
		TaskSubmissionStatus: model.SubmissionPending,
	}
}

/* =============================================================================
   SUBMIT
============================================================================= */

func TestSubmit_CreatesPendingSubmission(t *testing.T) {
	userID := uuid.New()
	repo := &mockSubmissionRepository{
		createFn: func(_ context.Context, sub *model.TaskSubmissionModel) error {
			assert.Equal(t, model.SubmissionPending, sub.TaskSubmissionStatus)
			assert.Equal(t, userID, sub.TaskSubmissionUserID)
			return nil
		},
	}
	svc := NewVerificationService(repo)

	sub, err := svc.Submit(context.Background(), userID, nil, "planted 3 saplings")
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionPending, sub.TaskSubmissionStatus)
}

func TestSubmit_RejectsEmptyProof(t *testing.T) {
	svc := NewVerificationService(&mockSubmissionRepository{})

	_, err := svc.Submit(context.Background(), uuid.New(), nil, "")
	assert.Error(t, err)
}

/* =============================================================================
   APPROVE
============================================================================= */

func TestApprove_GrantsAwardThroughRepository(t *testing.T) {
	submitter := uuid.New()
	verifier := uuid.New()
	sub := pendingSubmission(submitter)

	repo := &mockSubmissionRepository{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*model.TaskSubmissionModel, error) {
			assert.Equal(t, sub.TaskSubmissionID, id)
			return sub, nil
		},
		approveAndAwardFn: func(_ context.Context, submissionID, verifierID uuid.UUID, at time.Time, points int) (*model.TaskSubmissionModel, *pointModel.EcoPointModel, error) {
			assert.Equal(t, verifier, verifierID)
			assert.Equal(t, 15, points)
			approved := *sub
			approved.TaskSubmissionStatus = model.SubmissionApproved
			approved.TaskSubmissionVerifiedBy = &verifierID
			approved.TaskSubmissionVerifiedAt = &at
			award := &pointModel.EcoPointModel{
				EcoPointUserID:       submitter,
				EcoPointSubmissionID: &submissionID,
				EcoPointPoints:       points,
			}
			return &approved, award, nil
		},
	}
	svc := NewVerificationService(repo)

	approved, award, err := svc.Approve(context.Background(), sub.TaskSubmissionID, verifier, 15)
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionApproved, approved.TaskSubmissionStatus)
	require.NotNil(t, award)
	assert.Equal(t, submitter, award.EcoPointUserID)
}

func TestApprove_DefaultsPointsWhenZero(t *testing.T) {
	sub := pendingSubmission(uuid.New())
	var gotPoints int
	repo := &mockSubmissionRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*model.TaskSubmissionModel, error) {
			return sub, nil
		},
		approveAndAwardFn: func(_ context.Context, _, _ uuid.UUID, _ time.Time, points int) (*model.TaskSubmissionModel, *pointModel.EcoPointModel, error) {
			gotPoints = points
			return sub, &pointModel.EcoPointModel{}, nil
		},
	}
	svc := NewVerificationService(repo)

	_, _, err := svc.Approve(context.Background(), sub.TaskSubmissionID, uuid.New(), 0)
	require.NoError(t, err)
	assert.Equal(t, defaultTaskPoints, gotPoints)
}

func TestApprove_SelfVerificationFails(t *testing.T) {
	submitter := uuid.New()
	sub := pendingSubmission(submitter)
	repo := &mockSubmissionRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*model.TaskSubmissionModel, error) {
			return sub, nil
		},
	}
	svc := NewVerificationService(repo)

	_, _, err := svc.Approve(context.Background(), sub.TaskSubmissionID, submitter, 10)
	require.Error(t, err)

	var appErr *helper.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, helper.CodeValidation, appErr.Code)
}

func TestApprove_TerminalSubmissionFails(t *testing.T) {
	for _, status := range []model.SubmissionStatus{model.SubmissionApproved, model.SubmissionRejected} {
		sub := pendingSubmission(uuid.New())
		sub.TaskSubmissionStatus = status
		repo := &mockSubmissionRepository{
			findByIDFn: func(_ context.Context, _ uuid.UUID) (*model.TaskSubmissionModel, error) {
				return sub, nil
			},
		}
		svc := NewVerificationService(repo)

		_, _, err := svc.Approve(context.Background(), sub.TaskSubmissionID, uuid.New(), 10)
		assert.ErrorIs(t, err, helper.ErrInvalidTransition, "status=%s", status)
	}
}

func TestApprove_MissingSubmissionFails(t *testing.T) {
	repo := &mockSubmissionRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*model.TaskSubmissionModel, error) {
			return nil, helper.NewNotFoundError("task submission")
		},
	}
	svc := NewVerificationService(repo)

	_, _, err := svc.Approve(context.Background(), uuid.New(), uuid.New(), 10)
	require.Error(t, err)

	var appErr *helper.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, helper.CodeNotFound, appErr.Code)
}

/* =============================================================================
   REJECT
============================================================================= */

func TestReject_MovesToRejectedWithoutAward(t *testing.T) {
	sub := pendingSubmission(uuid.New())
	verifier := uuid.New()
	repo := &mockSubmissionRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*model.TaskSubmissionModel, error) {
			return sub, nil
		},
		rejectFn: func(_ context.Context, _, verifierID uuid.UUID, at time.Time) (*model.TaskSubmissionModel, error) {
			rejected := *sub
			rejected.TaskSubmissionStatus = model.SubmissionRejected
			rejected.TaskSubmissionVerifiedBy = &verifierID
			rejected.TaskSubmissionVerifiedAt = &at
			return &rejected, nil
		},
	}
	svc := NewVerificationService(repo)

	rejected, err := svc.Reject(context.Background(), sub.TaskSubmissionID, verifier)
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionRejected, rejected.TaskSubmissionStatus)
	require.NotNil(t, rejected.TaskSubmissionVerifiedBy)
	assert.Equal(t, verifier, *rejected.TaskSubmissionVerifiedBy)
}

func TestReject_SelfVerificationFails(t *testing.T) {
	submitter := uuid.New()
	sub := pendingSubmission(submitter)
	repo := &mockSubmissionRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*model.TaskSubmissionModel, error) {
			return sub, nil
		},
	}
	svc := NewVerificationService(repo)

	_, err := svc.Reject(context.Background(), sub.TaskSubmissionID, submitter)
	assert.Error(t, err)
}

func TestReject_LostRaceSurfacesInvalidTransition(t *testing.T) {
	sub := pendingSubmission(uuid.New())
	repo := &mockSubmissionRepository{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*model.TaskSubmissionModel, error) {
			return sub, nil
		},
		rejectFn: func(_ context.Context, _, _ uuid.UUID, _ time.Time) (*model.TaskSubmissionModel, error) {
			return nil, helper.ErrInvalidTransition
		},
	}
	svc := NewVerificationService(repo)

	_, err := svc.Reject(context.Background(), sub.TaskSubmissionID, uuid.New())
	assert.ErrorIs(t, err, helper.ErrInvalidTransition)
}
