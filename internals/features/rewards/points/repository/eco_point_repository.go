// file: internals/features/rewards/points/repository/eco_point_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "ecolearn_backend/internals/helpers"

	"ecolearn_backend/internals/features/rewards/points/model"
)

/* =============================================================================
   INTERFACE
============================================================================= */

// EcoPointRepository hides the persistence of reward grants so the service
// rules stay testable without a database.
type EcoPointRepository interface {
	// CreateDailyAward inserts a daily-login grant with ON CONFLICT DO
	// NOTHING against the per-user-per-day partial unique index. Returns
	// false (no error) when the row already exists for that day.
	CreateDailyAward(ctx context.Context, award *model.EcoPointModel) (bool, error)

	// CreateTaskAward inserts a verification grant. A unique violation on
	// the submission column is surfaced as helper.ErrDuplicateAward.
	CreateTaskAward(ctx context.Context, award *model.EcoPointModel) error

	// SumPointsByUser returns the summed total for a user (0 for no rows).
	SumPointsByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ListByUser returns the most recent grants, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.EcoPointModel, error)

	// LeaderboardByInstitution aggregates totals for students of one
	// institution, ordered by total desc then username asc.
	LeaderboardByInstitution(ctx context.Context, institutionID uuid.UUID, limit int) ([]model.LeaderboardEntry, error)
}

/* =============================================================================
   GORM IMPLEMENTATION
============================================================================= */

type ecoPointRepository struct {
	db *gorm.DB
}

func NewEcoPointRepository(db *gorm.DB) EcoPointRepository {
	return &ecoPointRepository{db: db}
}

func (r *ecoPointRepository) CreateDailyAward(ctx context.Context, award *model.EcoPointModel) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(award)
	if res.Error != nil {
		// Older Postgres setups reject ON CONFLICT DO NOTHING against a
		// partial expression index; the raced insert still bubbles up as a
		// unique violation, which means someone else already granted today.
		if helper.IsUniqueViolation(res.Error) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ecoPointRepository) CreateTaskAward(ctx context.Context, award *model.EcoPointModel) error {
	if err := r.db.WithContext(ctx).Create(award).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.ErrDuplicateAward
		}
		return err
	}
	return nil
}

func (r *ecoPointRepository) SumPointsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.EcoPointModel{}).
		Where("eco_point_user_id = ?", userID).
		Select("COALESCE(SUM(eco_point_points), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ecoPointRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.EcoPointModel, error) {
	var rows []model.EcoPointModel
	err := r.db.WithContext(ctx).
		Where("eco_point_user_id = ?", userID).
		Order("eco_point_awarded_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *ecoPointRepository) LeaderboardByInstitution(ctx context.Context, institutionID uuid.UUID, limit int) ([]model.LeaderboardEntry, error) {
	var rows []model.LeaderboardEntry
	err := r.db.WithContext(ctx).
		Table("eco_points").
		Select("users.user_name AS user_name, COALESCE(SUM(eco_points.eco_point_points), 0) AS total_points").
		Joins("JOIN users ON users.id = eco_points.eco_point_user_id").
		Joins("JOIN student_profiles ON student_profiles.student_profile_user_id = users.id").
		Where("student_profiles.student_profile_institution_id = ?", institutionID).
		Where("users.deleted_at IS NULL").
		Group("users.user_name").
		Order("total_points DESC, user_name ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
