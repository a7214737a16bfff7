// file: internals/features/users/user/service/user_profile_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecolearn_backend/internals/features/users/user/dto"
	"ecolearn_backend/internals/features/users/user/model"
	helper "ecolearn_backend/internals/helpers"
)

// LoadProfile assembles the combined profile view for one account.
func LoadProfile(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*dto.ProfileResponse, error) {
	var user model.UserModel
	if err := db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFoundError("user")
		}
		return nil, err
	}

	resp := dto.NewProfileResponse(&user)
	switch {
	case user.Role.IsStudent():
		var profile model.StudentProfileModel
		err := db.WithContext(ctx).
			Preload("Institution").
			First(&profile, "student_profile_user_id = ?", userID).Error
		if err == nil {
			resp.Student = &profile
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	case user.Role.IsTeacher():
		var profile model.TeacherProfileModel
		err := db.WithContext(ctx).
			Preload("Institution").
			First(&profile, "teacher_profile_user_id = ?", userID).Error
		if err == nil {
			resp.Teacher = &profile
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	default:
		var org model.OrganizationModel
		err := db.WithContext(ctx).
			First(&org, "organization_user_id = ?", userID).Error
		if err == nil {
			resp.Organization = &org
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}
	return &resp, nil
}

// DeleteAccount removes the account and all rows that hang off it. Reward
// and activity rows go too: totals are summations, so orphaned grants would
// keep a ghost on the leaderboard.
func DeleteAccount(ctx context.Context, db *gorm.DB, userID uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tables := []struct {
			table  string
			column string
		}{
			{"eco_points", "eco_point_user_id"},
			{"user_badges", "user_badge_user_id"},
			{"game_attempts", "game_attempt_user_id"},
			{"task_submissions", "task_submission_user_id"},
			{"login_histories", "login_history_user_id"},
			{"student_profiles", "student_profile_user_id"},
			{"teacher_profiles", "teacher_profile_user_id"},
			{"organizations", "organization_user_id"},
		}
		for _, t := range tables {
			if err := tx.Exec("DELETE FROM "+t.table+" WHERE "+t.column+" = ?", userID).Error; err != nil {
				return err
			}
		}
		res := tx.Unscoped().Delete(&model.UserModel{}, "id = ?", userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.NewNotFoundError("user")
		}
		return nil
	})
}
