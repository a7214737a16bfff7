// file: internals/features/rewards/badge/service/badge_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecolearn_backend/internals/features/rewards/badge/model"
	helper "ecolearn_backend/internals/helpers"
)

// AwardBadge grants a badge once; the composite unique index turns a repeat
// grant into helper.ErrDuplicateAward.
func AwardBadge(ctx context.Context, db *gorm.DB, userID, badgeID uuid.UUID) (*model.UserBadgeModel, error) {
	var badge model.BadgeModel
	if err := db.WithContext(ctx).First(&badge, "badge_id = ?", badgeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFoundError("badge")
		}
		return nil, err
	}

	grant := &model.UserBadgeModel{
		UserBadgeUserID:  userID,
		UserBadgeBadgeID: badgeID,
	}
	if err := db.WithContext(ctx).Create(grant).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, helper.ErrDuplicateAward
		}
		return nil, err
	}
	grant.Badge = &badge
	return grant, nil
}

// ListUserBadges returns a user's badge grants newest first.
func ListUserBadges(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.UserBadgeModel, error) {
	var rows []model.UserBadgeModel
	err := db.WithContext(ctx).
		Preload("Badge").
		Where("user_badge_user_id = ?", userID).
		Order("user_badge_awarded_at DESC").
		Find(&rows).Error
	return rows, err
}
