package model

import (
	"time"

	"github.com/google/uuid"
)

// LoginHistoryModel: append-only audit trail of successful logins.
type LoginHistoryModel struct {
	LoginHistoryID        uint      `gorm:"column:login_history_id;primaryKey" json:"login_history_id"`
	LoginHistoryUserID    uuid.UUID `gorm:"column:login_history_user_id;type:uuid;not null;index" json:"login_history_user_id"`
	LoginHistoryLoginTime time.Time `gorm:"column:login_history_login_time;autoCreateTime" json:"login_history_login_time"`
}

func (LoginHistoryModel) TableName() string {
	return "login_histories"
}
