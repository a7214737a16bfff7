package model

// LeaderboardEntry: one aggregated leaderboard row (grouped sum of eco
// points per student of an institution).
type LeaderboardEntry struct {
	UserName    string `gorm:"column:user_name" json:"user_name"`
	TotalPoints int64  `gorm:"column:total_points" json:"total_points"`
}
