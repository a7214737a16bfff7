// file: internals/features/games/game/model/game_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =============================================================================
   ENUM-like: game type ('quiz','puzzle','mini_game','real_world_task')
============================================================================= */

type GameType string

const (
	GameTypeQuiz          GameType = "quiz"
	GameTypePuzzle        GameType = "puzzle"
	GameTypeMiniGame      GameType = "mini_game"
	GameTypeRealWorldTask GameType = "real_world_task"
)

func (t GameType) String() string { return string(t) }

func (t GameType) Valid() bool {
	switch t {
	case GameTypeQuiz, GameTypePuzzle, GameTypeMiniGame, GameTypeRealWorldTask:
		return true
	default:
		return false
	}
}

func (t *GameType) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = GameType(v)
	case []byte:
		*t = GameType(string(v))
	default:
		return fmt.Errorf("unsupported type for GameType: %T", value)
	}
	if !t.Valid() {
		return fmt.Errorf("invalid GameType: %q", *t)
	}
	return nil
}

func (t GameType) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if !t.Valid() {
		return nil, fmt.Errorf("invalid GameType: %q", t)
	}
	return string(t), nil
}

type GameDifficulty string

const (
	GameDifficultyEasy   GameDifficulty = "easy"
	GameDifficultyMedium GameDifficulty = "medium"
	GameDifficultyHard   GameDifficulty = "hard"
)

func (d GameDifficulty) Valid() bool {
	switch d {
	case GameDifficultyEasy, GameDifficultyMedium, GameDifficultyHard:
		return true
	default:
		return false
	}
}

/* =============================================================================
   MODEL: game_topics, games
============================================================================= */

type GameTopicModel struct {
	GameTopicID   uuid.UUID `gorm:"column:game_topic_id;type:uuid;default:gen_random_uuid();primaryKey" json:"game_topic_id"`
	GameTopicName string    `gorm:"column:game_topic_name;size:255;uniqueIndex;not null" json:"game_topic_name" validate:"required,max=255"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (GameTopicModel) TableName() string { return "game_topics" }

// GameModel: one playable unit. The type decides which submission path
// applies (attempt logging vs real-world task proof).
type GameModel struct {
	GameID          uuid.UUID      `gorm:"column:game_id;type:uuid;default:gen_random_uuid();primaryKey" json:"game_id"`
	GameTitle       string         `gorm:"column:game_title;size:255;not null" json:"game_title" validate:"required,max=255"`
	GameDescription string         `gorm:"column:game_description;type:text;not null" json:"game_description" validate:"required"`
	GameType        GameType       `gorm:"column:game_type;type:varchar(20);not null;index" json:"game_type"`
	GameGradeMin    *int           `gorm:"column:game_grade_min" json:"game_grade_min,omitempty"`
	GameGradeMax    *int           `gorm:"column:game_grade_max" json:"game_grade_max,omitempty"`
	GameDifficulty  GameDifficulty `gorm:"column:game_difficulty;type:varchar(10)" json:"game_difficulty,omitempty"`
	GameTopicID     *uuid.UUID     `gorm:"column:game_topic_id;type:uuid;index" json:"game_topic_id,omitempty"`
	GameCreatedBy   *uuid.UUID     `gorm:"column:game_created_by;type:uuid" json:"game_created_by,omitempty"`
	GameConfig      datatypes.JSON `gorm:"column:game_config;type:jsonb" json:"game_config,omitempty"`

	Topic *GameTopicModel `gorm:"foreignKey:GameTopicID" json:"topic,omitempty"`

	GameCreatedAt time.Time `gorm:"column:game_created_at;autoCreateTime" json:"game_created_at"`
	GameUpdatedAt time.Time `gorm:"column:game_updated_at;autoUpdateTime" json:"game_updated_at"`
}

func (GameModel) TableName() string { return "games" }
