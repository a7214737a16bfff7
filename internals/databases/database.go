package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	catalogModel "ecolearn_backend/internals/features/catalog/category/model"
	quizModel "ecolearn_backend/internals/features/catalog/quiz/model"
	attemptModel "ecolearn_backend/internals/features/games/attempt/model"
	gameModel "ecolearn_backend/internals/features/games/game/model"
	submissionModel "ecolearn_backend/internals/features/games/submission/model"
	badgeModel "ecolearn_backend/internals/features/rewards/badge/model"
	pointModel "ecolearn_backend/internals/features/rewards/points/model"
	userModel "ecolearn_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=ecolearn&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible with PgBouncer transaction pooling
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate runs AutoMigrate for the whole schema plus the guards that
// GORM tags cannot express.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&userModel.InstitutionModel{},
		&userModel.StudentProfileModel{},
		&userModel.TeacherProfileModel{},
		&userModel.OrganizationModel{},
		&userModel.LoginHistoryModel{},
		&catalogModel.CategoryModel{},
		&catalogModel.SubTopicModel{},
		&quizModel.QuizQuestionModel{},
		&quizModel.QuizOptionModel{},
		&quizModel.PuzzleModel{},
		&quizModel.PuzzleOptionModel{},
		&gameModel.GameTopicModel{},
		&gameModel.GameModel{},
		&attemptModel.GameAttemptModel{},
		&submissionModel.TaskSubmissionModel{},
		&pointModel.EcoPointModel{},
		&badgeModel.BadgeModel{},
		&badgeModel.UserBadgeModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// At most one daily-login award per user per calendar day. The insert
	// path relies on this index and treats the conflict as "already awarded".
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_eco_points_daily_per_day
		ON eco_points (eco_point_user_id, (date(eco_point_awarded_at)))
		WHERE eco_point_is_daily
	`).Error; err != nil {
		log.Fatalf("❌ daily award index failed: %v", err)
	}

	log.Println("✅ Migration done.")
}

func WarmUpQueries() {
	// light-touch so the pool is filled and ready
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
