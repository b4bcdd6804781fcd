package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"perseverantia_backend/internals/configs"
	regModel "perseverantia_backend/internals/features/registration/model"
	"perseverantia_backend/internals/sheets"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=perseverantia&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // works with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
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

// InitSchema creates/updates every table before the app accepts traffic.
// Explicit init-then-serve: nothing on the request path defines schema.
func InitSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&regModel.EventCategoryModel{},
		&regModel.SchoolModel{},
		&regModel.EventModel{},
		&regModel.EventRegistrationModel{},
		&regModel.EventRegistrationParticipantModel{},
		&regModel.SportsRegistrationModel{},
		&regModel.SportsRegistrationParticipantModel{},
		&regModel.ClassroomRegistrationModel{},
		&regModel.ClassroomRegistrationParticipantModel{},
		&sheets.SheetSyncLogModel{},
	)
}

func WarmUp() {
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
