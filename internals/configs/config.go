package configs

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret        string
	AdminUsername    string
	AdminPassword    string
	SchoolConfigPath string

	SpreadsheetID            string
	GoogleServiceAccountJSON string
	GoogleCredentialsFile    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AdminUsername = GetEnv("ADMIN_USERNAME")
	AdminPassword = GetEnv("ADMIN_PASSWORD")
	SchoolConfigPath = GetEnv("SCHOOL_CONFIG_PATH", "school_config.json")

	SpreadsheetID = GetEnv("GOOGLE_SHEETS_SPREADSHEET_ID")
	GoogleServiceAccountJSON = GetEnv("GOOGLE_SERVICE_ACCOUNT_JSON")
	GoogleCredentialsFile = GetEnv("GOOGLE_CREDENTIALS_FILE", ".config/google-credentials.json")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if AdminUsername == "" || AdminPassword == "" {
		log.Println("⚠️ ADMIN_USERNAME/ADMIN_PASSWORD not set, admin panel disabled")
	}
	if SpreadsheetID == "" {
		log.Println("⚠️ GOOGLE_SHEETS_SPREADSHEET_ID not set, sheet sync disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
