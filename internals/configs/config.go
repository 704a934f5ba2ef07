package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Defaults apply until LoadEnv overrides them, so packages that never load
// an env file (unit tests) still see sane values.
var (
	JWTSecret         string
	JWTRefreshSecret  string
	AccessTokenTTL    = time.Hour
	RefreshTokenTTL   = 7 * 24 * time.Hour
	ResetTokenTTL     = 30 * time.Minute
	BcryptCost        = 12
	BcryptCostBulk    = 10
	GoogleClientID    string
	MidtransServerKey string
	AppEnv            = "development"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[INFO] No .env file found, using system ENV")
		}
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	AppEnv = GetEnv("APP_ENV", "development")

	AccessTokenTTL = getEnvDuration("ACCESS_TOKEN_TTL", time.Hour)
	RefreshTokenTTL = getEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour)
	ResetTokenTTL = getEnvDuration("RESET_TOKEN_TTL", 30*time.Minute)

	BcryptCost = getEnvInt("BCRYPT_COST", 12)
	BcryptCostBulk = getEnvInt("BCRYPT_COST_BULK", 10)

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set")
	}
	if JWTRefreshSecret == "" {
		log.Println("[WARN] JWT_REFRESH_SECRET is not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func IsProduction() bool {
	return AppEnv == "production"
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[WARN] invalid duration for %s: %q, using default %s", key, v, def)
		return def
	}
	return d
}

func getEnvInt(key string, def int) int {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] invalid int for %s: %q, using default %d", key, v, def)
		return def
	}
	return n
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
