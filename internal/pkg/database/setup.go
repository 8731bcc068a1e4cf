package database

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var DB *gorm.DB

// SetupDatabase connects to MySQL for the signup funnel. The database is
// optional: without DB_HOST, or when every attempt fails, DB stays nil and
// funnel events are only counted in prometheus.
func SetupDatabase() {
	host := env.GetEnv("DB_HOST", "")
	if host == "" {
		log.Info("database: DB_HOST not set, funnel events will not be stored")
		return
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		env.GetEnv("DB_USER", "zaker"),
		env.GetEnv("DB_PASSWORD", ""),
		host,
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", "zaker_web"),
	)

	gormLogger := logger.Default.LogMode(logger.Warn)
	if env.IsDev() {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	var err error
	for i := 0; i < maxRetries; i++ {
		var db *gorm.DB
		db, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		}), &gorm.Config{Logger: gormLogger})
		if err == nil {
			// migrations own the schema in production (cmd/migrate)
			if env.IsDev() {
				if err := db.AutoMigrate(&models.SignupEvent{}); err != nil {
					log.Warnf("database: auto migration failed: %v", err)
				}
			}
			DB = db
			return
		}

		log.Warnf("database: failed to connect (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	log.Errorf("database: giving up, funnel storage disabled: %v", err)
}

// GetDB returns the database handle, or nil when not configured
func GetDB() *gorm.DB {
	return DB
}
