package config

import (
	"context"
	"errors"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the shared gorm handle, set by Connect.
var DB *gorm.DB

// Connect opens the database selected by DB_DRIVER (postgres by default,
// mysql for the inherited data set) and verifies connectivity.
//
// TranslateError must stay enabled: unique-constraint violations have to
// surface as gorm.ErrDuplicatedKey so callers can tell an expected
// duplicate apart from a real failure.
func Connect(ctx context.Context, dsn string) error {
	if dsn == "" {
		return errors.New("database dsn is empty")
	}

	var dialector gorm.Dialector
	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	DB = db
	return nil
}

// Ping checks database connectivity for the health endpoint.
func Ping(ctx context.Context) error {
	if DB == nil {
		return errors.New("database not connected")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
