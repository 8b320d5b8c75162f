package app

import (
	"fmt"
	"path/filepath"

	"github.com/storeware/stockroom/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// getDatabase opens the gorm handle for the configured backend. The
// sqlite file lives under workdir/data and is created on first open.
func getDatabase(dbConfig config.DBConfig, workdir string) *gorm.DB {
	level := logger.Silent
	if dbConfig.Debug {
		level = logger.Info
	}
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(level),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch dbConfig.Type {
	case "sqlite":
		path := filepath.Join(workdir, "data", dbConfig.Name+".db")
		db, err = gorm.Open(sqlite.Open(path), gormConfig)
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			dbConfig.Host, dbConfig.Port, dbConfig.User, dbConfig.Passwd, dbConfig.Name)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	default:
		zap.S().Panicf("unsupported database type: %s", dbConfig.Type)
	}
	if err != nil {
		zap.S().Panicf("database connection failed: %v", err)
	}
	return db
}
