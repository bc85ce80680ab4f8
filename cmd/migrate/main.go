package main

import (
	"github.com/techbuddyspace/certify/internal/config"
	"github.com/techbuddyspace/certify/internal/database"
	"github.com/techbuddyspace/certify/internal/env"
	"github.com/techbuddyspace/certify/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	migrateErr := db.AutoMigrate(
		&model.Template{},
		&model.Placeholder{},
		&model.Certificate{},
		&model.VerificationLog{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	logger.Info("Migration completed")
}
