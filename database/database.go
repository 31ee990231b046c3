package database

import (
	"fmt"
	"os"
	"strconv"

	"bookie/logger"
	"bookie/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, pass, name, port, sslmode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.L.Fatal("failed to connect to database", zap.Error(err))
	}

	DB = db
	logger.L.Info("connected to database", zap.String("host", host), zap.String("db", name))

	autoMigrateEnv := os.Getenv("DB_AUTO_MIGRATE")
	autoMigrate, err := strconv.ParseBool(autoMigrateEnv)
	if err != nil {
		logger.L.Warn("invalid value for DB_AUTO_MIGRATE", zap.String("value", autoMigrateEnv))
	}

	if autoMigrate {
		if err := DB.AutoMigrate(
			&models.Account{},
			&models.Bet{},
			&models.Transaction{},
			&models.DepositRequest{},
			&models.WithdrawalRequest{},
			&models.Offer{},
		); err != nil {
			logger.L.Fatal("failed to auto-migrate database", zap.Error(err))
		}
		logger.L.Info("auto migration completed")
	}
}
