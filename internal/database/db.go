package database

import (
	"log"

	"vegete-backend/internal/config"
	"vegete-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Өгөгдлийн санд холбогдож чадсангүй: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Branch{},
		&models.Member{},
		&models.Trainer{},
		&models.Course{},
		&models.Payment{},
		&models.Attendance{},
		&models.PerformanceRecord{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate алдаа: %v", err)
	}

	log.Println("Database connected, migration complete.")
}
