package db

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SalonHelios/salon-scheduler/internal/config"
	"github.com/SalonHelios/salon-scheduler/internal/models"
)

// NewDB opens the configured database and migrates the schema. A postgres
// URL selects the postgres driver; anything else is treated as a sqlite
// path. Dialect differences stay behind gorm.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dial := sqlite.Open(cfg.DBUrl)
	if cfg.DBUrl == "" {
		dial = sqlite.Open(":memory:")
	} else if strings.HasPrefix(cfg.DBUrl, "postgres://") || strings.HasPrefix(cfg.DBUrl, "postgresql://") {
		dial = postgres.Open(cfg.DBUrl)
	}

	db, err := gorm.Open(dial, &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := SeedUsers(db, cfg.SeedUsers); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Appointment{}, "Clients", &models.AppointmentClient{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
		&models.AppointmentClient{},
		&models.SmsLog{},
	)
}

// SeedUsers creates the configured employees, but only while the users
// table is empty. Two fixed employees is the expected setup.
func SeedUsers(db *gorm.DB, seed []config.SeedUser) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || len(seed) == 0 {
		return nil
	}

	for _, su := range seed {
		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Name:         su.Name,
			Username:     su.Username,
			PasswordHash: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	return nil
}
