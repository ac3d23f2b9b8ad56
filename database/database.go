package database

import (
	"fmt"
	"log"

	config "github.com/alexsterin2005-wq/amtennis/configs"
	"github.com/alexsterin2005-wq/amtennis/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() *gorm.DB {
	dsn := config.Config("DATABASE_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
	return db
}

func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Booking{},
		&models.CalendarEvent{},
		&models.Coach{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedCoach creates the academy's coach login from the environment on first
// boot.
func SeedCoach(db *gorm.DB) {
	coachEmail := config.Config("COACH_EMAIL")
	coachPassword := config.Config("COACH_PASSWORD")
	coachName := config.Config("COACH_FULL_NAME")

	if coachEmail == "" || coachPassword == "" {
		log.Println("⚠️ Coach login not configured, skipping seed.")
		return
	}

	var count int64
	if err := db.Model(&models.Coach{}).Where("email = ?", coachEmail).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for coach user: %v", err)
		return
	}
	if count > 0 {
		log.Println("Coach user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(coachPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash coach password: %v", err)
		return
	}

	coach := models.Coach{
		FullName: coachName,
		Email:    coachEmail,
		Password: string(hashedPassword),
	}
	if err := db.Create(&coach).Error; err != nil {
		log.Fatalf("🔥 Failed to seed coach user: %v", err)
		return
	}

	log.Println("✅ Coach user seeded successfully")
}
