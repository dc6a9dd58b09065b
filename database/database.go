package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kmpicazo/HR201System/config"
	"github.com/kmpicazo/HR201System/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

// Migrate is split out so tests can run the same schema on their own DB.
// The attendance unique index on (employee_id, date) comes from the model
// tags; punch upserts depend on it existing.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.GovernmentInfo{},
		&models.EmploymentRecord{},
		&models.Compensation{},
		&models.Department{},
		&models.Position{},
		&models.AttendanceDevice{},
		&models.DeviceEmployee{},
		&models.Attendance{},
		&models.BiometricRecord{},
		&models.Document{},
		&models.CompliancePolicy{},
		&models.ComplianceAudit{},
		&models.JobPosting{},
		&models.Candidate{},
		&models.AuditLog{},
	)
}
