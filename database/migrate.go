package database

import (
	"rabt_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model. The uuid
// extension must exist before the uuid_generate_v4 defaults can apply.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.Project{},
		&models.ProjectInterest{},
		&models.Interview{},
		&models.Notification{},
	)
}
