package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Facu14carrizo/StuntProAR/internal/config"
	"github.com/Facu14carrizo/StuntProAR/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the GORM connection from config, reusing it across
// calls.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model and seeds the reference catalogs.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	err = db.AutoMigrate(
		&models.Profile{},
		&models.ProfileStats{},
		&models.Specialty{},
		&models.ProfileSpecialty{},
		&models.Skill{},
		&models.ProfileSkill{},
		&models.Project{},
		&models.ProfileProject{},
		&models.Testimonial{},
		&models.GalleryItem{},
		&models.News{},
		&models.EducationalVideo{},
		&models.RegisteredUser{},
		&models.RefreshToken{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := seedSpecialties(db); err != nil {
		return fmt.Errorf("seed specialties: %w", err)
	}

	log.Println("Migration complete")
	return nil
}

// seedSpecialties inserts the specialty catalog once. Existing rows are
// left untouched so renames survive restarts.
func seedSpecialties(db *gorm.DB) error {
	specialties := []models.Specialty{
		{Name: "Combate escénico", Icon: "swords"},
		{Name: "Caídas de altura", Icon: "arrow-down"},
		{Name: "Manejo de vehículos", Icon: "car"},
		{Name: "Trabajo con fuego", Icon: "flame"},
		{Name: "Acrobacia", Icon: "activity"},
		{Name: "Artes marciales", Icon: "hand"},
		{Name: "Equitación", Icon: "horse"},
		{Name: "Trabajo subacuático", Icon: "waves"},
	}

	for _, s := range specialties {
		var existing models.Specialty
		err := db.Where("name = ?", s.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}
	return nil
}
