package database

import (
	"gorm.io/gorm"

	"github.com/murshedkoli/portfolio-backend/models"
)

type Database struct {
	profileRepo    *ProfileRepo
	projectRepo    *ProjectRepo
	skillRepo      *SkillRepo
	educationRepo  *EducationRepo
	experienceRepo *ExperienceRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo:    NewProfileRepo(db),
		projectRepo:    NewProjectRepo(db),
		skillRepo:      NewSkillRepo(db),
		educationRepo:  NewEducationRepo(db),
		experienceRepo: NewExperienceRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) EducationRepo() *EducationRepo {
	return d.educationRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

// AutoMigrate creates or updates the schema for every entity table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Project{},
		&models.Skill{},
		&models.Education{},
		&models.Experience{},
	)
}
