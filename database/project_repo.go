package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/murshedkoli/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAllActive returns every project with status "active", featured ones
// first, then by manual order, then newest first.
func (r *ProjectRepo) FindAllActive() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Where("status = ?", models.ProjectStatusActive).
		Order(`featured DESC, "order" ASC, created_at DESC`).
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update overwrites every field of an existing project
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project by id. Deleting a row that does not exist is an
// error so that callers fail instead of silently succeeding.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
