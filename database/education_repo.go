package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/murshedkoli/portfolio-backend/models"
)

type EducationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) *EducationRepo {
	return &EducationRepo{db}
}

// FindAll returns every education entry, ongoing ones first, then by most
// recent start date, then by manual order.
func (r *EducationRepo) FindAll() ([]*models.Education, error) {
	var entries []*models.Education
	err := r.db.
		Order(`current DESC, start_date DESC, "order" ASC`).
		Find(&entries).Error
	return entries, err
}

// FindByID returns an education entry by its ID
func (r *EducationRepo) FindByID(id uuid.UUID) (*models.Education, error) {
	var entry models.Education
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Add inserts a new education entry into the database
func (r *EducationRepo) Add(entry *models.Education) error {
	return r.db.Create(entry).Error
}

// Update overwrites every field of an existing education entry
func (r *EducationRepo) Update(entry *models.Education) error {
	return r.db.Save(entry).Error
}

// Delete removes an education entry by id, erroring when no such row exists.
func (r *EducationRepo) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Education{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
