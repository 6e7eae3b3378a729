package database

import (
	"gorm.io/gorm"

	"github.com/murshedkoli/portfolio-backend/models"
)

// ExperienceRepo is create/list only: the API contract has no per-id
// experience routes.
type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

// FindAll returns every experience entry, ongoing ones first, then by most
// recent start date, then by manual order.
func (r *ExperienceRepo) FindAll() ([]*models.Experience, error) {
	var entries []*models.Experience
	err := r.db.
		Order(`current DESC, start_date DESC, "order" ASC`).
		Find(&entries).Error
	return entries, err
}

// Add inserts a new experience entry into the database
func (r *ExperienceRepo) Add(entry *models.Experience) error {
	return r.db.Create(entry).Error
}
