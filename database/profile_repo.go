package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/murshedkoli/portfolio-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindLatest returns the most recently updated profile row, or nil when the
// table is empty. The singleton is a convention, not a constraint: if stray
// rows exist, the newest one wins.
func (r *ProfileRepo) FindLatest() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Order("updated_at DESC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindFirst returns any existing profile row for the two-step upsert, or nil.
func (r *ProfileRepo) FindFirst() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Add inserts a new profile row into the database
func (r *ProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// Update overwrites every field of an existing profile row
func (r *ProfileRepo) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
