package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/murshedkoli/portfolio-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns every skill ordered by category, manual order, then name.
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.
		Order(`category ASC, "order" ASC, name ASC`).
		Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update overwrites every field of an existing skill
func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill by id, erroring when no such row exists.
func (r *SkillRepo) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Skill{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceAll wipes the skills table and inserts the given set. This is the
// seeder's destructive reset, not a merge.
func (r *SkillRepo) ReplaceAll(skills []models.Skill) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Skill{}).Error; err != nil {
			return err
		}
		for i := range skills {
			if err := tx.Create(&skills[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
