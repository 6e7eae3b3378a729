package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill categories the admin console renders, in display order. The storage
// layer accepts any category string; anything outside this list is stored
// but never shown in the grouped view.
const (
	CategoryFrontend  = "frontend"
	CategoryBackend   = "backend"
	CategoryTools     = "tools"
	CategoryLanguages = "languages"
)

// SkillCategories returns the fixed display priority for skill grouping.
func SkillCategories() []string {
	return []string{CategoryFrontend, CategoryBackend, CategoryTools, CategoryLanguages}
}

// Skill represents a single skill entry with a 0-100 proficiency value.
// Proficiency is not clamped by the server; the console's editor is the
// only guard.
type Skill struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Category    string    `json:"category" db:"category" gorm:"type:text;not null"`
	Proficiency int       `json:"proficiency" db:"proficiency" gorm:"not null;default:50"`
	Icon        string    `json:"icon,omitempty" db:"icon" gorm:"type:text"`
	Order       int       `json:"order" db:"order" gorm:"column:order;not null;default:0"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
