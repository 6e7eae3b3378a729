package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectStatusActive is the only status the public listing returns. Rows
// with any other status stay stored but invisible.
const ProjectStatusActive = "active"

// Project represents a portfolio project with metadata
type Project struct {
	ID              uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Title           string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string                      `json:"description" db:"description" gorm:"type:text;not null"`
	LongDescription string                      `json:"longDescription,omitempty" db:"long_description" gorm:"type:text"`
	Technologies    datatypes.JSONSlice[string] `json:"technologies" db:"technologies"`
	GithubURL       string                      `json:"githubUrl,omitempty" db:"github_url" gorm:"type:text"`
	DemoURL         string                      `json:"demoUrl,omitempty" db:"demo_url" gorm:"type:text"`
	ImageURL        string                      `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	Featured        bool                        `json:"featured" db:"featured" gorm:"not null;default:false"`
	Order           int                         `json:"order" db:"order" gorm:"column:order;not null;default:0"`
	Status          string                      `json:"status" db:"status" gorm:"type:text;not null;default:active"`
	CreatedAt       time.Time                   `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time                   `json:"updatedAt" db:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
