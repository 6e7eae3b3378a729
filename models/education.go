package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Education represents a degree or study period. Ongoing entries
// (Current == true) always sort before finished ones.
type Education struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Institution string    `json:"institution" db:"institution" gorm:"type:text;not null"`
	Degree      string    `json:"degree" db:"degree" gorm:"type:text;not null"`
	Field       string    `json:"field,omitempty" db:"field" gorm:"type:text"`
	Description string    `json:"description,omitempty" db:"description" gorm:"type:text"`
	StartDate   Date      `json:"startDate" db:"start_date" gorm:"not null"`
	EndDate     *Date     `json:"endDate" db:"end_date"`
	Current     bool      `json:"current" db:"current" gorm:"not null;default:false"`
	GPA         string    `json:"gpa,omitempty" db:"gpa" gorm:"type:text"`
	Order       int       `json:"order" db:"order" gorm:"column:order;not null;default:0"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
