package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Experience represents a work position, sorted like Education: ongoing
// first, then most recent start date.
type Experience struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Company     string    `json:"company" db:"company" gorm:"type:text;not null"`
	Position    string    `json:"position" db:"position" gorm:"type:text;not null"`
	Description string    `json:"description,omitempty" db:"description" gorm:"type:text"`
	StartDate   Date      `json:"startDate" db:"start_date" gorm:"not null"`
	EndDate     *Date     `json:"endDate" db:"end_date"`
	Current     bool      `json:"current" db:"current" gorm:"not null;default:false"`
	Location    string    `json:"location,omitempty" db:"location" gorm:"type:text"`
	Order       int       `json:"order" db:"order" gorm:"column:order;not null;default:0"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
