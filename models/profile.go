package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SocialLinks holds the profile's external platform URLs, stored as a single
// JSON column on the profile row.
type SocialLinks struct {
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
	Facebook string `json:"facebook,omitempty"`
	Youtube  string `json:"youtube,omitempty"`
}

// Profile is the site owner's identity card. It is a singleton by convention
// only: readers take the most recently updated row and nothing enforces
// uniqueness, so stale rows may accumulate behind the visible one.
type Profile struct {
	ID          uuid.UUID                       `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name        string                          `json:"name" db:"name" gorm:"type:text;not null"`
	Title       string                          `json:"title" db:"title" gorm:"type:text;not null"`
	Description string                          `json:"description" db:"description" gorm:"type:text;not null"`
	Email       string                          `json:"email" db:"email" gorm:"type:text;not null"`
	Phone       string                          `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Location    string                          `json:"location,omitempty" db:"location" gorm:"type:text"`
	Avatar      string                          `json:"avatar,omitempty" db:"avatar" gorm:"type:text"`
	Resume      string                          `json:"resume,omitempty" db:"resume" gorm:"type:text"`
	SocialLinks datatypes.JSONType[SocialLinks] `json:"socialLinks" db:"social_links"`
	CreatedAt   time.Time                       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time                       `json:"updatedAt" db:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DefaultProfile is what the read path returns when no profile row exists.
// It is never written to the database.
func DefaultProfile() Profile {
	return Profile{
		Name:        "Murshed Koli",
		Title:       "Full Stack Developer",
		Description: "Passionate web developer with expertise in modern technologies",
		Email:       "murshed@example.com",
		Phone:       "+1 (555) 123-4567",
		Location:    "New York, NY",
		SocialLinks: datatypes.NewJSONType(SocialLinks{
			Github:   "https://github.com/murshedkoli",
			Linkedin: "https://linkedin.com/in/murshedkoli",
			Twitter:  "https://twitter.com/murshedkoli",
		}),
	}
}
