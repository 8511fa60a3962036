package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Compte employé ou administrateur du salon.
type Profile struct {
	ID string `gorm:"type:text;primaryKey" json:"id"`

	FirstName    string `gorm:"size:100;not null" json:"first_name"`
	LastName     string `gorm:"size:100;not null" json:"last_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'staff'" json:"role"`
	ColorCode    string `gorm:"size:20;default:'#3B82F6'" json:"color_code"`

	Skills []StaffSkill `gorm:"foreignKey:ProfileID" json:"skills,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
