package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prestation du catalogue. Prix en dinars, durée en minutes.
type Service struct {
	ID string `gorm:"type:text;primaryKey" json:"id"`

	CategoryID uint            `gorm:"not null;index" json:"category_id"`
	Category   ServiceCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`

	Name     string `gorm:"size:150;not null" json:"name"`
	Price    int    `gorm:"not null" json:"price"`
	Duration int    `gorm:"not null" json:"duration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
