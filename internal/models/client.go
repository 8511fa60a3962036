package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente du salon, sans compte de connexion.
type Client struct {
	ID string `gorm:"type:text;primaryKey" json:"id"`

	FullName string `gorm:"size:150;not null" json:"full_name"`
	Phone    string `gorm:"size:30;not null" json:"phone"`
	Email    string `gorm:"size:100" json:"email"`
	Notes    string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
