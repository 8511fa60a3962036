package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rendez-vous. Jamais supprimé physiquement : "cancelled" est un état
// terminal, pas une suppression.
type Appointment struct {
	ID string `gorm:"type:text;primaryKey" json:"id"`

	ClientID string `gorm:"type:text;not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	StaffID string  `gorm:"type:text;not null;index" json:"staff_id"`
	Staff   Profile `gorm:"foreignKey:StaffID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"staff"`

	ServiceID string  `gorm:"type:text;not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	Notes       string     `gorm:"type:text" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
