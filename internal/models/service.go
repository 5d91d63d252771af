package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID            string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string  `gorm:"size:100;not null" json:"name"`
	Price         float64 `json:"price"`
	DurationInMin int     `json:"durationInMin"`

	SalonID string `gorm:"type:uuid;index" json:"salonId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
