package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Salon working hours are stored as time-of-day strings ("09:00:00").
// Staff capacity is the number of UserSalon assignment rows.
type Salon struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Location string `gorm:"size:255" json:"location"`
	Phone    string `gorm:"size:20" json:"phone"`

	StartWorkingHours string `gorm:"size:8" json:"startWorkingHours"`
	EndWorkingHours   string `gorm:"size:8" json:"endWorkingHours"`

	Services []Service   `gorm:"foreignKey:SalonID" json:"services,omitempty"`
	Users    []UserSalon `gorm:"foreignKey:SalonID" json:"users,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Salon) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
