package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;index" json:"userId"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	SalonID string `gorm:"type:uuid;index;column:beauty_salon_id" json:"beautySalonId"`
	Salon   *Salon `gorm:"foreignKey:SalonID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"beautySalon,omitempty"`

	Date   time.Time `gorm:"index" json:"date"`
	Status string    `gorm:"size:20;default:'pending'" json:"status"`

	// Line items in request order. Duplicates are kept as separate rows.
	Services []BookingService `gorm:"foreignKey:BookingID" json:"services,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BookingService keeps an auto-increment key so line items preserve the
// order they were requested in.
type BookingService struct {
	ID        uint     `gorm:"primaryKey" json:"-"`
	BookingID string   `gorm:"type:uuid;index" json:"bookingId"`
	ServiceID string   `gorm:"type:uuid" json:"serviceId"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`
}
