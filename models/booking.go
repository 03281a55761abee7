package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// BookingStatuses lists every valid booking status.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

type Booking struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	Address      string    `gorm:"type:text;not null" json:"address"`
	DateTime     time.Time `gorm:"not null" json:"date_time"`
	ServiceID    uuid.UUID `gorm:"type:uuid;not null;index" json:"service_id"`
	Service      *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
