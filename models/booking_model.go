package models

import (
	"fmt"
	"time"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is immutable once created; only Status changes afterwards,
// and only through the lifecycle manager.
type Booking struct {
	ID              string    `gorm:"primary_key;size:16" json:"id"`
	Coach           string    `gorm:"size:100;not null" json:"coach"`
	Date            string    `gorm:"size:10;not null;index:idx_booking_slot" json:"date"`
	Time            string    `gorm:"size:12;not null;index:idx_booking_slot" json:"time"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	PriceCents      int64     `gorm:"not null" json:"price_cents"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Email           string    `gorm:"size:255;not null" json:"email"`
	Phone           string    `gorm:"size:30" json:"phone"`
	Notes           string    `gorm:"type:text" json:"notes"`
	Status          string    `gorm:"size:20;not null;default:'confirmed'" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// PriceDollars renders the price with two decimals, e.g. "80.00".
func (b Booking) PriceDollars() string {
	return fmt.Sprintf("%d.%02d", b.PriceCents/100, b.PriceCents%100)
}

// Hours converts the lesson duration to fractional hours for reporting.
func (b Booking) Hours() float64 {
	return float64(b.DurationMinutes) / 60
}

func (b Booking) Duration() time.Duration {
	return time.Duration(b.DurationMinutes) * time.Minute
}
