package models

import "time"

// CalendarEvent is display-only academy calendar data; it never feeds the
// booking-conflict check.
type CalendarEvent struct {
	ID        string    `gorm:"primary_key;size:36" json:"id"`
	Date      string    `gorm:"size:10;not null" json:"date"`
	Time      string    `gorm:"size:12;not null" json:"time"`
	Title     string    `gorm:"size:200" json:"title"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
