package services

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/alexsterin2005-wq/amtennis/models"
)

// The academy has a single location, so all wall-clock labels are interpreted
// in its local timezone.
var academyTZ *time.Location

func init() {
	var err error
	academyTZ, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(fmt.Sprintf("load academy timezone: %v", err))
	}
}

// AcademyNow is the current wall-clock time at the courts.
func AcademyNow() time.Time {
	return time.Now().In(academyTZ)
}

// GenerateTimeSlots lists the generic hourly labels from 8:00 AM through
// 8:00 PM. The per-lesson-type times list stays authoritative for what the
// widget offers; this is the general-purpose catalog.
func GenerateTimeSlots() []string {
	slots := make([]string, 0, 13)
	for h := 8; h <= 20; h++ {
		suffix := "AM"
		if h >= 12 {
			suffix = "PM"
		}
		hour12 := h % 12
		if hour12 == 0 {
			hour12 = 12
		}
		slots = append(slots, fmt.Sprintf("%d:00 %s", hour12, suffix))
	}
	return slots
}

// SlotStart resolves a date and slot label to the lesson start in academy
// local time. Clinic labels carry a weekday prefix ("Sat 9:00 AM"); the
// booking date already fixes the day, so the prefix is dropped.
func SlotStart(date, label string) (time.Time, error) {
	if fields := strings.Fields(label); len(fields) == 3 {
		label = fields[1] + " " + fields[2]
	}
	t, err := time.ParseInLocation("2006-01-02 3:04 PM", date+" "+label, academyTZ)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse slot %q %q: %w", date, label, err)
	}
	return t, nil
}

// IsSlotBooked reports whether a non-cancelled booking already holds the
// (coach, date, time) triple. Callers must pass the freshly loaded cache; a
// stale snapshot re-opens the double-booking window.
func IsSlotBooked(timeSlot, coach, date string, bookings []models.Booking) bool {
	for _, b := range bookings {
		if b.Status != models.StatusCancelled && b.Coach == coach && b.Date == date && b.Time == timeSlot {
			return true
		}
	}
	return false
}
