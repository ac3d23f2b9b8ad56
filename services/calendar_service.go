package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexsterin2005-wq/amtennis/models"
)

const (
	academyLocation = "Council Rock North High School Tennis Courts, 62 Swamp Rd, Newtown, PA 18940"
	calendarDomain  = "amtennis.netlify.app"
	icsTimeLayout   = "20060102T150405Z"
)

// BuildCalendarFile renders a single-event iCalendar block for a booking.
// Deterministic for a fixed now, which only feeds DTSTAMP.
func BuildCalendarFile(b models.Booking, now time.Time) (string, error) {
	start, err := SlotStart(b.Date, b.Time)
	if err != nil {
		return "", err
	}
	end := start.Add(b.Duration())

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//AM Tennis Academy//Booking//EN",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s@%s", b.ID, calendarDomain),
		"DTSTAMP:" + now.UTC().Format(icsTimeLayout),
		"DTSTART:" + start.UTC().Format(icsTimeLayout),
		"DTEND:" + end.UTC().Format(icsTimeLayout),
		fmt.Sprintf("SUMMARY:Tennis Lesson with Coach %s", b.Coach),
		fmt.Sprintf("DESCRIPTION:Tennis lesson at AM Tennis Academy\\n\\nCoach: %s\\nDuration: %d minutes\\nPrice: $%s\\n\\nLocation: %s",
			b.Coach, b.DurationMinutes, b.PriceDollars(), academyLocation),
		"LOCATION:" + academyLocation,
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n"), nil
}

// CalendarFileName names the .ics download after the lesson date.
func CalendarFileName(b models.Booking) string {
	return fmt.Sprintf("tennis-lesson-%s.ics", b.Date)
}
