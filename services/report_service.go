package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexsterin2005-wq/amtennis/models"
)

var reportRule = strings.Repeat("=", 60)

// ReportService derives the coach-hours report straight from the store, so a
// report is never built from a stale cache.
type ReportService struct {
	store BookingStore
	nowFn func() time.Time
}

func NewReportService(store BookingStore) *ReportService {
	return &ReportService{store: store, nowFn: time.Now}
}

// CoachHours aggregates all non-cancelled bookings by coach: lesson count,
// total hours, and total revenue per coach, then grand totals. Plain text for
// humans, not for machines.
func (r *ReportService) CoachHours(ctx context.Context) (string, error) {
	all, err := r.store.GetAll(ctx)
	if err != nil {
		return "", &StorageError{Op: "load bookings for report", Err: err}
	}

	var bookings []models.Booking
	for _, b := range all {
		if b.Status != models.StatusCancelled {
			bookings = append(bookings, b)
		}
	}

	byCoach := make(map[string][]models.Booking)
	for _, b := range bookings {
		byCoach[b.Coach] = append(byCoach[b.Coach], b)
	}
	coaches := make([]string, 0, len(byCoach))
	for coach := range byCoach {
		coaches = append(coaches, coach)
	}
	sort.Strings(coaches)

	var sb strings.Builder
	sb.WriteString("AM TENNIS ACADEMY - COACH HOURS REPORT\n")
	sb.WriteString(reportRule + "\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.nowFn().In(academyTZ).Format("1/2/2006, 3:04:05 PM")))

	for _, coach := range coaches {
		lessons := byCoach[coach]
		sort.SliceStable(lessons, func(i, j int) bool {
			return lessons[i].Date < lessons[j].Date
		})

		var totalHours float64
		var totalRevenueCents int64
		for _, l := range lessons {
			totalHours += l.Hours()
			totalRevenueCents += l.PriceCents
		}

		sb.WriteString("\n" + reportRule + "\n")
		sb.WriteString(fmt.Sprintf("COACH: %s\n", coach))
		sb.WriteString(fmt.Sprintf("Total Lessons: %d\n", len(lessons)))
		sb.WriteString(fmt.Sprintf("Total Hours: %.2f\n", totalHours))
		sb.WriteString(fmt.Sprintf("Total Revenue: $%s\n", centsToDollars(totalRevenueCents)))
		sb.WriteString(reportRule + "\n\n")

		for _, l := range lessons {
			sb.WriteString(fmt.Sprintf("Date: %s at %s\n", l.Date, l.Time))
			sb.WriteString(fmt.Sprintf("  Client: %s\n", l.Name))
			sb.WriteString(fmt.Sprintf("  Duration: %d minutes (%.2f hours)\n", l.DurationMinutes, l.Hours()))
			sb.WriteString(fmt.Sprintf("  Price: $%s\n", l.PriceDollars()))
			sb.WriteString(fmt.Sprintf("  Status: %s\n", l.Status))
			if l.Notes != "" {
				sb.WriteString(fmt.Sprintf("  Notes: %s\n", l.Notes))
			}
			sb.WriteString("\n")
		}
	}

	var grandHours float64
	var grandRevenueCents int64
	for _, b := range bookings {
		grandHours += b.Hours()
		grandRevenueCents += b.PriceCents
	}

	sb.WriteString("\n" + reportRule + "\n")
	sb.WriteString("GRAND TOTALS\n")
	sb.WriteString(reportRule + "\n")
	sb.WriteString(fmt.Sprintf("Total Lessons: %d\n", len(bookings)))
	sb.WriteString(fmt.Sprintf("Total Hours: %.2f\n", grandHours))
	sb.WriteString(fmt.Sprintf("Total Revenue: $%s\n", centsToDollars(grandRevenueCents)))

	return sb.String(), nil
}

// ReportFileName names the report download after the generation date.
func (r *ReportService) ReportFileName() string {
	return fmt.Sprintf("tennis-coach-report-%s.txt", r.nowFn().In(academyTZ).Format("2006-01-02"))
}

func centsToDollars(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
