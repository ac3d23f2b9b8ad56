package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alexsterin2005-wq/amtennis/models"
)

func TestCoachHours_ExcludesCancelled(t *testing.T) {
	store := &fakeBookingStore{bookings: []models.Booking{
		{ID: "#1001", Coach: "A", Date: "2024-06-01", Time: "10:00 AM", DurationMinutes: 60, PriceCents: 8000, Name: "Sam", Status: models.StatusConfirmed},
		{ID: "#1002", Coach: "A", Date: "2024-06-02", Time: "11:00 AM", DurationMinutes: 90, PriceCents: 3500, Name: "Alex", Status: models.StatusCancelled},
	}}
	svc := NewReportService(store)
	svc.nowFn = func() time.Time { return time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC) }

	report, err := svc.CoachHours(context.Background())
	if err != nil {
		t.Fatalf("CoachHours error: %v", err)
	}

	checks := []string{
		"AM TENNIS ACADEMY - COACH HOURS REPORT",
		"COACH: A",
		"Total Lessons: 1",
		"Total Hours: 1.00",
		"Total Revenue: $80.00",
		"GRAND TOTALS",
	}
	for _, want := range checks {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\n%s", want, report)
		}
	}
	if strings.Contains(report, "Alex") {
		t.Errorf("cancelled lesson leaked into report\n%s", report)
	}
}

func TestCoachHours_SortsCoachesAndLessons(t *testing.T) {
	store := &fakeBookingStore{bookings: []models.Booking{
		{ID: "#1001", Coach: "Zoe", Date: "2024-06-05", Time: "10:00 AM", DurationMinutes: 60, PriceCents: 8000, Status: models.StatusConfirmed},
		{ID: "#1002", Coach: "Amy", Date: "2024-06-09", Time: "2:00 PM", DurationMinutes: 60, PriceCents: 5000, Status: models.StatusConfirmed},
		{ID: "#1003", Coach: "Amy", Date: "2024-06-02", Time: "9:00 AM", DurationMinutes: 60, PriceCents: 5000, Status: models.StatusConfirmed},
	}}
	svc := NewReportService(store)

	report, err := svc.CoachHours(context.Background())
	if err != nil {
		t.Fatalf("CoachHours error: %v", err)
	}

	amy := strings.Index(report, "COACH: Amy")
	zoe := strings.Index(report, "COACH: Zoe")
	if amy == -1 || zoe == -1 || amy > zoe {
		t.Errorf("coach sections out of order (Amy at %d, Zoe at %d)", amy, zoe)
	}

	early := strings.Index(report, "Date: 2024-06-02")
	late := strings.Index(report, "Date: 2024-06-09")
	if early == -1 || late == -1 || early > late {
		t.Errorf("lessons within a coach out of date order (%d vs %d)", early, late)
	}

	if !strings.Contains(report, "Total Revenue: $180.00") {
		t.Errorf("grand total revenue wrong\n%s", report)
	}
	if !strings.Contains(report, "Total Lessons: 3") {
		t.Errorf("grand total lesson count wrong\n%s", report)
	}
}

func TestCoachHours_StoreFailure(t *testing.T) {
	store := &fakeBookingStore{getAllErr: errors.New("timeout")}
	svc := NewReportService(store)

	_, err := svc.CoachHours(context.Background())

	var sErr *StorageError
	if !errors.As(err, &sErr) {
		t.Fatalf("error type = %T, want *StorageError", err)
	}
}

func TestReportFileName(t *testing.T) {
	svc := NewReportService(&fakeBookingStore{})
	svc.nowFn = func() time.Time { return time.Date(2024, 6, 3, 12, 0, 0, 0, academyTZ) }

	if got := svc.ReportFileName(); got != "tennis-coach-report-2024-06-03.txt" {
		t.Fatalf("ReportFileName = %q", got)
	}
}
