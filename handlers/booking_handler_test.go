package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexsterin2005-wq/amtennis/models"
	"github.com/alexsterin2005-wq/amtennis/notifications"
	"github.com/alexsterin2005-wq/amtennis/services"
	"github.com/gofiber/fiber/v2"
)

type memoryBookingStore struct {
	bookings []models.Booking
}

func (m *memoryBookingStore) GetAll(ctx context.Context) ([]models.Booking, error) {
	out := make([]models.Booking, len(m.bookings))
	copy(out, m.bookings)
	return out, nil
}

func (m *memoryBookingStore) Add(ctx context.Context, booking models.Booking) error {
	m.bookings = append(m.bookings, booking)
	return nil
}

func (m *memoryBookingStore) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	for i, b := range m.bookings {
		if b.ID == id {
			if status, ok := updates["status"].(string); ok {
				m.bookings[i].Status = status
			}
			return nil
		}
	}
	return errors.New("not found")
}

func (m *memoryBookingStore) Delete(ctx context.Context, id string) error {
	for i, b := range m.bookings {
		if b.ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type memoryEventStore struct{}

func (memoryEventStore) GetAll(ctx context.Context) ([]models.CalendarEvent, error) {
	return nil, nil
}
func (memoryEventStore) Add(ctx context.Context, e models.CalendarEvent) (string, error) {
	return "event-1", nil
}
func (memoryEventStore) Delete(ctx context.Context, id string) error { return nil }

type silentNotifier struct{}

func (silentNotifier) Send(ctx context.Context, p notifications.TemplateParams) bool { return true }

func newTestApp(store *memoryBookingStore) *fiber.App {
	svc := services.NewBookingService(store, memoryEventStore{}, silentNotifier{}, "office@amtennis.test")
	h := NewBookingHandler(svc)

	app := fiber.New()
	app.Post("/api/v1/bookings", h.CreateBooking)
	app.Get("/api/v1/slots", h.GetSlots)
	app.Get("/api/v1/lesson-types", h.ListLessonTypes)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	return resp
}

func TestCreateBookingEndpoint(t *testing.T) {
	store := &memoryBookingStore{}
	app := newTestApp(store)

	resp := doJSON(t, app, "POST", "/api/v1/bookings", `{
		"lesson_type": "private",
		"coach": "Iskander Karimov",
		"date": "2024-06-01",
		"time": "10:00 AM",
		"name": "Sam Client",
		"email": "sam@example.com"
	}`)

	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusCreated)
	}
	var body struct {
		Message string         `json:"message"`
		Booking models.Booking `json:"booking"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Booking.ID != "#1001" {
		t.Errorf("booking id = %q, want #1001", body.Booking.ID)
	}
	if body.Message != "Booking confirmed #1001" {
		t.Errorf("message = %q", body.Message)
	}
	if len(store.bookings) != 1 {
		t.Fatalf("store has %d bookings, want 1", len(store.bookings))
	}
}

func TestCreateBookingEndpoint_MissingFields(t *testing.T) {
	app := newTestApp(&memoryBookingStore{})

	resp := doJSON(t, app, "POST", "/api/v1/bookings", `{"lesson_type": "private", "date": "2024-06-01"}`)

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] != "Please fill in all required fields and select a time slot." {
		t.Errorf("error message = %q", body["error"])
	}
}

func TestCreateBookingEndpoint_Conflict(t *testing.T) {
	store := &memoryBookingStore{}
	app := newTestApp(store)

	payload := `{
		"lesson_type": "private",
		"date": "2024-06-01",
		"time": "10:00 AM",
		"name": "Sam Client",
		"email": "sam@example.com"
	}`
	if resp := doJSON(t, app, "POST", "/api/v1/bookings", payload); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first booking status = %d", resp.StatusCode)
	}
	resp := doJSON(t, app, "POST", "/api/v1/bookings", payload)

	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusConflict)
	}
}

func TestGetSlotsEndpoint(t *testing.T) {
	store := &memoryBookingStore{bookings: []models.Booking{
		{ID: "#1001", Coach: services.DefaultCoach, Date: "2024-06-01", Time: "10:00 AM", Status: models.StatusConfirmed},
	}}
	app := newTestApp(store)

	resp := doJSON(t, app, "GET", "/api/v1/slots?date=2024-06-01&lesson_type=private", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Slots []struct {
			Time   string `json:"time"`
			Booked bool   `json:"booked"`
		} `json:"slots"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Slots) != 13 {
		t.Fatalf("slot count = %d, want 13", len(body.Slots))
	}
	for _, s := range body.Slots {
		want := s.Time == "10:00 AM"
		if s.Booked != want {
			t.Errorf("slot %q booked = %v, want %v", s.Time, s.Booked, want)
		}
	}
}
