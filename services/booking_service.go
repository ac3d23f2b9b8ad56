package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/alexsterin2005-wq/amtennis/models"
	"github.com/alexsterin2005-wq/amtennis/notifications"
)

// DefaultCoach is preselected by the widget when the client does not pick one.
const DefaultCoach = "Iskander Karimov"

const bookingNumberBase = 1000

type BookingStore interface {
	GetAll(ctx context.Context) ([]models.Booking, error)
	Add(ctx context.Context, booking models.Booking) error
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type CalendarEventStore interface {
	GetAll(ctx context.Context) ([]models.CalendarEvent, error)
	Add(ctx context.Context, event models.CalendarEvent) (string, error)
	Delete(ctx context.Context, id string) error
}

type Notifier interface {
	Send(ctx context.Context, p notifications.TemplateParams) bool
}

// BookingService owns the booking lifecycle and the in-memory cache. The store
// is the system of record; the cache is replaced wholesale after every
// mutation, never patched in place.
type BookingService struct {
	store         BookingStore
	events        CalendarEventStore
	notifier      Notifier
	businessEmail string
	onChange      func()
	nowFn         func() time.Time

	mu             sync.RWMutex
	bookings       []models.Booking
	calendarEvents []models.CalendarEvent
}

func NewBookingService(store BookingStore, events CalendarEventStore, notifier Notifier, businessEmail string) *BookingService {
	return &BookingService{
		store:         store,
		events:        events,
		notifier:      notifier,
		businessEmail: businessEmail,
		nowFn:         time.Now,
	}
}

// OnChange registers a hook invoked after every cache reload, e.g. to tell
// connected widgets to re-render.
func (s *BookingService) OnChange(fn func()) {
	s.onChange = fn
}

// Reload replaces the cache from the stores: bookings newest-first, calendar
// events ascending by (date, time). A load failure resets the matching cache
// to empty rather than leaving stale entries behind.
func (s *BookingService) Reload(ctx context.Context) error {
	bookings, err := s.store.GetAll(ctx)
	if err != nil {
		log.Printf("🔥 Error loading bookings: %v", err)
		bookings = nil
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	events, eventsErr := s.events.GetAll(ctx)
	if eventsErr != nil {
		log.Printf("🔥 Error loading calendar events: %v", eventsErr)
		events = nil
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date == events[j].Date {
			return events[i].Time < events[j].Time
		}
		return events[i].Date < events[j].Date
	})

	s.mu.Lock()
	s.bookings = bookings
	s.calendarEvents = events
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange()
	}
	if err != nil {
		return &StorageError{Op: "load bookings", Err: err}
	}
	if eventsErr != nil {
		return &StorageError{Op: "load calendar events", Err: eventsErr}
	}
	return nil
}

// Bookings returns a copy of the cached bookings, newest first.
func (s *BookingService) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *BookingService) CalendarEvents() []models.CalendarEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CalendarEvent, len(s.calendarEvents))
	copy(out, s.calendarEvents)
	return out
}

type CreateBookingInput struct {
	LessonType string
	Coach      string
	Date       string
	Time       string
	Name       string
	Email      string
	Phone      string
	Notes      string
}

// Create allocates the next booking number, persists the booking, fires
// best-effort confirmation emails to the client and the business address, and
// reloads the cache.
//
// The availability check and the store write are not atomic, and the booking
// number comes from the local cache length: two near-simultaneous submissions
// can both pass the check and collide on the id. That matches the original
// single-writer contract; the store's id key turns a collision into a write
// error instead of silent corruption.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (models.Booking, error) {
	if in.Date == "" || in.Time == "" || in.Name == "" || in.Email == "" {
		return models.Booking{}, newValidationError("Please fill in all required fields and select a time slot.")
	}
	if in.Coach == "" {
		in.Coach = DefaultCoach
	}
	lessonType, ok := models.LessonTypeByKey(in.LessonType)
	if !ok {
		return models.Booking{}, newValidationError("Unknown lesson type.")
	}

	s.mu.RLock()
	booked := IsSlotBooked(in.Time, in.Coach, in.Date, s.bookings)
	bookingNumber := bookingNumberBase + len(s.bookings) + 1
	s.mu.RUnlock()

	if booked {
		return models.Booking{}, &SlotConflictError{Coach: in.Coach, Date: in.Date, Time: in.Time}
	}

	booking := models.Booking{
		ID:              fmt.Sprintf("#%d", bookingNumber),
		Coach:           in.Coach,
		Date:            in.Date,
		Time:            in.Time,
		DurationMinutes: lessonType.DurationMinutes,
		PriceCents:      lessonType.PriceCents,
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		Notes:           in.Notes,
		Status:          models.StatusConfirmed,
		CreatedAt:       s.nowFn(),
	}

	if err := s.store.Add(ctx, booking); err != nil {
		return models.Booking{}, &StorageError{Op: "add booking", Err: err}
	}

	params := notifications.NewConfirmationParams(booking)
	if !s.notifier.Send(ctx, params) {
		log.Printf("⚠️ Confirmation email to %s failed for booking %s", booking.Email, booking.ID)
	}
	if s.businessEmail != "" {
		businessParams := params
		businessParams.Email = s.businessEmail
		if !s.notifier.Send(ctx, businessParams) {
			log.Printf("⚠️ Business copy of booking %s failed", booking.ID)
		}
	}

	if err := s.Reload(ctx); err != nil {
		log.Printf("⚠️ Reload after create failed: %v", err)
	}
	return booking, nil
}

// UpdateStatus persists a status change and reloads the cache. Any transition
// between known statuses is allowed, including cancelled back to confirmed.
func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) error {
	if status != models.StatusConfirmed && status != models.StatusCancelled {
		return newValidationError("Unknown booking status.")
	}
	if err := s.store.Update(ctx, id, map[string]interface{}{"status": status}); err != nil {
		return &StorageError{Op: "update booking", Err: err}
	}
	return s.Reload(ctx)
}

// Delete removes a booking outright. Confirmation is the caller's gate; the
// widget asks before it ever reaches here.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return &StorageError{Op: "delete booking", Err: err}
	}
	return s.Reload(ctx)
}

// FindBooking looks the id up in the cache.
func (s *BookingService) FindBooking(id string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

func (s *BookingService) AddCalendarEvent(ctx context.Context, event models.CalendarEvent) (string, error) {
	if event.Date == "" || event.Time == "" {
		return "", newValidationError("Calendar events need a date and a time.")
	}
	id, err := s.events.Add(ctx, event)
	if err != nil {
		return "", &StorageError{Op: "add calendar event", Err: err}
	}
	if err := s.Reload(ctx); err != nil {
		log.Printf("⚠️ Reload after calendar event add failed: %v", err)
	}
	return id, nil
}

func (s *BookingService) DeleteCalendarEvent(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return &StorageError{Op: "delete calendar event", Err: err}
	}
	return s.Reload(ctx)
}
