package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/alexsterin2005-wq/amtennis/models"
	"github.com/alexsterin2005-wq/amtennis/services"
	"github.com/gofiber/fiber/v2"
)

type CalendarHandler struct {
	svc *services.BookingService
}

func NewCalendarHandler(svc *services.BookingService) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

// DownloadBookingCalendar serves the .ics export for one booking.
func (h *CalendarHandler) DownloadBookingCalendar(c *fiber.Ctx) error {
	id := bookingID(c)
	booking, ok := h.svc.FindBooking(id)
	if !ok {
		// The cache may predate an external write; try once more fresh.
		if err := h.svc.Reload(c.Context()); err != nil {
			log.Printf("🔥 Calendar reload failed: %v", err)
		}
		if booking, ok = h.svc.FindBooking(id); !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
	}

	ics, err := services.BuildCalendarFile(booking, time.Now())
	if err != nil {
		log.Printf("🔥 Calendar build failed for %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build calendar file"})
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+services.CalendarFileName(booking)+`"`)
	return c.SendString(ics)
}

func (h *CalendarHandler) ListCalendarEvents(c *fiber.Ctx) error {
	if err := h.svc.Reload(c.Context()); err != nil {
		log.Printf("🔥 ListCalendarEvents reload failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load calendar events. Please try again."})
	}
	return c.JSON(h.svc.CalendarEvents())
}

type CreateCalendarEventRequest struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Time  string `json:"time" validate:"required"`
	Title string `json:"title"`
	Notes string `json:"notes"`
}

func (h *CalendarHandler) CreateCalendarEvent(c *fiber.Ctx) error {
	var req CreateCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := h.svc.AddCalendarEvent(c.Context(), models.CalendarEvent{
		Date:  req.Date,
		Time:  req.Time,
		Title: req.Title,
		Notes: req.Notes,
	})
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Error()})
		}
		log.Printf("🔥 CreateCalendarEvent failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save calendar event. Please try again."})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *CalendarHandler) DeleteCalendarEvent(c *fiber.Ctx) error {
	if err := h.svc.DeleteCalendarEvent(c.Context(), c.Params("id")); err != nil {
		log.Printf("🔥 DeleteCalendarEvent failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete calendar event. Please try again."})
	}
	return c.JSON(fiber.Map{"message": "Calendar event deleted"})
}
