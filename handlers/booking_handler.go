package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/alexsterin2005-wq/amtennis/models"
	"github.com/alexsterin2005-wq/amtennis/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type BookingHandler struct {
	svc *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

type CreateBookingRequest struct {
	LessonType string `json:"lesson_type" validate:"required"`
	Coach      string `json:"coach"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Name       string `json:"name"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Notes      string `json:"notes"`
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := h.svc.Create(c.Context(), services.CreateBookingInput{
		LessonType: req.LessonType,
		Coach:      req.Coach,
		Date:       req.Date,
		Time:       req.Time,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Notes:      req.Notes,
	})
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Error()})
		}
		var cErr *services.SlotConflictError
		if errors.As(err, &cErr) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "This time slot is no longer available. Please select another."})
		}
		log.Printf("🔥 CreateBooking failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save booking. Please try again."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Booking confirmed %s", booking.ID),
		"booking": booking,
	})
}

func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	if err := h.svc.Reload(c.Context()); err != nil {
		log.Printf("🔥 ListBookings reload failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load bookings. Please try again."})
	}

	bookings := h.svc.Bookings()
	if status := c.Query("status"); status != "" {
		filtered := make([]models.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.Status == status {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}
	return c.JSON(bookings)
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

func (h *BookingHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.svc.UpdateStatus(c.Context(), bookingID(c), req.Status); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vErr.Error()})
		}
		log.Printf("🔥 UpdateBookingStatus failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking. Please try again."})
	}
	return c.JSON(fiber.Map{"message": "Booking updated"})
}

// DeleteBooking removes the booking outright. The widget owns the
// "are you sure" confirmation; by the time the request lands here the
// user already said yes.
func (h *BookingHandler) DeleteBooking(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), bookingID(c)); err != nil {
		log.Printf("🔥 DeleteBooking failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete booking. Please try again."})
	}
	return c.JSON(fiber.Map{"message": "Booking deleted"})
}

type slotResponse struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// GetSlots lists a lesson type's slots for a coach and date, marking the ones
// already taken. The cache is reloaded first so external writes show up.
func (h *BookingHandler) GetSlots(c *fiber.Ctx) error {
	coach := c.Query("coach", services.DefaultCoach)
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date is required"})
	}
	lessonType, ok := models.LessonTypeByKey(c.Query("lesson_type", "private"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown lesson type."})
	}

	if err := h.svc.Reload(c.Context()); err != nil {
		log.Printf("🔥 GetSlots reload failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load bookings. Please try again."})
	}
	bookings := h.svc.Bookings()

	slots := make([]slotResponse, 0, len(lessonType.Times))
	for _, label := range lessonType.Times {
		slots = append(slots, slotResponse{
			Time:   label,
			Booked: services.IsSlotBooked(label, coach, date, bookings),
		})
	}
	return c.JSON(fiber.Map{"coach": coach, "date": date, "lesson_type": lessonType.Key, "slots": slots})
}

func (h *BookingHandler) ListLessonTypes(c *fiber.Ctx) error {
	return c.JSON(models.LessonTypes())
}

// Booking ids carry a leading '#'; clients may omit it in the path.
func bookingID(c *fiber.Ctx) string {
	id := c.Params("id")
	if id != "" && id[0] != '#' {
		id = "#" + id
	}
	return id
}
