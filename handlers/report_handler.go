package handlers

import (
	"log"

	"github.com/alexsterin2005-wq/amtennis/services"
	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// CoachHoursReport serves the plain-text coach hours report as a download.
func (h *ReportHandler) CoachHoursReport(c *fiber.Ctx) error {
	report, err := h.svc.CoachHours(c.Context())
	if err != nil {
		log.Printf("🔥 CoachHoursReport failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report. Please try again."})
	}

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+h.svc.ReportFileName()+`"`)
	return c.SendString(report)
}
