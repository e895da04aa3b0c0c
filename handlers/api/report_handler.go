package handlers

import (
	"dreach.in/services"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service services.IReportService
}

func NewReportHandler(service services.IReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// ClinicReport GET /api/reports/clinic
func (h *ReportHandler) ClinicReport(c *fiber.Ctx) error {
	report, err := h.service.BuildClinicReport(c.UserContext())
	if err != nil {
		return errorResponse(c, "ClinicReport", err)
	}
	return c.JSON(report)
}
