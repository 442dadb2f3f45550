package coverage

import (
	"errors"

	"ams-coverage/core/logger"
	"ams-coverage/core/reconcile"
	"ams-coverage/feature/conformance"
	"ams-coverage/feature/report"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for coverage reports.
type Handler struct {
	service *Service
	format  string
}

// NewHandler creates a new HTTP handler. format is the default report format.
func NewHandler(service *Service, format string) *Handler {
	if format == "" {
		format = report.FormatHTML
	}
	return &Handler{service: service, format: format}
}

// RegisterRoutes registers the coverage routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/coverage")
	group.Get("/:pack", h.HandleCompare)
	group.Get("/:pack/report", h.HandleReport)
}

// HandleCompare returns the comparison of a pack as a JSON report.
// @Summary Compare Conformance Pack
// @Description Reconciles the config rules of a conformance pack with the AMS managed rule catalogue.
// @Tags coverage
// @Produce json
// @Param pack path string true "Conformance pack file name"
// @Success 200 {object} map[string]interface{} "Comparison"
// @Failure 400 {object} map[string]string "Invalid pack name"
// @Failure 422 {object} map[string]string "Malformed pack or catalogue"
// @Failure 502 {object} map[string]string "Pack or catalogue unavailable"
// @Router /coverage/{pack} [get]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	pack := c.Params("pack")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("pack", pack))

	if err := conformance.ValidateName(pack); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	doc, _, err := h.service.Report(c.UserContext(), pack, report.FormatJSON)
	if err != nil {
		return h.fail(c, l, err)
	}

	c.Set(fiber.HeaderContentType, report.ContentType(report.FormatJSON))
	return c.Send(doc)
}

// HandleReport renders the report of a pack (?format=html|json, default from config).
// @Summary Coverage Report
// @Description Renders the comparison of a conformance pack as an HTML or JSON document.
// @Tags coverage
// @Produce html
// @Produce json
// @Param pack path string true "Conformance pack file name"
// @Param format query string false "Report format (html, json)"
// @Success 200 {string} string "Report"
// @Failure 400 {object} map[string]string "Invalid pack name or format"
// @Failure 422 {object} map[string]string "Malformed pack or catalogue"
// @Failure 502 {object} map[string]string "Pack or catalogue unavailable"
// @Router /coverage/{pack}/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	pack := c.Params("pack")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("pack", pack))

	if err := conformance.ValidateName(pack); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	format := c.Query("format", h.format)
	if format != report.FormatHTML && format != report.FormatJSON {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unsupported format " + format})
	}

	doc, _, err := h.service.Report(c.UserContext(), pack, format)
	if err != nil {
		return h.fail(c, l, err)
	}

	c.Set(fiber.HeaderContentType, report.ContentType(format))
	return c.Send(doc)
}

// fail maps comparison errors to HTTP statuses.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case reconcile.IsSourceUnavailable(err):
		status = fiber.StatusBadGateway
	case reconcile.IsMalformedSource(err), errors.Is(err, reconcile.ErrEmptyInput):
		status = fiber.StatusUnprocessableEntity
	}

	l.Error("Comparison failed", zap.Int("status", status), zap.Error(err))
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
