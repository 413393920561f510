package integrity

import (
	"trusted-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router, middleware ...fiber.Handler) {
	group := app.Group("/integrity", middleware...)
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/archive", h.HandleArchiveCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Runs the schema and archive checks. Responds 503 when either fails.
// @Tags integrity
// @Produce json
// @Param X-API-Key header string false "Admin API key"
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 401 {object} map[string]string "Invalid API key"
// @Failure 503 {object} map[string]interface{} "Combined Report with failures"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.Report(c.UserContext())

	if !report.Healthy {
		l.Warn("Integrity check failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleSchemaCheck checks the database schema.
// @Summary Check Database Schema
// @Description Checks that every table has the columns its model expects.
// @Tags integrity
// @Produce json
// @Param X-API-Key header string false "Admin API key"
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"Error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Schema drift detected", zap.Strings("errors", report.Errors))
	}
	return c.JSON(report)
}

// HandleArchiveCheck checks the archive bucket.
// @Summary Check Submission Archive
// @Description Reports whether archiving is enabled and its bucket is reachable.
// @Tags integrity
// @Produce json
// @Param X-API-Key header string false "Admin API key"
// @Success 200 {object} checks.ArchiveReport "Archive Report"
// @Router /integrity/archive [get]
func (h *Handler) HandleArchiveCheck(c *fiber.Ctx) error {
	report := h.service.CheckArchive(c.UserContext())
	if !report.Healthy() {
		logger.WithRayID(h.service.logger, c).Warn("Archive bucket unavailable", zap.String("error", report.Error))
	}
	return c.JSON(report)
}
