package trusted

import (
	"time"

	"trusted-api/core/apperr"
	"trusted-api/core/logger"
	"trusted-api/core/metrics"
	"trusted-api/core/middleware/rayid"
	"trusted-api/feature/credentials"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles trusted write requests.
type Handler struct {
	service *Service
	guard   *credentials.Guard
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, guard *credentials.Guard, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{service: service, guard: guard, metrics: m, logger: logger}
}

// RegisterRoutes registers every route of the table plus a catch-all under Prefix.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group(Prefix)
	for _, rt := range Routes() {
		group.Post(rt.Path(), h.guard.Require(rt.Capability), h.Handle(rt))
	}
	group.All("/*", h.HandleUnknown)
}

// Handle returns the handler for one route.
// @Summary Submit trusted event data
// @Description Verifies the request signature, reconciles the body into the event and commits the result in one transaction. kind/action is one of matches/update, matches/delete, matches/delete_all, rankings/update, awards/update, team_list/update, alliance_selections/update, match_videos/add.
// @Tags trusted
// @Accept json
// @Produce json
// @Param event_key path string true "Event key, e.g. 2014casj"
// @Param kind path string true "Data kind"
// @Param action path string true "Action"
// @Param X-TBA-Auth-Id header string true "Credential id"
// @Param X-TBA-Auth-Sig header string true "hex(md5(secret + path + body))"
// @Success 200 {object} map[string]interface{} "Success with confirmation fields"
// @Success 207 {object} map[string]interface{} "Partial success with per-item errors"
// @Failure 400 {object} map[string]string "Authentication, authorization or validation failure"
// @Failure 404 {object} map[string]string "Unknown event or route"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /api/trusted/v1/event/{event_key}/{kind}/{action} [post]
func (h *Handler) Handle(rt Route) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		eventID := c.Params("event_key")
		l := logger.WithRayID(h.logger, c).With(
			zap.String("event", eventID),
			zap.String("kind", rt.Kind),
			zap.String("action", rt.Action))
		if cred := credentials.FromCtx(c); cred != nil {
			l = l.With(zap.String("credential_id", cred.ID))
		}

		out, err := h.service.Submit(c.UserContext(), rt, eventID, rayid.FromCtx(c), c.BodyRaw(), l)
		if err != nil {
			outcome := metrics.OutcomeRejected
			if status := apperr.Status(err); status >= fiber.StatusInternalServerError {
				outcome = metrics.OutcomeFailed
				l.Error("Submission failed", zap.Error(err))
			} else {
				l.Warn("Submission rejected", zap.Error(err))
			}
			h.metrics.ObserveRequest(rt.Kind, rt.Action, outcome, time.Since(start))
			return apperr.Respond(c, err)
		}

		outcome := metrics.OutcomeSuccess
		if out.Partial() {
			outcome = metrics.OutcomePartial
			l.Warn("Submission partially applied", zap.Any("errors", out.Errors))
		}
		h.metrics.ObserveRequest(rt.Kind, rt.Action, outcome, time.Since(start))
		return Respond(c, rt, out)
	}
}

// HandleUnknown rejects paths and methods outside the route table.
func (h *Handler) HandleUnknown(c *fiber.Ctx) error {
	return apperr.Respond(c, apperr.NotFound("no trusted endpoint for %s %s", c.Method(), c.Path()))
}
