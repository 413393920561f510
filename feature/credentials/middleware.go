package credentials

import (
	"trusted-api/core/apperr"
	"trusted-api/core/logger"
	"trusted-api/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// LocalKey is the fiber local holding the verified *Credential.
const LocalKey = "credential"

// Guard turns a Verifier into per-route fiber middleware.
type Guard struct {
	verifier  *Verifier
	idHeader  string
	sigHeader string
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewGuard creates a Guard reading the credential id and signature from the given headers.
func NewGuard(verifier *Verifier, idHeader, sigHeader string, logger *zap.Logger, m *metrics.Metrics) *Guard {
	return &Guard{
		verifier:  verifier,
		idHeader:  idHeader,
		sigHeader: sigHeader,
		logger:    logger,
		metrics:   m,
	}
}

// Require returns middleware that admits only requests signed by a credential granting capability.
// It runs on the raw path and body bytes before any handler parses them.
func (g *Guard) Require(capability Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := Request{
			EventID:      utils.CopyString(c.Params("event_key")),
			Path:         c.Path(),
			Body:         c.BodyRaw(),
			CredentialID: utils.CopyString(c.Get(g.idHeader)),
			Signature:    c.Get(g.sigHeader),
			Required:     capability,
		}

		cred, err := g.verifier.Verify(c.UserContext(), req)
		if err != nil {
			reason := Reason(err)
			g.metrics.AuthRejected(reason)
			l := logger.WithRayID(g.logger, c)
			if apperr.KindOf(err) == apperr.KindStorage {
				l.Error("Credential lookup failed", zap.Error(err))
			} else {
				l.Warn("Trusted request rejected",
					zap.String("reason", reason),
					zap.String("credential_id", req.CredentialID),
					zap.String("event", req.EventID))
			}
			return apperr.Respond(c, err)
		}

		c.Locals(LocalKey, cred)
		return c.Next()
	}
}

// FromCtx returns the verified credential of the request, or nil.
func FromCtx(c *fiber.Ctx) *Credential {
	cred, _ := c.Locals(LocalKey).(*Credential)
	return cred
}
