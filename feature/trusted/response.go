package trusted

import (
	"trusted-api/feature/trusted/reconciler"

	"github.com/gofiber/fiber/v2"
)

// Respond writes 200 for a clean outcome and 207 with the item errors otherwise.
// Confirmation fields sit next to Success in both cases.
func Respond(c *fiber.Ctx, rt Route, out *reconciler.Outcome) error {
	body := fiber.Map{"Success": rt.Kind + " " + rt.Action + " ok"}
	for field, value := range out.Confirmation {
		body[field] = value
	}

	if !out.Partial() {
		return c.Status(fiber.StatusOK).JSON(body)
	}
	body["errors"] = out.Errors
	return c.Status(fiber.StatusMultiStatus).JSON(body)
}
