package rayid

import (
	"line-checker/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response (and accepted request) header carrying the RayID.
const HeaderName = "X-Ray-ID"

// New returns a middleware that assigns a RayID to every request.
// An incoming X-Ray-ID header is reused so callers can correlate their own logs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
