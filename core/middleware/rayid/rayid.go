package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header is the response (and accepted request) header carrying the ray id.
	Header = "X-Ray-ID"
	// LocalsKey is where the ray id is stored in the Fiber context.
	LocalsKey = "ray_id"
)

// New returns a middleware that assigns a ray id to every request.
// An incoming X-Ray-ID header is kept so callers can correlate across hops.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
