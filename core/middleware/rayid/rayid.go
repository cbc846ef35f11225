package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request trace ID.
const HeaderName = "X-Ray-Id"

// LocalsKey is the Fiber locals key the RayID is stored under.
const LocalsKey = "ray_id"

// New returns a middleware that ensures every request carries a RayID.
// An incoming ID is preserved so traces can span services; otherwise a
// fresh UUID is generated. The ID is stored in locals for the logger and
// echoed in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
