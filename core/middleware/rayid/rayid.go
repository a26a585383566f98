package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the request id in both directions.
const Header = "X-Ray-ID"

// LocalsKey is the fiber locals key holding the request id.
const LocalsKey = "ray_id"

// New returns a middleware that assigns every request a RayID. An incoming
// X-Ray-ID header is reused so ids survive across proxies.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
