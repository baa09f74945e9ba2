// Package rayid assigns a request ID to every request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the request ID in both directions.
const Header = "X-Ray-ID"

// LocalsKey is the fiber.Ctx locals key holding the request ID.
const LocalsKey = "ray_id"

// New returns the middleware. An incoming X-Ray-ID header is reused.
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
