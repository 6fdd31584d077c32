package middleware

import "github.com/gofiber/fiber/v2"

const accountHeader = "X-Account-Id"
const accountLocal = "account"

// Identity extracts the caller's account ID from the X-Account-Id header.
// The hosting environment is trusted to authenticate it (gateway, mTLS); the
// core treats identity as a given, not something it validates.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(accountLocal, c.Get(accountHeader))
		return c.Next()
	}
}

// GetAccount returns the caller account ID, empty when none was supplied.
func GetAccount(c *fiber.Ctx) string {
	if id, ok := c.Locals(accountLocal).(string); ok {
		return id
	}
	return ""
}
