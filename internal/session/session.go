package session

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the anonymous session id.
const CookieName = "sessionId"

// MaxAge is the cookie lifetime in seconds (7 days).
const MaxAge = 7 * 24 * 60 * 60

// FromRequest returns the session id carried by the request cookie, or ""
// when the client has no session yet. The value is taken as-is: possession
// of a cookie value is the only form of ownership this service knows.
func FromRequest(c *fiber.Ctx) string {
	return c.Cookies(CookieName)
}

// Issue mints a new session id and attaches it to the response as a cookie
// scoped to the whole site. An existing cookie is never reissued, so the
// expiry is not refreshed by later writes.
func Issue(c *fiber.Ctx) string {
	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:   CookieName,
		Value:  id,
		Path:   "/",
		MaxAge: MaxAge,
	})
	return id
}

// Required rejects requests that carry no session cookie before the handler
// runs. Applied to read endpoints only; create bootstraps a session instead.
func Required(c *fiber.Ctx) error {
	if FromRequest(c) == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	return c.Next()
}
