package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/finbyte/transactions-api/internal/session"
)

func TestRequiredWithoutCookie(t *testing.T) {
	app := fiber.New()
	app.Get("/", session.Required, func(c *fiber.Ctx) error {
		t.Error("handler should not run without a session cookie")
		return nil
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRequiredPassesCookieThrough(t *testing.T) {
	app := fiber.New()
	app.Get("/", session.Required, func(c *fiber.Ctx) error {
		return c.SendString(session.FromRequest(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "abc"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestIssueSetsCookie(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		return c.SendString(session.Issue(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/", nil))
	if err != nil {
		t.Fatal(err)
	}

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected a sessionId cookie")
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		t.Errorf("cookie value %q is not a uuid: %v", cookie.Value, err)
	}
	if cookie.Path != "/" {
		t.Errorf("cookie path = %q, want /", cookie.Path)
	}
	if cookie.MaxAge != session.MaxAge {
		t.Errorf("cookie max-age = %d, want %d", cookie.MaxAge, session.MaxAge)
	}
}
