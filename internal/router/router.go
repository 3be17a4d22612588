package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/finbyte/transactions-api/internal/session"
	"github.com/finbyte/transactions-api/internal/transactions"
)

type Router struct {
	Transactions *transactions.Handler

	// CreateLimiter, when set, throttles the create endpoint.
	CreateLimiter fiber.Handler
}

// NewApp builds the Fiber application with the shared error handler so every
// failure surfaces as {"error": message} JSON.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	g := app.Group("/transactions")

	if r.CreateLimiter != nil {
		g.Post("/", r.CreateLimiter, r.Transactions.Create)
	} else {
		g.Post("/", r.Transactions.Create)
	}

	g.Get("/", session.Required, r.Transactions.List)
	g.Get("/summary", session.Required, r.Transactions.Summary)
	g.Get("/:id", transactions.ValidateID, session.Required, r.Transactions.Get)
}
