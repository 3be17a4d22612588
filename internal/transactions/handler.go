package transactions

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/finbyte/transactions-api/internal/session"
)

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// ValidateID rejects a get-one request whose :id is not a well-formed UUID.
// Runs before the session guard so a malformed id is a 400 even without a
// cookie.
func ValidateID(c *fiber.Ctx) error {
	if _, err := uuid.Parse(c.Params("id")); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id must be a valid uuid")
	}
	return c.Next()
}

func (h *Handler) List(c *fiber.Ctx) error {
	sessionID := session.FromRequest(c)

	items, err := h.Store.ListBySession(c.UserContext(), sessionID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions: "+err.Error())
	}
	return c.JSON(fiber.Map{"transactions": items})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	sessionID := session.FromRequest(c)

	// nil when the row does not exist or belongs to another session;
	// that is a normal 200 with a null transaction, not an error.
	t, err := h.Store.GetBySession(c.UserContext(), sessionID, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transaction: "+err.Error())
	}
	return c.JSON(fiber.Map{"transaction": t})
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	sessionID := session.FromRequest(c)

	amount, err := h.Store.SumBySession(c.UserContext(), sessionID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute summary: "+err.Error())
	}
	return c.JSON(fiber.Map{"summary": fiber.Map{"amount": amount}})
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title is required")
	}
	if req.Amount == nil {
		return fiber.NewError(fiber.StatusBadRequest, "amount is required")
	}
	if req.Type == nil || (*req.Type != TypeCredit && *req.Type != TypeDebit) {
		return fiber.NewError(fiber.StatusBadRequest, "type must be credit or debit")
	}

	sessionID := session.FromRequest(c)
	if sessionID == "" {
		sessionID = session.Issue(c)
	}

	// Debits negate the raw value regardless of its sign.
	amount := *req.Amount
	if *req.Type == TypeDebit {
		amount = amount * -1
	}

	t, err := h.Store.Insert(c.UserContext(), Transaction{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(*req.Title),
		Amount:    amount,
		SessionID: sessionID,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create transaction: "+err.Error())
	}

	// The insert returns its rows as an array, matching RETURNING semantics.
	return c.Status(fiber.StatusCreated).JSON([]Transaction{t})
}
