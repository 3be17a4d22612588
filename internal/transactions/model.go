package transactions

import "time"

// Transaction is one signed monetary record owned by an anonymous session.
// The sign of Amount encodes direction: credits keep the amount as given,
// debits store its negation.
type Transaction struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

// CreateTransactionRequest carries the create body. Fields are pointers so
// a missing key can be told apart from a zero value.
type CreateTransactionRequest struct {
	Title  *string  `json:"title"`
	Amount *float64 `json:"amount"`
	Type   *string  `json:"type"` // "credit" | "debit"
}
