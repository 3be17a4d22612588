package transactions

import "context"

// Store is the persistence surface the handlers depend on. Every read is
// scoped to a session id; absence of a row is not an error.
type Store interface {
	ListBySession(ctx context.Context, sessionID string) ([]Transaction, error)
	GetBySession(ctx context.Context, sessionID, id string) (*Transaction, error)
	SumBySession(ctx context.Context, sessionID string) (*float64, error)
	Insert(ctx context.Context, t Transaction) (Transaction, error)
}
