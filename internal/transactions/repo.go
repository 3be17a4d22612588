package transactions

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo implements Store against the transactions table.
type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

func (r *Repo) ListBySession(ctx context.Context, sessionID string) ([]Transaction, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id::text, title, amount::float8, session_id, created_at
		 FROM transactions
		 WHERE session_id = $1`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Transaction, 0)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Title, &t.Amount, &t.SessionID, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) GetBySession(ctx context.Context, sessionID, id string) (*Transaction, error) {
	var t Transaction
	err := r.Pool.QueryRow(ctx,
		`SELECT id::text, title, amount::float8, session_id, created_at
		 FROM transactions
		 WHERE session_id = $1 AND id = $2::uuid`,
		sessionID, id,
	).Scan(&t.ID, &t.Title, &t.Amount, &t.SessionID, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SumBySession returns the signed total for a session. With no rows the
// aggregate is NULL and the result is nil, not zero.
func (r *Repo) SumBySession(ctx context.Context, sessionID string) (*float64, error) {
	var amount *float64
	err := r.Pool.QueryRow(ctx,
		`SELECT SUM(amount)::float8
		 FROM transactions
		 WHERE session_id = $1`,
		sessionID,
	).Scan(&amount)
	if err != nil {
		return nil, err
	}
	return amount, nil
}

func (r *Repo) Insert(ctx context.Context, t Transaction) (Transaction, error) {
	var out Transaction
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO transactions (id, title, amount, session_id)
		 VALUES ($1::uuid, $2, $3, $4)
		 RETURNING id::text, title, amount::float8, session_id, created_at`,
		t.ID, t.Title, t.Amount, t.SessionID,
	).Scan(&out.ID, &out.Title, &out.Amount, &out.SessionID, &out.CreatedAt)
	if err != nil {
		return Transaction{}, err
	}
	return out, nil
}
