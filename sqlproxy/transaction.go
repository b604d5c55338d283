package sqlproxy

import (
	"context"
	"errors"
)

var ErrTransactionDone = errors.New("sqlproxy: transaction has already been committed or rolled back")

// Transaction buffers Exec statements and sends them as one ordered batch
// on Commit. Nothing reaches the remote side before Commit.
type Transaction struct {
	conn    *Conn
	done    bool
	queries []Query
}

func NewTransaction(conn *Conn) *Transaction {
	return &Transaction{
		conn:    conn,
		queries: []Query{},
	}
}

func (t *Transaction) enqueue(query Query) {
	t.queries = append(t.queries, query)
}

func (t *Transaction) Commit() error {
	if t.done {
		return ErrTransactionDone
	}

	t.finish()

	if len(t.queries) == 0 {
		return nil
	}

	ctx := context.Background()

	if t.conn.driver.batch != nil {
		_, err := t.conn.driver.batch(ctx, t.queries)

		return err
	}

	for _, query := range t.queries {
		if _, err := t.conn.driver.query(ctx, query.SQL, query.Params, query.Method); err != nil {
			return err
		}
	}

	return nil
}

func (t *Transaction) Rollback() error {
	if t.done {
		return ErrTransactionDone
	}

	t.finish()
	t.queries = nil

	return nil
}

func (t *Transaction) finish() {
	t.done = true

	if t.conn.transaction == t {
		t.conn.transaction = nil
	}
}
