package sqlproxy

import (
	"context"
	"database/sql/driver"
	"errors"
)

var (
	ErrQueryInTransaction = errors.New("sqlproxy: queries are not supported inside a transaction")
	ErrTransactionActive  = errors.New("sqlproxy: a transaction is already active on this connection")
	ErrIsolationLevel     = errors.New("sqlproxy: isolation levels are not supported")
)

// Conn holds no network state. A transaction, when open, buffers its
// statements on the connection until commit.
type Conn struct {
	driver      *Driver
	transaction *Transaction
}

func NewConn(d *Driver) *Conn {
	return &Conn{
		driver: d,
	}
}

func (c *Conn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *Conn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	if c.transaction != nil {
		return nil, ErrTransactionActive
	}

	if opts.Isolation != driver.IsolationLevel(0) {
		return nil, ErrIsolationLevel
	}

	c.transaction = NewTransaction(c)

	return c.transaction, nil
}

func (c *Conn) Close() error {
	if c.transaction != nil {
		c.transaction.Rollback()
	}

	return nil
}

func (c *Conn) ExecContext(ctx context.Context, sql string, args []driver.NamedValue) (driver.Result, error) {
	parameters, err := prepareParameters(args)

	if err != nil {
		return nil, err
	}

	if c.transaction != nil {
		c.transaction.enqueue(Query{
			SQL:    sql,
			Params: parameters,
			Method: MethodRun,
		})

		return pendingResult{}, nil
	}

	response, err := c.driver.query(ctx, sql, parameters, MethodRun)

	if err != nil {
		return nil, err
	}

	return NewResult(response), nil
}

func (c *Conn) QueryContext(ctx context.Context, sql string, args []driver.NamedValue) (driver.Rows, error) {
	if c.transaction != nil {
		return nil, ErrQueryInTransaction
	}

	parameters, err := prepareParameters(args)

	if err != nil {
		return nil, err
	}

	response, err := c.driver.query(ctx, sql, parameters, MethodAll)

	if err != nil {
		return nil, err
	}

	return NewRows(response), nil
}

func (c *Conn) Ping(ctx context.Context) error {
	if c.transaction != nil {
		return nil
	}

	_, err := c.driver.query(ctx, "SELECT 1", []any{}, MethodRun)

	return err
}

func (c *Conn) Prepare(sql string) (driver.Stmt, error) {
	return NewStatement(c, sql), nil
}

func (c *Conn) PrepareContext(ctx context.Context, sql string) (driver.Stmt, error) {
	return NewStatement(c, sql), nil
}

// The remote side has no session state to lose.
func (c *Conn) ResetSession(ctx context.Context) error {
	if c.transaction != nil {
		return driver.ErrBadConn
	}

	return nil
}
