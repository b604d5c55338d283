package sqlproxy

import (
	"context"
	"database/sql/driver"
	"errors"
)

var ErrStatementClosed = errors.New("sqlproxy: statement is closed")

// Statement is not prepared remotely; it only remembers its SQL text.
type Statement struct {
	closed bool
	conn   *Conn
	SQL    string
}

func NewStatement(conn *Conn, sql string) *Statement {
	return &Statement{
		conn: conn,
		SQL:  sql,
	}
}

func (s *Statement) Close() error {
	if s.closed {
		return ErrStatementClosed
	}

	s.closed = true

	return nil
}

func (s *Statement) Exec(args []driver.Value) (driver.Result, error) {
	return s.ExecContext(context.Background(), namedValues(args))
}

func (s *Statement) ExecContext(ctx context.Context, args []driver.NamedValue) (driver.Result, error) {
	if s.closed {
		return nil, ErrStatementClosed
	}

	return s.conn.ExecContext(ctx, s.SQL, args)
}

// Placeholders are counted by the remote side.
func (s *Statement) NumInput() int {
	return -1
}

func (s *Statement) Query(args []driver.Value) (driver.Rows, error) {
	return s.QueryContext(context.Background(), namedValues(args))
}

func (s *Statement) QueryContext(ctx context.Context, args []driver.NamedValue) (driver.Rows, error) {
	if s.closed {
		return nil, ErrStatementClosed
	}

	return s.conn.QueryContext(ctx, s.SQL, args)
}

func namedValues(args []driver.Value) []driver.NamedValue {
	named := make([]driver.NamedValue, len(args))

	for i, arg := range args {
		named[i] = driver.NamedValue{
			Ordinal: i + 1,
			Value:   arg,
		}
	}

	return named
}
