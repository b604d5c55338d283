// Package sqlproxy implements a database/sql driver that forwards every
// statement to a pair of callbacks. It has no knowledge of how the
// statements reach the database.
package sqlproxy

import (
	"database/sql/driver"
	"errors"
)

var ErrNoCallback = errors.New("sqlproxy: query callback is required")

type Driver struct {
	query RemoteCallback
	batch BatchRemoteCallback
}

// New returns a driver bound to the given callbacks. The batch callback is
// optional; without it transactions are dispatched one statement at a time
// through the query callback.
func New(query RemoteCallback, batch BatchRemoteCallback) *Driver {
	return &Driver{
		query: query,
		batch: batch,
	}
}

// The name is ignored: every connection targets the bound callbacks.
func (d *Driver) Open(name string) (driver.Conn, error) {
	if d.query == nil {
		return nil, ErrNoCallback
	}

	return NewConn(d), nil
}

func (d *Driver) OpenConnector(name string) (driver.Connector, error) {
	if d.query == nil {
		return nil, ErrNoCallback
	}

	return &Connector{driver: d}, nil
}
