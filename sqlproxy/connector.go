package sqlproxy

import (
	"context"
	"database/sql/driver"
)

type Connector struct {
	driver *Driver
}

func NewConnector(query RemoteCallback, batch BatchRemoteCallback) *Connector {
	return &Connector{driver: New(query, batch)}
}

func (c *Connector) Connect(ctx context.Context) (driver.Conn, error) {
	if c.driver.query == nil {
		return nil, ErrNoCallback
	}

	return NewConn(c.driver), nil
}

func (c *Connector) Driver() driver.Driver {
	return c.driver
}
