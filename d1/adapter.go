package d1

import (
	"context"
	"database/sql/driver"

	"github.com/mies/cinegoose/sqlproxy"
)

// Query has the shape of sqlproxy.RemoteCallback.
func (c *Client) Query(ctx context.Context, sql string, params []any, method sqlproxy.Method) (*sqlproxy.QueryResult, error) {
	return c.Execute(ctx, sqlproxy.Query{
		SQL:    sql,
		Params: params,
		Method: method,
	})
}

// Callbacks returns the single statement and batch callbacks bound to c.
func (c *Client) Callbacks() (sqlproxy.RemoteCallback, sqlproxy.BatchRemoteCallback) {
	return c.Query, c.ExecuteBatch
}

// NewConnector returns a database/sql connector that sends every statement
// through a new Client built from config.
func NewConnector(config Config) (driver.Connector, error) {
	client, err := NewClient(config)

	if err != nil {
		return nil, err
	}

	return sqlproxy.NewConnector(client.Callbacks()), nil
}
