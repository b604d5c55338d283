package d1

import (
	"context"

	"github.com/mies/cinegoose/sqlproxy"
)

// ExecuteBatch runs the queries one after another in the given order. A
// statement is only sent once the previous one has completed. The first
// failure is returned as is and nothing after it is sent.
func (c *Client) ExecuteBatch(ctx context.Context, queries []sqlproxy.Query) ([]*sqlproxy.QueryResult, error) {
	results := make([]*sqlproxy.QueryResult, 0, len(queries))

	for _, query := range queries {
		result, err := c.Execute(ctx, query)

		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}
