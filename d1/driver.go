package d1

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"time"
)

func init() {
	sql.Register("d1", &Driver{})
}

// Driver opens connections from a data source name of space separated
// key=value pairs:
//
//	account_id=... database_id=... api_token=... [base_url=...] [timeout=30s]
type Driver struct{}

func (d *Driver) Open(name string) (driver.Conn, error) {
	connector, err := d.OpenConnector(name)

	if err != nil {
		return nil, err
	}

	return connector.Connect(context.Background())
}

func (d *Driver) OpenConnector(name string) (driver.Connector, error) {
	config, err := ParseDSN(name)

	if err != nil {
		return nil, err
	}

	return NewConnector(config)
}

func ParseDSN(name string) (Config, error) {
	args := make(map[string]string)

	for _, pair := range strings.Fields(name) {
		key, value, ok := strings.Cut(pair, "=")

		if ok {
			args[key] = value
		}
	}

	if args["account_id"] == "" {
		return Config{}, errors.New("account_id is required")
	}

	if args["database_id"] == "" {
		return Config{}, errors.New("database_id is required")
	}

	if args["api_token"] == "" {
		return Config{}, errors.New("api_token is required")
	}

	config := Config{
		Credentials: Credentials{
			AccountID:  args["account_id"],
			DatabaseID: args["database_id"],
			APIToken:   args["api_token"],
		},
		BaseURL: args["base_url"],
	}

	if args["timeout"] != "" {
		timeout, err := time.ParseDuration(args["timeout"])

		if err != nil {
			return Config{}, errors.New("timeout must be a duration")
		}

		config.Timeout = timeout
	}

	return config, nil
}
