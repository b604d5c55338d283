package d1

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Credentials identify one database and authorize calls against it. They
// are copied into the Client and never changed.
type Credentials struct {
	AccountID  string
	DatabaseID string
	APIToken   string
}

func (c Credentials) validate() error {
	if c.AccountID == "" {
		return fmt.Errorf("d1: account id is required")
	}

	if c.DatabaseID == "" {
		return fmt.Errorf("d1: database id is required")
	}

	if c.APIToken == "" {
		return fmt.Errorf("d1: api token is required")
	}

	return nil
}

// QueryURL returns the per-account, per-database query endpoint.
func QueryURL(baseURL string, credentials Credentials) (string, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))

	if err != nil {
		return "", fmt.Errorf("d1: invalid base url: %w", err)
	}

	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("d1: base url %q must be absolute", baseURL)
	}

	return base.JoinPath(
		"accounts", credentials.AccountID,
		"d1", "database", credentials.DatabaseID,
		"query",
	).String(), nil
}

func AuthorizeRequest(req *http.Request, apiToken string) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
