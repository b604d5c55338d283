// Package d1 runs SQL statements against a managed database through its
// HTTP query API and exposes them as the callback pair sqlproxy expects.
package d1

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mies/cinegoose/sqlproxy"
)

const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

type Config struct {
	Credentials Credentials

	// BaseURL defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client

	// Timeout bounds one round trip. Zero means no limit.
	Timeout time.Duration

	Logger *slog.Logger
}

// Client owns the credentials for one database. It keeps no state between
// calls and is safe for concurrent use.
type Client struct {
	credentials Credentials
	httpClient  *http.Client
	logger      *slog.Logger
	url         string
}

func NewClient(config Config) (*Client, error) {
	if err := config.Credentials.validate(); err != nil {
		return nil, err
	}

	baseURL := config.BaseURL

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	queryURL, err := QueryURL(baseURL, config.Credentials)

	if err != nil {
		return nil, err
	}

	httpClient := config.HTTPClient

	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   3 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		}
	}

	logger := config.Logger

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		credentials: config.Credentials,
		httpClient:  httpClient,
		logger:      logger,
		url:         queryURL,
	}, nil
}

// Execute sends one statement and returns its rows. Every failure is a
// *RemoteProtocolError.
func (c *Client) Execute(ctx context.Context, query sqlproxy.Query) (*sqlproxy.QueryResult, error) {
	id := uuid.NewString()
	start := time.Now()

	body, err := QueryRequestEncoder(query, &bytes.Buffer{})

	if err != nil {
		return nil, &RemoteProtocolError{
			Reason: ReasonTransport,
			Err:    fmt.Errorf("encode request: %w", err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))

	if err != nil {
		return nil, &RemoteProtocolError{Reason: ReasonTransport, Err: err}
	}

	AuthorizeRequest(req, c.credentials.APIToken)

	resp, err := c.httpClient.Do(req)

	if err != nil {
		c.logger.Debug("d1 query failed", "id", id, "method", query.Method, "error", err)

		return nil, &RemoteProtocolError{Reason: ReasonTransport, Err: err}
	}

	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, &RemoteProtocolError{
			Reason:     ReasonTransport,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        fmt.Errorf("read response: %w", err),
		}
	}

	c.logger.Debug("d1 query",
		"id", id,
		"method", query.Method,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, &RemoteProtocolError{
			Reason:     ReasonHTTPStatus,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       responseBody,
		}
	}

	return parseResponse(responseBody)
}

func parseResponse(body []byte) (*sqlproxy.QueryResult, error) {
	response, err := QueryResponseDecoder(body)

	if err != nil {
		return nil, &RemoteProtocolError{
			Reason: ReasonMalformedResponse,
			Body:   body,
			Err:    err,
		}
	}

	if len(response.Errors) > 0 || !*response.Success {
		return nil, &RemoteProtocolError{
			Reason:   ReasonApplicationError,
			Body:     body,
			Messages: errorMessages(response.Errors),
		}
	}

	// One statement per request, so only the first entry is meaningful.
	if len(response.Result) == 0 {
		return nil, &RemoteProtocolError{
			Reason:   ReasonStatementFailed,
			Body:     body,
			Messages: []string{"response has no statement result"},
		}
	}

	entry := response.Result[0]

	if entry.Success == nil || !*entry.Success {
		return nil, &RemoteProtocolError{
			Reason: ReasonStatementFailed,
			Body:   body,
		}
	}

	result, err := decodeResults(entry.Results)

	if err != nil {
		return nil, &RemoteProtocolError{
			Reason: ReasonMalformedResponse,
			Body:   body,
			Err:    err,
		}
	}

	if entry.Meta != nil {
		result.Meta = sqlproxy.Meta{
			Changes:     entry.Meta.Changes,
			LastRowID:   entry.Meta.LastRowID,
			Duration:    entry.Meta.Duration,
			RowsRead:    entry.Meta.RowsRead,
			RowsWritten: entry.Meta.RowsWritten,
		}
	}

	return result, nil
}
