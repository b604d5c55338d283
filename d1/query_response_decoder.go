package d1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mies/cinegoose/sqlproxy"
)

var (
	errNotObject      = errors.New("row is not a JSON object")
	errNonScalarValue = errors.New("row value is not a scalar")
)

// QueryResponseDecoder decodes the envelope. Any type mismatch is reported
// as a malformed response by the caller.
func QueryResponseDecoder(body []byte) (*QueryResponse, error) {
	var response QueryResponse

	decoder := json.NewDecoder(bytes.NewReader(body))

	if err := decoder.Decode(&response); err != nil {
		return nil, err
	}

	if _, err := decoder.Token(); err != io.EOF {
		return nil, errors.New("trailing data after response body")
	}

	if response.Success == nil {
		return nil, errors.New(`missing "success" field`)
	}

	return &response, nil
}

// decodeResults turns row objects into positional rows, keeping the key
// order in which the service wrote them.
func decodeResults(results []json.RawMessage) (*sqlproxy.QueryResult, error) {
	if results == nil {
		return nil, errors.New(`missing "results" array`)
	}

	queryResult := &sqlproxy.QueryResult{
		Columns: []string{},
		Rows:    make([][]any, 0, len(results)),
	}

	for i, raw := range results {
		columns, values, err := decodeRow(raw)

		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		if i == 0 {
			queryResult.Columns = columns
		} else if len(values) != len(queryResult.Columns) {
			return nil, fmt.Errorf("row %d: has %d values, expected %d", i, len(values), len(queryResult.Columns))
		}

		queryResult.Rows = append(queryResult.Rows, values)
	}

	return queryResult, nil
}

func decodeRow(raw json.RawMessage) ([]string, []any, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	token, err := decoder.Token()

	if err != nil {
		return nil, nil, err
	}

	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, nil, errNotObject
	}

	columns := []string{}
	values := []any{}

	for decoder.More() {
		keyToken, err := decoder.Token()

		if err != nil {
			return nil, nil, err
		}

		key, ok := keyToken.(string)

		if !ok {
			return nil, nil, errNotObject
		}

		valueToken, err := decoder.Token()

		if err != nil {
			return nil, nil, err
		}

		value, err := scalarValue(valueToken)

		if err != nil {
			return nil, nil, fmt.Errorf("column %q: %w", key, err)
		}

		columns = append(columns, key)
		values = append(values, value)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, nil, err
	}

	return columns, values, nil
}

func scalarValue(token json.Token) (any, error) {
	switch v := token.(type) {
	case nil:
		return nil, nil
	case bool, string:
		return v, nil
	case json.Number:
		if i, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return i, nil
		}

		f, err := strconv.ParseFloat(string(v), 64)

		if err != nil {
			return nil, err
		}

		return f, nil
	default:
		return nil, errNonScalarValue
	}
}

// errorMessages pulls human readable text out of the "errors" array, whose
// entries are either strings or objects with a "message" field.
func errorMessages(entries []json.RawMessage) []string {
	messages := make([]string, 0, len(entries))

	for _, entry := range entries {
		var text string

		if err := json.Unmarshal(entry, &text); err == nil {
			messages = append(messages, text)
			continue
		}

		var object struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}

		if err := json.Unmarshal(entry, &object); err == nil && object.Message != "" {
			if object.Code != 0 {
				messages = append(messages, fmt.Sprintf("%d: %s", object.Code, object.Message))
			} else {
				messages = append(messages, object.Message)
			}

			continue
		}

		messages = append(messages, string(entry))
	}

	return messages
}
