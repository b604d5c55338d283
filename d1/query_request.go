package d1

import (
	"bytes"
	"encoding/json"

	"github.com/mies/cinegoose/sqlproxy"
)

type queryRequest struct {
	SQL    string          `json:"sql"`
	Params []any           `json:"params"`
	Method sqlproxy.Method `json:"method"`
}

// QueryRequestEncoder writes the JSON body for one statement. Params is
// always encoded as an array.
func QueryRequestEncoder(query sqlproxy.Query, outputBuffer *bytes.Buffer) ([]byte, error) {
	outputBuffer.Reset()

	params := query.Params

	if params == nil {
		params = []any{}
	}

	err := json.NewEncoder(outputBuffer).Encode(queryRequest{
		SQL:    query.SQL,
		Params: params,
		Method: query.Method,
	})

	if err != nil {
		return nil, err
	}

	return outputBuffer.Bytes(), nil
}
