package d1

import "encoding/json"

// QueryResponse is the envelope returned by the query endpoint. Pointer and
// raw fields let the decoder tell a missing field from a zero value.
type QueryResponse struct {
	Success  *bool                `json:"success"`
	Errors   []json.RawMessage    `json:"errors"`
	Messages []json.RawMessage    `json:"messages"`
	Result   []QueryResponseEntry `json:"result"`
}

// QueryResponseEntry is the outcome of one statement.
type QueryResponseEntry struct {
	Success *bool             `json:"success"`
	Results []json.RawMessage `json:"results"`
	Meta    *QueryMeta        `json:"meta"`
}

type QueryMeta struct {
	Changes     int64   `json:"changes"`
	LastRowID   int64   `json:"last_row_id"`
	Duration    float64 `json:"duration"`
	RowsRead    int64   `json:"rows_read"`
	RowsWritten int64   `json:"rows_written"`
	ChangedDB   bool    `json:"changed_db"`
	SizeAfter   int64   `json:"size_after"`
}
