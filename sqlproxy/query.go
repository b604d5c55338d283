package sqlproxy

import "context"

// Method tells the remote side what the caller intends to do with a
// statement. It is forwarded verbatim and never interpreted here.
type Method string

const (
	MethodRun    Method = "run"
	MethodAll    Method = "all"
	MethodValues Method = "values"
	MethodGet    Method = "get"
)

type Query struct {
	SQL    string `json:"sql"`
	Params []any  `json:"params"`
	Method Method `json:"method"`
}

type Meta struct {
	Changes     int64   `json:"changes"`
	LastRowID   int64   `json:"last_row_id"`
	Duration    float64 `json:"duration"`
	RowsRead    int64   `json:"rows_read"`
	RowsWritten int64   `json:"rows_written"`
}

// QueryResult holds rows positionally. Every row has the same arity.
// Columns, when known, names the positions in order.
type QueryResult struct {
	Columns []string
	Rows    [][]any
	Meta    Meta
}

// RemoteCallback executes a single statement.
type RemoteCallback func(ctx context.Context, sql string, params []any, method Method) (*QueryResult, error)

// BatchRemoteCallback executes statements in order and returns one result
// per statement, in the same order.
type BatchRemoteCallback func(ctx context.Context, queries []Query) ([]*QueryResult, error)
