package sqlproxy

import "errors"

var ErrResultPending = errors.New("sqlproxy: result is not available until the transaction commits")

type Result struct {
	changes      int64
	lastInsertId int64
}

func NewResult(response *QueryResult) *Result {
	if response == nil {
		return &Result{}
	}

	return &Result{
		changes:      response.Meta.Changes,
		lastInsertId: response.Meta.LastRowID,
	}
}

func (r *Result) LastInsertId() (int64, error) {
	return r.lastInsertId, nil
}

func (r *Result) RowsAffected() (int64, error) {
	return r.changes, nil
}

// pendingResult is handed out for statements queued inside a transaction.
type pendingResult struct{}

func (pendingResult) LastInsertId() (int64, error) {
	return 0, ErrResultPending
}

func (pendingResult) RowsAffected() (int64, error) {
	return 0, ErrResultPending
}
