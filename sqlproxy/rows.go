package sqlproxy

import (
	"database/sql/driver"
	"fmt"
	"io"
)

type Rows struct {
	columns []string
	index   int
	rows    [][]any
}

func NewRows(response *QueryResult) *Rows {
	if response == nil {
		return &Rows{columns: []string{}, index: -1}
	}

	arity := len(response.Columns)

	if len(response.Rows) > 0 && len(response.Rows[0]) > arity {
		arity = len(response.Rows[0])
	}

	columns := make([]string, arity)

	for i := range columns {
		if i < len(response.Columns) {
			columns[i] = response.Columns[i]
		} else {
			columns[i] = fmt.Sprintf("column_%d", i+1)
		}
	}

	return &Rows{
		columns: columns,
		index:   -1,
		rows:    response.Rows,
	}
}

func (r *Rows) Columns() []string {
	return r.columns
}

func (r *Rows) Close() error {
	r.index = len(r.rows)

	return nil
}

func (r *Rows) Next(dest []driver.Value) error {
	if r.index >= len(r.rows)-1 {
		return io.EOF
	}

	r.index++

	for i, value := range r.rows[r.index] {
		if i >= len(dest) {
			break
		}

		dest[i] = value
	}

	return nil
}
