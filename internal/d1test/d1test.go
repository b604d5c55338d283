// Package d1test serves the D1 query endpoint over HTTP for tests, executing
// each statement against a local SQLite database.
package d1test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mies/cinegoose/d1"
)

var Credentials = d1.Credentials{
	AccountID:  "test-account",
	DatabaseID: "test-database",
	APIToken:   "test-token",
}

type Statement struct {
	SQL    string
	Params []any
	Method string
}

type Server struct {
	*httptest.Server

	backing    *sql.DB
	mutex      sync.Mutex
	statements []Statement
}

// NewServer starts a server that answers queries from backing. It is closed
// when the test finishes.
func NewServer(t testing.TB, backing *sql.DB) *Server {
	t.Helper()

	s := &Server{backing: backing}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)

	return s
}

// Config returns client settings pointing at s.
func (s *Server) Config() d1.Config {
	return d1.Config{
		Credentials: Credentials,
		BaseURL:     s.URL,
	}
}

// Statements returns every statement received so far, in order.
func (s *Server) Statements() []Statement {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return append([]Statement(nil), s.statements...)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	path := fmt.Sprintf("/accounts/%s/d1/database/%s/query", Credentials.AccountID, Credentials.DatabaseID)

	if r.Method != http.MethodPost || r.URL.Path != path {
		http.NotFound(w, r)
		return
	}

	if r.Header.Get("Authorization") != "Bearer "+Credentials.APIToken {
		http.Error(w, `{"success":false,"errors":[{"code":10000,"message":"Authentication error"}]}`, http.StatusUnauthorized)
		return
	}

	var body struct {
		SQL    string `json:"sql"`
		Params []any  `json:"params"`
		Method string `json:"method"`
	}

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	if err := decoder.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for i, param := range body.Params {
		if n, ok := param.(json.Number); ok {
			body.Params[i] = number(n)
		}
	}

	s.mutex.Lock()
	s.statements = append(s.statements, Statement{SQL: body.SQL, Params: body.Params, Method: body.Method})
	s.mutex.Unlock()

	entry, err := s.execute(body.SQL, body.Params, body.Method)

	w.Header().Set("Content-Type", "application/json")

	if err != nil {
		fmt.Fprintf(w, `{"success":false,"errors":[{"code":7500,"message":%q}],"messages":[],"result":[]}`, err.Error())
		return
	}

	fmt.Fprintf(w, `{"success":true,"errors":[],"messages":[],"result":[%s]}`, entry)
}

func (s *Server) execute(query string, params []any, method string) ([]byte, error) {
	if method == "run" && !returnsRows(query) {
		result, err := s.backing.Exec(query, params...)
		if err != nil {
			return nil, err
		}

		changes, _ := result.RowsAffected()
		lastRowID, _ := result.LastInsertId()

		return []byte(fmt.Sprintf(`{"success":true,"results":[],"meta":{"changes":%d,"last_row_id":%d}}`, changes, lastRowID)), nil
	}

	rows, err := s.backing.Query(query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.WriteString(`{"success":true,"results":[`)

	for n := 0; rows.Next(); n++ {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))

		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		if n > 0 {
			out.WriteByte(',')
		}

		if err := writeObject(&out, columns, values); err != nil {
			return nil, err
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	out.WriteString(`],"meta":{"changes":0,"last_row_id":0}}`)

	return out.Bytes(), nil
}

// writeObject keeps the column order of the row, which encoding/json does
// not do for maps.
func writeObject(out *bytes.Buffer, columns []string, values []any) error {
	out.WriteByte('{')

	for i, column := range columns {
		if i > 0 {
			out.WriteByte(',')
		}

		value := values[i]
		if raw, ok := value.([]byte); ok {
			value = string(raw)
		}

		key, err := json.Marshal(column)
		if err != nil {
			return err
		}

		encoded, err := json.Marshal(value)
		if err != nil {
			return err
		}

		out.Write(key)
		out.WriteByte(':')
		out.Write(encoded)
	}

	out.WriteByte('}')

	return nil
}

func returnsRows(query string) bool {
	upper := strings.ToUpper(strings.TrimSpace(query))

	return strings.HasPrefix(upper, "SELECT") || strings.Contains(upper, "RETURNING")
}

func number(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}

	f, _ := n.Float64()

	return f
}
