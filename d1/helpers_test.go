package d1_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/mies/cinegoose/d1"
	"github.com/stretchr/testify/require"
)

var testCredentials = d1.Credentials{
	AccountID:  "account-1",
	DatabaseID: "database-1",
	APIToken:   "token-1",
}

type queryBody struct {
	SQL    string `json:"sql"`
	Params []any  `json:"params"`
	Method string `json:"method"`
}

type capturedRequest struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	RawBody       string
	Body          queryBody
}

// fakeService stands in for the remote query endpoint. respond is called
// with the zero based call number.
type fakeService struct {
	mutex    sync.Mutex
	requests []capturedRequest
	respond  func(n int, req capturedRequest) (int, string)
	server   *httptest.Server
}

func newFakeService(t *testing.T, respond func(n int, req capturedRequest) (int, string)) *fakeService {
	t.Helper()

	f := &fakeService{respond: respond}

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)

		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		req := capturedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			RawBody:       string(raw),
		}

		_ = json.Unmarshal(raw, &req.Body)

		f.mutex.Lock()
		n := len(f.requests)
		f.requests = append(f.requests, req)
		f.mutex.Unlock()

		status, body := f.respond(n, req)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))

	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeService) client(t *testing.T) *d1.Client {
	t.Helper()

	client, err := d1.NewClient(d1.Config{
		Credentials: testCredentials,
		BaseURL:     f.server.URL,
	})

	require.NoError(t, err)

	return client
}

func (f *fakeService) calls() []capturedRequest {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return append([]capturedRequest(nil), f.requests...)
}

func successBody(results string) string {
	return fmt.Sprintf(
		`{"success":true,"errors":[],"messages":[],"result":[{"success":true,"results":%s,"meta":{"changes":0,"last_row_id":0,"duration":0.1}}]}`,
		results,
	)
}

func writeBody(changes, lastRowID int64) string {
	return fmt.Sprintf(
		`{"success":true,"errors":[],"messages":[],"result":[{"success":true,"results":[],"meta":{"changes":%d,"last_row_id":%d}}]}`,
		changes, lastRowID,
	)
}

// echoParams answers with one row whose values are the request params.
func echoParams(n int, req capturedRequest) (int, string) {
	row := "{"

	for i, param := range req.Body.Params {
		value, _ := json.Marshal(param)

		if i > 0 {
			row += ","
		}

		row += fmt.Sprintf(`"p%d":%s`, i, value)
	}

	row += "}"

	return http.StatusOK, successBody("[" + row + "]")
}
