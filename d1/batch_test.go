package d1_test

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mies/cinegoose/d1"
	"github.com/mies/cinegoose/sqlproxy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchOf(n int) []sqlproxy.Query {
	queries := make([]sqlproxy.Query, n)

	for i := range queries {
		queries[i] = sqlproxy.Query{
			SQL:    fmt.Sprintf("SELECT %d AS n", i),
			Params: []any{},
			Method: sqlproxy.MethodAll,
		}
	}

	return queries
}

func TestExecuteBatchPreservesOrder(t *testing.T) {
	service := newFakeService(t, func(n int, req capturedRequest) (int, string) {
		return http.StatusOK, successBody(fmt.Sprintf(`[{"n":%d}]`, n))
	})

	results, err := service.client(t).ExecuteBatch(context.Background(), batchOf(5))

	require.NoError(t, err)
	require.Len(t, results, 5)

	calls := service.calls()
	require.Len(t, calls, 5)

	for i, call := range calls {
		assert.Equal(t, fmt.Sprintf("SELECT %d AS n", i), call.Body.SQL)
		assert.Equal(t, [][]any{{int64(i)}}, results[i].Rows)
	}
}

func TestExecuteBatchIsSequential(t *testing.T) {
	var inFlight, maxInFlight int32

	service := newFakeService(t, func(n int, req capturedRequest) (int, string) {
		current := atomic.AddInt32(&inFlight, 1)
		defer atomic.AddInt32(&inFlight, -1)

		for {
			seen := atomic.LoadInt32(&maxInFlight)

			if current <= seen || atomic.CompareAndSwapInt32(&maxInFlight, seen, current) {
				break
			}
		}

		time.Sleep(5 * time.Millisecond)

		return http.StatusOK, successBody("[]")
	})

	_, err := service.client(t).ExecuteBatch(context.Background(), batchOf(4))

	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInFlight))
	assert.Len(t, service.calls(), 4)
}

func TestExecuteBatchStopsAtFirstFailure(t *testing.T) {
	service := newFakeService(t, func(n int, req capturedRequest) (int, string) {
		if n == 2 {
			return http.StatusInternalServerError, `{"success":false}`
		}

		return http.StatusOK, successBody("[]")
	})

	results, err := service.client(t).ExecuteBatch(context.Background(), batchOf(5))

	require.Error(t, err)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, d1.ErrHTTPStatus)

	var protocolErr *d1.RemoteProtocolError
	require.ErrorAs(t, err, &protocolErr)
	assert.Equal(t, http.StatusInternalServerError, protocolErr.StatusCode)

	calls := service.calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "SELECT 2 AS n", calls[2].Body.SQL)
}

func TestExecuteBatchEmpty(t *testing.T) {
	service := newFakeService(t, func(n int, req capturedRequest) (int, string) {
		return http.StatusOK, successBody("[]")
	})

	results, err := service.client(t).ExecuteBatch(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, service.calls())
}

func TestCallbacksDelegateToClient(t *testing.T) {
	service := newFakeService(t, echoParams)

	query, batch := service.client(t).Callbacks()

	result, err := query(context.Background(), "SELECT ?, ?", []any{"honk", 2}, sqlproxy.MethodValues)

	require.NoError(t, err)
	assert.Equal(t, [][]any{{"honk", int64(2)}}, result.Rows)

	results, err := batch(context.Background(), []sqlproxy.Query{
		{SQL: "SELECT ?", Params: []any{1}, Method: sqlproxy.MethodGet},
		{SQL: "SELECT ?", Params: []any{2}, Method: sqlproxy.MethodGet},
	})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, [][]any{{int64(2)}}, results[1].Rows)

	calls := service.calls()
	require.Len(t, calls, 3)
	assert.Equal(t, "values", calls[0].Body.Method)
	assert.Equal(t, "get", calls[2].Body.Method)
}
