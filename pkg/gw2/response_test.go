package gw2

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	ID uint64 `json:"id"`
}

func liveInflight() (*inflight, chan headerEvent) {
	headers := make(chan headerEvent, 1)

	return &inflight{headers: headers, cancel: func() {}}, headers
}

func responseWith(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestResponseFuturePoll(t *testing.T) {
	t.Parallel()

	t.Run("pending until the headers arrive", func(t *testing.T) {
		t.Parallel()

		fl, headers := liveInflight()
		future := newResponseFuture[testPayload](fl)

		_, ready, err := future.Poll()
		require.NoError(t, err)
		assert.False(t, ready)

		headers <- headerEvent{resp: responseWith(http.StatusOK, `{"id": 115267}`)}

		var result testPayload
		require.Eventually(t, func() bool {
			value, ready, pollErr := future.Poll()
			if pollErr != nil || !ready {
				return false
			}

			result = value

			return true
		}, time.Second, time.Millisecond)

		assert.Equal(t, uint64(115267), result.ID)
	})

	t.Run("polling after completion", func(t *testing.T) {
		t.Parallel()

		fl, headers := liveInflight()
		headers <- headerEvent{resp: responseWith(http.StatusOK, `{"id": 1}`)}
		future := newResponseFuture[testPayload](fl)

		require.Eventually(t, func() bool {
			_, ready, pollErr := future.Poll()
			if pollErr != nil {
				return false
			}

			return ready
		}, time.Second, time.Millisecond)

		_, ready, err := future.Poll()
		assert.True(t, ready)
		assert.ErrorIs(t, err, ErrPolledAfterCompletion)
	})

	t.Run("transport failure is terminal", func(t *testing.T) {
		t.Parallel()

		fl, headers := liveInflight()
		headers <- headerEvent{err: fmt.Errorf("connection reset")}
		future := newResponseFuture[testPayload](fl)

		_, err := future.Wait(context.Background())
		require.Error(t, err)
		assert.True(t, IsHTTP(err))
	})
}

func TestResponseFutureDecode(t *testing.T) {
	t.Parallel()

	t.Run("failure status decodes the error schema", func(t *testing.T) {
		t.Parallel()

		fl, headers := liveInflight()
		headers <- headerEvent{resp: responseWith(http.StatusForbidden, `{"text": "requires scope account"}`)}
		future := newResponseFuture[testPayload](fl)

		_, err := future.Wait(context.Background())
		require.Error(t, err)
		assert.True(t, IsAPI(err))
		assert.Contains(t, err.Error(), "requires scope account")
	})

	t.Run("malformed error body takes json precedence", func(t *testing.T) {
		t.Parallel()

		fl, headers := liveInflight()
		headers <- headerEvent{resp: responseWith(http.StatusBadGateway, `<html>bad gateway</html>`)}
		future := newResponseFuture[testPayload](fl)

		_, err := future.Wait(context.Background())
		require.Error(t, err)
		assert.True(t, IsJSON(err))
		assert.False(t, IsAPI(err))
	})

	t.Run("malformed success body reports json", func(t *testing.T) {
		t.Parallel()

		fl, headers := liveInflight()
		headers <- headerEvent{resp: responseWith(http.StatusOK, `{"id": `)}
		future := newResponseFuture[testPayload](fl)

		_, err := future.Wait(context.Background())
		require.Error(t, err)
		assert.True(t, IsJSON(err))
	})
}

func TestResponseFutureWaitCancellation(t *testing.T) {
	t.Parallel()

	fl, _ := liveInflight()

	cancelled := false
	fl.cancel = func() { cancelled = true }

	future := newResponseFuture[testPayload](fl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := future.Wait(ctx)
	require.Error(t, err)
	assert.True(t, IsHTTP(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, cancelled)
}

func TestResponseFutureResolved(t *testing.T) {
	t.Parallel()

	t.Run("completes on first poll", func(t *testing.T) {
		t.Parallel()

		fl := &inflight{
			resolved: &exchange{status: http.StatusOK, body: []byte(`{"id": 42}`)},
			cancel:   func() {},
		}
		future := newResponseFuture[testPayload](fl)

		value, ready, err := future.Poll()
		require.NoError(t, err)
		require.True(t, ready)
		assert.Equal(t, uint64(42), value.ID)
	})

	t.Run("carries the failure classification", func(t *testing.T) {
		t.Parallel()

		fl := &inflight{
			resolved: &exchange{status: http.StatusNotFound, body: []byte(`{"text": "no such id"}`)},
			cancel:   func() {},
		}
		future := newResponseFuture[testPayload](fl)

		_, ready, err := future.Poll()
		require.True(t, ready)
		require.Error(t, err)
		assert.True(t, IsAPI(err))
	})
}

func TestResponseFuturePreflightError(t *testing.T) {
	t.Parallel()

	future := newResponseFuture[testPayload](&inflight{err: noAccessTokenError()})

	_, ready, err := future.Poll()
	require.True(t, ready)
	require.Error(t, err)
	assert.True(t, IsNoAccessToken(err))
}
