package gw2

import (
	"context"
	"io"
	"net/http"
)

// Executor turns a pending request into a result, either lazily (Client)
// or immediately (BlockingClient).
//
// The interface is sealed: its unexported methods keep third parties from
// providing their own executor and bypassing the authentication, rate
// limiting, and error classification guarantees of the pipeline.
type Executor interface {
	dispatch(ctx context.Context, req Request) *inflight
	sealed()
}

// Queue starts the request and returns a lazily-polled response. The
// response advances only when polled or waited on; cancelling the context
// or the future abandons the in-flight I/O.
func Queue[T any](ctx context.Context, exec Executor, req Request) *ResponseFuture[T] {
	return newResponseFuture[T](exec.dispatch(ctx, req))
}

// Fetch runs the request pipeline to completion on the calling goroutine
// and returns the decoded result. This is the explicit blocking adapter
// over the same state machine that Queue exposes lazily.
func Fetch[T any](ctx context.Context, exec Executor, req Request) (T, error) {
	return Queue[T](ctx, exec, req).Wait(ctx)
}

func readAll(resp *http.Response) ([]byte, error) {
	defer func() {
		_ = resp.Body.Close()
	}()

	return io.ReadAll(resp.Body)
}
