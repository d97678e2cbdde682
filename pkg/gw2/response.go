package gw2

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// headerEvent carries the outcome of the dispatch: either a response with
// an unread body, or a transport failure.
type headerEvent struct {
	resp *http.Response
	err  error
}

// bodyEvent carries the outcome of the asynchronous body read.
type bodyEvent struct {
	body []byte
	err  error
}

// exchange is a fully-consumed request/response pair, produced by the
// blocking executor so its futures resolve on first poll.
type exchange struct {
	status int
	body   []byte
	err    error
}

// inflight is the untyped wire state shared by both executors. The async
// executor hands out live channels; the blocking executor hands out an
// already-resolved exchange; a pre-flight failure hands out a terminal
// error. Exactly one of the three is set.
type inflight struct {
	headers  <-chan headerEvent
	cancel   context.CancelFunc
	resolved *exchange
	err      *Error
}

type futureState int

const (
	// stateAwaitingHeaders holds the in-flight call handle.
	stateAwaitingHeaders futureState = iota

	// stateAwaitingBody holds the in-flight body read plus the error flag
	// carried over from the header inspection.
	stateAwaitingBody

	// stateDone holds a one-shot terminal result.
	stateDone
)

// ResponseFuture is a lazily-polled response. It advances a three-state
// machine — awaiting headers, awaiting body, done — strictly forward; an
// error is terminal from any state. The future is owned by a single caller:
// Poll and Wait must not be invoked concurrently on the same value.
type ResponseFuture[T any] struct {
	state   futureState
	headers <-chan headerEvent
	body    chan bodyEvent
	isError bool
	cancel  context.CancelFunc

	result  T
	err     error
	yielded bool
}

func newResponseFuture[T any](fl *inflight) *ResponseFuture[T] {
	f := &ResponseFuture[T]{cancel: fl.cancel}

	switch {
	case fl.err != nil:
		f.state = stateDone
		f.err = fl.err
	case fl.resolved != nil:
		f.completeResolved(fl.resolved)
	default:
		f.state = stateAwaitingHeaders
		f.headers = fl.headers
	}

	return f
}

// Poll advances the state machine without blocking. It reports ready=false
// while the request is still in flight. Once the result has been yielded,
// further polls return ErrPolledAfterCompletion.
func (f *ResponseFuture[T]) Poll() (T, bool, error) {
	var zero T

	for {
		switch f.state {
		case stateAwaitingHeaders:
			select {
			case ev := <-f.headers:
				if !f.onHeaders(ev) {
					return f.yield()
				}
				// Opportunistically try the body read in the same poll to
				// avoid a wasted wake-up cycle.
			default:
				return zero, false, nil
			}
		case stateAwaitingBody:
			select {
			case ev := <-f.body:
				f.onBody(ev)

				return f.yield()
			default:
				return zero, false, nil
			}
		case stateDone:
			return f.yield()
		}
	}
}

// Wait drives the state machine to completion, suspending at the two wait
// points (header delivery and body delivery). Cancelling the context
// abandons the in-flight request.
func (f *ResponseFuture[T]) Wait(ctx context.Context) (T, error) {
	for {
		switch f.state {
		case stateAwaitingHeaders:
			select {
			case ev := <-f.headers:
				f.onHeaders(ev)
			case <-ctx.Done():
				f.Cancel()

				var zero T

				return zero, httpError(ctx.Err())
			}
		case stateAwaitingBody:
			select {
			case ev := <-f.body:
				f.onBody(ev)
			case <-ctx.Done():
				f.Cancel()

				var zero T

				return zero, httpError(ctx.Err())
			}
		case stateDone:
			result, _, err := f.yield()

			return result, err
		}
	}
}

// Cancel abandons the request. Dropping a future at any non-terminal state
// releases the underlying I/O; no background task outlives the buffered
// body read.
func (f *ResponseFuture[T]) Cancel() {
	if f.cancel != nil {
		f.cancel()
	}
}

// onHeaders transitions out of stateAwaitingHeaders. It reports true when
// the machine moved to stateAwaitingBody, false on a terminal error.
func (f *ResponseFuture[T]) onHeaders(ev headerEvent) bool {
	if ev.err != nil {
		f.fail(httpError(ev.err))

		return false
	}

	if ev.resp.StatusCode < http.StatusOK || ev.resp.StatusCode >= http.StatusMultipleChoices {
		f.isError = true
	}

	body := make(chan bodyEvent, 1)

	go func(resp *http.Response) {
		buf, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		body <- bodyEvent{body: buf, err: err}
	}(ev.resp)

	f.body = body
	f.state = stateAwaitingBody

	return true
}

// onBody transitions out of stateAwaitingBody into stateDone. The error
// flag recorded at header time routes failure bodies through the error
// schema instead of the success schema.
func (f *ResponseFuture[T]) onBody(ev bodyEvent) {
	if ev.err != nil {
		f.fail(httpError(ev.err))

		return
	}

	f.decode(ev.body)
}

func (f *ResponseFuture[T]) decode(body []byte) {
	if f.isError {
		f.fail(classifyBody(body))

		return
	}

	var value T
	if err := json.Unmarshal(body, &value); err != nil {
		f.fail(jsonError(err))

		return
	}

	f.state = stateDone
	f.result = value
}

func (f *ResponseFuture[T]) completeResolved(ex *exchange) {
	f.state = stateDone

	if ex.err != nil {
		f.err = httpError(ex.err)

		return
	}

	if ex.status < http.StatusOK || ex.status >= http.StatusMultipleChoices {
		f.isError = true
	}

	f.decode(ex.body)
}

func (f *ResponseFuture[T]) fail(err *Error) {
	f.state = stateDone
	f.err = err
}

// yield hands out the terminal result exactly once.
func (f *ResponseFuture[T]) yield() (T, bool, error) {
	if f.yielded {
		var zero T

		return zero, true, ErrPolledAfterCompletion
	}

	f.yielded = true

	return f.result, true, f.err
}
