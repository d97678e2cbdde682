package gw2

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorKind classifies an Error. The set is closed: exactly one kind is
// active per error.
type ErrorKind int

const (
	// ErrorKindHTTP is an underlying transport failure (connection, TLS,
	// timeout at the transport layer).
	ErrorKindHTTP ErrorKind = iota

	// ErrorKindJSON means the payload did not parse as valid JSON or did
	// not match the expected shape.
	ErrorKindJSON

	// ErrorKindAPI means the upstream responded with a non-success status
	// and a well-formed structured error body.
	ErrorKindAPI

	// ErrorKindNoAccessToken means an endpoint requiring authentication was
	// called without a configured token. Detected before any network I/O.
	ErrorKindNoAccessToken
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindHTTP:
		return "http"
	case ErrorKindJSON:
		return "json"
	case ErrorKindAPI:
		return "api"
	case ErrorKindNoAccessToken:
		return "no access token"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the single error type surfaced by the request pipeline.
type Error struct {
	kind ErrorKind
	msg  string
	err  error
}

// Kind returns the error's classification.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		return e.kind.String()
	}
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// IsHTTP reports whether the error occurred while making an HTTP request.
func (e *Error) IsHTTP() bool {
	return e.kind == ErrorKindHTTP
}

// IsJSON reports whether the error occurred while decoding JSON.
func (e *Error) IsJSON() bool {
	return e.kind == ErrorKindJSON
}

// IsAPI reports whether the upstream reported a structured error.
func (e *Error) IsAPI() bool {
	return e.kind == ErrorKindAPI
}

// IsNoAccessToken reports whether the request was rejected before dispatch
// because no access token was configured.
func (e *Error) IsNoAccessToken() bool {
	return e.kind == ErrorKindNoAccessToken
}

func httpError(err error) *Error {
	return &Error{kind: ErrorKindHTTP, err: err}
}

func jsonError(err error) *Error {
	return &Error{kind: ErrorKindJSON, err: err}
}

func apiError(payload APIError) *Error {
	return &Error{kind: ErrorKindAPI, msg: "api error: " + payload.Text, err: payload}
}

func noAccessTokenError() *Error {
	return &Error{kind: ErrorKindNoAccessToken}
}

// APIError is the structured payload the upstream returns whenever the HTTP
// status indicates failure.
type APIError struct {
	Text string `json:"text" yaml:"text"`
}

// Error implements the error interface.
func (e APIError) Error() string {
	return e.Text
}

// classifyBody maps a response body to a terminal error following the
// pipeline's decode-precedence rule: a body that fails to decode as the
// error schema reports a JSON error, not a fabricated API error.
func classifyBody(body []byte) *Error {
	var payload APIError
	if err := json.Unmarshal(body, &payload); err != nil {
		return jsonError(err)
	}

	return apiError(payload)
}

// Caller contract violations. These are ordinary sentinel errors, not part
// of the closed taxonomy.
var (
	// ErrInvalidArgument is returned when an operation is invoked with
	// arguments that violate its contract, such as an empty id list.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPolledAfterCompletion is returned when a ResponseFuture is polled
	// again after its result has already been yielded.
	ErrPolledAfterCompletion = errors.New("response polled after completion")
)

// IsHTTP reports whether err is a pipeline error of kind ErrorKindHTTP.
func IsHTTP(err error) bool {
	return kindOf(err) == ErrorKindHTTP
}

// IsJSON reports whether err is a pipeline error of kind ErrorKindJSON.
func IsJSON(err error) bool {
	return kindOf(err) == ErrorKindJSON
}

// IsAPI reports whether err is a pipeline error of kind ErrorKindAPI.
func IsAPI(err error) bool {
	return kindOf(err) == ErrorKindAPI
}

// IsNoAccessToken reports whether err is a pipeline error of kind
// ErrorKindNoAccessToken.
func IsNoAccessToken(err error) bool {
	return kindOf(err) == ErrorKindNoAccessToken
}

func kindOf(err error) ErrorKind {
	var pipelineErr *Error
	if errors.As(err, &pipelineErr) {
		return pipelineErr.Kind()
	}

	return ErrorKind(-1)
}
