// Package constants holds shared literals used across the library.
package constants

import "time"

// Upstream API contract.
const (
	// DefaultBaseURL is the host all requests are sent to unless overridden.
	DefaultBaseURL = "https://api.guildwars2.com"

	// SchemaVersion pins every request to a fixed upstream schema date so
	// the response shapes stay stable even if the API evolves.
	SchemaVersion = "2022-03-23T19:00:00.000Z"

	// SchemaVersionHeader is the header carrying the schema version pin.
	SchemaVersionHeader = "X-Schema-Version"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are disabled unless explicitly configured; the
// pipeline surfaces transient failures to the caller instead of hiding them.
const (
	// DefaultRetryWaitMin is the minimum wait between retries when enabled.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between retries when enabled.
	DefaultRetryWaitMax = 10 * time.Second
)

// DefaultUserAgent identifies the library to the upstream API.
const DefaultUserAgent = "gw2go/1.0"
