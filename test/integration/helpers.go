//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// TestConfig holds configuration for live-API integration tests.
type TestConfig struct {
	AccessToken string
	Language    gw2.Language
	RateLimit   int
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	config := &TestConfig{
		AccessToken: os.Getenv("GW2_ACCESS_TOKEN"),
		Language:    gw2.Language(os.Getenv("GW2_LANG")),
		RateLimit:   120,
	}

	if !config.Language.Valid() {
		config.Language = gw2.DefaultLanguage
	}

	return config
}

// SkipUnlessLive skips the test unless live-API testing is enabled.
func SkipUnlessLive(t *testing.T) {
	t.Helper()

	if os.Getenv("GW2_INTEGRATION") == "" {
		t.Skip("GW2_INTEGRATION not set, skipping integration test")
	}
}

// SkipWithoutToken skips the test when no access token is configured.
func (config *TestConfig) SkipWithoutToken(t *testing.T) {
	t.Helper()

	if config.AccessToken == "" {
		t.Skip("GW2_ACCESS_TOKEN not set, skipping authenticated integration test")
	}
}

// NewClient builds a client from the test configuration. Tests construct
// their own clients rather than sharing a lazily-created global.
func (config *TestConfig) NewClient() *gw2.Client {
	builder := gw2.NewBuilder().
		Language(config.Language).
		RateLimit(config.RateLimit)

	if config.AccessToken != "" {
		builder.AccessToken(config.AccessToken)
	}

	return builder.Build()
}
