package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tyria-io/gw2go/pkg/gw2"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// newClient builds a client from the resolved configuration: flags first,
// then GW2_* environment variables, then the config file.
func newClient() *gw2.Client {
	builder := gw2.NewBuilder()

	if token := viper.GetString("token"); token != "" {
		builder.AccessToken(token)
	}

	if lang := gw2.Language(viper.GetString("lang")); lang.Valid() {
		builder.Language(lang)
	}

	if limit := viper.GetInt("rate_limit"); limit > 0 {
		builder.RateLimit(limit)
	}

	return builder.Build()
}

// renderStructured writes value as JSON or YAML according to the output
// flag. It reports false when the caller should render a table instead.
func renderStructured(value interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(value)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(value)
	default:
		return false, nil
	}
}
