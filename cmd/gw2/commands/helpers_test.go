package commands

import (
	"io"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	old := os.Stdout

	read, write, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = write

	defer func() { os.Stdout = old }()

	require.NoError(t, fn())
	require.NoError(t, write.Close())

	data, err := io.ReadAll(read)
	require.NoError(t, err)

	return string(data)
}

func TestRenderStructured(t *testing.T) {
	defer viper.Set("output", "table")

	type payload struct {
		Name string `json:"name" yaml:"name"`
	}

	t.Run("json", func(t *testing.T) {
		viper.Set("output", OutputFormatJSON)

		out := captureStdout(t, func() error {
			done, err := renderStructured(payload{Name: "quaggan"})
			assert.True(t, done)

			return err
		})

		assert.JSONEq(t, `{"name": "quaggan"}`, out)
	})

	t.Run("yaml", func(t *testing.T) {
		viper.Set("output", OutputFormatYAML)

		out := captureStdout(t, func() error {
			done, err := renderStructured(payload{Name: "quaggan"})
			assert.True(t, done)

			return err
		})

		assert.Contains(t, out, "name: quaggan")
	})

	t.Run("table falls through", func(t *testing.T) {
		viper.Set("output", "table")

		done, err := renderStructured(payload{Name: "quaggan"})
		require.NoError(t, err)
		assert.False(t, done)
	})
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3", "abc1234", "2024-05-01")

	out := captureStdout(t, func() error {
		return cmd.Execute()
	})

	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc1234")
}
