package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/tyria-io/gw2go/pkg/gw2"
	v2 "github.com/tyria-io/gw2go/pkg/gw2/v2"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API access token",
		Long: `Validate an API access token against the tokeninfo endpoint and
store it in the config file for later commands.

Tokens are created at https://account.arena.net/applications.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("API access token: ")

				tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = strings.TrimSpace(string(tokenBytes))

				fmt.Println()
			}

			if token == "" {
				return fmt.Errorf("%w: access token is required", gw2.ErrInvalidArgument)
			}

			client := gw2.NewBuilder().AccessToken(token).Build()

			info, err := v2.GetTokenInfo(context.Background(), client)
			if err != nil {
				return fmt.Errorf("token validation failed: %w", err)
			}

			if err := persistToken(token); err != nil {
				return err
			}

			fmt.Printf("Logged in with key %q (permissions: %s)\n", info.Name, strings.Join(info.Permissions, ", "))

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "API access token (prompted when omitted)")

	return cmd
}

func persistToken(token string) error {
	viper.Set("token", token)

	if file := viper.ConfigFileUsed(); file != "" {
		if err := viper.WriteConfig(); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to locate home directory: %w", err)
	}

	path := filepath.Join(home, ".gw2", "config.yml")
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
