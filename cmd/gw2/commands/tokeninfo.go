package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	v2 "github.com/tyria-io/gw2go/pkg/gw2/v2"
)

// NewTokenInfoCommand creates the tokeninfo command.
func NewTokenInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokeninfo",
		Short: "Inspect the configured API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := v2.GetTokenInfo(context.Background(), newClient())
			if err != nil {
				return fmt.Errorf("failed to fetch token info: %w", err)
			}

			if done, err := renderStructured(info); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Field", "Value")

			_ = table.Append("ID", info.ID)
			_ = table.Append("Name", info.Name)
			_ = table.Append("Permissions", strings.Join(info.Permissions, ", "))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
