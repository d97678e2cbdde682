package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	v2 "github.com/tyria-io/gw2go/pkg/gw2/v2"
)

// NewExchangeCommand creates the exchange command with its coins and gems
// subcommands.
func NewExchangeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Quote the gem exchange",
	}

	cmd.AddCommand(newExchangeCoinsCommand())
	cmd.AddCommand(newExchangeGemsCommand())

	return cmd
}

func newExchangeCoinsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "coins <quantity>",
		Short: "Quote converting coins to gems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid coin quantity %q: %w", args[0], err)
			}

			rate, err := v2.ExchangeCoins(context.Background(), newClient(), quantity)
			if err != nil {
				return fmt.Errorf("failed to fetch exchange rate: %w", err)
			}

			return renderExchange(rate, "Gems Received")
		},
	}
}

func newExchangeGemsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gems <quantity>",
		Short: "Quote converting gems to coins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid gem quantity %q: %w", args[0], err)
			}

			rate, err := v2.ExchangeGems(context.Background(), newClient(), quantity)
			if err != nil {
				return fmt.Errorf("failed to fetch exchange rate: %w", err)
			}

			return renderExchange(rate, "Coins Received")
		},
	}
}

func renderExchange(rate v2.ExchangeRate, label string) error {
	if done, err := renderStructured(rate); done {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Metric", "Value")

	_ = table.Append("Coins per Gem", strconv.FormatUint(rate.CoinsPerGem, 10))
	_ = table.Append(label, strconv.FormatUint(rate.Quantity, 10))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
