package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	v2 "github.com/tyria-io/gw2go/pkg/gw2/v2"
)

// accountSummary aggregates the endpoints behind the account command.
type accountSummary struct {
	Account v2.Account     `json:"account" yaml:"account"`
	World   *v2.World      `json:"world,omitempty" yaml:"world,omitempty"`
	Luck    v2.AccountLuck `json:"luck"    yaml:"luck"`
	Dyes    int            `json:"dyes"    yaml:"dyes"`
	Minis   int            `json:"minis"   yaml:"minis"`
}

// NewAccountCommand creates the account command.
func NewAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Summarize the account behind the API token",
		Long:  "Fetch the account, its home world and unlock counts in parallel.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient()

			var summary accountSummary

			group, ctx := errgroup.WithContext(context.Background())

			group.Go(func() error {
				account, err := v2.GetAccount(ctx, client)
				if err != nil {
					return fmt.Errorf("failed to fetch account: %w", err)
				}

				summary.Account = account

				world, err := v2.GetWorld(ctx, client, account.World)
				if err != nil {
					return fmt.Errorf("failed to fetch world: %w", err)
				}

				summary.World = &world

				return nil
			})

			group.Go(func() error {
				luck, err := v2.GetAccountLuck(ctx, client)
				if err != nil {
					return fmt.Errorf("failed to fetch luck: %w", err)
				}

				summary.Luck = luck

				return nil
			})

			group.Go(func() error {
				dyes, err := v2.GetAccountDyes(ctx, client)
				if err != nil {
					return fmt.Errorf("failed to fetch dyes: %w", err)
				}

				summary.Dyes = len(dyes)

				return nil
			})

			group.Go(func() error {
				minis, err := v2.GetAccountMinis(ctx, client)
				if err != nil {
					return fmt.Errorf("failed to fetch minis: %w", err)
				}

				summary.Minis = len(minis)

				return nil
			})

			if err := group.Wait(); err != nil {
				return err
			}

			if done, err := renderStructured(summary); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Field", "Value")

			_ = table.Append("Name", summary.Account.Name)
			_ = table.Append("World", summary.World.Name)
			_ = table.Append("Created", summary.Account.Created.Format("2006-01-02"))
			_ = table.Append("Access", summary.Account.Access.String())
			_ = table.Append("Luck", strconv.FormatUint(uint64(summary.Luck), 10))
			_ = table.Append("Unlocked Dyes", strconv.Itoa(summary.Dyes))
			_ = table.Append("Unlocked Minis", strconv.Itoa(summary.Minis))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
