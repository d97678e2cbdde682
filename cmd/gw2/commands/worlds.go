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

// NewWorldsCommand creates the worlds command.
func NewWorldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "worlds [id...]",
		Short: "List game worlds",
		Long:  "List all game worlds, or look up specific worlds by id.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client := newClient()

			var (
				worlds []v2.World
				err    error
			)

			if len(args) == 0 {
				worlds, err = v2.AllWorlds(ctx, client)
			} else {
				ids := make([]uint64, 0, len(args))
				for _, arg := range args {
					id, parseErr := strconv.ParseUint(arg, 10, 64)
					if parseErr != nil {
						return fmt.Errorf("invalid world id %q: %w", arg, parseErr)
					}

					ids = append(ids, id)
				}

				worlds, err = v2.GetWorlds(ctx, client, ids...)
			}

			if err != nil {
				return fmt.Errorf("failed to fetch worlds: %w", err)
			}

			if done, err := renderStructured(worlds); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Population")

			for _, world := range worlds {
				_ = table.Append(strconv.FormatUint(world.ID, 10), world.Name, string(world.Population))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
