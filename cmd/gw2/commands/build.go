package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v2 "github.com/tyria-io/gw2go/pkg/gw2/v2"
)

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Show the current game build",
		RunE: func(cmd *cobra.Command, args []string) error {
			build, err := v2.GetBuild(context.Background(), newClient())
			if err != nil {
				return fmt.Errorf("failed to fetch build: %w", err)
			}

			if done, err := renderStructured(build); done {
				return err
			}

			fmt.Println(build.ID)

			return nil
		},
	}
}
