package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/laplog/version"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "prints the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.FullVersion)
			return err
		},
	}
}
