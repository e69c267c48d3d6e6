package sync

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thoth-station/thoth-ocp/cmd/cli"
)

var force bool

// Cmd starts a graph sync.
var Cmd = &cobra.Command{
	Use:   "sync",
	Short: "Start a graph sync pod from the graph-sync CronJob",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.NewClient()
		if err != nil {
			return err
		}

		name, err := client.RunSync(cmd.Context(), force)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
		return err
	},
}

func init() {
	Cmd.Flags().BoolVar(&force, "force", false, "Force sync of documents already present in the graph")
}
