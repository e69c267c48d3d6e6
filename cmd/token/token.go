package token

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thoth-station/thoth-ocp/cmd/cli"
)

// Cmd prints the bearer token used to talk to the cluster.
var Cmd = &cobra.Command{
	Use:   "token",
	Short: "Print the bearer token used to talk to the cluster",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.NewClient()
		if err != nil {
			return err
		}

		token, err := client.Token()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}
