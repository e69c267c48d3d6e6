package solvers

import (
	"github.com/spf13/cobra"
	"github.com/thoth-station/thoth-ocp/cmd/cli"
)

var output string

// Cmd lists the solvers available in the installation.
var Cmd = &cobra.Command{
	Use:   "solvers",
	Short: "List available solvers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.NewClient()
		if err != nil {
			return err
		}

		names, err := client.GetSolverNames(cmd.Context())
		if err != nil {
			return err
		}

		return cli.Write(cmd, output, names)
	},
}

func init() {
	cli.AddOutputFlag(Cmd, &output)
}
