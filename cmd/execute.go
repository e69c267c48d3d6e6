package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thoth-station/thoth-ocp/cmd/logs"
	"github.com/thoth-station/thoth-ocp/cmd/process"
	"github.com/thoth-station/thoth-ocp/cmd/solvers"
	"github.com/thoth-station/thoth-ocp/cmd/start"
	"github.com/thoth-station/thoth-ocp/cmd/status"
	"github.com/thoth-station/thoth-ocp/cmd/sync"
	"github.com/thoth-station/thoth-ocp/cmd/token"
)

var cmds = []*cobra.Command{
	start.Cmd,
	status.Cmd,
	logs.Cmd,
	solvers.Cmd,
	process.Cmd,
	sync.Cmd,
	token.Cmd,
}

// Command builds the command tree.
func Command() *cobra.Command {
	command := &cobra.Command{
		Use:          "thoth-ocp",
		Short:        "Thoth OpenShift client",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}

	for _, c := range cmds {
		command.AddCommand(c)
	}

	return command
}

// Execute builds the command tree and executes commands.
func Execute() error {
	return Command().Execute()
}
