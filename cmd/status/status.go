package status

import (
	"github.com/spf13/cobra"
	"github.com/thoth-station/thoth-ocp/cmd/cli"
)

var (
	namespace string
	output    string
)

// Cmd is the parent command for status reports.
var Cmd = &cobra.Command{
	Use:   "status",
	Short: "Report the status of pods and jobs",
}

var podCmd = &cobra.Command{
	Use:     "pod <id>",
	Short:   "Report the status of a pod",
	Args:    cobra.ExactArgs(1),
	Example: "thoth-ocp status pod adviser-1 -n thoth-backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.NewClient()
		if err != nil {
			return err
		}

		report, err := client.GetPodStatusReport(cmd.Context(), args[0], namespace)
		if err != nil {
			return err
		}

		return cli.Write(cmd, output, report)
	},
}

var jobCmd = &cobra.Command{
	Use:     "job <id>",
	Short:   "Report the status of the pod run by a job",
	Args:    cobra.ExactArgs(1),
	Example: "thoth-ocp status job inspection-1 -n thoth-amun-inspection",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.NewClient()
		if err != nil {
			return err
		}

		report, err := client.GetJobStatusReport(cmd.Context(), args[0], namespace)
		if err != nil {
			return err
		}

		return cli.Write(cmd, output, report)
	},
}

func init() {
	Cmd.PersistentFlags().StringVarP(&namespace, "namespace", "n", "", "Namespace of the pod or job (jobs default to the infra namespace)")
	for _, c := range []*cobra.Command{podCmd, jobCmd} {
		cli.AddOutputFlag(c, &output)
		Cmd.AddCommand(c)
	}
}
