package logs

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thoth-station/thoth-ocp/cmd/cli"
	"github.com/thoth-station/thoth-ocp/pkg/log"
)

var namespace string

// Cmd is the parent command for retrieving logs.
var Cmd = &cobra.Command{
	Use:   "logs",
	Short: "Print logs of pods, jobs and builds",
}

var podCmd = &cobra.Command{
	Use:   "pod <id>",
	Short: "Print the log of a pod",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.NewClient()
		if err != nil {
			return err
		}

		podLog, scheduled, err := client.GetPodLog(cmd.Context(), args[0], namespace)
		if err != nil {
			return err
		}

		return printLog(cmd, args[0], podLog, scheduled)
	},
}

var jobCmd = &cobra.Command{
	Use:   "job <id>",
	Short: "Print the log of the pod run by a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.NewClient()
		if err != nil {
			return err
		}

		jobLog, scheduled, err := client.GetJobLog(cmd.Context(), args[0], namespace)
		if err != nil {
			return err
		}

		return printLog(cmd, args[0], jobLog, scheduled)
	},
}

var buildCmd = &cobra.Command{
	Use:   "build <id>",
	Short: "Print the log of a build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cli.NewClient()
		if err != nil {
			return err
		}

		buildLog, err := client.GetBuildLog(cmd.Context(), args[0], namespace)
		if err != nil {
			return err
		}

		return printLog(cmd, args[0], buildLog, true)
	},
}

func printLog(cmd *cobra.Command, id, text string, scheduled bool) error {
	if !scheduled {
		log.Info("no log available, the pod was not scheduled yet", "id", id)
		return nil
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), text); err != nil {
		cmd.PrintErrf("write output: %v\n", err)
		return err
	}

	return nil
}

func init() {
	Cmd.PersistentFlags().StringVarP(&namespace, "namespace", "n", "", "Namespace of the pod, job or build")
	Cmd.AddCommand(podCmd, jobCmd, buildCmd)
}
