package start

import (
	"context"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thoth-station/thoth-ocp/api"
	"github.com/thoth-station/thoth-ocp/cmd/cli"
	"github.com/thoth-station/thoth-ocp/internal/executor"
	"github.com/thoth-station/thoth-ocp/internal/metrics"
	"github.com/thoth-station/thoth-ocp/pkg/env"
	"github.com/thoth-station/thoth-ocp/pkg/log"
)

const (
	usage   = "start"
	short   = "Start the thoth-ocp API"
	long    = "This command starts the thoth-ocp REST API and, when enabled, the executor running scheduled workloads"
	example = "thoth-ocp start"
)

var (
	// Cmd is the start command.
	Cmd = &cobra.Command{
		Use:        usage,
		Short:      short,
		Long:       long,
		Aliases:    []string{"s"},
		SuggestFor: []string{"launch", "boot", "up", "serve", "begin"},
		Example:    example,
		RunE:       start,
	}
)

var cancel context.CancelFunc

func start(cmd *cobra.Command, args []string) error {
	signalChan := make(chan os.Signal, 1)

	go func() {
		for s := range signalChan {
			switch s {
			case syscall.SIGUSR1:
				log.Info("dumping stack traces due to SIGUSR1 signal")
				if profile := pprof.Lookup("goroutine"); profile != nil {
					if err := profile.WriteTo(os.Stdout, 1); err != nil {
						log.Error("write goroutine profile", "error", err)
					}
				}
			case syscall.SIGINT, syscall.SIGTERM:
				log.Info("gracefully shutting down", "signal", s.String())
				shutdown()
			}
		}
	}()

	signal.Notify(signalChan, syscall.SIGUSR1, syscall.SIGINT, syscall.SIGTERM)

	var errs = make(chan error, 2)
	ctx, cancelFunc := context.WithCancel(context.Background())
	cancel = cancelFunc

	metrics.Register()

	client, err := cli.NewClient()
	if err != nil {
		log.Fatal("cluster client configuration failure", "error", err)
	}

	vars := env.Variables()
	log.Info(
		"connected to cluster",
		"in_cluster", client.InCluster(),
		"infra_namespace", vars.InfraNamespace,
	)

	var exec *executor.Executor
	if vars.OperatorEnabled {
		cfg := client.Config()
		exec, err = executor.New(
			client,
			vars.OperatorInterval,
			cfg.BackendNamespace,
			cfg.MiddletierNamespace,
			cfg.AmunInspectionNamespace,
		)
		if err != nil {
			log.Fatal("workload executor configuration failure", "error", err)
		}
	}

	go func() {
		log.Info("spinning up api")
		errs <- api.Start(ctx, client)
	}()

	if exec != nil {
		go func() {
			log.Info("launching workload executor", "namespaces", exec.Namespaces(), "interval", vars.OperatorInterval)
			errs <- exec.Start(ctx)
		}()
	}

	defer shutdown()

	return <-errs
}

func shutdown() {
	if cancel != nil {
		cancel()
	}
	if err := api.Shutdown(); err != nil {
		log.Error("api shutdown failure", "error", err)
	}
}
