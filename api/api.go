package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/thoth-station/thoth-ocp/api/rest/service/cluster"
	"github.com/thoth-station/thoth-ocp/api/rest/v1"
	"github.com/thoth-station/thoth-ocp/pkg/env"
	"github.com/thoth-station/thoth-ocp/pkg/log"
)

const shutdownTimeout = 10 * time.Second

var (
	mu     sync.Mutex
	server *echo.Echo
)

// New builds the echo instance serving the thoth-ocp API.
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// health
	e.GET("/health", Health)

	// metrics
	prometheus.NewPrometheus("thoth_ocp", nil).Use(e)

	// REST
	rest.Bind(e.Group("/v1"))

	return e
}

// Start launches the thoth-ocp API on top of the cluster client and
// blocks until it is shut down.
func Start(ctx context.Context, c cluster.Cluster) error {
	cluster.Use(c)

	e := New()

	mu.Lock()
	server = e
	mu.Unlock()

	go func() {
		<-ctx.Done()
		if err := Shutdown(); err != nil {
			log.Error("api shutdown failure", "error", err)
		}
	}()

	addr := fmt.Sprintf(":%v", env.Variables().Port)
	log.Info("api listening", "address", addr)

	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Shutdown gracefully stops the API if it is running.
func Shutdown() error {
	mu.Lock()
	e := server
	server = nil
	mu.Unlock()

	if e == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(ctx)
}
