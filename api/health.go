package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/thoth-station/thoth-ocp/api/rest/service/cluster"
)

var startedAt time.Time

func init() {
	startedAt = time.Now()
}

// HealthResponse defines the data the Health
// REST endpoint returns.
type HealthResponse struct {
	Status    Status        `json:"status"`
	Uptime    time.Duration `json:"uptime"`
	InCluster bool          `json:"in_cluster"`
}

// Health reports whether thoth-ocp can serve cluster requests,
// how the cluster client authenticates and the uptime.
func Health(c echo.Context) error {
	svc := cluster.Service()
	if svc == nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			HealthResponse{
				Status: Unavailable,
				Uptime: time.Since(startedAt),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		HealthResponse{
			Status:    Healthy,
			Uptime:    time.Since(startedAt),
			InCluster: svc.InCluster(),
		},
	)
}

// Status enumerates the health statues of thoth-ocp.
type Status string

const (
	// Healthy implies thoth-ocp is having no major issues.
	Healthy Status = "healthy"
	// Unavailable means no cluster client is configured yet.
	Unavailable Status = "unavailable"
)
