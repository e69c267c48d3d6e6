package job

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/apierror"
	"github.com/thoth-station/thoth-ocp/api/rest/service/cluster"
)

// Log returns the log of the pod run by a job.
func Log(c echo.Context) error {
	id, namespace := c.Param("id"), c.Param("namespace")

	jobLog, scheduled, err := cluster.Service().GetJobLog(c.Request().Context(), id, namespace)
	switch {
	case err != nil:
		return apierror.From(err)
	case !scheduled:
		return c.NoContent(http.StatusNoContent)
	default:
		return c.JSON(http.StatusOK, cluster.LogResponse{ID: id, Namespace: namespace, Log: jobLog})
	}
}
