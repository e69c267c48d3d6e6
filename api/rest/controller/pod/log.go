package pod

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/apierror"
	"github.com/thoth-station/thoth-ocp/api/rest/service/cluster"
)

// Log returns the log of a pod. Pods that were not scheduled yet
// have no log and are answered with 204.
func Log(c echo.Context) error {
	id, namespace := c.Param("id"), c.Param("namespace")

	podLog, scheduled, err := cluster.Service().GetPodLog(c.Request().Context(), id, namespace)
	switch {
	case err != nil:
		return apierror.From(err)
	case !scheduled:
		return c.NoContent(http.StatusNoContent)
	default:
		return c.JSON(http.StatusOK, cluster.LogResponse{ID: id, Namespace: namespace, Log: podLog})
	}
}
