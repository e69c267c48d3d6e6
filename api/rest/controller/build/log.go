package build

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/apierror"
	"github.com/thoth-station/thoth-ocp/api/rest/service/cluster"
)

func Log(c echo.Context) error {
	id, namespace := c.Param("id"), c.Param("namespace")

	buildLog, err := cluster.Service().GetBuildLog(c.Request().Context(), id, namespace)
	if err != nil {
		return apierror.From(err)
	}

	return c.JSON(http.StatusOK, cluster.LogResponse{ID: id, Namespace: namespace, Log: buildLog})
}
