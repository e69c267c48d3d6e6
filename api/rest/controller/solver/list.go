package solver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/apierror"
	"github.com/thoth-station/thoth-ocp/api/rest/service/cluster"
)

func List(c echo.Context) error {
	names, err := cluster.Service().GetSolverNames(c.Request().Context())
	if err != nil {
		return apierror.From(err)
	}

	return c.JSON(http.StatusOK, cluster.SolversResponse{Solvers: names})
}
