package build

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/apierror"
	"github.com/thoth-station/thoth-ocp/api/rest/service/cluster"
)

func Get(c echo.Context) error {
	b, err := cluster.Service().GetBuild(c.Request().Context(), c.Param("id"), c.Param("namespace"))
	if err != nil {
		return apierror.From(err)
	}

	return c.JSON(http.StatusOK, b.Object)
}
