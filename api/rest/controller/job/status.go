package job

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/apierror"
	"github.com/thoth-station/thoth-ocp/api/rest/service/cluster"
)

// Status returns the status report of the pod run by a job.
func Status(c echo.Context) error {
	report, err := cluster.Service().GetJobStatusReport(c.Request().Context(), c.Param("id"), c.Param("namespace"))
	if err != nil {
		return apierror.From(err)
	}

	return c.JSON(http.StatusOK, report)
}
