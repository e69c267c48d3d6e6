package workload

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/apierror"
	"github.com/thoth-station/thoth-ocp/api/rest/service/cluster"
	"github.com/thoth-station/thoth-ocp/internal/openshift"
)

// DependencyMonkey schedules a Dependency Monkey run.
func DependencyMonkey(c echo.Context) error {
	var req openshift.DependencyMonkeyRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	if req.Requirements == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "requirements are required")
	}

	id, err := cluster.Service().ScheduleDependencyMonkey(c.Request().Context(), req)
	if err != nil {
		return apierror.From(err)
	}

	return c.JSON(http.StatusAccepted, cluster.ScheduleResponse{ID: id})
}
