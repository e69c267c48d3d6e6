package workload

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/apierror"
	"github.com/thoth-station/thoth-ocp/api/rest/service/cluster"
	"github.com/thoth-station/thoth-ocp/internal/openshift"
)

// Adviser schedules an adviser run.
func Adviser(c echo.Context) error {
	var req openshift.AdviserRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	if req.ApplicationStack.Requirements == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "application_stack.requirements is required")
	}

	id, err := cluster.Service().ScheduleAdviser(c.Request().Context(), req)
	if err != nil {
		return apierror.From(err)
	}

	return c.JSON(http.StatusAccepted, cluster.ScheduleResponse{ID: id})
}
