package workload

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/apierror"
	"github.com/thoth-station/thoth-ocp/api/rest/service/cluster"
	"github.com/thoth-station/thoth-ocp/internal/openshift"
)

// ProvenanceChecker schedules provenance checks of a locked stack.
func ProvenanceChecker(c echo.Context) error {
	var req openshift.ProvenanceCheckerRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	if req.ApplicationStack.Requirements == "" || req.ApplicationStack.RequirementsLock == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "application_stack.requirements and application_stack.requirements_lock are required")
	}

	id, err := cluster.Service().ScheduleProvenanceChecker(c.Request().Context(), req)
	if err != nil {
		return apierror.From(err)
	}

	return c.JSON(http.StatusAccepted, cluster.ScheduleResponse{ID: id})
}
