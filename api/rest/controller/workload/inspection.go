package workload

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thoth-station/thoth-ocp/api/rest/controller/apierror"
	"github.com/thoth-station/thoth-ocp/api/rest/service/cluster"
	"github.com/thoth-station/thoth-ocp/internal/openshift"
)

const inspectionIDParameter = "AMUN_INSPECTION_ID"

// Inspection sets up the image stream and build of an Amun inspection
// and schedules the inspection job.
func Inspection(c echo.Context) error {
	var req openshift.InspectionRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	id := openshift.GenerateID("inspection")
	if req.Parameters == nil {
		req.Parameters = map[string]string{}
	}
	req.Parameters[inspectionIDParameter] = id

	ctx := c.Request().Context()
	svc := cluster.Service()

	imageStream, err := svc.CreateInspectionImageStream(ctx, id)
	if err != nil {
		return apierror.From(err)
	}

	if err := svc.CreateInspectionBuildConfig(ctx, req); err != nil {
		return apierror.From(err)
	}

	if _, err := svc.ScheduleInspectionJob(ctx, id, req); err != nil {
		return apierror.From(err)
	}

	return c.JSON(http.StatusAccepted, cluster.InspectionResponse{ID: id, ImageStream: imageStream})
}
