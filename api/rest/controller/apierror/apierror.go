package apierror

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/thoth-station/thoth-ocp/internal/openshift"
)

// From maps errors returned by the OpenShift client to HTTP errors.
func From(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, openshift.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error()).SetInternal(err)
	case errors.Is(err, openshift.ErrConfiguration):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error()).SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
}
