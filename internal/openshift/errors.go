package openshift

import (
	"github.com/pkg/errors"
	"github.com/thoth-station/thoth-ocp/internal/metrics"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

var (
	// ErrConfiguration is returned when an operation requires
	// a namespace or other setting that was not configured.
	ErrConfiguration = errors.New("configuration error")
	// ErrNotFound is returned when the cluster reports that
	// the requested object does not exist.
	ErrNotFound = errors.New("not found")
	// ErrTemplateCount is returned when a template label selector
	// does not match exactly one template object.
	ErrTemplateCount = errors.New("unexpected number of templates")
)

func configurationError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConfiguration, format, args...)
}

func notFound(err error, format string, args ...interface{}) error {
	if apierrors.IsNotFound(err) {
		return errors.Wrapf(ErrNotFound, format, args...)
	}
	return err
}

// observe records the outcome of a request against the cluster API.
func observe(operation string, err error) {
	outcome := "success"
	switch {
	case err == nil:
	case apierrors.IsNotFound(err), errors.Is(err, ErrNotFound):
		outcome = "not_found"
	default:
		outcome = "error"
	}
	metrics.ClusterRequestsTotal.WithLabelValues(operation, outcome).Inc()
}
