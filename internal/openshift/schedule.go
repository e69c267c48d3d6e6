package openshift

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/thoth-station/thoth-ocp/internal/metrics"
	"github.com/thoth-station/thoth-ocp/pkg/jsonutil"
	"github.com/thoth-station/thoth-ocp/pkg/log"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Methods the workload operator can run out of a scheduled ConfigMap.
const (
	MethodRunAdviser           = "run_adviser"
	MethodRunDependencyMonkey  = "run_dependency_monkey"
	MethodRunProvenanceChecker = "run_provenance_checker"
	MethodRunInspectionJob     = "run_inspection_job"
)

// Labels and data keys of scheduled workload ConfigMaps.
const (
	WorkloadSelector = "app=thoth,operator=workload"

	methodKey     = "method"
	parametersKey = "parameters"
)

// ErrUnknownMethod is returned for scheduled ConfigMaps naming a
// method the operator does not run.
var ErrUnknownMethod = errors.New("unknown workload method")

func workloadLabels() map[string]string {
	return map[string]string{
		"app":      "thoth",
		"operator": "workload",
	}
}

// GenerateID returns a new job id of the form <prefix>-<16 hex digits>.
func GenerateID(prefix string) string {
	id := uuid.New()
	return fmt.Sprintf("%s-%x", prefix, id[:8])
}

// scheduleJob stores the request in a ConfigMap picked up by the
// workload operator and returns the job id.
func (c *Client) scheduleJob(ctx context.Context, method string, request interface{}, jobID, namespace string) (string, error) {
	parameters, err := jsonutil.MarshalString(request)
	if err != nil {
		return "", errors.Wrapf(err, "encode parameters of %s", method)
	}

	if _, err := c.CreateConfigMap(ctx, jobID, namespace, workloadLabels(), map[string]string{
		methodKey:     method,
		parametersKey: parameters,
	}); err != nil {
		return "", err
	}

	metrics.WorkloadsScheduledTotal.WithLabelValues(method).Inc()
	log.Info("scheduled workload", "method", method, "id", jobID, "namespace", namespace)

	return jobID, nil
}

// RunScheduled runs the workload stored in a ConfigMap created by one
// of the Schedule methods and returns the name of the created object.
func (c *Client) RunScheduled(ctx context.Context, cm *corev1.ConfigMap) (string, error) {
	method := cm.Data[methodKey]
	parameters := cm.Data[parametersKey]

	log.Info("running scheduled workload", "method", method, "configmap", cm.Name, "namespace", cm.Namespace)

	decodeErr := func(err error) error {
		return errors.Wrapf(err, "decode parameters of configmap %s", cm.Name)
	}

	switch method {
	case MethodRunAdviser:
		req, err := jsonutil.UnmarshalString[AdviserRequest](parameters)
		if err != nil {
			return "", decodeErr(err)
		}
		req.JobID = firstNonEmpty(req.JobID, cm.Name)
		return c.RunAdviser(ctx, req)
	case MethodRunDependencyMonkey:
		req, err := jsonutil.UnmarshalString[DependencyMonkeyRequest](parameters)
		if err != nil {
			return "", decodeErr(err)
		}
		req.JobID = firstNonEmpty(req.JobID, cm.Name)
		return c.RunDependencyMonkey(ctx, req)
	case MethodRunProvenanceChecker:
		req, err := jsonutil.UnmarshalString[ProvenanceCheckerRequest](parameters)
		if err != nil {
			return "", decodeErr(err)
		}
		req.JobID = firstNonEmpty(req.JobID, cm.Name)
		return c.RunProvenanceChecker(ctx, req)
	case MethodRunInspectionJob:
		req, err := jsonutil.UnmarshalString[InspectionRequest](parameters)
		if err != nil {
			return "", decodeErr(err)
		}
		if err := c.RunInspectionJob(ctx, req); err != nil {
			return "", err
		}
		return cm.Name, nil
	default:
		return "", errors.Wrapf(ErrUnknownMethod, "configmap %s requests %q", cm.Name, method)
	}
}

// ListScheduled returns the scheduled workload ConfigMaps waiting in
// the namespace.
func (c *Client) ListScheduled(ctx context.Context, namespace string) (cms *corev1.ConfigMapList, err error) {
	defer func() { observe("list_scheduled", err) }()

	cms, err = c.kube.CoreV1().ConfigMaps(namespace).List(ctx, metav1.ListOptions{LabelSelector: WorkloadSelector})
	if err != nil {
		return nil, errors.Wrapf(err, "list scheduled workloads in namespace %s", namespace)
	}

	return cms, nil
}
