package openshift

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/thoth-station/thoth-ocp/pkg/log"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// GetPodLog returns the log of a pod. The middletier namespace is
// used when namespace is empty. The boolean result is false when
// the pod has not been scheduled yet and there is no log to return.
func (c *Client) GetPodLog(ctx context.Context, podID, namespace string) (podLog string, scheduled bool, err error) {
	if namespace == "" {
		if c.cfg.MiddletierNamespace == "" {
			return "", false, configurationError("middletier namespace is required to check log of pods run in this namespace")
		}
		namespace = c.cfg.MiddletierNamespace
	}

	defer func() { observe("get_pod_log", err) }()

	resp, err := c.kube.CoreV1().Pods(namespace).GetLogs(podID, &corev1.PodLogOptions{}).DoRaw(ctx)
	switch {
	case apierrors.IsNotFound(err):
		return "", false, errors.Wrapf(ErrNotFound, "pod with id %s was not found in namespace %s", podID, namespace)
	case apierrors.IsBadRequest(err):
		// The master answers 400 until the pod is initialized.
		log.Debug("pod log not available yet", "pod", podID, "namespace", namespace, "error", err)
		return "", false, nil
	case err != nil:
		return "", false, errors.Wrapf(err, "get log of pod %s in namespace %s", podID, namespace)
	}

	return string(resp), true, nil
}

// GetPodStatus returns the state of the pod's first container. The
// state is empty while the pod is being scheduled.
func (c *Client) GetPodStatus(ctx context.Context, podID, namespace string) (state corev1.ContainerState, err error) {
	defer func() { observe("get_pod_status", err) }()

	pod, err := c.kube.CoreV1().Pods(namespace).Get(ctx, podID, metav1.GetOptions{})
	if err != nil {
		if err = notFound(err, "the given pod with id %s could not be found", podID); errors.Is(err, ErrNotFound) {
			return state, err
		}
		return state, errors.Wrapf(err, "get pod %s in namespace %s", podID, namespace)
	}

	log.Debug("openshift master response for pod status", "pod", podID, "phase", pod.Status.Phase)

	if len(pod.Status.ContainerStatuses) == 0 {
		return state, nil
	}

	state = *pod.Status.ContainerStatuses[0].State.DeepCopy()
	translateTimeoutKill(state.Terminated)

	return state, nil
}

// GetPodStatusReport returns the pod state converted into a
// user-friendly report.
func (c *Client) GetPodStatusReport(ctx context.Context, podID, namespace string) (StatusReport, error) {
	state, err := c.GetPodStatus(ctx, podID, namespace)
	if err != nil {
		return StatusReport{}, err
	}

	return NewStatusReport(state), nil
}

// GetJobStatusReport returns the status report of the pod run by a job.
func (c *Client) GetJobStatusReport(ctx context.Context, jobID, namespace string) (StatusReport, error) {
	namespace = firstNonEmpty(namespace, c.cfg.InfraNamespace)

	podID, err := c.podIDFromJob(ctx, jobID, namespace)
	if err != nil {
		return StatusReport{}, err
	}

	return c.GetPodStatusReport(ctx, podID, namespace)
}

// GetJobLog returns the log of the pod run by a job.
func (c *Client) GetJobLog(ctx context.Context, jobID, namespace string) (string, bool, error) {
	namespace = firstNonEmpty(namespace, c.cfg.InfraNamespace)

	podID, err := c.podIDFromJob(ctx, jobID, namespace)
	if err != nil {
		return "", false, err
	}

	return c.GetPodLog(ctx, podID, namespace)
}

// podIDFromJob finds the pod of a job through the job-name label
// Kubernetes adds to pods it creates for a job.
func (c *Client) podIDFromJob(ctx context.Context, jobID, namespace string) (_ string, err error) {
	defer func() { observe("get_job_pod", err) }()

	pods, err := c.kube.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{
		LabelSelector: fmt.Sprintf("job-name=%s", jobID),
	})
	if err != nil {
		return "", errors.Wrapf(err, "list pods of job %s", jobID)
	}

	if len(pods.Items) != 1 {
		if len(pods.Items) > 1 {
			log.Error("multiple pods for the same job name selector found", "job", jobID, "namespace", namespace, "count", len(pods.Items))
		}
		return "", errors.Wrapf(ErrNotFound, "job with the given id %s was not found", jobID)
	}

	return pods.Items[0].Name, nil
}
