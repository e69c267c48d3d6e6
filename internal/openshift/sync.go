package openshift

import (
	"context"

	"github.com/pkg/errors"
	"github.com/thoth-station/thoth-ocp/internal/metrics"
	"github.com/thoth-station/thoth-ocp/pkg/log"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const graphSyncName = "graph-sync"

// RunSync starts a graph sync pod. The pod reuses the pod template of
// the graph-sync CronJob so changes in the deployed application apply
// out of the box.
func (c *Client) RunSync(ctx context.Context, forceSync bool) (_ string, err error) {
	if c.cfg.FrontendNamespace == "" {
		return "", configurationError("graph sync requires frontend namespace configuration")
	}

	defer func() { observe("run_sync", err) }()

	log.Debug("retrieving graph-sync CronJob definition", "namespace", c.cfg.FrontendNamespace)
	cronJob, err := c.kube.BatchV1().CronJobs(c.cfg.FrontendNamespace).Get(ctx, graphSyncName, metav1.GetOptions{})
	if err != nil {
		if err = notFound(err, "cronjob %s was not found in namespace %s", graphSyncName, c.cfg.FrontendNamespace); errors.Is(err, ErrNotFound) {
			return "", err
		}
		return "", errors.Wrapf(err, "get cronjob %s", graphSyncName)
	}

	labels := make(map[string]string, len(cronJob.Labels))
	for k, v := range cronJob.Labels {
		if k != "template" {
			labels[k] = v
		}
	}

	spec := cronJob.Spec.JobTemplate.Spec.Template.Spec.DeepCopy()
	if err := setEnvVar(spec, Parameters{{Name: "THOTH_FORCE_SYNC", Value: flag(forceSync)}}); err != nil {
		return "", err
	}

	pod := &corev1.Pod{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Pod"},
		ObjectMeta: metav1.ObjectMeta{
			GenerateName: graphSyncName + "-",
			Labels:       labels,
		},
		Spec: *spec,
	}

	created, err := c.kube.CoreV1().Pods(c.cfg.FrontendNamespace).Create(ctx, pod, metav1.CreateOptions{})
	if err != nil {
		return "", errors.Wrap(err, "create graph-sync pod")
	}

	metrics.WorkloadsCreatedTotal.WithLabelValues(graphSyncName).Inc()
	log.Debug("started graph-sync pod", "name", created.Name)

	return created.Name, nil
}
