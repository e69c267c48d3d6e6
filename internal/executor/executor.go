package executor

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/thoth-station/thoth-ocp/pkg/log"
	corev1 "k8s.io/api/core/v1"
)

// ErrInterval is returned by New for a non-positive poll interval.
var ErrInterval = errors.New("executor interval must be positive")

// Cluster is the part of the OpenShift client the executor drives.
type Cluster interface {
	ListScheduled(ctx context.Context, namespace string) (*corev1.ConfigMapList, error)
	RunScheduled(ctx context.Context, cm *corev1.ConfigMap) (string, error)
	DeleteConfigMap(ctx context.Context, name, namespace string) error
}

// Executor runs workloads scheduled through ConfigMaps in the watched
// namespaces.
type Executor struct {
	cluster    Cluster
	interval   time.Duration
	namespaces []string
}

// New creates an Executor polling the non-empty namespaces every interval.
func New(cluster Cluster, interval time.Duration, namespaces ...string) (*Executor, error) {
	if interval <= 0 {
		return nil, errors.Wrapf(ErrInterval, "got %s", interval)
	}

	e := &Executor{cluster: cluster, interval: interval}

	seen := map[string]bool{}
	for _, ns := range namespaces {
		if ns != "" && !seen[ns] {
			seen[ns] = true
			e.namespaces = append(e.namespaces, ns)
		}
	}

	return e, nil
}

// Namespaces returns the namespaces the executor watches.
func (e *Executor) Namespaces() []string {
	return e.namespaces
}

// Start polls for scheduled workloads until the context is done.
func (e *Executor) Start(ctx context.Context) error {
	t := time.NewTicker(e.interval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			if err := e.RunPending(ctx); err != nil {
				log.Warn("scheduled workloads left pending", "error", err)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// RunPending runs every scheduled workload waiting in the watched
// namespaces. ConfigMaps of workloads that were started are deleted;
// failed ones are kept and retried on the next pass. A namespace that
// cannot be listed is skipped and reported in the returned error.
func (e *Executor) RunPending(ctx context.Context) error {
	var failed []string

	for _, ns := range e.namespaces {
		cms, err := e.cluster.ListScheduled(ctx, ns)
		if err != nil {
			log.Error("scheduled workload listing failure", "namespace", ns, "error", err)
			failed = append(failed, ns)
			continue
		}

		log.Debug("running scheduled workloads", "namespace", ns, "count", len(cms.Items))

		for i := range cms.Items {
			cm := &cms.Items[i]

			name, err := e.cluster.RunScheduled(ctx, cm)
			if err != nil {
				log.Error("scheduled workload failure", "configmap", cm.Name, "namespace", ns, "error", err)
				continue
			}

			log.Info("started scheduled workload", "configmap", cm.Name, "name", name, "namespace", ns)

			if err := e.cluster.DeleteConfigMap(ctx, cm.Name, ns); err != nil {
				log.Error("scheduled workload cleanup failure", "configmap", cm.Name, "namespace", ns, "error", err)
			}
		}
	}

	if len(failed) > 0 {
		return errors.Errorf("failed to list scheduled workloads in %s", strings.Join(failed, ", "))
	}

	return nil
}
