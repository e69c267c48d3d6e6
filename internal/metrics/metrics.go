package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ClusterRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thoth_cluster_requests_total",
			Help: "Total number of requests sent to the cluster API by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	WorkloadsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thoth_workloads_created_total",
			Help: "Total number of workload objects created in the cluster.",
		},
		[]string{"workload"},
	)

	WorkloadsScheduledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thoth_workloads_scheduled_total",
			Help: "Total number of workloads handed over to the workload operator.",
		},
		[]string{"workload"},
	)
)

// Register registers all custom Thoth metrics with the default Prometheus registry.
func Register() {
	prometheus.MustRegister(
		ClusterRequestsTotal,
		WorkloadsCreatedTotal,
		WorkloadsScheduledTotal,
	)
}
