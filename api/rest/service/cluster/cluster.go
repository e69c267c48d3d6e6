package cluster

import (
	"context"
	"sync"

	"github.com/thoth-station/thoth-ocp/internal/openshift"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Cluster is the OpenShift surface served by the REST API.
type Cluster interface {
	InCluster() bool
	GetPodStatusReport(ctx context.Context, podID, namespace string) (openshift.StatusReport, error)
	GetPodLog(ctx context.Context, podID, namespace string) (string, bool, error)
	GetJobStatusReport(ctx context.Context, jobID, namespace string) (openshift.StatusReport, error)
	GetJobLog(ctx context.Context, jobID, namespace string) (string, bool, error)
	GetBuild(ctx context.Context, buildID, namespace string) (*unstructured.Unstructured, error)
	GetBuildLog(ctx context.Context, buildID, namespace string) (string, error)
	GetSolverNames(ctx context.Context) ([]string, error)
	ScheduleAdviser(ctx context.Context, req openshift.AdviserRequest) (string, error)
	ScheduleProvenanceChecker(ctx context.Context, req openshift.ProvenanceCheckerRequest) (string, error)
	ScheduleDependencyMonkey(ctx context.Context, req openshift.DependencyMonkeyRequest) (string, error)
	CreateInspectionImageStream(ctx context.Context, inspectionID string) (string, error)
	CreateInspectionBuildConfig(ctx context.Context, req openshift.InspectionRequest) error
	ScheduleInspectionJob(ctx context.Context, inspectionID string, req openshift.InspectionRequest) (string, error)
}

var (
	mu      sync.RWMutex
	current Cluster
)

// Use sets the cluster the REST controllers talk to.
func Use(c Cluster) {
	mu.Lock()
	defer mu.Unlock()
	current = c
}

// Service returns the cluster set with Use.
func Service() Cluster {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
