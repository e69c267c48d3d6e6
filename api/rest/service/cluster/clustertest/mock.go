package clustertest

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thoth-station/thoth-ocp/internal/openshift"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Mock implements cluster.Cluster with testify expectations. Context
// arguments are not recorded.
type Mock struct {
	mock.Mock
}

func (m *Mock) InCluster() bool {
	return m.Called().Bool(0)
}

func (m *Mock) GetPodStatusReport(ctx context.Context, podID, namespace string) (openshift.StatusReport, error) {
	args := m.Called(podID, namespace)
	report, _ := args.Get(0).(openshift.StatusReport)
	return report, args.Error(1)
}

func (m *Mock) GetPodLog(ctx context.Context, podID, namespace string) (string, bool, error) {
	args := m.Called(podID, namespace)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *Mock) GetJobStatusReport(ctx context.Context, jobID, namespace string) (openshift.StatusReport, error) {
	args := m.Called(jobID, namespace)
	report, _ := args.Get(0).(openshift.StatusReport)
	return report, args.Error(1)
}

func (m *Mock) GetJobLog(ctx context.Context, jobID, namespace string) (string, bool, error) {
	args := m.Called(jobID, namespace)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *Mock) GetBuild(ctx context.Context, buildID, namespace string) (*unstructured.Unstructured, error) {
	args := m.Called(buildID, namespace)
	build, _ := args.Get(0).(*unstructured.Unstructured)
	return build, args.Error(1)
}

func (m *Mock) GetBuildLog(ctx context.Context, buildID, namespace string) (string, error) {
	args := m.Called(buildID, namespace)
	return args.String(0), args.Error(1)
}

func (m *Mock) GetSolverNames(ctx context.Context) ([]string, error) {
	args := m.Called()
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *Mock) ScheduleAdviser(ctx context.Context, req openshift.AdviserRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}

func (m *Mock) ScheduleProvenanceChecker(ctx context.Context, req openshift.ProvenanceCheckerRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}

func (m *Mock) ScheduleDependencyMonkey(ctx context.Context, req openshift.DependencyMonkeyRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}

func (m *Mock) CreateInspectionImageStream(ctx context.Context, inspectionID string) (string, error) {
	args := m.Called(inspectionID)
	return args.String(0), args.Error(1)
}

func (m *Mock) CreateInspectionBuildConfig(ctx context.Context, req openshift.InspectionRequest) error {
	return m.Called(req).Error(0)
}

func (m *Mock) ScheduleInspectionJob(ctx context.Context, inspectionID string, req openshift.InspectionRequest) (string, error) {
	args := m.Called(inspectionID, req)
	return args.String(0), args.Error(1)
}
