package openshift

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/thoth-station/thoth-ocp/internal/metrics"
	metrictestutil "github.com/thoth-station/thoth-ocp/internal/metrics/testutil"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	k8stesting "k8s.io/client-go/testing"
)

var podResource = schema.GroupVersionResource{Version: "v1", Resource: "pods"}

func (s *OpenShiftTestSuite) TestGetTemplateCount() {
	s.setup(testConfig(),
		newTemplate("adviser", nil),
		newTemplate("solver", nil),
	)

	template, err := s.client.GetTemplate(context.Background(), "template=adviser")
	s.Require().NoError(err)
	s.Equal("adviser", template.GetName())

	_, err = s.client.GetTemplate(context.Background(), "template=missing")
	s.True(errors.Is(err, ErrTemplateCount))

	_, err = s.client.GetTemplate(context.Background(), "")
	s.True(errors.Is(err, ErrTemplateCount))
}

func (s *OpenShiftTestSuite) TestGetSolverNames() {
	s.setup(testConfig(), newTemplate("solver", nil,
		newObject("v1", "Pod", "solver-fedora-31-py37", "solver-fedora-31-py37"),
		newObject("v1", "Pod", "solver-fedora-32-py38", "solver-fedora-32-py38"),
	))

	names, err := s.client.GetSolverNames(context.Background())
	s.Require().NoError(err)
	s.Equal([]string{"solver-fedora-31-py37", "solver-fedora-32-py38"}, names)
}

func (s *OpenShiftTestSuite) TestRunSolver() {
	s.setup(testConfig(), newTemplate("solver", []interface{}{
		parameterEntry("THOTH_SOLVER_PACKAGES", ""),
		parameterEntry("THOTH_LOG_SOLVER", "INFO"),
	},
		newObject("v1", "Pod", "solver-fedora-31-py37-x", "solver-fedora-31-py37"),
		newObject("v1", "Pod", "solver-fedora-32-py38-y", "solver-fedora-32-py38"),
	))

	created := metrictestutil.CounterDelta(s.T(), metrics.WorkloadsCreatedTotal, "solver")

	solvers, err := s.client.RunSolver(context.Background(), SolverRequest{
		Packages: "tensorflow\nflask>1.0",
		Output:   "http://result-api/solver",
		Indexes:  []string{"https://pypi.org/simple", "https://tensorflow.pypi.thoth-station.ninja/simple"},
		Debug:    true,
	})
	s.Require().NoError(err)
	s.Equal(map[string]string{
		"solver-fedora-31-py37": "solver-fedora-31-py37-x",
		"solver-fedora-32-py38": "solver-fedora-32-py38-y",
	}, solvers)
	s.Equal(float64(2), created())

	processed := s.lastProcessed(testMiddletierNamespace)
	for name, expected := range map[string]string{
		"THOTH_SOLVER_PACKAGES":           `tensorflow\nflask>1.0`,
		"THOTH_SOLVER_INDEXES":            "https://pypi.org/simple,https://tensorflow.pypi.thoth-station.ninja/simple",
		"THOTH_LOG_SOLVER":                "DEBUG",
		"THOTH_SOLVER_NO_TRANSITIVE":      "1",
		"THOTH_SOLVER_OUTPUT":             "http://result-api/solver",
		"THOTH_SOLVER_SUBGRAPH_CHECK_API": "",
	} {
		value, ok := s.parameter(processed, name)
		s.True(ok, name)
		s.Equal(expected, value, name)
	}

	pods, err := s.dynamic.Resource(podResource).Namespace(testMiddletierNamespace).Get(context.Background(), "solver-fedora-32-py38-y", metav1.GetOptions{})
	s.Require().NoError(err)
	s.Equal("solver-fedora-32-py38", pods.GetLabels()["component"])
}

func (s *OpenShiftTestSuite) TestRunSolverSingle() {
	s.setup(testConfig(), newTemplate("solver", nil,
		newObject("v1", "Pod", "solver-a-x", "solver-a"),
		newObject("v1", "Pod", "solver-b-y", "solver-b"),
	))

	solvers, err := s.client.RunSolver(context.Background(), SolverRequest{Packages: "flask", Solver: "solver-b", Transitive: true})
	s.Require().NoError(err)
	s.Equal(map[string]string{"solver-b": "solver-b-y"}, solvers)

	value, _ := s.parameter(s.lastProcessed(testMiddletierNamespace), "THOTH_SOLVER_NO_TRANSITIVE")
	s.Equal("0", value)
}

func (s *OpenShiftTestSuite) TestRunSolverRequiresNamespaces() {
	for _, unset := range []func(*Config){
		func(cfg *Config) { cfg.MiddletierNamespace = "" },
		func(cfg *Config) { cfg.InfraNamespace = "" },
	} {
		cfg := testConfig()
		unset(&cfg)
		s.setup(cfg)

		_, err := s.client.RunSolver(context.Background(), SolverRequest{Packages: "flask"})
		s.True(errors.Is(err, ErrConfiguration))
		s.Empty(s.dynamic.Actions())
		s.Empty(s.processed)
	}
}

func (s *OpenShiftTestSuite) TestRunPackageExtract() {
	s.setup(testConfig(), newTemplate("package-extract", nil,
		newObject("batch/v1", "Job", "package-extract-1", "package-extract"),
	))

	name, err := s.client.RunPackageExtract(context.Background(), PackageExtractRequest{
		Image:            "quay.io/thoth-station/s2i-thoth-ubi8-py38",
		Output:           "-",
		RegistryUser:     "user",
		RegistryPassword: "secret",
		VerifyTLS:        false,
	})
	s.Require().NoError(err)
	s.Equal("package-extract-1", name)

	processed := s.lastProcessed(testMiddletierNamespace)
	for name, expected := range map[string]string{
		"THOTH_ANALYZED_IMAGE":         "quay.io/thoth-station/s2i-thoth-ubi8-py38",
		"THOTH_ANALYZER_NO_TLS_VERIFY": "1",
		"THOTH_ANALYZER_OUTPUT":        "-",
		"THOTH_LOG_PACKAGE_EXTRACT":    "INFO",
		"THOTH_REGISTRY_CREDENTIALS":   "user:secret",
	} {
		value, ok := s.parameter(processed, name)
		s.True(ok, name)
		s.Equal(expected, value, name)
	}
}

func (s *OpenShiftTestSuite) TestRunPackageExtractWithoutCredentials() {
	s.setup(testConfig(), newTemplate("package-extract", nil,
		newObject("batch/v1", "Job", "package-extract-1", "package-extract"),
	))

	_, err := s.client.RunPackageExtract(context.Background(), PackageExtractRequest{
		Image:        "quay.io/thoth-station/s2i-thoth-ubi8-py38",
		RegistryUser: "user",
		VerifyTLS:    true,
	})
	s.Require().NoError(err)

	processed := s.lastProcessed(testMiddletierNamespace)
	_, ok := s.parameter(processed, "THOTH_REGISTRY_CREDENTIALS")
	s.False(ok)

	value, _ := s.parameter(processed, "THOTH_ANALYZER_NO_TLS_VERIFY")
	s.Equal("0", value)
}

func (s *OpenShiftTestSuite) TestRunSync() {
	cronJob := &batchv1.CronJob{
		ObjectMeta: metav1.ObjectMeta{
			Name:      graphSyncName,
			Namespace: testFrontendNamespace,
			Labels:    map[string]string{"app": "thoth", "template": "graph-sync", "component": "graph-sync"},
		},
	}
	cronJob.Spec.JobTemplate.Spec.Template.Spec.Containers = []corev1.Container{{
		Name:  "graph-sync",
		Image: "graph-sync-job",
		Env:   []corev1.EnvVar{{Name: "THOTH_FORCE_SYNC", Value: "0"}},
	}}

	s.setup(testConfig(), cronJob)
	s.kube.PrependReactor("create", "pods", func(action k8stesting.Action) (bool, runtime.Object, error) {
		pod := action.(k8stesting.CreateAction).GetObject().(*corev1.Pod)
		if pod.Name == "" {
			pod.Name = pod.GenerateName + "x7k2p"
		}
		return false, nil, nil
	})

	name, err := s.client.RunSync(context.Background(), true)
	s.Require().NoError(err)
	s.Equal("graph-sync-x7k2p", name)

	pod, err := s.kube.CoreV1().Pods(testFrontendNamespace).Get(context.Background(), name, metav1.GetOptions{})
	s.Require().NoError(err)
	s.Equal(map[string]string{"app": "thoth", "component": "graph-sync"}, pod.Labels)
	s.Equal([]corev1.EnvVar{{Name: "THOTH_FORCE_SYNC", Value: "1"}}, pod.Spec.Containers[0].Env)

	// the CronJob itself is left untouched
	stored, err := s.kube.BatchV1().CronJobs(testFrontendNamespace).Get(context.Background(), graphSyncName, metav1.GetOptions{})
	s.Require().NoError(err)
	s.Equal("0", stored.Spec.JobTemplate.Spec.Template.Spec.Containers[0].Env[0].Value)
}

func (s *OpenShiftTestSuite) TestRunSyncMissingCronJob() {
	_, err := s.client.RunSync(context.Background(), false)
	s.True(errors.Is(err, ErrNotFound))

	cfg := testConfig()
	cfg.FrontendNamespace = ""
	s.setup(cfg)

	_, err = s.client.RunSync(context.Background(), false)
	s.True(errors.Is(err, ErrConfiguration))
}

func (s *OpenShiftTestSuite) TestInspection() {
	s.setup(testConfig(),
		newTemplate("amun-inspect-imagestream", nil,
			newObject("image.openshift.io/v1", "ImageStream", "inspect-1", "amun-inspection"),
		),
		newTemplate("amun-inspect-buildconfig-with-cpu", nil,
			newObject("build.openshift.io/v1", "BuildConfig", "inspect-1", "amun-inspection"),
		),
		newTemplate("amun-inspect-job", nil,
			newObject("batch/v1", "Job", "inspect-1", "amun-inspection"),
		),
	)

	ctx := context.Background()

	name, err := s.client.CreateInspectionImageStream(ctx, "inspect-1")
	s.Require().NoError(err)
	s.Equal("inspect-1", name)

	value, _ := s.parameter(s.lastProcessed(testInfraNamespace), "AMUN_INSPECTION_ID")
	s.Equal("inspect-1", value)

	params := map[string]string{"AMUN_INSPECTION_ID": "inspect-1", "AMUN_CPU": "4"}
	s.Require().NoError(s.client.CreateInspectionBuildConfig(ctx, InspectionRequest{Parameters: params, UseHWTemplate: true}))
	s.Require().NoError(s.client.RunInspectionJob(ctx, InspectionRequest{Parameters: params}))

	processed := s.processed[testAmunNamespace]
	s.Require().Len(processed, 2)
	s.Equal("amun-inspect-buildconfig-with-cpu", processed[0].GetName())
	s.Equal("amun-inspect-job", processed[1].GetName())

	value, _ = s.parameter(processed[1], "AMUN_CPU")
	s.Equal("4", value)

	// the job variant pinned to hardware is not installed
	err = s.client.RunInspectionJob(ctx, InspectionRequest{Parameters: params, UseHWTemplate: true})
	s.True(errors.Is(err, ErrTemplateCount))
}

func (s *OpenShiftTestSuite) TestInspectionRequiresNamespaces() {
	cfg := testConfig()
	cfg.AmunInspectionNamespace = ""
	s.setup(cfg)

	_, err := s.client.CreateInspectionImageStream(context.Background(), "inspect-1")
	s.True(errors.Is(err, ErrConfiguration))

	err = s.client.CreateInspectionBuildConfig(context.Background(), InspectionRequest{})
	s.True(errors.Is(err, ErrConfiguration))

	_, err = s.client.ScheduleInspectionJob(context.Background(), "inspect-1", InspectionRequest{})
	s.True(errors.Is(err, ErrConfiguration))
}

func (s *OpenShiftTestSuite) TestRunAdviser() {
	s.setup(testConfig(), newTemplate("adviser", nil,
		newObject("batch/v1", "Job", "adviser-1", "adviser"),
	))

	name, err := s.client.RunAdviser(context.Background(), AdviserRequest{
		ApplicationStack: ApplicationStack{
			Requirements: "[packages]\nflask = \"*\"\n",
		},
		Output:             "http://result-api/adviser",
		RecommendationType: "stable",
		Count:              3,
		RuntimeEnvironment: map[string]interface{}{"python_version": "3.8"},
		JobID:              "adviser-0123456789abcdef",
	})
	s.Require().NoError(err)
	s.Equal("adviser-1", name)

	processed := s.lastProcessed(testBackendNamespace)
	for name, expected := range map[string]string{
		"THOTH_ADVISER_REQUIREMENTS":        `[packages]\nflask = "*"\n`,
		"THOTH_ADVISER_REQUIREMENTS_LOCKED": "",
		"THOTH_ADVISER_REQUIREMENTS_FORMAT": "pipenv",
		"THOTH_ADVISER_RECOMMENDATION_TYPE": "stable",
		"THOTH_ADVISER_RUNTIME_ENVIRONMENT": `{"python_version":"3.8"}`,
		"THOTH_ADVISER_OUTPUT":              "http://result-api/adviser",
		"THOTH_ADVISER_COUNT":               "3",
		"THOTH_LOG_ADVISER":                 "INFO",
		"THOTH_ADVISER_JOB_ID":              "adviser-0123456789abcdef",
	} {
		value, ok := s.parameter(processed, name)
		s.True(ok, name)
		s.Equal(expected, value, name)
	}

	_, ok := s.parameter(processed, "THOTH_ADVISER_LIMIT")
	s.False(ok)
}

func (s *OpenShiftTestSuite) TestRunDependencyMonkey() {
	s.setup(testConfig(), newTemplate("dependency-monkey", nil,
		newObject("batch/v1", "Job", "dependency-monkey-1", "dependency-monkey"),
	))

	seed := 42
	_, err := s.client.RunDependencyMonkey(context.Background(), DependencyMonkeyRequest{
		Requirements: "flask",
		Seed:         &seed,
		DryRun:       true,
	})
	s.Require().NoError(err)

	processed := s.lastProcessed(testMiddletierNamespace)
	for name, expected := range map[string]string{
		"THOTH_ADVISER_REQUIREMENTS":            "flask",
		"THOTH_AMUN_CONTEXT":                    "{}",
		"THOTH_DEPENDENCY_MONKEY_STACK_OUTPUT":  "-",
		"THOTH_DEPENDENCY_MONKEY_REPORT_OUTPUT": "-",
		"THOTH_DEPENDENCY_MONKEY_DRY_RUN":       "1",
		"THOTH_DEPENDENCY_MONKEY_SEED":          "42",
	} {
		value, ok := s.parameter(processed, name)
		s.True(ok, name)
		s.Equal(expected, value, name)
	}

	jobID, _ := s.parameter(processed, "THOTH_DEPENDENCY_MONKEY_JOB_ID")
	s.True(strings.HasPrefix(jobID, "dependency-monkey-"))

	_, ok := s.parameter(processed, "THOTH_DEPENDENCY_MONKEY_COUNT")
	s.False(ok)
}

func (s *OpenShiftTestSuite) TestRunProvenanceChecker() {
	s.setup(testConfig(), newTemplate("provenance-checker", nil,
		newObject("batch/v1", "Job", "provenance-checker-1", "provenance-checker"),
	))

	_, err := s.client.RunProvenanceChecker(context.Background(), ProvenanceCheckerRequest{
		ApplicationStack:   ApplicationStack{Requirements: "flask", RequirementsLock: "{}"},
		WhitelistedSources: []string{"https://pypi.org/simple", "https://example.com/simple"},
		Debug:              true,
	})
	s.Require().NoError(err)

	processed := s.lastProcessed(testBackendNamespace)
	value, _ := s.parameter(processed, "THOTH_WHITELISTED_SOURCES")
	s.Equal("https://pypi.org/simple,https://example.com/simple", value)

	value, _ = s.parameter(processed, "THOTH_LOG_ADVISER")
	s.Equal("DEBUG", value)
}

func (s *OpenShiftTestSuite) TestWorkloadsRequireNamespaces() {
	ctx := context.Background()

	cfg := testConfig()
	cfg.BackendNamespace = ""
	s.setup(cfg)

	_, err := s.client.RunAdviser(ctx, AdviserRequest{})
	s.True(errors.Is(err, ErrConfiguration))
	_, err = s.client.ScheduleAdviser(ctx, AdviserRequest{})
	s.True(errors.Is(err, ErrConfiguration))
	_, err = s.client.RunProvenanceChecker(ctx, ProvenanceCheckerRequest{})
	s.True(errors.Is(err, ErrConfiguration))
	_, err = s.client.ScheduleProvenanceChecker(ctx, ProvenanceCheckerRequest{})
	s.True(errors.Is(err, ErrConfiguration))

	cfg = testConfig()
	cfg.InfraNamespace = ""
	s.setup(cfg)

	_, err = s.client.RunDependencyMonkey(ctx, DependencyMonkeyRequest{})
	s.True(errors.Is(err, ErrConfiguration))
	_, err = s.client.RunPackageExtract(ctx, PackageExtractRequest{})
	s.True(errors.Is(err, ErrConfiguration))
	_, err = s.client.GetSolverNames(ctx)
	s.True(errors.Is(err, ErrConfiguration))

	s.Empty(s.dynamic.Actions())
	s.Empty(s.kube.Actions())
}
