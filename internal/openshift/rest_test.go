package openshift

import (
	"context"

	"github.com/pkg/errors"
)

func (s *OpenShiftTestSuite) TestProcessTemplate() {
	template := newTemplate("adviser", []interface{}{parameterEntry("THOTH_ADVISER_OUTPUT", "-")},
		newObject("v1", "Pod", "adviser-1", "adviser"),
	)

	processed, err := s.client.ProcessTemplate(context.Background(), testBackendNamespace, template)
	s.Require().NoError(err)
	s.Equal("adviser", processed.GetName())
	s.Len(s.processed[testBackendNamespace], 1)

	value, ok := s.parameter(processed, "THOTH_ADVISER_OUTPUT")
	s.True(ok)
	s.Equal("-", value)
}

func (s *OpenShiftTestSuite) TestProcessTemplateFailure() {
	s.server.Close()

	_, err := s.client.ProcessTemplate(context.Background(), testBackendNamespace, newTemplate("adviser", nil))
	s.Error(err)
}

func (s *OpenShiftTestSuite) TestGetBuild() {
	build, err := s.client.GetBuild(context.Background(), "build-1", testAmunNamespace)
	s.Require().NoError(err)
	s.Equal("Build", build.GetKind())
	s.Equal("build-1", build.GetName())

	_, err = s.client.GetBuild(context.Background(), "build-2", testAmunNamespace)
	s.True(errors.Is(err, ErrNotFound))
}

func (s *OpenShiftTestSuite) TestGetBuildConfig() {
	bc, err := s.client.GetBuildConfig(context.Background(), "bc-1", testAmunNamespace)
	s.Require().NoError(err)
	s.Equal("BuildConfig", bc.GetKind())

	_, err = s.client.GetBuildConfig(context.Background(), "bc-1", testInfraNamespace)
	s.True(errors.Is(err, ErrNotFound))
}

func (s *OpenShiftTestSuite) TestGetBuildLog() {
	buildLog, err := s.client.GetBuildLog(context.Background(), "build-1", testAmunNamespace)
	s.Require().NoError(err)
	s.Equal("build log line\n", buildLog)

	_, err = s.client.GetBuildLog(context.Background(), "build-2", testAmunNamespace)
	s.True(errors.Is(err, ErrNotFound))
}
