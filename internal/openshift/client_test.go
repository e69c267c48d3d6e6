package openshift

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"k8s.io/client-go/rest"
)

func (s *OpenShiftTestSuite) TestTokenExplicit() {
	cfg := testConfig()
	cfg.Token = "s3cr3t"
	s.setup(cfg)

	token, err := s.client.Token()
	s.Require().NoError(err)
	s.Equal("s3cr3t", token)
}

func (s *OpenShiftTestSuite) TestTokenInCluster() {
	path := filepath.Join(s.T().TempDir(), "token")
	s.Require().NoError(os.WriteFile(path, []byte("from-file\n"), 0o600))

	cfg := testConfig()
	cfg.TokenFile = path
	s.setup(cfg)
	s.client.inCluster = true

	token, err := s.client.Token()
	s.Require().NoError(err)
	s.Equal("from-file", token)

	// cached after the first read
	s.Require().NoError(os.Remove(path))
	token, err = s.client.Token()
	s.Require().NoError(err)
	s.Equal("from-file", token)
}

func (s *OpenShiftTestSuite) TestTokenKubeconfig() {
	s.client.restCfg = &rest.Config{BearerToken: "from-kubeconfig"}

	token, err := s.client.Token()
	s.Require().NoError(err)
	s.Equal("from-kubeconfig", token)
}

func (s *OpenShiftTestSuite) TestTokenMissing() {
	_, err := s.client.Token()
	s.True(errors.Is(err, ErrConfiguration))
}

func (s *OpenShiftTestSuite) TestNewFromKubeconfig() {
	kubeconfig := filepath.Join(s.T().TempDir(), "config")
	s.Require().NoError(os.WriteFile(kubeconfig, []byte(`apiVersion: v1
kind: Config
clusters:
- name: thoth
  cluster:
    server: https://api.thoth.example:6443
contexts:
- name: thoth
  context:
    cluster: thoth
    user: developer
current-context: thoth
users:
- name: developer
  user:
    token: developer-token
`), 0o600))

	cfg := testConfig()
	cfg.Kubeconfig = kubeconfig
	cfg.VerifyTLS = false

	client, err := New(cfg)
	s.Require().NoError(err)
	s.False(client.InCluster())
	s.True(client.restCfg.TLSClientConfig.Insecure)
	s.Equal(cfg, client.Config())

	token, err := client.Token()
	s.Require().NoError(err)
	s.Equal("developer-token", token)
}
