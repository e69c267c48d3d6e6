package openshift

import (
	"github.com/thoth-station/thoth-ocp/pkg/env"
)

// Config carries the namespaces and credentials the Client
// operates with. Zero values mean "not configured"; operations
// that need a missing namespace fail with ErrConfiguration.
type Config struct {
	FrontendNamespace       string
	MiddletierNamespace     string
	BackendNamespace        string
	InfraNamespace          string
	AmunInspectionNamespace string

	// KubernetesAPIURL and OpenShiftAPIURL override the master
	// address discovered from the in-cluster or kubeconfig setup.
	KubernetesAPIURL string
	OpenShiftAPIURL  string
	VerifyTLS        bool

	Token      string
	TokenFile  string
	CertFile   string
	Kubeconfig string
}

// ConfigFromEnvironment builds a Config from the processed
// environment variables.
func ConfigFromEnvironment(vars env.Environment) Config {
	return Config{
		FrontendNamespace:       vars.FrontendNamespace,
		MiddletierNamespace:     vars.MiddletierNamespace,
		BackendNamespace:        vars.BackendNamespace,
		InfraNamespace:          vars.InfraNamespace,
		AmunInspectionNamespace: vars.AmunInspectionNamespace,
		KubernetesAPIURL:        vars.KubernetesAPIURL,
		OpenShiftAPIURL:         vars.OpenShiftAPIURL,
		VerifyTLS:               vars.KubernetesVerifyTLS,
		Token:                   vars.Token,
		TokenFile:               vars.TokenFile,
		CertFile:                vars.CertFile,
		Kubeconfig:              vars.Kubeconfig,
	}
}
