package env

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/thoth-station/thoth-ocp/pkg/log"
)

var variables = new(Environment)

// Process the environment variables set for thoth-ocp.
func Process() error {
	if err := envconfig.Process("thoth", variables); err != nil {
		return errors.Wrap(err, "failed to process environment variables")
	}

	// set the log level
	if err := log.SetLevel(variables.LogLevel); err != nil {
		return errors.Wrap(err, "failed to set log level")
	}

	return nil
}

// Variables returns the processed environment variables.
func Variables() Environment {
	return *variables
}

// Environment defines the environment variables used
// by thoth-ocp. Cluster connection settings also honour
// the unprefixed names used by the rest of the
// deployment (KUBERNETES_API_URL, OPENSHIFT_API_URL and
// KUBERNETES_VERIFY_TLS).
type Environment struct {
	LogLevel                string `default:"info" split_words:"true"`
	Port                    int    `default:"8080"`
	FrontendNamespace       string `split_words:"true"`
	MiddletierNamespace     string `split_words:"true"`
	BackendNamespace        string `split_words:"true"`
	InfraNamespace          string `split_words:"true"`
	AmunInspectionNamespace string `split_words:"true"`
	KubernetesAPIURL        string `envconfig:"KUBERNETES_API_URL"`
	OpenShiftAPIURL         string `envconfig:"OPENSHIFT_API_URL"`
	KubernetesVerifyTLS     bool   `envconfig:"KUBERNETES_VERIFY_TLS" default:"true"`
	Token                   string
	TokenFile               string `split_words:"true"`
	CertFile                string `split_words:"true"`
	Kubeconfig              string
	OperatorEnabled         bool          `split_words:"true"`
	OperatorInterval        time.Duration `default:"1m" split_words:"true"`
}
